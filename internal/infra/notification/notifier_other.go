//go:build !linux && !darwin

package notification

func newPlatformNotifier() Notifier {
	return nil
}
