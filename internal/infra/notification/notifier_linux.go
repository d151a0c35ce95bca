package notification

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

type notifySendNotifier struct {
	path string
}

func newPlatformNotifier() Notifier {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return nil
	}

	return &notifySendNotifier{path: path}
}

func (n *notifySendNotifier) Notify(ctx context.Context, content domain.NotificationContent, channel domain.ChannelConfig) error {
	args := []string{
		"--app-name=sleep-remind",
		"--urgency=" + urgency(channel),
		"--category=" + channel.ID,
		content.Title,
		content.Body,
	}

	if out, err := exec.CommandContext(ctx, n.path, args...).CombinedOutput(); err != nil {
		return fmt.Errorf("notify-send: %w: %s", err, out)
	}

	return nil
}

func (n *notifySendNotifier) IsSupported() bool {
	return n.path != ""
}
