package domain

import "fmt"

type Kind string

const (
	KindBedtime Kind = "bedtime"
	KindWakeup  Kind = "wakeup"
)

// Kinds returns every reminder kind in arm order.
func Kinds() []Kind {
	return []Kind{KindBedtime, KindWakeup}
}

func NewKind(k string) (Kind, error) {
	switch k {
	case string(KindBedtime), string(KindWakeup):
		return Kind(k), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidKind, k)
	}
}
