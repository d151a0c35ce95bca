package notification

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

// Notifier delivers a fired notification to the user.
type Notifier interface {
	Notify(ctx context.Context, content domain.NotificationContent, channel domain.ChannelConfig) error
	IsSupported() bool
}

// NewNotifier returns the native desktop notifier, or a notifier that only
// logs when the platform has none.
func NewNotifier() Notifier {
	n := newPlatformNotifier()
	if n == nil || !n.IsSupported() {
		slog.Warn("desktop notifications unavailable, falling back to log output")

		return LogNotifier{}
	}

	return n
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, content domain.NotificationContent, channel domain.ChannelConfig) error {
	slog.InfoContext(ctx, content.Title,
		"event", "notification.delivered",
		"body", content.Body,
		"kind", string(content.Kind),
		"channel_id", channel.ID,
		"alarm", channel.Alarm,
	)

	return nil
}

func (LogNotifier) IsSupported() bool {
	return true
}

func urgency(channel domain.ChannelConfig) string {
	switch {
	case channel.Alarm:
		return "critical"
	case channel.Importance == domain.ImportanceHigh:
		return "normal"
	default:
		return "low"
	}
}
