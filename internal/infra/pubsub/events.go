package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-sleep-remind/internal/observability/tracing"
)

const (
	TopicScheduleUpdated = "sleep.schedule.updated"
	TopicScheduleCleared = "sleep.schedule.cleared"
)

type ScheduleUpdatedEvent struct {
	Bedtime       string    `json:"bedtime"`
	Wakeup        string    `json:"wakeup"`
	BedtimeHandle string    `json:"bedtime_handle,omitempty"`
	WakeupHandle  string    `json:"wakeup_handle,omitempty"`
	NextBedtime   time.Time `json:"next_bedtime"`
	NextWakeup    time.Time `json:"next_wakeup"`
	Complete      bool      `json:"complete"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type ScheduleClearedEvent struct {
	OccurredAt time.Time `json:"occurred_at"`
}

// newEventMessage encodes payload as JSON and carries the event type and
// the caller's trace context in the message metadata.
func newEventMessage(ctx context.Context, eventType string, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", eventType)
	msg.Metadata.Set("content_type", "application/json")

	carrier := make(map[string]string)
	tracing.InjectToMap(ctx, carrier)

	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	return msg, nil
}

func publishEvent(ctx context.Context, publisher message.Publisher, topic string, payload any) error {
	msg, err := newEventMessage(ctx, topic, payload)
	if err != nil {
		return err
	}

	if err := publisher.Publish(topic, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish event",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "published event",
		slog.String("topic", topic),
		slog.String("message_id", msg.UUID),
	)

	return nil
}
