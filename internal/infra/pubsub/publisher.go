package pubsub

import (
	"context"
	"io"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

type Publisher interface {
	PublishScheduleUpdated(ctx context.Context, event ScheduleUpdatedEvent) error
	PublishScheduleCleared(ctx context.Context, event ScheduleClearedEvent) error
	io.Closer
}
