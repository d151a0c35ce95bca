package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=notification_gateway.go -destination=notification_gateway_mock.go -package=domain

type ScheduledNotification struct {
	Handle    NotificationHandle
	Content   NotificationContent
	TriggerAt time.Time
}

// NotificationGateway is the notification platform capability. Cancel of
// a handle the platform no longer knows must succeed.
type NotificationGateway interface {
	RequestPermission(ctx context.Context) (bool, error)
	HasPermission(ctx context.Context) (bool, error)
	EnsureChannel(ctx context.Context, channel ChannelConfig) error
	Schedule(ctx context.Context, content NotificationContent, at time.Time) (NotificationHandle, error)
	Cancel(ctx context.Context, handle NotificationHandle) error
	ListScheduled(ctx context.Context) ([]ScheduledNotification, error)
}
