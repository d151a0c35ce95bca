package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

const (
	notificationKeyPrefix = "notification."
	channelKeyPrefix      = "channel."
)

type pushRecord struct {
	Content     domain.NotificationContent `json:"content"`
	TriggerAt   time.Time                  `json:"trigger_at"`
	DeviceToken string                     `json:"device_token"`
}

type PushGatewayConfig struct {
	URL         string
	Bucket      string
	DeviceToken string
}

// PushGateway publishes the pending notification set to a JetStream
// key-value bucket watched by a remote push delivery service. A key's
// presence means the notification is armed.
type PushGateway struct {
	conn        *nc.Conn
	kv          jetstream.KeyValue
	deviceToken string
}

func NewPushGateway(ctx context.Context, cfg PushGatewayConfig) (*PushGateway, error) {
	conn, err := nc.Connect(cfg.URL, nc.Timeout(10*time.Second), nc.Name("sleep-remind"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      cfg.Bucket,
		Description: "Pending sleep reminder push notifications",
		History:     1,
		Storage:     jetstream.FileStorage,
	})
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("failed to create key-value bucket: %w", err)
	}

	slog.Info("NATS JetStream key-value bucket configured",
		slog.String("bucket", cfg.Bucket),
	)

	return &PushGateway{
		conn:        conn,
		kv:          kv,
		deviceToken: cfg.DeviceToken,
	}, nil
}

func (g *PushGateway) Close() error {
	g.conn.Close()

	return nil
}

func (g *PushGateway) RequestPermission(ctx context.Context) (bool, error) {
	return g.HasPermission(ctx)
}

// HasPermission is granted once the device registered a push token.
func (g *PushGateway) HasPermission(_ context.Context) (bool, error) {
	return g.deviceToken != "", nil
}

func (g *PushGateway) EnsureChannel(ctx context.Context, channel domain.ChannelConfig) error {
	data, err := json.Marshal(channel)
	if err != nil {
		return fmt.Errorf("encode channel: %w", err)
	}

	if _, err := g.kv.Put(ctx, channelKeyPrefix+channel.ID, data); err != nil {
		return fmt.Errorf("store channel %s: %w", channel.ID, err)
	}

	return nil
}

func (g *PushGateway) Schedule(ctx context.Context, content domain.NotificationContent, at time.Time) (domain.NotificationHandle, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.NotificationHandle{}, err
	}

	data, err := json.Marshal(pushRecord{
		Content:     content,
		TriggerAt:   at.UTC(),
		DeviceToken: g.deviceToken,
	})
	if err != nil {
		return domain.NotificationHandle{}, fmt.Errorf("encode notification: %w", err)
	}

	if _, err := g.kv.Create(ctx, notificationKeyPrefix+id.String(), data); err != nil {
		return domain.NotificationHandle{}, fmt.Errorf("store notification: %w", err)
	}

	slog.Debug("push notification scheduled",
		"handle", id.String(),
		"kind", string(content.Kind),
		"trigger_at", at,
	)

	return domain.NewNotificationHandle(id.String())
}

// Cancel deletes the pending entry. Unknown handles are treated as already
// cancelled.
func (g *PushGateway) Cancel(ctx context.Context, handle domain.NotificationHandle) error {
	key := notificationKeyPrefix + handle.String()

	if _, err := g.kv.Get(ctx, key); err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrInvalidKey) {
			slog.Debug("push notification not scheduled (idempotency)",
				"handle", handle.String(),
			)

			return nil
		}

		return fmt.Errorf("lookup notification: %w", err)
	}

	if err := g.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	return nil
}

func (g *PushGateway) ListScheduled(ctx context.Context) ([]domain.ScheduledNotification, error) {
	lister, err := g.kv.ListKeysFiltered(ctx, notificationKeyPrefix+">")
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer lister.Stop() //nolint:errcheck

	out := make([]domain.ScheduledNotification, 0)

	for key := range lister.Keys() {
		entry, err := g.kv.Get(ctx, key)
		if err != nil {
			if errors.Is(err, jetstream.ErrKeyNotFound) {
				continue
			}

			return nil, fmt.Errorf("read notification %s: %w", key, err)
		}

		var record pushRecord
		if err := json.Unmarshal(entry.Value(), &record); err != nil {
			slog.Warn("skipping undecodable push notification",
				"key", key,
				"error", err,
			)

			continue
		}

		handle, err := domain.NewNotificationHandle(strings.TrimPrefix(key, notificationKeyPrefix))
		if err != nil {
			continue
		}

		out = append(out, domain.ScheduledNotification{
			Handle:    handle,
			Content:   record.Content,
			TriggerAt: record.TriggerAt,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].TriggerAt.Before(out[j].TriggerAt)
	})

	return out, nil
}
