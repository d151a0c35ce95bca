package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/kvstore"
)

const registryKey = "localScheduledNotifications"

type localEntry struct {
	Handle    string                     `json:"handle"`
	Content   domain.NotificationContent `json:"content"`
	TriggerAt time.Time                  `json:"trigger_at"`
}

// LocalGateway arms one-shot notifications on an in-process gocron
// scheduler and keeps the pending set in a kv store, so pending reminders
// outlive the process the way an OS notification centre would keep them.
type LocalGateway struct {
	scheduler gocron.Scheduler
	store     kvstore.Store
	notifier  Notifier
	clock     clockwork.Clock

	mu       sync.Mutex
	entries  map[string]localEntry
	channels map[string]domain.ChannelConfig
}

type LocalOption func(*localOptions)

type localOptions struct {
	clock clockwork.Clock
}

func WithLocalClock(clock clockwork.Clock) LocalOption {
	return func(o *localOptions) {
		o.clock = clock
	}
}

func NewLocalGateway(store kvstore.Store, notifier Notifier, opts ...LocalOption) (*LocalGateway, error) {
	o := localOptions{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}

	s, err := gocron.NewScheduler(gocron.WithClock(o.clock))
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &LocalGateway{
		scheduler: s,
		store:     store,
		notifier:  notifier,
		clock:     o.clock,
		entries:   make(map[string]localEntry),
		channels:  make(map[string]domain.ChannelConfig),
	}, nil
}

// Start restores persisted notifications and starts the scheduler.
// Entries whose trigger time passed while the process was down are dropped.
func (g *LocalGateway) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	entries, err := g.loadRegistry(ctx)
	if err != nil {
		return err
	}

	now := g.clock.Now()
	missed := 0

	for _, e := range entries {
		if !e.TriggerAt.After(now) {
			missed++

			slog.Warn("dropping notification missed while stopped",
				"handle", e.Handle,
				"kind", string(e.Content.Kind),
				"trigger_at", e.TriggerAt,
			)

			continue
		}

		id, err := uuid.Parse(e.Handle)
		if err != nil {
			slog.Warn("dropping notification with malformed handle",
				"handle", e.Handle,
				"error", err,
			)

			continue
		}

		if err := g.addJob(id, e.Content, e.TriggerAt); err != nil {
			slog.Error("failed to restore notification",
				"handle", e.Handle,
				"error", err,
			)

			continue
		}

		g.entries[e.Handle] = e
	}

	if missed > 0 || len(g.entries) != len(entries) {
		if err := g.saveRegistry(ctx); err != nil {
			return err
		}
	}

	slog.Info("local notification scheduler started",
		"restored", len(g.entries),
		"missed", missed,
	)

	g.scheduler.Start()

	return nil
}

func (g *LocalGateway) Close() error {
	slog.Info("stopping local notification scheduler")

	return g.scheduler.Shutdown()
}

func (g *LocalGateway) RequestPermission(ctx context.Context) (bool, error) {
	return g.HasPermission(ctx)
}

// HasPermission is granted whenever a notifier exists; desktop sessions do
// not gate notifications behind a prompt.
func (g *LocalGateway) HasPermission(_ context.Context) (bool, error) {
	return g.notifier != nil && g.notifier.IsSupported(), nil
}

func (g *LocalGateway) EnsureChannel(_ context.Context, channel domain.ChannelConfig) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.channels[channel.ID]; ok {
		return nil
	}

	g.channels[channel.ID] = channel

	slog.Debug("notification channel registered",
		"channel_id", channel.ID,
		"name", channel.Name,
	)

	return nil
}

func (g *LocalGateway) Schedule(ctx context.Context, content domain.NotificationContent, at time.Time) (domain.NotificationHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := uuid.NewV7()
	if err != nil {
		return domain.NotificationHandle{}, err
	}

	if err := g.addJob(id, content, at); err != nil {
		return domain.NotificationHandle{}, err
	}

	handle, err := domain.NewNotificationHandle(id.String())
	if err != nil {
		return domain.NotificationHandle{}, err
	}

	g.entries[handle.String()] = localEntry{
		Handle:    handle.String(),
		Content:   content,
		TriggerAt: at,
	}

	if err := g.saveRegistry(ctx); err != nil {
		delete(g.entries, handle.String())
		_ = g.scheduler.RemoveJob(id)

		return domain.NotificationHandle{}, err
	}

	slog.Debug("local notification scheduled",
		"handle", handle.String(),
		"kind", string(content.Kind),
		"trigger_at", at,
	)

	return handle, nil
}

// Cancel removes a pending notification. Unknown handles are treated as
// already cancelled.
func (g *LocalGateway) Cancel(ctx context.Context, handle domain.NotificationHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id, err := uuid.Parse(handle.String()); err == nil {
		if err := g.scheduler.RemoveJob(id); err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
			return fmt.Errorf("failed to remove job: %w", err)
		}
	}

	if _, ok := g.entries[handle.String()]; !ok {
		slog.Debug("notification not scheduled (idempotency)",
			"handle", handle.String(),
		)

		return nil
	}

	delete(g.entries, handle.String())

	return g.saveRegistry(ctx)
}

func (g *LocalGateway) ListScheduled(_ context.Context) ([]domain.ScheduledNotification, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.ScheduledNotification, 0, len(g.entries))

	for _, e := range g.entries {
		handle, err := domain.NewNotificationHandle(e.Handle)
		if err != nil {
			continue
		}

		out = append(out, domain.ScheduledNotification{
			Handle:    handle,
			Content:   e.Content,
			TriggerAt: e.TriggerAt,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].TriggerAt.Before(out[j].TriggerAt)
	})

	return out, nil
}

func (g *LocalGateway) addJob(id uuid.UUID, content domain.NotificationContent, at time.Time) error {
	_, err := g.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(at)),
		gocron.NewTask(g.fire, id.String()),
		gocron.WithIdentifier(id),
		gocron.WithName(fmt.Sprintf("sleep-%s", content.Kind)),
		gocron.WithTags(string(content.Kind)),
	)
	if err != nil {
		return fmt.Errorf("failed to create one-time job: %w", err)
	}

	return nil
}

func (g *LocalGateway) fire(handle string) {
	ctx := context.Background()

	g.mu.Lock()

	e, ok := g.entries[handle]
	if !ok {
		g.mu.Unlock()

		return
	}

	delete(g.entries, handle)

	if err := g.saveRegistry(ctx); err != nil {
		slog.Warn("failed to persist fired notification",
			"handle", handle,
			"error", err,
		)
	}

	channel, ok := g.channels[e.Content.ChannelID]
	if !ok {
		channel = domain.ChannelFor(e.Content.Kind)
	}

	g.mu.Unlock()

	slog.Info("delivering sleep reminder",
		"handle", handle,
		"kind", string(e.Content.Kind),
		"trigger_at", e.TriggerAt,
	)

	if err := g.notifier.Notify(ctx, e.Content, channel); err != nil {
		slog.Error("failed to deliver notification",
			"handle", handle,
			"error", err,
		)
	}
}

func (g *LocalGateway) loadRegistry(ctx context.Context) ([]localEntry, error) {
	data, err := g.store.Get(ctx, registryKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("read notification registry: %w", err)
	}

	var entries []localEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("notification registry is not valid JSON, starting empty",
			"error", err,
		)

		return nil, nil
	}

	return entries, nil
}

func (g *LocalGateway) saveRegistry(ctx context.Context) error {
	entries := make([]localEntry, 0, len(g.entries))
	for _, e := range g.entries {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TriggerAt.Before(entries[j].TriggerAt)
	})

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode notification registry: %w", err)
	}

	if err := g.store.Set(ctx, registryKey, data); err != nil {
		return fmt.Errorf("write notification registry: %w", err)
	}

	return nil
}
