package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

// FakeGateway is an in-memory notification platform with call counters
// and failure injection.
type FakeGateway struct {
	mu sync.Mutex

	Granted       bool
	GrantOnAsk    bool
	ScheduleErr   map[domain.Kind]error
	CancelErr     error
	ListErr       error
	ChannelErr    error
	PermissionErr error

	scheduled map[string]domain.ScheduledNotification
	channels  map[string]domain.ChannelConfig
	seq       int

	ScheduleCalls   int
	CancelCalls     int
	ListCalls       int
	PermissionAsks  int
	ChannelRequests int
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		Granted:     true,
		ScheduleErr: make(map[domain.Kind]error),
		scheduled:   make(map[string]domain.ScheduledNotification),
		channels:    make(map[string]domain.ChannelConfig),
	}
}

func (g *FakeGateway) RequestPermission(_ context.Context) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.PermissionAsks++

	if g.PermissionErr != nil {
		return false, g.PermissionErr
	}

	if g.GrantOnAsk {
		g.Granted = true
	}

	return g.Granted, nil
}

func (g *FakeGateway) HasPermission(_ context.Context) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.PermissionErr != nil {
		return false, g.PermissionErr
	}

	return g.Granted, nil
}

func (g *FakeGateway) EnsureChannel(_ context.Context, channel domain.ChannelConfig) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ChannelRequests++

	if g.ChannelErr != nil {
		return g.ChannelErr
	}

	g.channels[channel.ID] = channel

	return nil
}

func (g *FakeGateway) Schedule(_ context.Context, content domain.NotificationContent, at time.Time) (domain.NotificationHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ScheduleCalls++

	if err := g.ScheduleErr[content.Kind]; err != nil {
		return domain.NotificationHandle{}, err
	}

	g.seq++

	handle, err := domain.NewNotificationHandle(fmt.Sprintf("fake-%d", g.seq))
	if err != nil {
		return domain.NotificationHandle{}, err
	}

	g.scheduled[handle.String()] = domain.ScheduledNotification{
		Handle:    handle,
		Content:   content,
		TriggerAt: at,
	}

	return handle, nil
}

func (g *FakeGateway) Cancel(_ context.Context, handle domain.NotificationHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.CancelCalls++

	if g.CancelErr != nil {
		return g.CancelErr
	}

	delete(g.scheduled, handle.String())

	return nil
}

func (g *FakeGateway) ListScheduled(_ context.Context) ([]domain.ScheduledNotification, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ListCalls++

	if g.ListErr != nil {
		return nil, g.ListErr
	}

	return g.snapshot(), nil
}

// Inject places a notification on the platform without going through
// Schedule, as an orphan from an earlier run would be.
func (g *FakeGateway) Inject(handle string, content domain.NotificationContent, at time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	h, _ := domain.NewNotificationHandle(handle)
	g.scheduled[handle] = domain.ScheduledNotification{Handle: h, Content: content, TriggerAt: at}
}

// Scheduled returns the pending notifications ordered by trigger time.
func (g *FakeGateway) Scheduled() []domain.ScheduledNotification {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

func (g *FakeGateway) Channels() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]string, 0, len(g.channels))
	for id := range g.channels {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

func (g *FakeGateway) snapshot() []domain.ScheduledNotification {
	out := make([]domain.ScheduledNotification, 0, len(g.scheduled))
	for _, n := range g.scheduled {
		out = append(out, n)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TriggerAt.Equal(out[j].TriggerAt) {
			return out[i].Handle.String() < out[j].Handle.String()
		}

		return out[i].TriggerAt.Before(out[j].TriggerAt)
	})

	return out
}
