package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/notification"
	"github.com/KasumiMercury/primind-sleep-remind/internal/testutil"
)

func TestPushGatewayIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testNATS := testutil.SetupTestNATS(t)
	defer testNATS.Teardown(t)

	ctx := context.Background()

	gateway, err := notification.NewPushGateway(ctx, notification.PushGatewayConfig{
		URL:         testNATS.URL,
		Bucket:      "SLEEP_REMINDERS",
		DeviceToken: "device-token",
	})
	require.NoError(t, err)

	defer gateway.Close()

	t.Run("permission follows device token", func(t *testing.T) {
		granted, err := gateway.HasPermission(ctx)
		require.NoError(t, err)
		assert.True(t, granted)
	})

	t.Run("channels are stored", func(t *testing.T) {
		require.NoError(t, gateway.EnsureChannel(ctx, domain.ChannelFor(domain.KindBedtime)))
		require.NoError(t, gateway.EnsureChannel(ctx, domain.ChannelFor(domain.KindBedtime)))
	})

	t.Run("schedule list cancel", func(t *testing.T) {
		triggerAt := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
		content := domain.ContentFor(domain.KindBedtime, domain.MustClockTime(23, 0))

		handle, err := gateway.Schedule(ctx, content, triggerAt)
		require.NoError(t, err)

		scheduled, err := gateway.ListScheduled(ctx)
		require.NoError(t, err)
		require.Len(t, scheduled, 1)
		assert.True(t, handle.Equals(scheduled[0].Handle))
		assert.Equal(t, content, scheduled[0].Content)
		assert.True(t, triggerAt.Equal(scheduled[0].TriggerAt))

		require.NoError(t, gateway.Cancel(ctx, handle))
		require.NoError(t, gateway.Cancel(ctx, handle))

		scheduled, err = gateway.ListScheduled(ctx)
		require.NoError(t, err)
		assert.Empty(t, scheduled)
	})
}

func TestPushGatewayWithoutDeviceToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testNATS := testutil.SetupTestNATS(t)
	defer testNATS.Teardown(t)

	gateway, err := notification.NewPushGateway(context.Background(), notification.PushGatewayConfig{
		URL:    testNATS.URL,
		Bucket: "SLEEP_REMINDERS",
	})
	require.NoError(t, err)

	defer gateway.Close()

	granted, err := gateway.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.False(t, granted)
}
