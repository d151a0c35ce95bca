package app

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSweepPolicy(t *testing.T) {
	tests := []struct {
		name     string
		attempts int
		backoff  time.Duration
		expected SweepPolicy
	}{
		{
			name:     "explicit values",
			attempts: 5,
			backoff:  time.Second,
			expected: SweepPolicy{Attempts: 5, Backoff: time.Second},
		},
		{
			name:     "zero attempts falls back",
			attempts: 0,
			backoff:  time.Second,
			expected: SweepPolicy{Attempts: 3, Backoff: time.Second},
		},
		{
			name:     "zero backoff is kept",
			attempts: 2,
			backoff:  0,
			expected: SweepPolicy{Attempts: 2, Backoff: 0},
		},
		{
			name:     "negative backoff falls back",
			attempts: 2,
			backoff:  -time.Second,
			expected: SweepPolicy{Attempts: 2, Backoff: 200 * time.Millisecond},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewSweepPolicy(tt.attempts, tt.backoff))
		})
	}
}

func TestSweepPolicyDelay(t *testing.T) {
	p := SweepPolicy{Attempts: 3, Backoff: 100 * time.Millisecond}

	assert.Equal(t, time.Duration(0), p.Delay(0))
	assert.Equal(t, 100*time.Millisecond, p.Delay(1))
	assert.Equal(t, 300*time.Millisecond, p.Delay(3))
}

func TestSweepPolicyWaitUsesClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := SweepPolicy{Attempts: 3, Backoff: time.Second}

	done := make(chan error, 1)

	go func() {
		done <- p.wait(context.Background(), clock, 2)
	}()

	require.NoError(t, clock.BlockUntilContext(context.Background(), 1))
	clock.Advance(2 * time.Second)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("wait did not return after advancing the clock")
	}
}

func TestSweepPolicyWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := SweepPolicy{Attempts: 3, Backoff: time.Hour}

	assert.ErrorIs(t, p.wait(ctx, clockwork.NewFakeClock(), 1), context.Canceled)
}
