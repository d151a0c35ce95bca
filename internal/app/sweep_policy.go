package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// SweepPolicy bounds the enumerate-and-cancel loop run before arming.
type SweepPolicy struct {
	Attempts int
	Backoff  time.Duration
}

func DefaultSweepPolicy() SweepPolicy {
	return SweepPolicy{Attempts: 3, Backoff: 200 * time.Millisecond}
}

// NewSweepPolicy falls back to the defaults for non-positive attempts or
// negative backoff.
func NewSweepPolicy(attempts int, backoff time.Duration) SweepPolicy {
	p := DefaultSweepPolicy()
	if attempts > 0 {
		p.Attempts = attempts
	}

	if backoff >= 0 {
		p.Backoff = backoff
	}

	return p
}

// Delay grows linearly with the attempt number (1-based).
func (p SweepPolicy) Delay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	return time.Duration(attempt) * p.Backoff
}

func (p SweepPolicy) wait(ctx context.Context, clock clockwork.Clock, attempt int) error {
	d := p.Delay(attempt)
	if d <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clock.After(d):
		return nil
	}
}
