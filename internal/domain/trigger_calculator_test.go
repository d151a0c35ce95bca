package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2026, time.October, 15, hour, minute, second, 0, time.Local)
}

func TestNewTriggerCalculatorError(t *testing.T) {
	_, err := domain.NewTriggerCalculator(0)
	assert.ErrorIs(t, err, domain.ErrInvalidGuardBand)

	_, err = domain.NewTriggerCalculator(-time.Minute)
	assert.ErrorIs(t, err, domain.ErrInvalidGuardBand)
}

func TestTriggerCalculatorNextTrigger(t *testing.T) {
	calc := domain.MustTriggerCalculator(domain.DefaultGuardBand)

	tests := []struct {
		name     string
		now      time.Time
		clock    domain.ClockTime
		expected time.Time
	}{
		{
			name:     "far in the future today stays today",
			now:      at(8, 0, 0),
			clock:    domain.MustClockTime(22, 30),
			expected: at(22, 30, 0),
		},
		{
			name:     "already passed today rolls to tomorrow",
			now:      at(8, 0, 0),
			clock:    domain.MustClockTime(6, 0),
			expected: at(6, 0, 0).AddDate(0, 0, 1),
		},
		{
			name:     "exactly now rolls to tomorrow",
			now:      at(22, 0, 0),
			clock:    domain.MustClockTime(22, 0),
			expected: at(22, 0, 0).AddDate(0, 0, 1),
		},
		{
			name:     "five minutes away is inside the guard band",
			now:      at(23, 50, 0),
			clock:    domain.MustClockTime(23, 55),
			expected: time.Date(2026, time.October, 16, 23, 55, 0, 0, time.Local),
		},
		{
			name:     "exactly the guard band rolls to tomorrow",
			now:      at(9, 45, 0),
			clock:    domain.MustClockTime(10, 0),
			expected: time.Date(2026, time.October, 16, 10, 0, 0, 0, time.Local),
		},
		{
			name:     "guard band plus one second stays today",
			now:      at(9, 44, 59),
			clock:    domain.MustClockTime(10, 0),
			expected: at(10, 0, 0),
		},
		{
			name:     "half a second past the guard band stays today",
			now:      time.Date(2026, time.October, 15, 9, 44, 59, 500_000_000, time.Local),
			clock:    domain.MustClockTime(10, 0),
			expected: at(10, 0, 0),
		},
		{
			name:     "month end rolls into next month",
			now:      time.Date(2026, time.October, 31, 23, 0, 0, 0, time.Local),
			clock:    domain.MustClockTime(6, 30),
			expected: time.Date(2026, time.November, 1, 6, 30, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.NextTrigger(tt.now, tt.clock)

			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
			assert.True(t, got.After(tt.now.Add(calc.GuardBand())))
			assert.Zero(t, got.Second())
			assert.Zero(t, got.Nanosecond())
		})
	}
}

func TestTriggerCalculatorNextTriggers_LateEvening(t *testing.T) {
	calc := domain.MustTriggerCalculator(domain.DefaultGuardBand)
	schedule, err := domain.ParseSleepSchedule("23:55", "06:00")
	require.NoError(t, err)

	triggers := calc.NextTriggers(at(23, 50, 0), schedule)

	assert.True(t, time.Date(2026, time.October, 16, 23, 55, 0, 0, time.Local).Equal(triggers[domain.KindBedtime]))
	assert.True(t, time.Date(2026, time.October, 16, 6, 0, 0, 0, time.Local).Equal(triggers[domain.KindWakeup]))
}

func TestTriggerCalculatorCustomGuardBand(t *testing.T) {
	calc := domain.MustTriggerCalculator(time.Minute)

	got := calc.NextTrigger(at(21, 57, 0), domain.MustClockTime(22, 0))

	assert.True(t, at(22, 0, 0).Equal(got))
}

func TestTriggerCalculatorKeepsLocation(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	calc := domain.MustTriggerCalculator(domain.DefaultGuardBand)
	now := time.Date(2026, time.October, 15, 20, 0, 0, 0, loc)

	got := calc.NextTrigger(now, domain.MustClockTime(22, 0))

	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 22, got.Hour())
}
