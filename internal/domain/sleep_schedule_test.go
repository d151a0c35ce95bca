package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

func TestNewSleepScheduleSuccess(t *testing.T) {
	s, err := domain.ParseSleepSchedule("22:30", "06:45")

	require.NoError(t, err)
	assert.Equal(t, "22:30", s.Bedtime().String())
	assert.Equal(t, "06:45", s.Wakeup().String())
	assert.Equal(t, "22:30", s.TimeFor(domain.KindBedtime).String())
	assert.Equal(t, "06:45", s.TimeFor(domain.KindWakeup).String())
}

func TestNewSleepScheduleError(t *testing.T) {
	tests := []struct {
		name     string
		bedtime  string
		wakeup   string
		expected error
	}{
		{
			name:     "identical times are rejected",
			bedtime:  "07:00",
			wakeup:   "07:00",
			expected: domain.ErrIdenticalScheduleTimes,
		},
		{
			name:     "identical after normalization",
			bedtime:  "7:00",
			wakeup:   "07:00",
			expected: domain.ErrIdenticalScheduleTimes,
		},
		{
			name:     "invalid bedtime",
			bedtime:  "25:00",
			wakeup:   "07:00",
			expected: domain.ErrInvalidClockTime,
		},
		{
			name:     "invalid wakeup",
			bedtime:  "23:00",
			wakeup:   "",
			expected: domain.ErrInvalidClockTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseSleepSchedule(tt.bedtime, tt.wakeup)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestNewKind(t *testing.T) {
	k, err := domain.NewKind("wakeup")
	require.NoError(t, err)
	assert.Equal(t, domain.KindWakeup, k)

	_, err = domain.NewKind("nap")
	assert.ErrorIs(t, err, domain.ErrInvalidKind)

	assert.Equal(t, []domain.Kind{domain.KindBedtime, domain.KindWakeup}, domain.Kinds())
}
