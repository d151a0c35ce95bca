package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

func TestParseClockTimeSuccess(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedHour   int
		expectedMinute int
		expectedString string
	}{
		{
			name:           "midnight",
			input:          "00:00",
			expectedHour:   0,
			expectedMinute: 0,
			expectedString: "00:00",
		},
		{
			name:           "last minute of the day",
			input:          "23:59",
			expectedHour:   23,
			expectedMinute: 59,
			expectedString: "23:59",
		},
		{
			name:           "single digit hour is normalized",
			input:          "7:05",
			expectedHour:   7,
			expectedMinute: 5,
			expectedString: "07:05",
		},
		{
			name:           "surrounding whitespace is ignored",
			input:          " 22:30 ",
			expectedHour:   22,
			expectedMinute: 30,
			expectedString: "22:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := domain.ParseClockTime(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedHour, c.Hour())
			assert.Equal(t, tt.expectedMinute, c.Minute())
			assert.Equal(t, tt.expectedString, c.String())
		})
	}
}

func TestParseClockTimeError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "missing separator", input: "2230"},
		{name: "hour out of range", input: "24:00"},
		{name: "minute out of range", input: "12:60"},
		{name: "single digit minute", input: "12:5"},
		{name: "signed hour", input: "+1:00"},
		{name: "seconds included", input: "12:00:00"},
		{name: "letters", input: "ab:cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseClockTime(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidClockTime)
		})
	}
}

func TestClockTimeOn(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	day := time.Date(2026, time.March, 14, 18, 42, 31, 999, loc)

	got := domain.MustClockTime(6, 30).On(day)

	assert.Equal(t, time.Date(2026, time.March, 14, 6, 30, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestClockTimeJSON(t *testing.T) {
	type payload struct {
		At domain.ClockTime `json:"at"`
	}

	data, err := json.Marshal(payload{At: domain.MustClockTime(21, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"21:05"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"at":"06:45"}`), &decoded))
	assert.True(t, decoded.At.Equals(domain.MustClockTime(6, 45)))

	err = json.Unmarshal([]byte(`{"at":"6h45"}`), &decoded)
	assert.ErrorIs(t, err, domain.ErrInvalidClockTime)
}
