package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a recurring hour:minute pair without a date, evaluated
// against the local calendar of whatever instant it is applied to.
type ClockTime struct {
	hour   int
	minute int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidClockTime, hour, minute)
	}

	return ClockTime{hour: hour, minute: minute}, nil
}

func MustClockTime(hour, minute int) ClockTime {
	c, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}

	return c
}

// ParseClockTime accepts "HH:mm". Single digit hours ("7:05") are tolerated.
func ParseClockTime(s string) (ClockTime, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(m) != 2 || len(h) == 0 || len(h) > 2 || !isDigits(h) || !isDigits(m) {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hour, err := strconv.Atoi(h)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	minute, err := strconv.Atoi(m)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	return NewClockTime(hour, minute)
}

func (c ClockTime) Hour() int {
	return c.hour
}

func (c ClockTime) Minute() int {
	return c.minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// On returns the instant at hh:mm:00.000 on the calendar day of day,
// in day's location.
func (c ClockTime) On(day time.Time) time.Time {
	y, mo, d := day.Date()

	return time.Date(y, mo, d, c.hour, c.minute, 0, 0, day.Location())
}

func (c ClockTime) Equals(other ClockTime) bool {
	return c.hour == other.hour && c.minute == other.minute
}

func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClockTime) UnmarshalText(text []byte) error {
	parsed, err := ParseClockTime(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
