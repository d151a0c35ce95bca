package domain

import "time"

const DefaultGuardBand = 15 * time.Minute

// TriggerCalculator turns a wall-clock time into the next absolute instant
// at which a one-shot reminder may be armed.
type TriggerCalculator struct {
	guardBand time.Duration
}

func NewTriggerCalculator(guardBand time.Duration) (*TriggerCalculator, error) {
	if guardBand <= 0 {
		return nil, ErrInvalidGuardBand
	}

	return &TriggerCalculator{guardBand: guardBand}, nil
}

func MustTriggerCalculator(guardBand time.Duration) *TriggerCalculator {
	c, err := NewTriggerCalculator(guardBand)
	if err != nil {
		panic(err)
	}

	return c
}

func (c *TriggerCalculator) GuardBand() time.Duration {
	return c.guardBand
}

// NextTrigger returns today's occurrence of at when it lies strictly more
// than the guard band after now, otherwise the same hh:mm on the next
// calendar day.
func (c *TriggerCalculator) NextTrigger(now time.Time, at ClockTime) time.Time {
	candidate := at.On(now)
	if candidate.Sub(now) > c.guardBand {
		return candidate
	}

	y, m, d := now.Date()

	return time.Date(y, m, d+1, at.Hour(), at.Minute(), 0, 0, now.Location())
}

// NextTriggers computes the trigger instant of every kind in schedule.
func (c *TriggerCalculator) NextTriggers(now time.Time, schedule SleepSchedule) map[Kind]time.Time {
	result := make(map[Kind]time.Time, 2)
	for _, kind := range Kinds() {
		result[kind] = c.NextTrigger(now, schedule.TimeFor(kind))
	}

	return result
}
