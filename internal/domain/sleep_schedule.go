package domain

type SleepSchedule struct {
	bedtime ClockTime
	wakeup  ClockTime
}

func NewSleepSchedule(bedtime, wakeup ClockTime) (SleepSchedule, error) {
	if bedtime.Equals(wakeup) {
		return SleepSchedule{}, ErrIdenticalScheduleTimes
	}

	return SleepSchedule{
		bedtime: bedtime,
		wakeup:  wakeup,
	}, nil
}

func MustSleepSchedule(bedtime, wakeup ClockTime) SleepSchedule {
	s, err := NewSleepSchedule(bedtime, wakeup)
	if err != nil {
		panic(err)
	}

	return s
}

func ParseSleepSchedule(bedtime, wakeup string) (SleepSchedule, error) {
	b, err := ParseClockTime(bedtime)
	if err != nil {
		return SleepSchedule{}, err
	}

	w, err := ParseClockTime(wakeup)
	if err != nil {
		return SleepSchedule{}, err
	}

	return NewSleepSchedule(b, w)
}

func (s SleepSchedule) Bedtime() ClockTime {
	return s.bedtime
}

func (s SleepSchedule) Wakeup() ClockTime {
	return s.wakeup
}

func (s SleepSchedule) TimeFor(kind Kind) ClockTime {
	if kind == KindWakeup {
		return s.wakeup
	}

	return s.bedtime
}

func (s SleepSchedule) Equals(other SleepSchedule) bool {
	return s.bedtime.Equals(other.bedtime) && s.wakeup.Equals(other.wakeup)
}
