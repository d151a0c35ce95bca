package app

import (
	"time"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

type ScheduleOutput struct {
	Bedtime       string
	Wakeup        string
	BedtimeHandle string
	WakeupHandle  string
	NextBedtime   time.Time
	NextWakeup    time.Time
	// Complete reports whether both reminders are armed.
	Complete bool
}

func toScheduleOutput(schedule domain.SleepSchedule, handles domain.Handles, triggers map[domain.Kind]time.Time) ScheduleOutput {
	return ScheduleOutput{
		Bedtime:       schedule.Bedtime().String(),
		Wakeup:        schedule.Wakeup().String(),
		BedtimeHandle: handles.Bedtime().String(),
		WakeupHandle:  handles.Wakeup().String(),
		NextBedtime:   triggers[domain.KindBedtime],
		NextWakeup:    triggers[domain.KindWakeup],
		Complete:      handles.IsComplete(),
	}
}
