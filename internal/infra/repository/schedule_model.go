package repository

import (
	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

const (
	scheduleKey = "sleepSchedule"
	handlesKey  = "sleepNotificationIds"
)

type ScheduleDocument struct {
	Bedtime string `json:"bedtime"`
	Wakeup  string `json:"wakeup"`
}

func ScheduleFromEntity(s domain.SleepSchedule) *ScheduleDocument {
	return &ScheduleDocument{
		Bedtime: s.Bedtime().String(),
		Wakeup:  s.Wakeup().String(),
	}
}

func (d *ScheduleDocument) ToEntity() (domain.SleepSchedule, error) {
	return domain.ParseSleepSchedule(d.Bedtime, d.Wakeup)
}

// HandlesDocument stores an unarmed slot as null.
type HandlesDocument struct {
	Bedtime *string `json:"bedtime"`
	Wakeup  *string `json:"wakeup"`
}

func HandlesFromEntity(h domain.Handles) *HandlesDocument {
	return &HandlesDocument{
		Bedtime: handlePtr(h.Bedtime()),
		Wakeup:  handlePtr(h.Wakeup()),
	}
}

func (d *HandlesDocument) ToEntity() domain.Handles {
	return domain.NewHandles(handleFromPtr(d.Bedtime), handleFromPtr(d.Wakeup))
}

func handlePtr(h domain.NotificationHandle) *string {
	if h.IsZero() {
		return nil
	}

	s := h.String()

	return &s
}

func handleFromPtr(s *string) domain.NotificationHandle {
	if s == nil {
		return domain.NotificationHandle{}
	}

	// an empty string decodes to the zero handle
	h, _ := domain.NewNotificationHandle(*s)

	return h
}
