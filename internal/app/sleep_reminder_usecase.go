package app

import (
	"context"
)

//go:generate mockgen -source=sleep_reminder_usecase.go -destination=sleep_reminder_usecase_mock.go -package=app

// SleepReminderUseCase keeps exactly one pending bedtime and one pending
// wakeup notification armed for the configured sleep schedule.
type SleepReminderUseCase interface {
	Initialize(ctx context.Context) error
	UpdateSchedule(ctx context.Context, input UpdateScheduleInput) (ScheduleOutput, error)
	CancelAll(ctx context.Context) error
	GetCurrentSchedule(ctx context.Context) (*ScheduleOutput, error)
}
