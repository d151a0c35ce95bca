package domain

import "context"

//go:generate mockgen -source=schedule_repository.go -destination=schedule_repository_mock.go -package=domain

// ScheduleRepository persists the current schedule and its handles. Missing
// state is reported as a nil schedule or empty handles, never as an error.
type ScheduleRepository interface {
	Save(ctx context.Context, schedule SleepSchedule) error
	Load(ctx context.Context) (*SleepSchedule, error)
	SaveHandles(ctx context.Context, handles Handles) error
	LoadHandles(ctx context.Context) (Handles, error)
	Clear(ctx context.Context) error
}
