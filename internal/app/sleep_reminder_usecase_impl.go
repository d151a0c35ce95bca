package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-sleep-remind/internal/observability/metrics"
)

type sleepReminderUseCaseImpl struct {
	gateway    domain.NotificationGateway
	repo       domain.ScheduleRepository
	calculator *domain.TriggerCalculator
	clock      clockwork.Clock
	sweep      SweepPolicy
	publisher  pubsub.Publisher
	recorder   metrics.Recorder

	mu            sync.Mutex
	channelsReady bool
}

type Option func(*sleepReminderUseCaseImpl)

func WithClock(clock clockwork.Clock) Option {
	return func(uc *sleepReminderUseCaseImpl) {
		uc.clock = clock
	}
}

func WithTriggerCalculator(calculator *domain.TriggerCalculator) Option {
	return func(uc *sleepReminderUseCaseImpl) {
		uc.calculator = calculator
	}
}

func WithSweepPolicy(policy SweepPolicy) Option {
	return func(uc *sleepReminderUseCaseImpl) {
		uc.sweep = policy
	}
}

// WithPublisher enables schedule events. A nil publisher disables them.
func WithPublisher(publisher pubsub.Publisher) Option {
	return func(uc *sleepReminderUseCaseImpl) {
		uc.publisher = publisher
	}
}

func WithRecorder(recorder metrics.Recorder) Option {
	return func(uc *sleepReminderUseCaseImpl) {
		if recorder != nil {
			uc.recorder = recorder
		}
	}
}

func NewSleepReminderUseCase(gateway domain.NotificationGateway, repo domain.ScheduleRepository, opts ...Option) SleepReminderUseCase {
	uc := &sleepReminderUseCaseImpl{
		gateway:    gateway,
		repo:       repo,
		calculator: domain.MustTriggerCalculator(domain.DefaultGuardBand),
		clock:      clockwork.NewRealClock(),
		sweep:      DefaultSweepPolicy(),
		recorder:   metrics.NoopRecorder{},
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

func (uc *sleepReminderUseCaseImpl) Initialize(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	slog.Debug("initializing sleep reminders")

	granted, err := uc.gateway.HasPermission(ctx)
	if err != nil {
		slog.Error("failed to check notification permission",
			"error", err,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !granted {
		granted, err = uc.gateway.RequestPermission(ctx)
		if err != nil {
			slog.Error("failed to request notification permission",
				"error", err,
			)

			return fmt.Errorf("%w: %v", ErrInternalError, err)
		}
	}

	if !granted {
		slog.Warn("notification permission not granted")

		return ErrPermissionDenied
	}

	if err := uc.ensureChannels(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	schedule, err := uc.repo.Load(ctx)
	if err != nil {
		slog.Error("failed to load sleep schedule",
			"error", err,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if schedule == nil {
		slog.Debug("no sleep schedule stored, nothing to reconcile")

		return nil
	}

	handles, err := uc.repo.LoadHandles(ctx)
	if err != nil {
		slog.Error("failed to load notification handles",
			"error", err,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if handles.IsComplete() {
		slog.Info("sleep reminders already armed (idempotency)",
			"bedtime_handle", handles.Bedtime().String(),
			"wakeup_handle", handles.Wakeup().String(),
		)

		return nil
	}

	slog.Info("repairing incomplete sleep reminders",
		"bedtime", schedule.Bedtime().String(),
		"wakeup", schedule.Wakeup().String(),
		"bedtime_armed", !handles.Bedtime().IsZero(),
		"wakeup_armed", !handles.Wakeup().IsZero(),
	)

	// a failed repair is retried on the next initialize
	if _, err := uc.update(ctx, *schedule); err != nil {
		slog.Warn("failed to repair sleep reminders",
			"error", err,
		)
	}

	return nil
}

func (uc *sleepReminderUseCaseImpl) UpdateSchedule(ctx context.Context, input UpdateScheduleInput) (ScheduleOutput, error) {
	slog.Debug("updating sleep schedule",
		"bedtime", input.Bedtime,
		"wakeup", input.Wakeup,
	)

	schedule, err := parseSchedule(input)
	if err != nil {
		return ScheduleOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.update(ctx, schedule)
}

func parseSchedule(input UpdateScheduleInput) (domain.SleepSchedule, error) {
	bedtime, err := domain.ParseClockTime(input.Bedtime)
	if err != nil {
		return domain.SleepSchedule{}, NewValidationError("bedtime", err.Error())
	}

	wakeup, err := domain.ParseClockTime(input.Wakeup)
	if err != nil {
		return domain.SleepSchedule{}, NewValidationError("wakeup", err.Error())
	}

	schedule, err := domain.NewSleepSchedule(bedtime, wakeup)
	if err != nil {
		return domain.SleepSchedule{}, NewValidationError("wakeup", err.Error())
	}

	return schedule, nil
}

// update runs cancel, compute, arm and persist. Callers hold uc.mu.
func (uc *sleepReminderUseCaseImpl) update(ctx context.Context, schedule domain.SleepSchedule) (ScheduleOutput, error) {
	start := uc.clock.Now()

	out, err := uc.replace(ctx, schedule)
	uc.recorder.ObserveUpdateDuration(metrics.OutcomeOf(err), uc.clock.Since(start))

	if err == nil || errors.Is(err, ErrSchedulingFailed) {
		uc.publishUpdated(ctx, out)
	}

	return out, err
}

func (uc *sleepReminderUseCaseImpl) replace(ctx context.Context, schedule domain.SleepSchedule) (ScheduleOutput, error) {
	uc.cancelPersisted(ctx)
	uc.sweepStray(ctx)

	now := uc.clock.Now()
	triggers := uc.calculator.NextTriggers(now, schedule)

	var (
		handles domain.Handles
		armErrs []error
	)

	if err := uc.ensureChannels(ctx); err != nil {
		armErrs = append(armErrs, err)
	} else {
		for _, kind := range domain.Kinds() {
			handle, err := uc.arm(ctx, kind, schedule.TimeFor(kind), triggers[kind])
			if err != nil {
				armErrs = append(armErrs, err)

				continue
			}

			handles = handles.With(kind, handle)
		}
	}

	if err := uc.repo.Save(ctx, schedule); err != nil {
		slog.Error("failed to persist sleep schedule",
			"error", err,
		)

		return ScheduleOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if err := uc.repo.SaveHandles(ctx, handles); err != nil {
		slog.Error("failed to persist notification handles",
			"error", err,
		)

		return ScheduleOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	out := toScheduleOutput(schedule, handles, triggers)

	if len(armErrs) > 0 {
		return out, fmt.Errorf("%w: %v", ErrSchedulingFailed, errors.Join(armErrs...))
	}

	slog.Info("sleep reminders armed",
		"bedtime", out.Bedtime,
		"wakeup", out.Wakeup,
		"next_bedtime", out.NextBedtime,
		"next_wakeup", out.NextWakeup,
	)

	return out, nil
}

func (uc *sleepReminderUseCaseImpl) arm(ctx context.Context, kind domain.Kind, at domain.ClockTime, trigger time.Time) (domain.NotificationHandle, error) {
	handle, err := uc.gateway.Schedule(ctx, domain.ContentFor(kind, at), trigger)
	uc.recorder.IncArm(string(kind), metrics.OutcomeOf(err))

	if err != nil {
		slog.Error("failed to arm sleep reminder",
			"kind", string(kind),
			"trigger_at", trigger,
			"error", err,
		)

		return domain.NotificationHandle{}, fmt.Errorf("%s: %w", kind, err)
	}

	slog.Debug("sleep reminder armed",
		"kind", string(kind),
		"handle", handle.String(),
		"trigger_at", trigger,
	)

	return handle, nil
}

func (uc *sleepReminderUseCaseImpl) ensureChannels(ctx context.Context) error {
	if uc.channelsReady {
		return nil
	}

	for _, kind := range domain.Kinds() {
		channel := domain.ChannelFor(kind)
		if err := uc.gateway.EnsureChannel(ctx, channel); err != nil {
			slog.Error("failed to set up notification channel",
				"channel_id", channel.ID,
				"error", err,
			)

			return fmt.Errorf("channel %s: %w", channel.ID, err)
		}
	}

	uc.channelsReady = true

	return nil
}

// cancelPersisted cancels the stored handles. Failures are tolerated since
// the platform may have already dropped or delivered them.
func (uc *sleepReminderUseCaseImpl) cancelPersisted(ctx context.Context) {
	handles, err := uc.repo.LoadHandles(ctx)
	if err != nil {
		slog.Warn("failed to load notification handles for cancellation",
			"error", err,
		)

		return
	}

	for _, handle := range handles.Present() {
		uc.cancel(ctx, handle)
	}
}

func (uc *sleepReminderUseCaseImpl) cancel(ctx context.Context, handle domain.NotificationHandle) bool {
	err := uc.gateway.Cancel(ctx, handle)
	uc.recorder.IncCancel(metrics.OutcomeOf(err))

	if err != nil {
		slog.Warn("failed to cancel notification",
			"handle", handle.String(),
			"error", err,
		)

		return false
	}

	slog.Debug("notification cancelled",
		"handle", handle.String(),
	)

	return true
}

// sweepStray cancels every scheduled sleep reminder the platform still
// lists, retrying within the sweep policy until none remain.
func (uc *sleepReminderUseCaseImpl) sweepStray(ctx context.Context) {
	for attempt := 1; attempt <= uc.sweep.Attempts; attempt++ {
		scheduled, err := uc.gateway.ListScheduled(ctx)
		if err != nil {
			slog.Warn("failed to list scheduled notifications",
				"attempt", attempt,
				"error", err,
			)
		} else {
			stray := 0
			removed := 0

			for _, n := range scheduled {
				if !domain.IsSleepReminder(n.Content) {
					continue
				}

				stray++

				if uc.cancel(ctx, n.Handle) {
					removed++
				}
			}

			uc.recorder.AddSweepRemoved(removed)

			if stray == 0 {
				return
			}

			slog.Debug("swept stray sleep reminders",
				"attempt", attempt,
				"found", stray,
				"removed", removed,
			)
		}

		if attempt < uc.sweep.Attempts {
			if err := uc.sweep.wait(ctx, uc.clock, attempt); err != nil {
				return
			}
		}
	}

	if uc.sweepClean(ctx) {
		return
	}

	uc.recorder.IncSweepExhausted()
	slog.Warn("sleep reminders still scheduled after sweep",
		"attempts", uc.sweep.Attempts,
	)
}

func (uc *sleepReminderUseCaseImpl) sweepClean(ctx context.Context) bool {
	scheduled, err := uc.gateway.ListScheduled(ctx)
	if err != nil {
		return false
	}

	for _, n := range scheduled {
		if domain.IsSleepReminder(n.Content) {
			return false
		}
	}

	return true
}

func (uc *sleepReminderUseCaseImpl) CancelAll(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	slog.Debug("cancelling all sleep reminders")

	uc.cancelPersisted(ctx)
	uc.sweepStray(ctx)

	if err := uc.repo.Clear(ctx); err != nil {
		slog.Error("failed to clear sleep schedule",
			"error", err,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("sleep reminders cleared")

	if uc.publisher != nil {
		event := pubsub.ScheduleClearedEvent{OccurredAt: uc.clock.Now()}
		if err := uc.publisher.PublishScheduleCleared(ctx, event); err != nil {
			slog.Warn("failed to publish schedule cleared event",
				"error", err,
			)
		}
	}

	return nil
}

func (uc *sleepReminderUseCaseImpl) GetCurrentSchedule(ctx context.Context) (*ScheduleOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	schedule, err := uc.repo.Load(ctx)
	if err != nil {
		slog.Error("failed to load sleep schedule",
			"error", err,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if schedule == nil {
		return nil, nil //nolint:nilnil
	}

	handles, err := uc.repo.LoadHandles(ctx)
	if err != nil {
		slog.Error("failed to load notification handles",
			"error", err,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	out := toScheduleOutput(*schedule, handles, uc.calculator.NextTriggers(uc.clock.Now(), *schedule))

	return &out, nil
}

func (uc *sleepReminderUseCaseImpl) publishUpdated(ctx context.Context, out ScheduleOutput) {
	if uc.publisher == nil {
		return
	}

	event := pubsub.ScheduleUpdatedEvent{
		Bedtime:       out.Bedtime,
		Wakeup:        out.Wakeup,
		BedtimeHandle: out.BedtimeHandle,
		WakeupHandle:  out.WakeupHandle,
		NextBedtime:   out.NextBedtime,
		NextWakeup:    out.NextWakeup,
		Complete:      out.Complete,
		OccurredAt:    uc.clock.Now(),
	}

	if err := uc.publisher.PublishScheduleUpdated(ctx, event); err != nil {
		slog.Warn("failed to publish schedule updated event",
			"error", err,
		)
	}
}
