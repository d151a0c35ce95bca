package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/kvstore"
)

type scheduleRepositoryImpl struct {
	store kvstore.Store
}

func NewScheduleRepository(store kvstore.Store) domain.ScheduleRepository {
	return &scheduleRepositoryImpl{
		store: store,
	}
}

func (r *scheduleRepositoryImpl) Save(ctx context.Context, schedule domain.SleepSchedule) error {
	slog.Debug("saving sleep schedule",
		"bedtime", schedule.Bedtime().String(),
		"wakeup", schedule.Wakeup().String(),
	)

	if err := r.put(ctx, scheduleKey, ScheduleFromEntity(schedule)); err != nil {
		slog.Error("failed to save sleep schedule",
			"error", err,
		)

		return err
	}

	return nil
}

func (r *scheduleRepositoryImpl) Load(ctx context.Context) (*domain.SleepSchedule, error) {
	var doc ScheduleDocument

	found, err := r.get(ctx, scheduleKey, &doc)
	if err != nil {
		return nil, err
	}

	if !found {
		slog.Debug("no sleep schedule stored")

		return nil, nil //nolint:nilnil
	}

	schedule, err := doc.ToEntity()
	if err != nil {
		slog.Warn("stored sleep schedule is invalid, treating as absent",
			"bedtime", doc.Bedtime,
			"wakeup", doc.Wakeup,
			"error", err,
		)

		return nil, nil //nolint:nilnil
	}

	return &schedule, nil
}

func (r *scheduleRepositoryImpl) SaveHandles(ctx context.Context, handles domain.Handles) error {
	slog.Debug("saving notification handles",
		"bedtime_handle", handles.Bedtime().String(),
		"wakeup_handle", handles.Wakeup().String(),
	)

	if err := r.put(ctx, handlesKey, HandlesFromEntity(handles)); err != nil {
		slog.Error("failed to save notification handles",
			"error", err,
		)

		return err
	}

	return nil
}

func (r *scheduleRepositoryImpl) LoadHandles(ctx context.Context) (domain.Handles, error) {
	var doc HandlesDocument

	found, err := r.get(ctx, handlesKey, &doc)
	if err != nil {
		return domain.Handles{}, err
	}

	if !found {
		return domain.Handles{}, nil
	}

	return doc.ToEntity(), nil
}

func (r *scheduleRepositoryImpl) Clear(ctx context.Context) error {
	slog.Debug("clearing stored sleep schedule and handles")

	if err := r.store.Remove(ctx, scheduleKey); err != nil {
		return fmt.Errorf("remove %s: %w", scheduleKey, err)
	}

	if err := r.store.Remove(ctx, handlesKey); err != nil {
		return fmt.Errorf("remove %s: %w", handlesKey, err)
	}

	return nil
}

func (r *scheduleRepositoryImpl) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	return nil
}

// get reports found=false for a missing key or an undecodable blob.
func (r *scheduleRepositoryImpl) get(ctx context.Context, key string, v any) (bool, error) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("stored value is not valid JSON, treating as absent",
			"key", key,
			"error", err,
		)

		return false, nil
	}

	return true, nil
}
