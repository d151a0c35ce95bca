package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/KasumiMercury/primind-sleep-remind/internal/config"
	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/kvstore"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/repository"
)

type ShowCmd struct{}

type showOutput struct {
	Bedtime       string    `json:"bedtime"`
	Wakeup        string    `json:"wakeup"`
	BedtimeHandle string    `json:"bedtime_handle,omitempty"`
	WakeupHandle  string    `json:"wakeup_handle,omitempty"`
	NextBedtime   time.Time `json:"next_bedtime"`
	NextWakeup    time.Time `json:"next_wakeup"`
	Complete      bool      `json:"complete"`
}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config) error {
	store, err := kvstore.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}()

	repo := repository.NewScheduleRepository(store)

	schedule, err := repo.Load(ctx)
	if err != nil {
		return err
	}

	if schedule == nil {
		fmt.Fprintln(os.Stdout, "no sleep schedule configured")

		return nil
	}

	handles, err := repo.LoadHandles(ctx)
	if err != nil {
		return err
	}

	calculator, err := domain.NewTriggerCalculator(cfg.Scheduler.GuardBand)
	if err != nil {
		return err
	}

	triggers := calculator.NextTriggers(time.Now(), *schedule)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(showOutput{
		Bedtime:       schedule.Bedtime().String(),
		Wakeup:        schedule.Wakeup().String(),
		BedtimeHandle: handles.Bedtime().String(),
		WakeupHandle:  handles.Wakeup().String(),
		NextBedtime:   triggers[domain.KindBedtime],
		NextWakeup:    triggers[domain.KindWakeup],
		Complete:      handles.IsComplete(),
	})
}
