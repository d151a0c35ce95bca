package kvstore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-sleep-remind/internal/config"
	"github.com/KasumiMercury/primind-sleep-remind/internal/observability/logging"
)

const slowQueryThreshold = 200 * time.Millisecond

// Open builds the Store selected by cfg.Backend.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case config.StoreBackendMemory:
		slog.WarnContext(ctx, "using in-memory store, schedule will not survive a restart")

		return NewMemoryStore(), nil
	case config.StoreBackendFile, "":
		store, err := NewFileStore(afero.NewOsFs(), cfg.Dir)
		if err != nil {
			return nil, err
		}

		return store, nil
	case config.StoreBackendSQLite:
		if cfg.SQLitePath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}

		store, err := NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}

		return store, nil
	case config.StoreBackendPostgres:
		store, err := openPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}

		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (*PostgresStore, error) {
	db, err := gorm.Open(pgdriver.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(slowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()

		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.InfoContext(ctx, "connected to postgres store")

	return NewPostgresStore(db), nil
}
