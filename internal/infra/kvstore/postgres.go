package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&KeyValueModel{})
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	slog.Debug("finding value by key",
		"key", key,
	)

	var m KeyValueModel

	result := s.db.WithContext(ctx).Where("key = ?", key).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("value not found",
				"key", key,
			)

			return nil, ErrKeyNotFound
		}

		slog.Error("failed to find value by key",
			"key", key,
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.Value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	slog.Debug("saving value to database",
		"key", key,
	)

	m := &KeyValueModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(m)
	if result.Error != nil {
		slog.Error("failed to save value to database",
			"key", key,
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	slog.Debug("deleting value from database",
		"key", key,
	)

	result := s.db.WithContext(ctx).Where("key = ?", key).Delete(&KeyValueModel{})
	if result.Error != nil {
		slog.Error("failed to delete value from database",
			"key", key,
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("value not found for deletion (idempotency)",
			"key", key,
		)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
