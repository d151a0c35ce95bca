package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server       ServerConfig
	Log          LogConfig
	Store        StoreConfig
	Scheduler    SchedulerConfig
	Notification NotificationConfig
	PubSub       PubSubConfig
	Metrics      MetricsConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StoreBackend string

const (
	StoreBackendFile     StoreBackend = "file"
	StoreBackendSQLite   StoreBackend = "sqlite"
	StoreBackendPostgres StoreBackend = "postgres"
	StoreBackendMemory   StoreBackend = "memory"
)

type StoreConfig struct {
	Backend    StoreBackend
	Dir        string
	SQLitePath string
	Database   DatabaseConfig
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SchedulerConfig struct {
	GuardBand     time.Duration
	SweepAttempts int
	SweepBackoff  time.Duration
}

type Platform string

const (
	PlatformDesktop Platform = "desktop"
	PlatformPush    Platform = "push"
)

type NotificationConfig struct {
	Platform    Platform
	PushNatsURL string
	PushBucket  string
	DeviceToken string
}

type PubSubConfig struct {
	NatsURL         string
	GCloudProjectID string
}

type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	serverPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	store, err := loadStore()
	if err != nil {
		return nil, err
	}

	scheduler, err := loadScheduler()
	if err != nil {
		return nil, err
	}

	notification, err := loadNotification()
	if err != nil {
		return nil, err
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid METRICS_ENABLED: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "127.0.0.1"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Store:        store,
		Scheduler:    scheduler,
		Notification: notification,
		PubSub: PubSubConfig{
			NatsURL:         os.Getenv("NATS_URL"),
			GCloudProjectID: os.Getenv("GCLOUD_PROJECT_ID"),
		},
		Metrics: MetricsConfig{
			Enabled: metricsEnabled,
		},
	}, nil
}

func loadStore() (StoreConfig, error) {
	backend := StoreBackend(strings.ToLower(getEnv("STORE_BACKEND", string(StoreBackendFile))))

	maxOpenConns, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "5"))
	if err != nil {
		return StoreConfig{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "5"))
	if err != nil {
		return StoreConfig{}, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return StoreConfig{}, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	cfg := StoreConfig{
		Backend:    backend,
		Dir:        getEnv("STORE_DIR", "data"),
		SQLitePath: getEnv("SQLITE_PATH", "data/sleep-remind.db"),
		Database: DatabaseConfig{
			DSN:             os.Getenv("POSTGRES_DSN"),
			MaxOpenConns:    maxOpenConns,
			MaxIdleConns:    maxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
		},
	}

	switch backend {
	case StoreBackendFile, StoreBackendSQLite, StoreBackendMemory:
	case StoreBackendPostgres:
		if cfg.Database.DSN == "" {
			return StoreConfig{}, fmt.Errorf("POSTGRES_DSN environment variable is required for the postgres store")
		}
	default:
		return StoreConfig{}, fmt.Errorf("invalid STORE_BACKEND: %s", backend)
	}

	return cfg, nil
}

func loadScheduler() (SchedulerConfig, error) {
	guardBand, err := time.ParseDuration(getEnv("SLEEP_GUARD_BAND", "15m"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SLEEP_GUARD_BAND: %w", err)
	}

	if guardBand <= 0 {
		return SchedulerConfig{}, fmt.Errorf("invalid SLEEP_GUARD_BAND: must be positive")
	}

	sweepAttempts, err := strconv.Atoi(getEnv("SLEEP_SWEEP_ATTEMPTS", "3"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SLEEP_SWEEP_ATTEMPTS: %w", err)
	}

	if sweepAttempts < 1 {
		return SchedulerConfig{}, fmt.Errorf("invalid SLEEP_SWEEP_ATTEMPTS: must be at least 1")
	}

	sweepBackoff, err := time.ParseDuration(getEnv("SLEEP_SWEEP_BACKOFF", "200ms"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SLEEP_SWEEP_BACKOFF: %w", err)
	}

	return SchedulerConfig{
		GuardBand:     guardBand,
		SweepAttempts: sweepAttempts,
		SweepBackoff:  sweepBackoff,
	}, nil
}

func loadNotification() (NotificationConfig, error) {
	cfg := NotificationConfig{
		Platform:    Platform(strings.ToLower(getEnv("NOTIFICATION_PLATFORM", string(PlatformDesktop)))),
		PushNatsURL: os.Getenv("PUSH_NATS_URL"),
		PushBucket:  getEnv("PUSH_BUCKET", "SLEEP_REMINDERS"),
		DeviceToken: os.Getenv("PUSH_DEVICE_TOKEN"),
	}

	switch cfg.Platform {
	case PlatformDesktop:
	case PlatformPush:
		if cfg.PushNatsURL == "" {
			return NotificationConfig{}, fmt.Errorf("PUSH_NATS_URL environment variable is required for the push platform")
		}
	default:
		return NotificationConfig{}, fmt.Errorf("invalid NOTIFICATION_PLATFORM: %s", cfg.Platform)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
