package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/KasumiMercury/primind-sleep-remind/internal/config"
	"github.com/KasumiMercury/primind-sleep-remind/internal/observability/logging"
)

var Version = "dev"

type CLI struct {
	EnvFile string           `name:"env-file" help:"Dotenv file loaded before reading the environment" default:".env"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Serve ServeCmd `cmd:"" default:"1" help:"Run the sleep reminder service"`
	Show  ShowCmd  `cmd:"" help:"Print the stored sleep schedule and its next reminders"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("sleep-remind"),
		kong.Description("Keeps one bedtime and one wakeup reminder armed for a daily sleep schedule."),
		kong.Vars{"version": Version},
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	)

	if err := loadEnvFile(cli.EnvFile); err != nil {
		slog.Error("failed to load env file", "path", cli.EnvFile, "error", err)

		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)

		return 1
	}

	setupLogger(cfg)

	if err := kctx.Run(cfg); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)

		return 1
	}

	return 0
}

// loadEnvFile leaves already set variables untouched. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func setupLogger(cfg *config.Config) {
	handler := logging.NewHandler(os.Stdout, logging.ParseLevel(cfg.Log.Level), projectID(cfg))
	slog.SetDefault(slog.New(handler))
}
