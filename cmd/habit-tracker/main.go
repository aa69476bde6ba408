// cmd/habit-tracker/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ponzhin/habit-tracker/pkg/config"
	"github.com/ponzhin/habit-tracker/pkg/db"
	"github.com/ponzhin/habit-tracker/pkg/logger"
	"github.com/ponzhin/habit-tracker/pkg/notify"
	"github.com/ponzhin/habit-tracker/pkg/reminders"
)

func main() {
	if err := config.LoadConfig("config.json"); err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := logger.Configure(logger.Options{
		Level: config.AppConfig.Logging.Level,
		File:  config.AppConfig.Logging.File,
	}); err != nil {
		logger.Error("failed to configure logger", "error", err)
	}

	if err := db.InitDB(config.AppConfig.Database); err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	notifier, err := notify.FromConfig(config.AppConfig.Notify)
	if err != nil {
		logger.Error("failed to configure notifier", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("Starting reminder scheduler...")
	reminders.StartReminderLoop(ctx, notifier)
	logger.Info("Reminder scheduler stopped")
}
