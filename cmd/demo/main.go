package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/department-dao/internal/config"
	"github.com/department-dao/internal/database"
	"github.com/department-dao/internal/demo"
	"github.com/department-dao/internal/logging"
	"github.com/department-dao/internal/repository"
)

func main() {
	// Диагностика в stderr, результаты в stdout
	logger := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)

	if err := run(context.Background(), logger); err != nil {
		logger.Error("demo failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, cfg.Database, logging.GormLogger(logger, cfg.Log.Level))
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	applied, err := database.Migrate(ctx, db, cfg.Database.Driver)
	if err != nil {
		return err
	}
	logger.Debug("migrations applied", slog.Int("count", applied))

	deptRepo := repository.NewDepartmentRepository(db)

	seeded, err := demo.Seed(ctx, deptRepo)
	if err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}
	if seeded > 0 {
		logger.Info("seeded departments", slog.Int("count", seeded))
	}

	return demo.Run(ctx, deptRepo, os.Stdout)
}
