package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/department-dao/internal/config"
	"github.com/department-dao/internal/database"
	"github.com/department-dao/internal/handler"
	"github.com/department-dao/internal/logging"
	"github.com/department-dao/internal/repository"
	"github.com/department-dao/internal/service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация логгера
	logger := logging.New(os.Stdout, cfg.Log.Level)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к БД
	db, err := database.Open(ctx, cfg.Database, logging.GormLogger(logger, cfg.Log.Level))
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close(db)

	// Запуск миграций
	applied, err := database.Migrate(ctx, db, cfg.Database.Driver)
	if err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		database.Close(db)
		os.Exit(1)
	}
	logger.Info("migrations applied", slog.Int("count", applied))

	deptRepo := repository.NewDepartmentRepository(db)
	deptService := service.NewDepartmentService(deptRepo)
	deptHandler := handler.NewDepartmentHandler(deptService, logger)

	router := handler.NewRouter(deptHandler, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		logger.Info("server is shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		database.Close(db)
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
