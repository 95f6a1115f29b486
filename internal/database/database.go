package database

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/department-dao/internal/config"
	"github.com/department-dao/internal/domain"
	"github.com/department-dao/migrations"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// retryDelay - пауза между попытками подключения
var retryDelay = time.Second

// Open подключается к хранилищу, повторяя попытки до cfg.ConnectAttempts раз
func Open(ctx context.Context, cfg config.DatabaseConfig, gormLog gormlogger.Interface) (*gorm.DB, error) {
	attempts := max(cfg.ConnectAttempts, 1)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &domain.StoreError{Op: "connect", Err: ctx.Err()}
			case <-time.After(retryDelay):
			}
		}

		var db *gorm.DB
		db, err = connect(ctx, cfg, gormLog)
		if err == nil {
			return db, nil
		}
	}

	return nil, &domain.StoreError{
		Op:  "connect",
		Err: fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err),
	}
}

func connect(ctx context.Context, cfg config.DatabaseConfig, gormLog gormlogger.Interface) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("%w: unsupported database driver %q", domain.ErrInvalidArgument, cfg.Driver)
	}
}

// Migrate применяет встроенные миграции и возвращает число применённых
func Migrate(ctx context.Context, db *gorm.DB, driver string) (int, error) {
	dialect, dir := goose.DialectPostgres, "postgres"
	if driver == config.DriverSQLite {
		dialect, dir = goose.DialectSQLite3, "sqlite"
	}

	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return 0, fmt.Errorf("failed to open migrations: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return 0, fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, &domain.StoreError{Op: "migrate", Err: err}
	}

	return len(results), nil
}

// Close освобождает соединения с хранилищем
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
