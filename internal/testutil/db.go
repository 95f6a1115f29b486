// Package testutil содержит общие помощники для тестов, работающих с хранилищем.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/department-dao/internal/config"
	"github.com/department-dao/internal/database"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLiteConfig возвращает конфигурацию файла SQLite во временном каталоге теста
func SQLiteConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "departments.db"),
		ConnectAttempts: 1,
	}
}

// NewDB открывает чистую SQLite-базу с применёнными миграциями.
// Соединение закрывается по завершении теста.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, SQLiteConfig(t), gormlogger.Default.LogMode(gormlogger.Silent))
	if err != nil {
		t.Fatalf("testutil.NewDB: open: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })

	if _, err := database.Migrate(ctx, db, config.DriverSQLite); err != nil {
		t.Fatalf("testutil.NewDB: migrate: %v", err)
	}

	return db
}
