package database_test

import (
	"context"
	"testing"

	"github.com/department-dao/internal/config"
	"github.com/department-dao/internal/database"
	"github.com/department-dao/internal/domain"
	"github.com/department-dao/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

var silent = gormlogger.Default.LogMode(gormlogger.Silent)

func TestMigrate_CreatesDepartmentsTable(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, testutil.SQLiteConfig(t), silent)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	applied, err := database.Migrate(ctx, db, config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	assert.True(t, db.Migrator().HasTable(&domain.Department{}))
	assert.True(t, db.Migrator().HasColumn(&domain.Department{}, "name"))

	applied, err = database.Migrate(ctx, db, config.DriverSQLite)
	require.NoError(t, err)
	assert.Zero(t, applied, "second run must be a no-op")
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: "oracle", ConnectAttempts: 1}

	_, err := database.Open(context.Background(), cfg, silent)

	require.Error(t, err)
	assert.True(t, domain.IsStoreError(err))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestClose(t *testing.T) {
	db, err := database.Open(context.Background(), testutil.SQLiteConfig(t), silent)
	require.NoError(t, err)

	require.NoError(t, database.Close(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "closed handle must not be usable")
}
