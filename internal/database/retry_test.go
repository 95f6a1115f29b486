package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/department-dao/internal/config"
	"github.com/department-dao/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func unreachableSQLite(t *testing.T, attempts int) config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "missing", "dir", "departments.db"),
		ConnectAttempts: attempts,
	}
}

func TestOpen_RetriesThenFails(t *testing.T) {
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = time.Second })

	_, err := Open(context.Background(), unreachableSQLite(t, 3), gormlogger.Discard)

	require.Error(t, err)
	assert.True(t, domain.IsStoreError(err))
	assert.ErrorContains(t, err, "after 3 attempts")
}

func TestOpen_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, unreachableSQLite(t, 30), gormlogger.Discard)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
