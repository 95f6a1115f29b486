package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// New создаёт JSON-логгер с уровнем из конфигурации
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel переводит строковый уровень в slog.Level, по умолчанию info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GormLogger направляет журнал запросов GORM в тот же slog-обработчик
func GormLogger(logger *slog.Logger, level string) gormlogger.Interface {
	logLevel := gormlogger.Warn
	switch ParseLevel(level) {
	case slog.LevelDebug:
		logLevel = gormlogger.Info
	case slog.LevelError:
		logLevel = gormlogger.Error
	}

	return gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
