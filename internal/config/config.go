package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Поддерживаемые драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string `validate:"required,numeric"`
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver          string `validate:"required,oneof=postgres sqlite"`
	Host            string `validate:"required_if=Driver postgres"`
	Port            string `validate:"required_if=Driver postgres"`
	User            string
	Password        string
	DBName          string `validate:"required_if=Driver postgres"`
	SSLMode         string
	Path            string `validate:"required_if=Driver sqlite"`
	ConnectAttempts int    `validate:"min=1"`
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

// DSN возвращает строку подключения для выбранного драйвера
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Load загружает конфигурацию из .env (если он есть) и переменных окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	attempts, err := strconv.Atoi(getEnv("DB_CONNECT_ATTEMPTS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_ATTEMPTS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverPostgres),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "departments"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			Path:            getEnv("DB_PATH", "departments.db"),
			ConnectAttempts: attempts,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
