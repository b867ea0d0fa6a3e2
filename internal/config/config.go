package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config содержит настройки консоли, загружаемые из окружения.
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	API struct {
		BaseURL string        `env:"ADIZON_API_URL" envDefault:"http://localhost:8000"`
		Token   string        `env:"ADIZON_ADMIN_TOKEN,required,notEmpty"`
		Timeout time.Duration `env:"ADIZON_API_TIMEOUT" envDefault:"10s"`
	}

	// Журнал действий администратора (опционально)
	Audit struct {
		Enabled    bool   `env:"AUDIT_ENABLED" envDefault:"false"`
		DBHost     string `env:"DB_HOST" envDefault:"localhost"`
		DBPort     string `env:"DB_PORT" envDefault:"5432"`
		DBUser     string `env:"DB_USER" envDefault:"postgres"`
		DBPassword string `env:"DB_PASSWORD" envDefault:"password"`
		DBName     string `env:"DB_NAME" envDefault:"adizon_admin"`
	}
}

// LoadConfig читает .env (если есть) и переменные окружения.
func LoadConfig() (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.API.BaseURL = NormalizeBaseURL(cfg.API.BaseURL)
	return cfg, nil
}

// NormalizeBaseURL добавляет https:// к адресу без схемы и убирает завершающий слэш.
func NormalizeBaseURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return u
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return strings.TrimRight(u, "/")
}

// DSN собирает строку подключения к базе журнала.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.Audit.DBUser, c.Audit.DBPassword, c.Audit.DBHost, c.Audit.DBPort, c.Audit.DBName,
	)
}
