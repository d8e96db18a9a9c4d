package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"ordersdesk.com/app/internal/orderlist"
)

type Config struct {
	HTTPAddr    string `validate:"required"`
	DBDSN       string `validate:"required"`
	FlashSecret string `validate:"required,min=16"`
	// AdminToken guards /a and /api/admin; empty disables the guard.
	AdminToken    string
	SecureCookies bool

	APIBaseURL     string        `validate:"required,url"`
	SearchDebounce time.Duration `validate:"gt=0"`
	LogLevel       slog.Level
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	// prod uses real env vars; a missing .env is fine
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		DBDSN:          os.Getenv("DB_DSN"),
		FlashSecret:    envOr("FLASH_SECRET", "dev-flash-secret-change-me"),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
		SecureCookies:  envOr("APP_ENV", "dev") != "dev",
		APIBaseURL:     envOr("API_BASE_URL", "http://localhost:8080"),
		SearchDebounce: orderlist.DefaultDebounce,
		LogLevel:       slog.LevelInfo,
	}

	if v := os.Getenv("SEARCH_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SEARCH_DEBOUNCE: %w", err)
		}
		cfg.SearchDebounce = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}

// ValidateServer checks what cmd/web needs and returns the parsed DSN.
func (c Config) ValidateServer() (*mysql.Config, error) {
	if err := validator.New().StructPartial(c, "HTTPAddr", "DBDSN", "FlashSecret"); err != nil {
		return nil, err
	}
	return ParseDSN(c.DBDSN)
}

// ValidateClient checks what the console needs.
func (c Config) ValidateClient() error {
	return validator.New().StructPartial(c, "APIBaseURL", "SearchDebounce")
}

// ParseDSN validates a MySQL DSN and forces parseTime, which the models rely on.
func ParseDSN(dsn string) (*mysql.Config, error) {
	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("DB_DSN: %w", err)
	}
	mc.ParseTime = true
	return mc, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
