package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// RateLimitConfig настройки ограничения частоты запросов.
// RPS = 0 отключает ограничение.
type RateLimitConfig struct {
	RPS   float64 `env:"RPS" envDefault:"0"`
	Burst int     `env:"BURST" envDefault:"10"`
}

// Config конфигурация приложения
type Config struct {
	ServerAddress   NetworkAddress  `env:"SERVER_ADDRESS" envDefault:"localhost:8000"`
	APIToken        string          `env:"API_TOKEN"`
	Environment     Environment     `env:"APP_ENV" envDefault:"development"`
	LogLevel        string          `env:"LOG_LEVEL" envDefault:"info"`
	SeedBookmarks   bool            `env:"SEED_BOOKMARKS" envDefault:"true"`
	ShutdownTimeout time.Duration   `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	RateLimit       RateLimitConfig `envPrefix:"RATE_LIMIT_"`
}

var ErrAPITokenRequired = errors.New("API_TOKEN is required")

// IsProduction сообщает, запущено ли приложение в production режиме
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Load загружает конфигурацию из .env файла, переменных окружения и флагов.
// Флаги имеют приоритет над переменными окружения.
func Load() (*Config, error) {
	// .env необязателен, уже заданные переменные окружения не перезаписываются
	_ = godotenv.Load()

	return parse(os.Args[1:], nil)
}

// parse разбирает конфигурацию; environ == nil означает текущее окружение процесса
func parse(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet("bookmarks", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.Environment, "env", "deployment environment (development, production, test)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIToken == "" {
		return ErrAPITokenRequired
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}

	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("invalid rate limit: %v", c.RateLimit.RPS)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit burst must be positive: %d", c.RateLimit.Burst)
	}

	return nil
}
