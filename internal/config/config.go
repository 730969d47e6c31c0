package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const devJWTSecret = "dev-jwt-secret-change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AppEnv      string    `env:"APP_ENV" envDefault:"development"`
	LogLevel    string    `env:"LOG_LEVEL" envDefault:"info"`
	Server      Server    `envPrefix:"SERVER_"`
	Database    Database  `envPrefix:"DATABASE_"`
	Redis       Redis     `envPrefix:"REDIS_"`
	JWT         JWT       `envPrefix:"JWT_"`
	RateLimit   RateLimit `envPrefix:"RATE_LIMIT_"`
	Seed        Seed      `envPrefix:"SEED_"`
	Personal    Personal  `envPrefix:"PERSONAL_"`
	SwaggerHost string    `env:"SWAGGER_HOST"`
}

// Server contains HTTP server parameters.
type Server struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3001" envSeparator:","`
}

// Database contains database connection parameters.
type Database struct {
	Driver string `env:"DRIVER" envDefault:"mysql"`
	DSN    string `env:"DSN" envDefault:"user:password@tcp(localhost:3306)/jobtracker?charset=utf8mb4&parseTime=True&loc=UTC"`
	Reset  bool   `env:"RESET" envDefault:"false"`
}

// Redis contains connection parameters for the token store and rate limiter.
type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret     string        `env:"SECRET"`
	TTL        time.Duration `env:"TTL" envDefault:"168h"`
	CookieName string        `env:"COOKIE_NAME" envDefault:"auth_token"`
}

// RateLimit contains request budgets.
type RateLimit struct {
	LoginPerMinute int `env:"LOGIN_PER_MINUTE" envDefault:"10"`
}

// Seed selects what cmd/seed writes.
type Seed struct {
	Mode string `env:"MODE" envDefault:"demo"`
}

// Personal holds the credentials used by the personal seed mode.
type Personal struct {
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Database.Driver = strings.ToLower(cfg.Database.Driver)
	switch cfg.Database.Driver {
	case "mysql", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.Database.Driver)
	}

	if cfg.JWT.Secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWT.Secret = devJWTSecret
	}
	if cfg.JWT.TTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be positive, got %s", cfg.JWT.TTL)
	}
	if cfg.RateLimit.LoginPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_LOGIN_PER_MINUTE must be positive, got %d", cfg.RateLimit.LoginPerMinute)
	}

	return &cfg, nil
}
