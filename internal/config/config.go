// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DevJWTSecret is the signing secret used when JWT_SECRET is unset.
// It is rejected in production.
const DevJWTSecret = "trippulse-dev-secret-change-me"

// Rate limiter backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Offers    OffersConfig
	RateLimit RateLimitConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// OffersConfig holds offer generation and search cooldown settings.
type OffersConfig struct {
	// MinLatency and MaxLatency bound the simulated upstream call
	MinLatency time.Duration `env:"OFFER_MIN_LATENCY" envDefault:"500ms"`
	MaxLatency time.Duration `env:"OFFER_MAX_LATENCY" envDefault:"1500ms"`

	// Cooldown is how long a route search or trip refresh is served from storage
	Cooldown time.Duration `env:"SEARCH_COOLDOWN" envDefault:"10s"`

	// Seed fixes the offer generator. Zero seeds from the clock.
	Seed uint64 `env:"OFFER_SEED" envDefault:"0"`
}

// RateLimitConfig selects the cooldown store and sizes per-client throttling.
type RateLimitConfig struct {
	Backend       string  `env:"RATE_LIMIT_BACKEND" envDefault:"memory"`
	ClientEnabled bool    `env:"CLIENT_RATE_LIMIT_ENABLED" envDefault:"true"`
	ClientRPS     float64 `env:"CLIENT_RATE_LIMIT_RPS" envDefault:"10"`
	ClientBurst   int     `env:"CLIENT_RATE_LIMIT_BURST" envDefault:"20"`
}

// DatabaseConfig holds PostgreSQL settings. An empty URL keeps everything in memory.
type DatabaseConfig struct {
	URL string `env:"DATABASE_URL"`
}

// RedisConfig holds the connection used by the redis rate limiter backend.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// AuthConfig holds bearer token settings.
type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"trippulse-dev-secret-change-me"`
	Issuer    string        `env:"JWT_ISSUER"`
	TokenTTL  time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Offers.MinLatency < 0 || cfg.Offers.MaxLatency < 0 {
		return fmt.Errorf("OFFER_MIN_LATENCY and OFFER_MAX_LATENCY must not be negative")
	}
	if cfg.Offers.MinLatency > cfg.Offers.MaxLatency {
		return fmt.Errorf("OFFER_MIN_LATENCY (%s) should not exceed OFFER_MAX_LATENCY (%s)",
			cfg.Offers.MinLatency, cfg.Offers.MaxLatency)
	}
	// A generation must finish inside the server's write deadline.
	if cfg.Offers.MaxLatency >= cfg.Server.WriteTimeout {
		return fmt.Errorf("OFFER_MAX_LATENCY (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Offers.MaxLatency, cfg.Server.WriteTimeout)
	}
	if cfg.Offers.Cooldown <= 0 {
		return fmt.Errorf("SEARCH_COOLDOWN must be positive")
	}

	switch cfg.RateLimit.Backend {
	case BackendMemory:
	case BackendRedis:
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when RATE_LIMIT_BACKEND is redis")
		}
	default:
		return fmt.Errorf("RATE_LIMIT_BACKEND must be one of: memory, redis; got %q", cfg.RateLimit.Backend)
	}
	if cfg.RateLimit.ClientEnabled {
		if cfg.RateLimit.ClientRPS <= 0 {
			return fmt.Errorf("CLIENT_RATE_LIMIT_RPS must be positive")
		}
		if cfg.RateLimit.ClientBurst < 1 {
			return fmt.Errorf("CLIENT_RATE_LIMIT_BURST must be at least 1")
		}
	}

	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.App.Env == "production" && (cfg.Auth.JWTSecret == DevJWTSecret || len(cfg.Auth.JWTSecret) < 32) {
		return fmt.Errorf("JWT_SECRET must be set to at least 32 characters in production")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Storage names the persistence backend selected by DATABASE_URL.
func (c *Config) Storage() string {
	if c.Database.URL != "" {
		return "postgres"
	}
	return "memory"
}
