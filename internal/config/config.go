// Package config loads site settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/turbohomes/website/pkg/logger"
	"github.com/turbohomes/website/pkg/storage"
)

var (
	ErrInvalidEnv         = errors.New("config: APP_ENV must be development, test or production")
	ErrInvalidBaseURL     = errors.New("config: BASE_URL must be an absolute http(s) URL without a path")
	ErrInvalidTTL         = errors.New("config: PAGE_CACHE_TTL must not be negative")
	ErrInvalidRedisURL    = errors.New("config: REDIS_URL must use redis:// or rediss://")
	ErrStorageRequired    = errors.New("config: S3_BUCKET, S3_ACCESS_KEY and S3_SECRET_KEY are required")
	ErrInvalidConcurrency = errors.New("config: S3_CONCURRENCY must be positive")
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

type Config struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	BaseURL         string        `env:"BASE_URL" envDefault:"https://www.turbohomes.com"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT"`

	ExportDir       string        `env:"EXPORT_DIR" envDefault:"out"`
	PageCacheTTL    time.Duration `env:"PAGE_CACHE_TTL" envDefault:"5m"`
	RedisURL        string        `env:"REDIS_URL"`
	RebuildSchedule string        `env:"REBUILD_SCHEDULE"`

	S3 S3 `envPrefix:"S3_"`
}

// S3 is the publish target.
type S3 struct {
	Bucket      string `env:"BUCKET"`
	Region      string `env:"REGION" envDefault:"us-east-1"`
	Endpoint    string `env:"ENDPOINT"`
	AccessKey   string `env:"ACCESS_KEY"`
	SecretKey   string `env:"SECRET_KEY"`
	Prefix      string `env:"PREFIX"`
	PathStyle   bool   `env:"PATH_STYLE"`
	Concurrency int    `env:"CONCURRENCY" envDefault:"8"`
}

// Load parses the process environment and validates the result.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks everything except the S3 settings, which only publish
// needs. See RequireStorage.
func (c *Config) Validate() error {
	var errs []error

	switch c.Env {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidEnv, c.Env))
	}

	if u, err := url.Parse(c.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || (u.Path != "" && u.Path != "/") {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidBaseURL, c.BaseURL))
	}

	if c.PageCacheTTL < 0 {
		errs = append(errs, ErrInvalidTTL)
	}

	if c.RedisURL != "" && !strings.HasPrefix(c.RedisURL, "redis://") && !strings.HasPrefix(c.RedisURL, "rediss://") {
		errs = append(errs, ErrInvalidRedisURL)
	}

	if c.S3.Concurrency < 1 {
		errs = append(errs, ErrInvalidConcurrency)
	}

	return errors.Join(errs...)
}

// RequireStorage reports whether the S3 settings are complete.
func (c *Config) RequireStorage() error {
	if c.S3.Bucket == "" || c.S3.AccessKey == "" || c.S3.SecretKey == "" {
		return ErrStorageRequired
	}
	return nil
}

func (c *Config) IsProduction() bool { return c.Env == EnvProduction }

// Logger returns the logger settings.
func (c *Config) Logger() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// Sentry returns the Sentry settings. The environment falls back to APP_ENV.
func (c *Config) Sentry() logger.SentryConfig {
	environment := c.SentryEnvironment
	if environment == "" {
		environment = c.Env
	}
	return logger.SentryConfig{DSN: c.SentryDSN, Environment: environment}
}

// Storage returns the bucket settings.
func (c *Config) Storage() storage.Config {
	return storage.Config{
		Bucket:    c.S3.Bucket,
		Region:    c.S3.Region,
		Endpoint:  c.S3.Endpoint,
		AccessKey: c.S3.AccessKey,
		SecretKey: c.S3.SecretKey,
		PathStyle: c.S3.PathStyle,
	}
}
