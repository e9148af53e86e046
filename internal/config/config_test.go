package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbohomes/website/internal/config"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, config.EnvDevelopment, cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "https://www.turbohomes.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "out", cfg.ExportDir)
	assert.Equal(t, 5*time.Minute, cfg.PageCacheTTL)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.RebuildSchedule)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, 8, cfg.S3.Concurrency)
	assert.False(t, cfg.IsProduction())
	assert.ErrorIs(t, cfg.RequireStorage(), config.ErrStorageRequired)
}

func TestLoadFrom_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{
		"APP_ENV":          "production",
		"HTTP_ADDR":        ":9000",
		"BASE_URL":         "https://staging.turbohomes.com/",
		"LOG_FORMAT":       "text",
		"SENTRY_DSN":       "https://key@sentry.example/1",
		"PAGE_CACHE_TTL":   "0s",
		"REDIS_URL":        "redis://cache:6379/1",
		"REBUILD_SCHEDULE": "@daily",
		"S3_BUCKET":        "www.turbohomes.com",
		"S3_ACCESS_KEY":    "ak",
		"S3_SECRET_KEY":    "sk",
		"S3_ENDPOINT":      "http://minio:9000",
		"S3_PATH_STYLE":    "true",
		"S3_PREFIX":        "site",
		"S3_CONCURRENCY":   "2",
	})
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://staging.turbohomes.com", cfg.BaseURL)
	assert.Zero(t, cfg.PageCacheTTL)
	assert.Equal(t, "@daily", cfg.RebuildSchedule)
	require.NoError(t, cfg.RequireStorage())

	st := cfg.Storage()
	assert.Equal(t, "www.turbohomes.com", st.Bucket)
	assert.Equal(t, "http://minio:9000", st.Endpoint)
	assert.True(t, st.PathStyle)
	assert.Equal(t, "site", cfg.S3.Prefix)
	assert.Equal(t, 2, cfg.S3.Concurrency)

	assert.Equal(t, "text", cfg.Logger().Format)
	sc := cfg.Sentry()
	assert.Equal(t, "https://key@sentry.example/1", sc.DSN)
	assert.Equal(t, config.EnvProduction, sc.Environment)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want error
	}{
		{"unknown env", map[string]string{"APP_ENV": "staging"}, config.ErrInvalidEnv},
		{"relative base url", map[string]string{"BASE_URL": "www.turbohomes.com"}, config.ErrInvalidBaseURL},
		{"base url with path", map[string]string{"BASE_URL": "https://turbohomes.com/site"}, config.ErrInvalidBaseURL},
		{"ftp base url", map[string]string{"BASE_URL": "ftp://turbohomes.com"}, config.ErrInvalidBaseURL},
		{"negative ttl", map[string]string{"PAGE_CACHE_TTL": "-1s"}, config.ErrInvalidTTL},
		{"redis scheme", map[string]string{"REDIS_URL": "cache:6379"}, config.ErrInvalidRedisURL},
		{"zero concurrency", map[string]string{"S3_CONCURRENCY": "0"}, config.ErrInvalidConcurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.LoadFrom(tt.vars)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadFrom_ParseError(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFrom(map[string]string{"SHUTDOWN_TIMEOUT": "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse env")
}

func TestLoadFrom_JoinsErrors(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFrom(map[string]string{"APP_ENV": "qa", "REDIS_URL": "x"})
	assert.ErrorIs(t, err, config.ErrInvalidEnv)
	assert.ErrorIs(t, err, config.ErrInvalidRedisURL)
}
