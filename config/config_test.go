package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, int64(DefaultMaxUploadSize), cfg.MaxUploadSize)
	assert.Empty(t, cfg.RembgURL)
	assert.Equal(t, DefaultRembgTimeout, cfg.RembgTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, ":10000", cfg.Addr())
	assert.Equal(t, int64(16), cfg.MaxUploadMB())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_UPLOAD_SIZE", "1048576")
	t.Setenv("REMBG_URL", "http://127.0.0.1:7000/api/remove")
	t.Setenv("REMBG_TIMEOUT", "30")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(1048576), cfg.MaxUploadSize)
	assert.Equal(t, "http://127.0.0.1:7000/api/remove", cfg.RembgURL)
	assert.Equal(t, 30*time.Second, cfg.RembgTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, int64(1), cfg.MaxUploadMB())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"无效的PORT", "PORT", "not-a-port"},
		{"无效的MAX_UPLOAD_SIZE", "MAX_UPLOAD_SIZE", "16MB"},
		{"无效的REMBG_TIMEOUT", "REMBG_TIMEOUT", "2m"},
		{"无效的LOG_LEVEL", "LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
