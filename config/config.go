package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	DefaultPort          = 10000
	DefaultMaxUploadSize = 16 * 1024 * 1024 // 16MB
	DefaultRembgTimeout  = 120 * time.Second
)

// AllowedExtensions 允许上传的图片扩展名
var AllowedExtensions = []string{"png", "jpg", "jpeg", "webp"}

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Port          int
	MaxUploadSize int64
	RembgURL      string
	RembgTimeout  time.Duration
	LogLevel      slog.Level
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          DefaultPort,
		MaxUploadSize: DefaultMaxUploadSize,
		RembgURL:      os.Getenv("REMBG_URL"),
		RembgTimeout:  DefaultRembgTimeout,
		LogLevel:      slog.LevelInfo,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse PORT: %w", err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse MAX_UPLOAD_SIZE: %w", err)
		}
		cfg.MaxUploadSize = size
	}

	if v := os.Getenv("REMBG_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse REMBG_TIMEOUT: %w", err)
		}
		cfg.RembgTimeout = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MaxUploadMB 用于错误信息里的提示
func (c *Config) MaxUploadMB() int64 {
	return c.MaxUploadSize / (1024 * 1024)
}
