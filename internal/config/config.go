// internal/config/config.go
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var defaultCORSOrigins = []string{
	"http://localhost",
	"http://localhost:3000",
	"http://localhost:8080",
}

type Config struct {
	ServerPort  string
	GinMode     string
	CORSOrigins []string

	LogLevel  string
	LogFormat string

	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	ScheduleCacheTTL time.Duration

	// Entry cap of the in-process schedule cache.
	ScheduleCacheSize int

	TelegramToken      string
	TelegramWebhookURL string
}

// MustLoad reads the environment, after loading .env when one exists.
func MustLoad() Config {
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded .env")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from any lookup function; tests pass a map.
func FromEnv(getenv func(string) string) Config {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		ServerPort:         ":" + get("PORT", "8080"),
		GinMode:            get("GIN_MODE", "release"),
		CORSOrigins:        defaultCORSOrigins,
		LogLevel:           get("LOG_LEVEL", "info"),
		LogFormat:          get("LOG_FORMAT", "text"),
		RedisAddr:          get("REDIS_ADDR", ""),
		RedisPassword:      getenv("REDIS_PASSWORD"),
		ScheduleCacheTTL:   time.Hour,
		ScheduleCacheSize:  1024,
		TelegramToken:      get("TELEGRAM_BOT_TOKEN", ""),
		TelegramWebhookURL: get("TELEGRAM_WEBHOOK_URL", ""),
	}

	if origins := get("CORS_ORIGINS", ""); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	if v := get("REDIS_DB", ""); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = db
		} else {
			slog.Warn("Ignoring invalid REDIS_DB", "value", v)
		}
	}

	if v := get("SCHEDULE_CACHE_SIZE", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ScheduleCacheSize = n
		} else {
			slog.Warn("Ignoring invalid SCHEDULE_CACHE_SIZE", "value", v)
		}
	}

	if v := get("SCHEDULE_CACHE_TTL", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ScheduleCacheTTL = d
		} else {
			slog.Warn("Ignoring invalid SCHEDULE_CACHE_TTL", "value", v)
		}
	}

	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
