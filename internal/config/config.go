package config

import (
	"log/slog"
	"strings"

	"github.com/joeshaw/envdecode"
)

// Config holds the environment-driven settings. Defaults are supplied via
// envdecode struct tags, so a zero environment yields a working server.
type Config struct {
	// LogLevel controls diagnostic verbosity on stderr. ENV: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
}

// FromEnv populates a Config from the process environment.
func FromEnv() Config {
	var cfg Config
	// Defaults are provided via struct tags; decode cannot fail on them.
	_ = envdecode.Decode(&cfg)
	return cfg
}

// Level maps the configured level name onto a slog.Level.
// Unknown names fall back to INFO.
func (c Config) Level() slog.Level {
	switch strings.ToUpper(strings.TrimSpace(c.LogLevel)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
