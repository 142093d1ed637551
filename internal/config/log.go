package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel maps "debug", "info", "warn" and "error" to slog levels.
// The empty string means info.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q (must be one of: debug, info, warn, error)", ErrInvalidLogLevel, level)
	}
}

// EffectiveLogLevel returns the level from the environment if set, else the
// configured one.
func (c Config) EffectiveLogLevel() (slog.Level, error) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		return ParseLogLevel(v)
	}
	return ParseLogLevel(c.LogLevel)
}
