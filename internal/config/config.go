package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration for the classification server,
// loaded from environment variables.
type Config struct {
	// Server
	Port int

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // text or json

	// Gin mode: release, debug, test
	Mode string
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		Port:      envInt("FORTE_PORT", 8080),
		LogLevel:  envStr("FORTE_LOG_LEVEL", "info"),
		LogFormat: envStr("FORTE_LOG_FORMAT", "text"),
		Mode:      envStr("FORTE_MODE", "release"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
