package config

import (
	"os"
	"strconv"
)

// FromEnv overlays CANOPY_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("CANOPY_DEFAULT_EPOCH"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			cfg.DefaultEpoch = n
		}
	}
	if v := os.Getenv("CANOPY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CANOPY_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
