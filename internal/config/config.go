package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// DefaultEpoch applies to 16-char idtimestamps, which carry no epoch
	// selector of their own.
	DefaultEpoch uint64 `json:"defaultEpoch" yaml:"defaultEpoch"`
	LogLevel     string `json:"logLevel" yaml:"logLevel"`
	LogFormat    string `json:"logFormat" yaml:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		DefaultEpoch: 1,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads configuration from a JSON or YAML file (by extension).
// If path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}
