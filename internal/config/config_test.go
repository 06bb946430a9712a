package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.DefaultEpoch != 1 {
		t.Fatalf("default epoch")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level")
	}
	if cfg.LogFormat != "text" {
		t.Fatalf("default log format")
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "canopy.json")
	data := []byte(`{"defaultEpoch":2,"logLevel":"debug","logFormat":"json"}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{DefaultEpoch: 2, LogLevel: "debug", LogFormat: "json"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	data := []byte("defaultEpoch: 3\nlogLevel: warn\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultEpoch != 3 {
		t.Fatalf("expected 3, got %d", cfg.DefaultEpoch)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected warn")
	}
	// Unset keys keep their defaults.
	if cfg.LogFormat != "text" {
		t.Fatalf("expected text, got %q", cfg.LogFormat)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("CANOPY_DEFAULT_EPOCH", "5")
	t.Setenv("CANOPY_LOG_LEVEL", "debug")
	t.Setenv("CANOPY_LOG_FORMAT", "json")
	FromEnv(&cfg)
	if cfg.DefaultEpoch != 5 {
		t.Fatalf("env override epoch")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env override level")
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("env override format")
	}
}

func TestDefaultPathPrefersEnv(t *testing.T) {
	t.Setenv("CANOPY_CONFIG", "/tmp/explicit.yaml")
	if p := DefaultPath(); p != "/tmp/explicit.yaml" {
		t.Fatalf("expected explicit path, got %q", p)
	}
}

func TestDefaultPathFindsXDGFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CANOPY_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "canopy"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	file := filepath.Join(dir, "canopy", "config.yaml")
	if err := os.WriteFile(file, []byte("logLevel: debug\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if p := DefaultPath(); p != file {
		t.Fatalf("expected %q, got %q", file, p)
	}
}
