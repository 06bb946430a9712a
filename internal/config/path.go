package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the config file to load when none is given on the
// command line: the first of $CANOPY_CONFIG, $XDG_CONFIG_HOME/canopy, or
// ~/.config/canopy that exists, trying config.yaml then config.json.
// Returns "" when no file is found, which Load treats as defaults.
func DefaultPath() string {
	if p := os.Getenv("CANOPY_CONFIG"); p != "" {
		return p
	}

	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "canopy"))
	}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		dirs = append(dirs, filepath.Join(homeDir, ".config", "canopy"))
	}

	for _, dir := range dirs {
		for _, name := range []string{"config.yaml", "config.json"} {
			p := filepath.Join(dir, name)
			if isFile(p) {
				return p
			}
		}
	}
	return ""
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}
