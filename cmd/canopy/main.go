package main

import (
	"fmt"
	"os"

	cmdpkg "github.com/forestrie/canopy/internal/cmd"
	cfgpkg "github.com/forestrie/canopy/internal/config"
	logpkg "github.com/forestrie/canopy/pkg/log"
)

func main() {
	cfg := cfgpkg.Default()
	if fileCfg, err := cfgpkg.Load(cfgpkg.DefaultPath()); err == nil {
		cfg = fileCfg
	} else {
		fmt.Fprintf(os.Stderr, "canopy: ignoring config file: %v\n", err)
	}
	cfgpkg.FromEnv(&cfg)

	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	format, err := logpkg.ParseFormat(cfg.LogFormat)
	if err != nil {
		format = logpkg.TextFormat
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormat(format),
	)

	rootCmd := cmdpkg.NewRoot(logger, cfg)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
