// Package config provides loading and environment overlay for canopy
// configuration. It exposes a Default() baseline, file loading in JSON or
// YAML, and a CANOPY_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load(config.DefaultPath()); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
