// Package log provides canopy's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and
// map-style Fields for structured context. Internally it is backed by the
// standard library slog text and JSON handlers, so output interoperates
// with the slog ecosystem while the codebase stays against this facade.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.DebugLevel),
//	    log.WithFormat(log.TextFormat),
//	)
//	l = l.WithComponent("codec")
//	l.Info("decoded idtimestamp", "unix_ms", ms)
//
// Levels and formats are parsed from configuration strings with ParseLevel
// and ParseFormat.
package log
