// Package cmd provides the `canopy` command-line interface.
//
// The CLI fronts the pkg/idstamp codec from a terminal. It is primarily
// intended for developers and operators inspecting idtimestamps pulled
// from logs or API responses.
//
// Installation
//
//	go install github.com/forestrie/canopy/cmd/canopy@latest
//
// Usage
//
//	# Decode to Unix milliseconds
//	canopy unixms 0198e5ad5a0100002a
//
//	# Decode a 16-char short form under a non-default epoch
//	canopy unixms 98e5ad5a0100002a 2
//
//	# Decode and render as a UTC date-time
//	canopy utc 0x98e5ad5a0100002a
//
//	# Mint fresh idtimestamps
//	canopy new --count 3
//	canopy new --short
//
// Notes
//
//   - Invalid inputs exit non-zero with a diagnostic on stderr. The
//     standalone idtimestamp-utc binary keeps the legacy soft-failure
//     exit instead; see cmd/idtimestamp-utc.
//   - The default epoch and log settings come from the config file and
//     CANOPY_* environment variables; see internal/config.
package cmd
