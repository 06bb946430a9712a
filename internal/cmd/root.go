// Package cmd contains Cobra CLI commands for canopy.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/forestrie/canopy/internal/config"
	"github.com/forestrie/canopy/pkg/log"
)

// NewRoot constructs the root Cobra command for the canopy CLI.
// It registers the decode, format, and generate subcommands.
func NewRoot(logger log.Logger, cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "canopy",
		Short: "Forestrie idtimestamp tools",
		Long:  "Canopy decodes, formats, and generates Forestrie idtimestamps.",
	}
	root.AddCommand(newUnixMsCommand(logger, cfg))
	root.AddCommand(newUTCCommand(logger, cfg))
	root.AddCommand(newNewCommand(logger))
	return root
}
