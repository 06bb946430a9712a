package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/forestrie/canopy/internal/config"
	"github.com/forestrie/canopy/pkg/idstamp"
	"github.com/forestrie/canopy/pkg/log"
)

// newUnixMsCommand constructs the `unixms` subcommand. The optional
// second argument overrides the epoch assumed for the 16-char short form.
func newUnixMsCommand(logger log.Logger, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "unixms <idtimestamp> [epoch]",
		Short: "Decode an idtimestamp to Unix milliseconds",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			epoch := cfg.DefaultEpoch
			if len(args) == 2 {
				n, err := strconv.ParseUint(args[1], 10, 8)
				if err != nil {
					return fmt.Errorf("invalid epoch %q: expected a small decimal integer", args[1])
				}
				epoch = n
			}
			ms, err := idstamp.DecodeWithEpoch(args[0], epoch)
			if err != nil {
				return err
			}
			logger.Debug("decoded idtimestamp", "id", args[0], "epoch", epoch, "unix_ms", ms)
			fmt.Fprintln(cmd.OutOrStdout(), ms)
			return nil
		},
	}
}
