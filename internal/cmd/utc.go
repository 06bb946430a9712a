package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forestrie/canopy/internal/config"
	"github.com/forestrie/canopy/pkg/idstamp"
	"github.com/forestrie/canopy/pkg/log"
)

// newUTCCommand constructs the `utc` subcommand. Unlike the standalone
// idtimestamp-utc binary, conversion failures exit non-zero here.
func newUTCCommand(logger log.Logger, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "utc <idtimestamp>",
		Short: "Decode an idtimestamp and print it as a UTC date-time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := idstamp.DecodeWithEpoch(args[0], cfg.DefaultEpoch)
			if err != nil {
				return err
			}
			ts, err := idstamp.FormatUTC(ms)
			if err != nil {
				return err
			}
			logger.Debug("formatted idtimestamp", "id", args[0], "unix_ms", ts.Millis)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Last idtimestamp as Unix ms: %d\n", ts.Millis)
			fmt.Fprintf(out, "Last idtimestamp as Unix seconds: %.3f\n", ts.Seconds)
			fmt.Fprintf(out, "Last idtimestamp as UTC: %s\n", ts)
			return nil
		},
	}
}
