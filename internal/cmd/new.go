package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forestrie/canopy/pkg/idstamp"
	"github.com/forestrie/canopy/pkg/log"
)

// newNewCommand constructs the `new` subcommand, which mints fresh
// idtimestamps from the local clock.
func newNewCommand(logger log.Logger) *cobra.Command {
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Generate fresh idtimestamps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			short, _ := cmd.Flags().GetBool("short")
			if count < 1 {
				return fmt.Errorf("invalid --count %d; expected at least 1", count)
			}

			g := idstamp.NewGenerator()
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				id, err := g.Next()
				if err != nil {
					return err
				}
				logger.Debug("generated idtimestamp", "id", id.String(), "unix_ms", id.Millis())
				ts, err := idstamp.FormatUTC(id.Millis())
				if err != nil {
					return err
				}
				rendered := id.String()
				if short {
					rendered = id.Short()
				}
				fmt.Fprintf(out, "%s\t%s\n", rendered, ts)
			}
			return nil
		},
	}
	newCmd.Flags().Int("count", 1, "Number of idtimestamps to generate")
	newCmd.Flags().Bool("short", false, "Print the 16-char payload-only form")
	return newCmd
}
