package commands

import (
	"github.com/erraggy/swagsplit"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				writef(cmd.OutOrStdout(), "%s", swagsplit.BuildInfo())
				return nil
			}
			writef(cmd.OutOrStdout(), "swagsplit %s\n", swagsplit.Version())
			return nil
		},
	}
	cmd.Flags().BoolVar(&verbose, "build", false, "include commit and Go version")
	return cmd
}
