package commands

import (
	"fmt"

	"github.com/erraggy/swagsplit/exclusion"
	"github.com/spf13/cobra"
)

func newExclusionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclusions",
		Short: "Inspect exclusion tables",
	}
	cmd.AddCommand(newExclusionsShowCmd(a), newExclusionsDiffCmd())
	return cmd
}

func newExclusionsShowCmd(a *app) *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "show [table.json]",
		Short: "Print an exclusion table as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.ExclusionsFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no exclusion table given and %s is not set", "SWAGSPLIT_EXCLUSIONS_FILE")
			}
			table, err := exclusion.Load(path)
			if err != nil {
				return err
			}
			if sorted {
				table = table.Sorted()
			}
			data, err := table.Format()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&sorted, "sorted", false, "sort definitions and properties")
	return cmd
}

func newExclusionsDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old.json> <new.json>",
		Short: "Show a unified diff between two exclusion tables",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := exclusion.Load(args[0])
			if err != nil {
				return err
			}
			to, err := exclusion.Load(args[1])
			if err != nil {
				return err
			}
			diff, err := exclusion.UnifiedDiff(from, to, args[0], args[1])
			if err != nil {
				return err
			}
			if diff == "" {
				writef(cmd.OutOrStdout(), "No differences.\n")
				return nil
			}
			writef(cmd.OutOrStdout(), "%s", diff)
			return nil
		},
	}
}
