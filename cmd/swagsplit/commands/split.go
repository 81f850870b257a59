package commands

import (
	"github.com/erraggy/swagsplit/internal/cliutil"
	"github.com/erraggy/swagsplit/pipeline"
	"github.com/spf13/cobra"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		flags     splitFlags
		outputDir string
	)
	cmd := &cobra.Command{
		Use:   "split <swagger.json>",
		Short: "Split a document into per-entity files without bundling",
		Example: `  swagsplit split api/swagger.json
  swagsplit split --exclusions circular-references.json --output-dir build api/swagger.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("exclusions") {
				flags.exclusions = a.cfg.ExclusionsFile
			}
			table, err := loadTable(flags.exclusions)
			if err != nil {
				return err
			}

			p, err := pipeline.New(args[0],
				pipeline.WithExclusions(table),
				pipeline.WithKeepPaths(flags.keepPaths...),
				pipeline.WithPrefixSummaries(flags.prefixSummaries),
				pipeline.WithOutputDir(outputDir),
				pipeline.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			res, err := p.Split()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writef(out, "Changed root: %s\n", res.ChangedRoot)
			writef(out, "Split into %s, rewrote %s\n",
				cliutil.Plural(res.Split.Count(), "file"),
				cliutil.Plural(res.Rewritten, "reference"))
			if res.Split.Renamed > 0 {
				a.progress("%s renamed to avoid collisions\n", cliutil.Plural(res.Split.Renamed, "file"))
			}
			return nil
		},
	}
	fs := cmd.Flags()
	flags.register(fs)
	fs.StringVarP(&outputDir, "output-dir", "d", "", "directory receiving the split files (default the source directory)")
	return cmd
}
