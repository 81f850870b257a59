package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/erraggy/swagsplit/bundler"
	"github.com/erraggy/swagsplit/exclusion"
	"github.com/erraggy/swagsplit/internal/cliutil"
	"github.com/erraggy/swagsplit/pipeline"
	"github.com/spf13/cobra"
)

type runFlags struct {
	splitFlags
	bundleOutput string
	bundler      string
	timeout      time.Duration
	maxAttempts  int
	native       bool
}

func newRunCmd(a *app) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run <swagger.json> [exclusions.json]",
		Short: "Split and bundle a document, excluding circular properties until the bundle succeeds",
		Example: `  swagsplit run api/swagger.json
  swagsplit run api/swagger.json api/circular-references.json
  swagsplit run --native --keep-path /pets api/swagger.json
  swagsplit run --timeout 2m --bundle-output dist/api.json api/swagger.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.applyConfig(cmd, a)
			if len(args) == 2 {
				if cmd.Flags().Changed("exclusions") {
					return fmt.Errorf("exclusion table given both as argument and --exclusions")
				}
				flags.exclusions = args[1]
			}
			return runPipeline(cmd, a, args[0], flags)
		},
	}
	fs := cmd.Flags()
	flags.register(fs)
	fs.StringVarP(&flags.bundleOutput, "bundle-output", "o", "", "bundle file (default swagger-bundle.json next to the source)")
	fs.StringVar(&flags.bundler, "bundler", bundler.DefaultCommand, "external bundler command")
	fs.DurationVar(&flags.timeout, "timeout", 0, "bound on each bundler run (0 waits indefinitely)")
	fs.IntVar(&flags.maxAttempts, "max-attempts", 0, "maximum bundler runs (0 is unbounded)")
	fs.BoolVar(&flags.native, "native", false, "bundle in-process instead of running the external bundler")
	return cmd
}

// applyConfig fills flags the user did not set from the environment configuration.
func (f *runFlags) applyConfig(cmd *cobra.Command, a *app) {
	fs := cmd.Flags()
	if !fs.Changed("exclusions") {
		f.exclusions = a.cfg.ExclusionsFile
	}
	if !fs.Changed("bundle-output") {
		f.bundleOutput = a.cfg.BundleOutput
	}
	if !fs.Changed("bundler") {
		f.bundler = a.cfg.Bundler
	}
	if !fs.Changed("timeout") {
		f.timeout = a.cfg.BundlerTimeout
	}
	if !fs.Changed("max-attempts") {
		f.maxAttempts = a.cfg.MaxAttempts
	}
	if !fs.Changed("native") {
		f.native = a.cfg.Native
	}
}

func runPipeline(cmd *cobra.Command, a *app, source string, flags runFlags) error {
	if flags.exclusions == "" {
		flags.exclusions = filepath.Join(filepath.Dir(source), pipeline.DefaultExclusionsFile)
	}
	table, err := exclusion.Load(flags.exclusions)
	if err != nil {
		return err
	}

	var svc bundler.Service
	if flags.native {
		svc = bundler.NewNative(bundler.WithNativeLogger(a.logger))
	} else {
		svc = bundler.NewCLI(
			bundler.WithCommand(flags.bundler),
			bundler.WithTimeout(flags.timeout),
			bundler.WithCLILogger(a.logger),
		)
	}

	p, err := pipeline.New(source,
		pipeline.WithBundler(svc),
		pipeline.WithExclusions(table),
		pipeline.WithExclusionsPath(flags.exclusions),
		pipeline.WithBundleOutput(flags.bundleOutput),
		pipeline.WithKeepPaths(flags.keepPaths...),
		pipeline.WithPrefixSummaries(flags.prefixSummaries),
		pipeline.WithMaxAttempts(flags.maxAttempts),
		pipeline.WithLogger(a.logger),
		pipeline.WithStateHandler(func(s pipeline.State, attempt int) {
			if s == pipeline.Bundling {
				a.progress("Attempt %d: bundling\n", attempt)
			}
		}),
	)
	if err != nil {
		return err
	}

	res, err := p.Run(cmd.Context())
	if err != nil {
		a.progress("Stopped after %s in %s\n", cliutil.Plural(res.Attempts, "attempt"), cliutil.FormatElapsed(res.Elapsed))
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range res.Cycles {
		writef(out, "Excluded %s\n", c)
	}
	writef(out, "Bundle: %s\n", res.BundlePath)
	writef(out, "Exclusions: %s\n", res.ExclusionsPath)
	writef(out, "Bundled after %s (%s excluded, %s split) in %s\n",
		cliutil.Plural(res.Attempts, "attempt"),
		cliutil.Plural(len(res.Cycles), "property"),
		cliutil.Plural(res.Files, "file"),
		cliutil.FormatElapsed(res.Elapsed))
	return nil
}
