// Package commands implements the swagsplit command tree.
package commands

import (
	"io"
	"log/slog"

	"github.com/erraggy/swagsplit/internal/config"
	"github.com/erraggy/swagsplit/parser"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand once the persistent
// flags have been applied.
type app struct {
	stdout io.Writer
	stderr io.Writer

	verbose bool
	quiet   bool
	envFile string

	cfg    *config.Config
	logger parser.Logger
}

// NewRootCmd returns the swagsplit root command writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: parser.NopLogger{}}

	root := &cobra.Command{
		Use:   "swagsplit",
		Short: "Split Swagger 2.0 documents and resolve circular references",
		Long: `swagsplit splits a Swagger 2.0 JSON document into one file per path, parameter,
definition and response, then bundles the split tree with swagger-cli. Every
circular reference reported by the bundler is excluded and the split is retried
until the bundle succeeds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress logging and progress output")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file seeding SWAGSPLIT_* variables")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(
		newRunCmd(a),
		newSplitCmd(a),
		newExclusionsCmd(a),
		newMCPCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup() error {
	switch {
	case a.quiet:
		a.logger = parser.NopLogger{}
	case a.verbose:
		a.logger = parser.NewTextLogger(a.stderr, slog.LevelDebug)
	default:
		a.logger = parser.NewTextLogger(a.stderr, slog.LevelInfo)
	}
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	a.cfg = config.Load(a.logger)
	return nil
}

// progress writes a line to stderr unless --quiet is set.
func (a *app) progress(format string, args ...any) {
	if a.quiet {
		return
	}
	writef(a.stderr, format, args...)
}
