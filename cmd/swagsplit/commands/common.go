package commands

import (
	"io"

	"github.com/erraggy/swagsplit/exclusion"
	"github.com/erraggy/swagsplit/internal/cliutil"
	"github.com/spf13/pflag"
)

func writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// splitFlags are shared by the run and split commands.
type splitFlags struct {
	exclusions      string
	keepPaths       []string
	prefixSummaries bool
}

func (f *splitFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.exclusions, "exclusions", "e", "", "exclusion table (default circular-references.json next to the source)")
	fs.StringSliceVar(&f.keepPaths, "keep-path", nil, "only split this path key (repeatable)")
	fs.BoolVar(&f.prefixSummaries, "prefix-summaries", false, "prefix operation summaries with their operationId")
}

// loadTable loads the exclusion table at path, or returns nil when path is empty.
func loadTable(path string) (*exclusion.Table, error) {
	if path == "" {
		return nil, nil
	}
	return exclusion.Load(path)
}
