package pipeline

import (
	"github.com/erraggy/swagsplit/bundler"
	"github.com/erraggy/swagsplit/exclusion"
	"github.com/erraggy/swagsplit/parser"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBundler sets the bundler service. The default is bundler.NewCLI().
func WithBundler(b bundler.Service) Option {
	return func(p *Pipeline) {
		if b != nil {
			p.bundler = b
		}
	}
}

// WithExclusions starts the run from table. When the table was loaded from a
// file, also pass that file to WithExclusionsPath so it is updated in place.
func WithExclusions(table *exclusion.Table) Option {
	return func(p *Pipeline) {
		if table != nil {
			p.table = table
		}
	}
}

// WithExclusionsPath sets where the exclusion table is saved. The default is
// DefaultExclusionsFile next to the source document.
func WithExclusionsPath(path string) Option {
	return func(p *Pipeline) {
		p.tablePath = path
	}
}

// WithBundleOutput sets where the bundle is saved. The default is
// DefaultBundleFile next to the source document.
func WithBundleOutput(path string) Option {
	return func(p *Pipeline) {
		p.bundlePath = path
	}
}

// WithOutputDir sets the directory receiving the split collections and the
// changed root. The default is the source document's directory.
func WithOutputDir(dir string) Option {
	return func(p *Pipeline) {
		p.outputDir = dir
	}
}

// WithKeepPaths restricts the split to the listed path keys.
func WithKeepPaths(paths ...string) Option {
	return func(p *Pipeline) {
		p.keepPaths = append(p.keepPaths, paths...)
	}
}

// WithPrefixSummaries prefixes operation summaries with their operationId.
func WithPrefixSummaries(enabled bool) Option {
	return func(p *Pipeline) {
		p.prefixSummaries = enabled
	}
}

// WithMaxAttempts bounds the number of bundler runs. Zero means unbounded.
func WithMaxAttempts(n int) Option {
	return func(p *Pipeline) {
		if n >= 0 {
			p.maxAttempts = n
		}
	}
}

// WithLogger sets the logger shared by the loop and its components.
func WithLogger(l parser.Logger) Option {
	return func(p *Pipeline) {
		p.logger = parser.LoggerOrNop(l)
	}
}

// WithStateHandler registers a callback for state transitions.
func WithStateHandler(h StateHandler) Option {
	return func(p *Pipeline) {
		p.onState = h
	}
}
