package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/swagsplit/bundler"
	"github.com/erraggy/swagsplit/circular"
	"github.com/erraggy/swagsplit/exclusion"
	"github.com/erraggy/swagsplit/internal/fileutil"
	"github.com/erraggy/swagsplit/internal/pathutil"
	"github.com/erraggy/swagsplit/oaserrors"
	"github.com/erraggy/swagsplit/parser"
	"github.com/erraggy/swagsplit/rewriter"
	"github.com/erraggy/swagsplit/splitter"
	"go.yaml.in/yaml/v4"
)

const (
	// DefaultBundleFile is the bundle file name used when no output is given.
	DefaultBundleFile = "swagger-bundle.json"
	// DefaultExclusionsFile is the exclusion table file name used when no
	// table path is given.
	DefaultExclusionsFile = "circular-references.json"
	// ChangedSuffix is appended to the source base name for the changed root.
	ChangedSuffix = "-changed"
)

// ChangedRootPath returns the path of the rewritten root for source:
// "api/petstore.json" becomes "api/petstore-changed.json".
func ChangedRootPath(source string) string {
	base := source
	if ext := filepath.Ext(source); strings.EqualFold(ext, pathutil.EntityExt) {
		base = strings.TrimSuffix(source, ext)
	}
	return base + ChangedSuffix + pathutil.EntityExt
}

// Pipeline splits a source document and drives a bundler until the split
// tree bundles without reference cycles.
type Pipeline struct {
	source     string
	outputDir  string
	bundlePath string
	tablePath  string

	bundler         bundler.Service
	table           *exclusion.Table
	keepPaths       []string
	prefixSummaries bool
	maxAttempts     int
	logger          parser.Logger
	onState         StateHandler
}

// Result describes a finished run.
type Result struct {
	// Attempts is the number of bundler runs.
	Attempts int
	// Cycles lists the exclusions added during the run, in order.
	Cycles []circular.Cycle
	// ChangedRoot is the rewritten root document handed to the bundler.
	ChangedRoot string
	// BundlePath is where the bundle was saved.
	BundlePath string
	// ExclusionsPath is where the exclusion table was saved.
	ExclusionsPath string
	// Files is the number of entity files written by the last attempt.
	Files int
	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// SplitResult describes one Splitting phase.
type SplitResult struct {
	// ChangedRoot is the path of the rewritten root document.
	ChangedRoot string
	// Split lists the entity files written.
	Split *splitter.Result
	// Rewritten is the number of root-local references rewritten.
	Rewritten int
	// Summaries is the number of operation summaries prefixed.
	Summaries int

	namer *splitter.Namer
}

// New validates the configuration for source and returns a Pipeline.
func New(source string, opts ...Option) (*Pipeline, error) {
	if strings.TrimSpace(source) == "" {
		return nil, &oaserrors.ConfigError{Option: "source", Message: "source document path is required"}
	}
	abs, err := filepath.Abs(source)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "source", Value: source, Cause: err}
	}

	p := &Pipeline{
		source: abs,
		table:  exclusion.New(),
		logger: parser.NopLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.bundler == nil {
		p.bundler = bundler.NewCLI(bundler.WithCLILogger(p.logger))
	}

	dir := filepath.Dir(abs)
	if p.outputDir == "" {
		p.outputDir = dir
	}
	if p.bundlePath == "" {
		p.bundlePath = filepath.Join(dir, DefaultBundleFile)
	}
	if p.tablePath == "" {
		p.tablePath = filepath.Join(dir, DefaultExclusionsFile)
	}

	outputs := []struct {
		option string
		path   *string
	}{
		{"bundle-output", &p.bundlePath},
		{"exclusions", &p.tablePath},
	}
	for _, out := range outputs {
		clean, err := pathutil.SanitizeOutputPath(*out.path)
		if err != nil {
			return nil, &oaserrors.ConfigError{Option: out.option, Value: *out.path, Cause: err}
		}
		if err := pathutil.RejectInputOverwrite(clean, abs); err != nil {
			return nil, &oaserrors.ConfigError{Option: out.option, Value: *out.path, Cause: err}
		}
		*out.path = clean
	}
	return p, nil
}

// Exclusions returns the exclusion table owned by the pipeline.
func (p *Pipeline) Exclusions() *exclusion.Table {
	return p.table
}

// ChangedRoot returns where the rewritten root document is written.
func (p *Pipeline) ChangedRoot() string {
	return filepath.Join(p.outputDir, filepath.Base(ChangedRootPath(p.source)))
}

// Split runs one Splitting phase from the pristine source document.
func (p *Pipeline) Split() (*SplitResult, error) {
	data, err := os.ReadFile(p.source)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: p.source, Message: "cannot read source document", Cause: err}
	}
	pristine, err := parser.Parse(data, p.source)
	if err != nil {
		return nil, err
	}

	resolver := circular.NewResolver(p.table, p.logger)
	specs := splitter.DefaultSpecs(p.keepPaths, func(key string, value *yaml.Node) {
		resolver.Resolve(key, value)
	})
	namer := splitter.NewNamer()
	namer.Plan(pristine.Root, specs)

	changed := p.ChangedRoot()
	rw := rewriter.New(filepath.Base(changed), rewriter.WithFileName(namer.FileName))
	doc, err := parser.Parse(rw.Rewrite(data), p.source)
	if err != nil {
		return nil, err
	}

	res := &SplitResult{ChangedRoot: changed, Rewritten: rw.Rewritten(), namer: namer}
	if p.prefixSummaries {
		if res.Summaries, err = splitter.PrefixSummaries(doc.Root); err != nil {
			return nil, fmt.Errorf("pipeline: prefixing summaries: %w", err)
		}
	}

	sp := splitter.New(p.outputDir, splitter.WithLogger(p.logger), splitter.WithNamer(namer))
	if res.Split, err = sp.Split(doc.Root, specs); err != nil {
		return nil, err
	}

	out, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("pipeline: encoding changed root: %w", err)
	}
	if err := fileutil.WriteFile(changed, append(out, '\n')); err != nil {
		return nil, err
	}
	p.logger.Debug("split complete", "files", res.Split.Count(), "refs_rewritten", res.Rewritten, "changed_root", changed)
	return res, nil
}

// Run alternates Splitting and Bundling until the bundler succeeds, then
// saves the bundle and the exclusion table.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{BundlePath: p.bundlePath, ExclusionsPath: p.tablePath}
	defer func() { res.Elapsed = time.Since(start) }()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if p.maxAttempts > 0 && attempt > p.maxAttempts {
			return res, &oaserrors.ResourceLimitError{
				ResourceType: "attempts",
				Limit:        int64(p.maxAttempts),
				Actual:       int64(attempt),
				Message:      fmt.Sprintf("%d cycles excluded so far", len(res.Cycles)),
			}
		}
		res.Attempts = attempt
		log := p.logger.With("attempt", attempt)

		p.enter(Splitting, attempt)
		split, err := p.Split()
		if err != nil {
			return res, err
		}
		res.ChangedRoot = split.ChangedRoot
		res.Files = split.Split.Count()

		p.enter(Bundling, attempt)
		outcome, err := p.bundler.Bundle(ctx, split.ChangedRoot)
		if err != nil {
			return res, fmt.Errorf("pipeline: attempt %d: %w", attempt, err)
		}

		if outcome.Succeeded() {
			p.enter(Done, attempt)
			if err := fileutil.WriteFile(p.bundlePath, outcome.Bundle); err != nil {
				return res, err
			}
			if err := p.table.Save(p.tablePath); err != nil {
				return res, err
			}
			log.Info("bundle written", "bundle", p.bundlePath, "exclusions", p.tablePath, "cycles", len(res.Cycles))
			return res, nil
		}

		p.enter(Refining, attempt)
		cycle, err := circular.ParseDiagnostic(outcome.Diagnostic)
		if err != nil {
			return res, err
		}
		cycle.Definition = definitionKey(split.namer, cycle.Definition)
		if !p.table.Add(cycle.Definition, cycle.Property) {
			return res, &oaserrors.NoProgressError{Definition: cycle.Definition, Property: cycle.Property, Attempt: attempt}
		}
		res.Cycles = append(res.Cycles, cycle)
		log.Info("excluding circular property", "definition", cycle.Definition, "property", cycle.Property)
	}
}

func (p *Pipeline) enter(state State, attempt int) {
	p.logger.Debug("state", "state", state.String(), "attempt", attempt)
	if p.onState != nil {
		p.onState(state, attempt)
	}
}

// definitionKey maps a definition named by a diagnostic back to its key in
// the source document. Diagnostics that point into split files carry the file
// name, which differs from the key when the name was sanitized or suffixed.
func definitionKey(namer *splitter.Namer, name string) string {
	if namer == nil || namer.Has(pathutil.CollectionDefinitions, name) {
		return name
	}
	if key, ok := namer.KeyFor(pathutil.CollectionDefinitions, name+pathutil.EntityExt); ok {
		return key
	}
	return name
}
