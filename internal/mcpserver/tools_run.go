package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/erraggy/swagsplit/bundler"
	"github.com/erraggy/swagsplit/exclusion"
	"github.com/erraggy/swagsplit/pipeline"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type runInput struct {
	Source          string   `json:"source"                     jsonschema:"Path to the Swagger 2.0 JSON document"`
	Exclusions      string   `json:"exclusions,omitempty"       jsonschema:"Exclusion table to start from and update. Defaults to circular-references.json next to the source."`
	BundleOutput    string   `json:"bundle_output,omitempty"    jsonschema:"Where to write the bundle. Defaults to swagger-bundle.json next to the source."`
	KeepPaths       []string `json:"keep_paths,omitempty"       jsonschema:"Only split these path keys"`
	PrefixSummaries bool     `json:"prefix_summaries,omitempty" jsonschema:"Prefix operation summaries with their operationId"`
	Native          bool     `json:"native,omitempty"           jsonschema:"Bundle in-process instead of running the external bundler"`
	MaxAttempts     int      `json:"max_attempts,omitempty"     jsonschema:"Maximum number of bundler runs (0 = configured default)"`
	Timeout         string   `json:"timeout,omitempty"          jsonschema:"Bound on each external bundler run, e.g. 90s"`
}

type cycleOutput struct {
	Definition string `json:"definition"`
	Property   string `json:"property"`
}

type runOutput struct {
	Attempts       int           `json:"attempts"`
	Cycles         []cycleOutput `json:"cycles,omitempty"`
	BundlePath     string        `json:"bundle_path"`
	ExclusionsPath string        `json:"exclusions_path"`
	ElapsedMS      int64         `json:"elapsed_ms"`
	Summary        string        `json:"summary"`
}

func (t *tools) handleRun(ctx context.Context, _ *mcp.CallToolRequest, input runInput) (*mcp.CallToolResult, runOutput, error) {
	if input.Source == "" {
		return errResult(fmt.Errorf("source is required")), runOutput{}, nil
	}

	// Apply config defaults.
	if input.Exclusions == "" {
		input.Exclusions = t.cfg.ExclusionsFile
	}
	if input.BundleOutput == "" {
		input.BundleOutput = t.cfg.BundleOutput
	}
	if input.MaxAttempts <= 0 {
		input.MaxAttempts = t.cfg.MaxAttempts
	}
	timeout := t.cfg.BundlerTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil || d < 0 {
			return errResult(fmt.Errorf("invalid timeout %q", input.Timeout)), runOutput{}, nil
		}
		timeout = d
	}

	var svc bundler.Service
	if input.Native || t.cfg.Native {
		svc = bundler.NewNative(bundler.WithNativeLogger(t.logger))
	} else {
		svc = bundler.NewCLI(
			bundler.WithCommand(t.cfg.Bundler),
			bundler.WithTimeout(timeout),
			bundler.WithCLILogger(t.logger),
		)
	}

	opts := []pipeline.Option{
		pipeline.WithBundler(svc),
		pipeline.WithLogger(t.logger),
		pipeline.WithKeepPaths(input.KeepPaths...),
		pipeline.WithPrefixSummaries(input.PrefixSummaries),
		pipeline.WithMaxAttempts(input.MaxAttempts),
		pipeline.WithBundleOutput(input.BundleOutput),
	}
	if input.Exclusions == "" {
		input.Exclusions = filepath.Join(filepath.Dir(input.Source), pipeline.DefaultExclusionsFile)
	}
	table, err := exclusion.Load(input.Exclusions)
	if err != nil {
		return errResult(err), runOutput{}, nil
	}
	opts = append(opts, pipeline.WithExclusions(table), pipeline.WithExclusionsPath(input.Exclusions))

	p, err := pipeline.New(input.Source, opts...)
	if err != nil {
		return errResult(err), runOutput{}, nil
	}
	res, err := p.Run(ctx)
	if err != nil {
		return errResult(fmt.Errorf("after %s: %w", formatCount(res.Attempts, "attempt"), err)), runOutput{}, nil
	}

	output := runOutput{
		Attempts:       res.Attempts,
		BundlePath:     res.BundlePath,
		ExclusionsPath: res.ExclusionsPath,
		ElapsedMS:      res.Elapsed.Milliseconds(),
	}
	for _, c := range res.Cycles {
		output.Cycles = append(output.Cycles, cycleOutput{Definition: c.Definition, Property: c.Property})
	}
	output.Summary = "Bundled after " + formatCount(output.Attempts, "attempt") +
		", excluding " + formatCount(len(output.Cycles), "circular property") + "."
	return nil, output, nil
}
