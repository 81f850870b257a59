package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/swagsplit/exclusion"
	"github.com/erraggy/swagsplit/pipeline"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type splitInput struct {
	Source          string   `json:"source"                     jsonschema:"Path to the Swagger 2.0 JSON document to split"`
	Exclusions      string   `json:"exclusions,omitempty"       jsonschema:"Path to an exclusion table whose properties are pruned from definitions"`
	KeepPaths       []string `json:"keep_paths,omitempty"       jsonschema:"Only split these path keys (e.g. /pets). All paths when omitted."`
	PrefixSummaries bool     `json:"prefix_summaries,omitempty" jsonschema:"Prefix operation summaries with their operationId"`
	OutputDir       string   `json:"output_dir,omitempty"       jsonschema:"Directory receiving the split files. Defaults to the source directory."`
}

type splitOutput struct {
	ChangedRoot   string         `json:"changed_root"`
	FileCount     int            `json:"file_count"`
	Files         map[string]int `json:"files"`
	Renamed       int            `json:"renamed,omitempty"`
	RefsRewritten int            `json:"refs_rewritten"`
	Summaries     int            `json:"summaries_prefixed,omitempty"`
	Summary       string         `json:"summary"`
}

func (t *tools) handleSplit(_ context.Context, _ *mcp.CallToolRequest, input splitInput) (*mcp.CallToolResult, splitOutput, error) {
	if input.Source == "" {
		return errResult(fmt.Errorf("source is required")), splitOutput{}, nil
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(t.logger),
		pipeline.WithKeepPaths(input.KeepPaths...),
		pipeline.WithPrefixSummaries(input.PrefixSummaries),
		pipeline.WithOutputDir(input.OutputDir),
	}
	if input.Exclusions != "" {
		table, err := exclusion.Load(input.Exclusions)
		if err != nil {
			return errResult(err), splitOutput{}, nil
		}
		opts = append(opts, pipeline.WithExclusions(table))
	}

	p, err := pipeline.New(input.Source, opts...)
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}
	res, err := p.Split()
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}

	output := splitOutput{
		ChangedRoot:   res.ChangedRoot,
		FileCount:     res.Split.Count(),
		Files:         make(map[string]int, len(res.Split.Files)),
		Renamed:       res.Split.Renamed,
		RefsRewritten: res.Rewritten,
		Summaries:     res.Summaries,
	}
	for coll, files := range res.Split.Files {
		output.Files[coll] = len(files)
	}
	output.Summary = "Split into " + formatCount(output.FileCount, "file") +
		" and rewrote " + formatCount(output.RefsRewritten, "reference") + "."
	if output.Renamed > 0 {
		output.Summary += " " + formatCount(output.Renamed, "file name") + " got a collision suffix."
	}
	return nil, output, nil
}
