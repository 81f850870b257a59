package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/swagsplit/exclusion"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type exclusionsInput struct {
	Path    string `json:"path"              jsonschema:"Path to the exclusion table (JSON or YAML)"`
	Compare string `json:"compare,omitempty" jsonschema:"Second exclusion table to diff against path"`
}

type exclusionsOutput struct {
	Definitions int                 `json:"definitions"`
	Properties  int                 `json:"properties"`
	Table       map[string][]string `json:"table"`
	Diff        string              `json:"diff,omitempty"`
	Summary     string              `json:"summary"`
}

func (t *tools) handleExclusions(_ context.Context, _ *mcp.CallToolRequest, input exclusionsInput) (*mcp.CallToolResult, exclusionsOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), exclusionsOutput{}, nil
	}
	table, err := exclusion.Load(input.Path)
	if err != nil {
		return errResult(err), exclusionsOutput{}, nil
	}

	output := exclusionsOutput{
		Definitions: table.Len(),
		Properties:  table.Count(),
		Table:       make(map[string][]string, table.Len()),
	}
	for _, def := range table.Definitions() {
		output.Table[def] = table.Properties(def)
	}
	output.Summary = formatCount(output.Properties, "property") + " excluded from " +
		formatCount(output.Definitions, "definition") + "."

	if input.Compare != "" {
		other, err := exclusion.Load(input.Compare)
		if err != nil {
			return errResult(err), exclusionsOutput{}, nil
		}
		output.Diff, err = exclusion.UnifiedDiff(table, other, input.Path, input.Compare)
		if err != nil {
			return errResult(err), exclusionsOutput{}, nil
		}
		if output.Diff == "" {
			output.Summary += " Tables hold the same exclusions."
		}
	}
	return nil, output, nil
}
