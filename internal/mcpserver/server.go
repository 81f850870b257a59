// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes swagsplit capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/swagsplit"
	"github.com/erraggy/swagsplit/internal/cliutil"
	"github.com/erraggy/swagsplit/internal/config"
	"github.com/erraggy/swagsplit/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `swagsplit MCP server: splits Swagger 2.0 JSON documents into per-entity files and resolves reference cycles by pruning properties until the bundler succeeds.

Configuration: defaults come from SWAGSPLIT_* environment variables set in your MCP client config.

Key settings:
- SWAGSPLIT_BUNDLER (default: swagger-cli): external bundler command
- SWAGSPLIT_BUNDLER_TIMEOUT (default: none): bound on each bundler run, e.g. 2m
- SWAGSPLIT_MAX_ATTEMPTS (default: unbounded): bound on bundler runs per resolution
- SWAGSPLIT_NATIVE (default: false): use the in-process bundler instead of the external command`

// tools holds the configuration shared by all tool handlers.
type tools struct {
	cfg    *config.Config
	logger parser.Logger
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger parser.Logger) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "swagsplit", Version: swagsplit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, &tools{cfg: cfg, logger: parser.LoggerOrNop(logger)})
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "split",
		Description: "Split a Swagger 2.0 JSON document into one file per path, parameter, definition and response, next to the source file. Root-local $ref pointers are rewritten to the new files and the rewritten root is written to <source>-changed.json. Properties listed in the optional exclusion table are pruned from definitions. Use keep_paths to split only selected paths.",
	}, t.handleSplit)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "run",
		Description: "Split a Swagger 2.0 JSON document and bundle it, pruning one circular property per attempt until the bundler succeeds. Writes swagger-bundle.json and the updated exclusion table (circular-references.json by default). Fails when the bundler reports something other than a reference cycle, or the same cycle twice. Set native=true to bundle in-process without swagger-cli.",
	}, t.handleRun)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "exclusions",
		Description: "Show an exclusion table (definition name to pruned properties). Set compare to a second table to get a unified diff between them.",
	}, t.handleExclusions)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

func formatCount(n int, noun string) string {
	return cliutil.Plural(n, noun)
}
