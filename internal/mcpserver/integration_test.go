package mcpserver

import (
	"context"
	"encoding/json"
	"path/filepath"
	"slices"
	"testing"

	"github.com/erraggy/swagsplit/exclusion"
	"github.com/erraggy/swagsplit/internal/config"
	"github.com/erraggy/swagsplit/internal/testutil"
	"github.com/erraggy/swagsplit/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T, cfg *config.Config) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "swagsplit-test", Version: "test"},
		nil,
	)
	registerAllTools(server, &tools{cfg: cfg, logger: parser.NopLogger{}})

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t, &config.Config{})

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Tools, 3)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	for _, name := range []string{"split", "run", "exclusions"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}
}

func TestIntegration_CallTool_Split(t *testing.T) {
	session := startTestSession(t, &config.Config{})
	source := testutil.WriteSource(t, "petstore.json", testutil.Petstore)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "split",
		Arguments: map[string]any{"source": source},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(6), structured["file_count"])
	assert.Equal(t, filepath.Join(filepath.Dir(source), "petstore-changed.json"), structured["changed_root"])
	assert.FileExists(t, filepath.Join(filepath.Dir(source), "definitions", "Pet.json"))
	assert.Contains(t, structured["summary"], "Split into 6 files")
}

func TestIntegration_CallTool_RunNative(t *testing.T) {
	session := startTestSession(t, &config.Config{Native: true})
	source := testutil.WriteSource(t, "orders.json", testutil.Orders)
	tablePath := filepath.Join(filepath.Dir(source), "cycles.json")

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "run",
		Arguments: map[string]any{"source": source, "exclusions": tablePath},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(3), structured["attempts"])
	assert.Equal(t, tablePath, structured["exclusions_path"])
	assert.Len(t, structured["cycles"], 2)

	table, err := exclusion.Load(tablePath)
	require.NoError(t, err)
	assert.True(t, table.Contains("Customer", "orders"))
	assert.True(t, table.Contains("Item", "order"))
}

func TestIntegration_CallTool_RunRejectsBadTimeout(t *testing.T) {
	session := startTestSession(t, &config.Config{})
	source := testutil.WriteSource(t, "orders.json", testutil.Orders)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "run",
		Arguments: map[string]any{"source": source, "timeout": "soon"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestIntegration_CallTool_Exclusions(t *testing.T) {
	session := startTestSession(t, &config.Config{})
	a := testutil.WriteTempJSON(t, map[string][]string{"Order": {"customer"}})
	b := testutil.WriteTempJSON(t, map[string][]string{"Order": {"customer", "items"}})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "exclusions",
		Arguments: map[string]any{"path": a, "compare": b},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(1), structured["definitions"])
	assert.Equal(t, float64(1), structured["properties"])
	assert.Contains(t, structured["diff"], `+    "items"`)
}

func TestIntegration_CallTool_MissingSource(t *testing.T) {
	session := startTestSession(t, &config.Config{})

	for _, name := range []string{"split", "run"} {
		result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      name,
			Arguments: map[string]any{"source": ""},
		})
		require.NoError(t, err)
		assert.True(t, result.IsError, name)
	}
}

func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	require.NotNil(t, result.StructuredContent)
	data, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}
