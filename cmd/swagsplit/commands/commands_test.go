package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/swagsplit"
	"github.com/erraggy/swagsplit/exclusion"
	"github.com/erraggy/swagsplit/internal/config"
	"github.com/erraggy/swagsplit/internal/testutil"
	"github.com/erraggy/swagsplit/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd(&stdout, &stderr)
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvBundler, config.EnvBundlerTimeout, config.EnvMaxAttempts,
		config.EnvBundleOutput, config.EnvExclusionsFile, config.EnvNative,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestRootCmdHasSubcommands(t *testing.T) {
	root := NewRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	for _, path := range [][]string{
		{"run"}, {"split"}, {"exclusions", "show"}, {"exclusions", "diff"}, {"mcp"}, {"version"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "swagsplit "+swagsplit.Version()+"\n", stdout)

	stdout, _, err = execute(t, "version", "--build")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Go Version:")
}

func TestSplitCmd(t *testing.T) {
	clearEnv(t)
	source := testutil.WriteSource(t, "petstore.json", testutil.Petstore)
	dir := filepath.Dir(source)

	stdout, _, err := execute(t, "--quiet", "split", source)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Changed root: "+filepath.Join(dir, "petstore-changed.json"))
	assert.Contains(t, stdout, "Split into 6 files")
	assert.FileExists(t, filepath.Join(dir, "paths", "pets.json"))
	assert.NoFileExists(t, filepath.Join(dir, "swagger-bundle.json"))
}

func TestSplitCmd_RequiresSource(t *testing.T) {
	_, _, err := execute(t, "split")
	assert.Error(t, err)
}

func TestRunCmd_Native(t *testing.T) {
	clearEnv(t)
	source := testutil.WriteSource(t, "orders.json", testutil.Orders)
	dir := filepath.Dir(source)

	stdout, stderr, err := execute(t, "run", "--native", source)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Excluded Customer.orders\n")
	assert.Contains(t, stdout, "Excluded Item.order\n")
	assert.Contains(t, stdout, "Bundled after 3 attempts (2 properties excluded")
	assert.Contains(t, stderr, "Attempt 3: bundling")
	assert.FileExists(t, filepath.Join(dir, "swagger-bundle.json"))

	table, err := exclusion.Load(filepath.Join(dir, "circular-references.json"))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Count())

	// the saved table is picked up by the next run
	stdout, _, err = execute(t, "--quiet", "run", "--native", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bundled after 1 attempt (0 properties excluded")
}

func TestRunCmd_ExclusionsArgument(t *testing.T) {
	clearEnv(t)
	source := testutil.WriteSource(t, "orders.json", testutil.Orders)
	tablePath := testutil.WriteTempJSON(t, map[string][]string{"Customer": {"orders"}})

	stdout, _, err := execute(t, "--quiet", "run", "--native", source, tablePath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Exclusions: "+tablePath)
	assert.Contains(t, stdout, "Bundled after 2 attempts (1 property excluded")

	table, err := exclusion.Load(tablePath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer", "Item"}, table.Definitions())

	_, _, err = execute(t, "run", "--exclusions", tablePath, source, tablePath)
	assert.Error(t, err)
}

func TestRunCmd_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvNative, "true")
	t.Setenv(config.EnvMaxAttempts, "1")
	source := testutil.WriteSource(t, "orders.json", testutil.Orders)

	_, stderr, err := execute(t, "run", source)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)
	assert.Contains(t, stderr, "Stopped after 1 attempt")

	_, _, err = execute(t, "--quiet", "run", "--max-attempts", "5", source)
	assert.NoError(t, err)
}

func TestRunCmd_BundleOutputFromEnv(t *testing.T) {
	clearEnv(t)
	out := filepath.Join(t.TempDir(), "dist", "api.json")
	t.Setenv(config.EnvBundleOutput, out)
	source := testutil.WriteSource(t, "petstore.json", testutil.Petstore)

	stdout, _, err := execute(t, "--quiet", "run", "--native", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bundle: "+out)
	assert.FileExists(t, out)
}

func TestExclusionsCmds(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte(`{"Order":["items","customer"]}`), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(`{"Order":["items","customer"]}`), 0o600))

	stdout, _, err := execute(t, "exclusions", "show", "--sorted", a)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"Order\": [\n    \"customer\",\n    \"items\"\n  ]\n}\n", stdout)

	stdout, _, err = execute(t, "exclusions", "diff", a, b)
	require.NoError(t, err)
	assert.Equal(t, "No differences.\n", stdout)

	require.NoError(t, os.WriteFile(b, []byte(`{"Order":["items","customer"],"Item":["order"]}`), 0o600))
	stdout, _, err = execute(t, "exclusions", "diff", a, b)
	require.NoError(t, err)
	assert.Contains(t, stdout, "+++ "+b)
	assert.Contains(t, stdout, `+  "Item": [`)
}

func TestExclusionsShow_NeedsPath(t *testing.T) {
	clearEnv(t)
	_, _, err := execute(t, "exclusions", "show")
	assert.Error(t, err)
}
