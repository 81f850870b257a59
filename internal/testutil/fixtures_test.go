package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestFixturesAreValidJSON(t *testing.T) {
	for name, src := range map[string]string{"Petstore": Petstore, "Orders": Orders} {
		t.Run(name, func(t *testing.T) {
			var v map[string]any
			require.NoError(t, json.Unmarshal([]byte(src), &v))
			assert.Equal(t, "2.0", v["swagger"])
			assert.Contains(t, v, "definitions")
		})
	}
}

func TestWriteSource(t *testing.T) {
	path := WriteSource(t, "api.json", Petstore)
	assert.Equal(t, "api.json", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Petstore, string(data))
}

func TestWriteTempYAMLAndJSON(t *testing.T) {
	in := map[string][]string{"Order": {"items"}}

	data, err := os.ReadFile(WriteTempYAML(t, in))
	require.NoError(t, err)
	var fromYAML map[string][]string
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, in, fromYAML)

	data, err = os.ReadFile(WriteTempJSON(t, in))
	require.NoError(t, err)
	var fromJSON map[string][]string
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, in, fromJSON)
}

func TestScriptedBundler(t *testing.T) {
	root := WriteSource(t, "root.json", `{"swagger":"2.0"}`)
	b := NewScriptedBundler("first", "second")
	ctx := context.Background()

	out, err := b.Bundle(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, "first", out.Diagnostic)

	out, err = b.Bundle(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, "second", out.Diagnostic)

	out, err = b.Bundle(ctx, root)
	require.NoError(t, err)
	assert.True(t, out.Succeeded())
	assert.Equal(t, `{"swagger":"2.0"}`, string(out.Bundle))
	assert.Equal(t, []string{root, root, root}, b.Calls())

	boom := errors.New("boom")
	_, err = b.FailWith(boom).Bundle(ctx, root)
	assert.ErrorIs(t, err, boom)
}
