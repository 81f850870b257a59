package parser

import (
	"strings"
	"testing"

	"github.com/erraggy/swagsplit/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestDecodeJSON_Tags(t *testing.T) {
	root, err := decodeJSON([]byte(`{"s":"x","i":42,"f":1.5,"e":2E3,"b":false,"n":null,"o":{},"a":[]}`))
	require.NoError(t, err)

	want := map[string]struct {
		kind yaml.Kind
		tag  string
	}{
		"s": {yaml.ScalarNode, strTag},
		"i": {yaml.ScalarNode, intTag},
		"f": {yaml.ScalarNode, floatTag},
		"e": {yaml.ScalarNode, floatTag},
		"b": {yaml.ScalarNode, boolTag},
		"n": {yaml.ScalarNode, nullTag},
		"o": {yaml.MappingNode, mapTag},
		"a": {yaml.SequenceNode, seqTag},
	}
	for key, w := range want {
		n := Get(root, key)
		require.NotNil(t, n, key)
		assert.Equal(t, w.kind, n.Kind, key)
		assert.Equal(t, w.tag, n.ShortTag(), key)
	}
	assert.Equal(t, "2E3", Get(root, "e").Value, "number text is kept verbatim")
}

func TestDecodeJSON_TrailingData(t *testing.T) {
	_, err := decodeJSON([]byte(`{} {}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrParse)
}

func TestDecodeJSON_SyntaxErrorOffset(t *testing.T) {
	_, err := decodeJSON([]byte(`{"a": [1, 2,, 3]}`))
	require.Error(t, err)

	var parseErr *oaserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Positive(t, parseErr.Offset)
}

func TestDecodeJSON_DepthLimit(t *testing.T) {
	deep := strings.Repeat("[", MaxNestingDepth+2) + strings.Repeat("]", MaxNestingDepth+2)
	_, err := decodeJSON([]byte(deep))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)
	assert.NotErrorIs(t, err, oaserrors.ErrParse)

	ok := strings.Repeat("[", MaxNestingDepth) + strings.Repeat("]", MaxNestingDepth)
	_, err = decodeJSON([]byte(ok))
	assert.NoError(t, err)
}

func TestDecodeJSON_ScalarTopLevel(t *testing.T) {
	n, err := decodeJSON([]byte(`"just a string"`))
	require.NoError(t, err)
	s, ok := StringValue(n)
	assert.True(t, ok)
	assert.Equal(t, "just a string", s)
}
