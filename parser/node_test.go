package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse([]byte(src), "")
	require.NoError(t, err)
	return doc
}

func TestSetGetDelete(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":2}`)

	Set(doc.Root, "a", NewString("x"))
	Set(doc.Root, "c", NewRef("paths/c.json"))
	assert.Equal(t, []string{"a", "b", "c"}, Keys(doc.Root))

	out, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":"x","b":2,"c":{"$ref":"paths/c.json"}}`, string(out))

	assert.True(t, Delete(doc.Root, "b"))
	assert.False(t, Delete(doc.Root, "b"))
	assert.Nil(t, Get(doc.Root, "b"))
	assert.Equal(t, []string{"a", "c"}, Keys(doc.Root))
}

func TestHelpers_NonMapping(t *testing.T) {
	seq := NewSequence()
	assert.Nil(t, Get(seq, "a"))
	assert.False(t, Delete(seq, "a"))
	assert.Nil(t, Keys(seq))
	assert.Nil(t, Entries(nil))
}

func TestEntries(t *testing.T) {
	doc := mustParse(t, `{"x":{"k":1},"y":"s"}`)
	entries := Entries(doc.Root)
	require.Len(t, entries, 2)
	assert.Equal(t, "x", entries[0].Key)
	assert.True(t, IsMapping(entries[0].Value))
	assert.Equal(t, "y", entries[1].Key)
	assert.True(t, IsString(entries[1].Value))
}

func TestRemoveStrings(t *testing.T) {
	doc := mustParse(t, `{"required":["x","y",3,"z","y"]}`)
	req := doc.Get("required")

	removed := RemoveStrings(req, map[string]bool{"y": true, "missing": true})
	assert.Equal(t, 2, removed)

	out, err := MarshalJSON(req)
	require.NoError(t, err)
	assert.Equal(t, `["x",3,"z"]`, string(out))

	assert.Equal(t, 0, RemoveStrings(NewMapping(), map[string]bool{"x": true}))
}

func TestUnwrap(t *testing.T) {
	m := NewMapping()
	assert.Same(t, m, Unwrap(m))
	assert.Nil(t, Unwrap(nil))
}

func TestStringValue(t *testing.T) {
	doc := mustParse(t, `{"s":"v","n":1}`)
	s, ok := StringValue(doc.Get("s"))
	assert.True(t, ok)
	assert.Equal(t, "v", s)

	_, ok = StringValue(doc.Get("n"))
	assert.False(t, ok)
}
