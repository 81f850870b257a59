package rewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "definition",
			in:   `{"$ref":"#/definitions/Pet"}`,
			want: `{"$ref":"../definitions/Pet.json"}`,
		},
		{
			name: "definition with rest of pointer",
			in:   `{"$ref": "#/definitions/Pet/properties/id"}`,
			want: `{"$ref": "../definitions/Pet.json#/properties/id"}`,
		},
		{
			name: "parameter and response",
			in:   `[{"$ref":"#/parameters/limit"},{"$ref" : "#/responses/NotFound"}]`,
			want: `[{"$ref":"../parameters/limit.json"},{"$ref" : "../responses/NotFound.json"}]`,
		},
		{
			name: "path pointer goes to the changed root",
			in:   `{"$ref":"#/paths/~1pets/get"}`,
			want: `{"$ref":"../petstore-changed.json#/paths/~1pets/get"}`,
		},
		{
			name: "collection itself goes to the changed root",
			in:   `{"$ref":"#/definitions"}`,
			want: `{"$ref":"../petstore-changed.json#/definitions"}`,
		},
		{
			name: "whole document",
			in:   `{"$ref":"#"}`,
			want: `{"$ref":"../petstore-changed.json"}`,
		},
		{
			name: "escaped entity key",
			in:   `{"$ref":"#/definitions/a~1b"}`,
			want: `{"$ref":"../definitions/b.json"}`,
		},
		{
			name: "json escaped slash",
			in:   `{"$ref":"#\/definitions\/Pet"}`,
			want: `{"$ref":"../definitions/Pet.json"}`,
		},
		{
			name: "other hashes are untouched",
			in:   `{"description":"see #/definitions/Pet","x-color":"#fff","$ref":"other.json#/definitions/Pet"}`,
			want: `{"description":"see #/definitions/Pet","x-color":"#fff","$ref":"other.json#/definitions/Pet"}`,
		},
		{
			name: "ref-like text inside a string value",
			in:   `{"example":"\"$ref\": \"#/definitions/Pet\""}`,
			want: `{"example":"\"$ref\": \"#/definitions/Pet\""}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New("petstore-changed.json")
			assert.Equal(t, tt.want, string(r.Rewrite([]byte(tt.in))))
		})
	}
}

func TestRewrite_Counts(t *testing.T) {
	r := New("root.json")
	r.Rewrite([]byte(`{"a":{"$ref":"#/definitions/A"},"b":{"$ref":"#/paths/~1x"},"c":{"$ref":"ext.json"}}`))
	assert.Equal(t, 2, r.Rewritten())
}

func TestRewrite_Options(t *testing.T) {
	names := map[string]string{"Pet": "Pet-2.json"}
	r := New("root.json",
		WithDepth(2),
		WithFileName(func(collection, key string) string {
			if n, ok := names[key]; ok {
				return n
			}
			return key + ".json"
		}),
	)
	out := r.Rewrite([]byte(`{"$ref":"#/definitions/Pet"} {"$ref":"#/paths/x"}`))
	assert.Equal(t, `{"$ref":"../../definitions/Pet-2.json"} {"$ref":"../../root.json#/paths/x"}`, string(out))

	r = New("root.json", WithDepth(-1), WithFileName(nil))
	assert.Equal(t, `{"$ref":"../definitions/Pet.json"}`, string(r.Rewrite([]byte(`{"$ref":"#/definitions/Pet"}`))))
}
