// Package rewriter turns root-local JSON references into references that
// resolve from the split entity directories.
//
// Rewriting works on the serialized source text, before the document is
// parsed for splitting. Only "$ref" string values starting with '#' are
// touched; any other '#' in the document is left alone.
//
//	"$ref": "#/definitions/Pet"                -> "$ref": "../definitions/Pet.json"
//	"$ref": "#/definitions/Pet/properties/id"  -> "$ref": "../definitions/Pet.json#/properties/id"
//	"$ref": "#/paths/~1pets/get"               -> "$ref": "../petstore-changed.json#/paths/~1pets/get"
package rewriter

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/erraggy/swagsplit/internal/pathutil"
)

// refPattern matches a "$ref" member whose value is a root-local pointer.
// Group 1 is everything up to the opening quote of the value, group 2 the raw
// (still JSON-escaped) pointer after '#'.
var refPattern = regexp.MustCompile(`("\$ref"\s*:\s*)"#((?:[^"\\]|\\.)*)"`)

// entityCollections are the collections whose entries get their own file.
var entityCollections = map[string]bool{
	pathutil.CollectionDefinitions: true,
	pathutil.CollectionParameters:  true,
	pathutil.CollectionResponses:   true,
}

// FileNameFunc returns the file an entity of collection is written to.
type FileNameFunc func(collection, key string) string

// Rewriter rewrites root-local references for one split layout.
type Rewriter struct {
	changedRoot string
	depth       int
	fileName    FileNameFunc
	rewritten   int
}

// New returns a Rewriter for a split whose rewritten root document is named
// changedRoot (a base name, e.g. "petstore-changed.json").
func New(changedRoot string, opts ...Option) *Rewriter {
	r := &Rewriter{
		changedRoot: changedRoot,
		depth:       1,
		fileName:    func(_, key string) string { return pathutil.EntityFileName(key) },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite returns src with every root-local "$ref" pointer rewritten.
func (r *Rewriter) Rewrite(src []byte) []byte {
	r.rewritten = 0
	prefix := strings.Repeat("../", r.depth)

	return refPattern.ReplaceAllFunc(src, func(match []byte) []byte {
		sub := refPattern.FindSubmatch(match)
		var pointer string
		if err := json.Unmarshal(append(append([]byte(`"`), sub[2]...), '"'), &pointer); err != nil {
			return match
		}

		target := prefix + r.target(pointer)
		r.rewritten++

		var out bytes.Buffer
		out.Write(sub[1])
		writeString(&out, target)
		return out.Bytes()
	})
}

// Rewritten returns the number of references changed by the last Rewrite.
func (r *Rewriter) Rewritten() int {
	return r.rewritten
}

// target maps a decoded root-local pointer (without '#') to a path relative to
// the split output directory.
func (r *Rewriter) target(pointer string) string {
	tokens := pathutil.SplitPointer(pointer)
	if len(tokens) >= 2 && entityCollections[tokens[0]] {
		file := pathutil.EntityRef(tokens[0], r.fileName(tokens[0], tokens[1]))
		if rest := tokens[2:]; len(rest) > 0 {
			return file + "#" + pathutil.JoinPointer(rest...)
		}
		return file
	}
	if pointer == "" {
		return r.changedRoot
	}
	return r.changedRoot + "#" + pointer
}

// writeString writes s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1)
}
