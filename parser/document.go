package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/swagsplit/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Document is an API description held as an order-preserving JSON tree.
type Document struct {
	// Root is the top-level object node.
	Root *yaml.Node
	// SourcePath is the file the document was read from, if any.
	SourcePath string
}

// Parse decodes JSON text into a Document.
// sourcePath only labels errors and may be empty.
func Parse(data []byte, sourcePath string) (*Document, error) {
	root, err := decodeJSON(data)
	if err != nil {
		var parseErr *oaserrors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = sourcePath
		}
		return nil, err
	}
	if !IsMapping(root) {
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Message: "top-level value must be a JSON object",
		}
	}
	return &Document{Root: root, SourcePath: sourcePath}, nil
}

// ParseFile reads and decodes the JSON document at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user-supplied source document
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "cannot read file", Cause: err}
	}
	return Parse(data, path)
}

// MarshalJSON returns the compact, order-preserving JSON encoding of the document.
func (d *Document) MarshalJSON() ([]byte, error) {
	if d == nil || d.Root == nil {
		return []byte("null"), nil
	}
	return MarshalJSON(d.Root)
}

// Get returns the top-level value stored under key, or nil.
func (d *Document) Get(key string) *yaml.Node {
	return Get(d.Root, key)
}

// String implements fmt.Stringer for debugging output.
func (d *Document) String() string {
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid document: %v>", err)
	}
	return string(data)
}
