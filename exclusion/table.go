package exclusion

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/erraggy/swagsplit/internal/fileutil"
	"github.com/erraggy/swagsplit/oaserrors"
	"github.com/erraggy/swagsplit/parser"
	"go.yaml.in/yaml/v4"
)

// Table maps definition names to the properties excluded from them.
// The zero value is not usable; create tables with New, Load or Parse.
type Table struct {
	names []string
	props map[string][]string
}

// New returns an empty table.
func New() *Table {
	return &Table{props: make(map[string][]string)}
}

// Add records that property must be excluded from definition.
// It reports whether the table changed.
func (t *Table) Add(definition, property string) bool {
	existing, ok := t.props[definition]
	if !ok {
		t.names = append(t.names, definition)
	}
	if slices.Contains(existing, property) {
		return false
	}
	t.props[definition] = append(existing, property)
	return true
}

// Contains reports whether property is excluded from definition.
func (t *Table) Contains(definition, property string) bool {
	return slices.Contains(t.props[definition], property)
}

// Properties returns a copy of the properties excluded from definition,
// in the order they were added.
func (t *Table) Properties(definition string) []string {
	return slices.Clone(t.props[definition])
}

// Definitions returns the definition names in the order they were added.
func (t *Table) Definitions() []string {
	return slices.Clone(t.names)
}

// Len returns the number of definitions in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// Count returns the total number of excluded properties.
func (t *Table) Count() int {
	n := 0
	for _, props := range t.props {
		n += len(props)
	}
	return n
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	c := New()
	for _, name := range t.names {
		c.names = append(c.names, name)
		c.props[name] = slices.Clone(t.props[name])
	}
	return c
}

// Sorted returns a copy with definitions and properties in lexical order.
func (t *Table) Sorted() *Table {
	c := t.Clone()
	slices.Sort(c.names)
	for _, props := range c.props {
		slices.Sort(props)
	}
	return c
}

// node renders the table as an ordered JSON object node.
func (t *Table) node() *yaml.Node {
	root := parser.NewMapping()
	for _, name := range t.names {
		seq := parser.NewSequence()
		for _, p := range t.props[name] {
			seq.Content = append(seq.Content, parser.NewString(p))
		}
		parser.Set(root, name, seq)
	}
	return root
}

// MarshalJSON encodes the table as a JSON object in insertion order.
func (t *Table) MarshalJSON() ([]byte, error) {
	return parser.MarshalJSON(t.node())
}

// Format returns the indented JSON form used when the table is saved.
func (t *Table) Format() ([]byte, error) {
	data, err := parser.MarshalJSONIndent(t.node(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Save writes the table to path as indented JSON.
func (t *Table) Save(path string) error {
	data, err := t.Format()
	if err != nil {
		return fmt.Errorf("exclusion: encoding table: %w", err)
	}
	return fileutil.WriteFile(path, data)
}

// Load reads a table from path. A missing file yields an empty table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user-supplied exclusion table
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "cannot read exclusion table", Cause: err}
	}
	t, err := Parse(data)
	if err != nil {
		var parseErr *oaserrors.ParseError
		if errors.As(err, &parseErr) && parseErr.Path == "" {
			parseErr.Path = path
		}
		return nil, err
	}
	return t, nil
}

// Parse decodes a table from JSON or YAML text. Empty input yields an empty
// table; a null property list is treated as empty.
func Parse(data []byte) (*Table, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return New(), nil
	}

	var root *yaml.Node
	if trimmed[0] == '{' {
		doc, err := parser.Parse(trimmed, "")
		if err != nil {
			return nil, err
		}
		root = doc.Root
	} else {
		var n yaml.Node
		if err := yaml.Unmarshal(trimmed, &n); err != nil {
			return nil, &oaserrors.ParseError{Message: "invalid exclusion table", Cause: err}
		}
		root = parser.Unwrap(&n)
	}
	if !parser.IsMapping(root) {
		return nil, &oaserrors.ParseError{Message: "exclusion table must be an object of definition names"}
	}

	t := New()
	for _, e := range parser.Entries(root) {
		if e.Value.Kind == yaml.ScalarNode && e.Value.ShortTag() == "!!null" {
			t.ensure(e.Key)
			continue
		}
		if !parser.IsSequence(e.Value) {
			return nil, &oaserrors.ParseError{
				Message: fmt.Sprintf("exclusions for %q must be an array of property names", e.Key),
			}
		}
		t.ensure(e.Key)
		for _, item := range e.Value.Content {
			prop, ok := parser.StringValue(item)
			if !ok {
				return nil, &oaserrors.ParseError{
					Message: fmt.Sprintf("exclusions for %q must be strings", e.Key),
				}
			}
			t.Add(e.Key, prop)
		}
	}
	return t, nil
}

// ensure registers definition without adding a property.
func (t *Table) ensure(definition string) {
	if _, ok := t.props[definition]; !ok {
		t.names = append(t.names, definition)
		t.props[definition] = nil
	}
}
