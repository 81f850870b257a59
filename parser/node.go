package parser

import (
	"go.yaml.in/yaml/v4"
)

const (
	strTag   = "!!str"
	intTag   = "!!int"
	floatTag = "!!float"
	boolTag  = "!!bool"
	nullTag  = "!!null"
	mapTag   = "!!map"
	seqTag   = "!!seq"
)

// RefKey is the JSON Reference keyword.
const RefKey = "$ref"

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// NewString returns a string scalar node.
func NewString(s string) *yaml.Node {
	return scalarNode(strTag, s)
}

// NewMapping returns an empty object node.
func NewMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: mapTag}
}

// NewSequence returns an empty array node.
func NewSequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: seqTag}
}

// NewRef returns a JSON Reference object: {"$ref": ref}.
func NewRef(ref string) *yaml.Node {
	m := NewMapping()
	m.Content = append(m.Content, NewString(RefKey), NewString(ref))
	return m
}

// Unwrap returns the content of a DocumentNode, or n itself.
func Unwrap(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	return n
}

// IsMapping reports whether n is an object node.
func IsMapping(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.MappingNode
}

// IsSequence reports whether n is an array node.
func IsSequence(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.SequenceNode
}

// IsString reports whether n is a string scalar.
func IsString(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == strTag
}

// keyIndex returns the index of key's key node inside m.Content, or -1.
func keyIndex(m *yaml.Node, key string) int {
	if !IsMapping(m) {
		return -1
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key in object m, or nil.
func Get(m *yaml.Node, key string) *yaml.Node {
	i := keyIndex(m, key)
	if i < 0 {
		return nil
	}
	return m.Content[i+1]
}

// Set stores val under key in object m, replacing an existing value in place
// or appending a new entry at the end.
func Set(m *yaml.Node, key string, val *yaml.Node) {
	if i := keyIndex(m, key); i >= 0 {
		m.Content[i+1] = val
		return
	}
	m.Content = append(m.Content, NewString(key), val)
}

// Delete removes key from object m and reports whether it was present.
func Delete(m *yaml.Node, key string) bool {
	i := keyIndex(m, key)
	if i < 0 {
		return false
	}
	m.Content = append(m.Content[:i], m.Content[i+2:]...)
	return true
}

// Keys returns the keys of object m in document order.
func Keys(m *yaml.Node) []string {
	if !IsMapping(m) {
		return nil
	}
	keys := make([]string, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		keys = append(keys, m.Content[i].Value)
	}
	return keys
}

// Entry is one key/value pair of an object node.
type Entry struct {
	Key   string
	Value *yaml.Node
}

// Entries returns the key/value pairs of object m in document order.
// The returned slice is a snapshot; the values are shared with m.
func Entries(m *yaml.Node) []Entry {
	if !IsMapping(m) {
		return nil
	}
	entries := make([]Entry, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		entries = append(entries, Entry{Key: m.Content[i].Value, Value: m.Content[i+1]})
	}
	return entries
}

// StringValue returns the string held by n and whether n is a string scalar.
func StringValue(n *yaml.Node) (string, bool) {
	if !IsString(n) {
		return "", false
	}
	return n.Value, true
}

// RemoveStrings removes every string element of sequence seq that is in drop.
// It returns the number of elements removed.
func RemoveStrings(seq *yaml.Node, drop map[string]bool) int {
	if !IsSequence(seq) {
		return 0
	}
	kept := seq.Content[:0]
	removed := 0
	for _, item := range seq.Content {
		if s, ok := StringValue(item); ok && drop[s] {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	seq.Content = kept
	return removed
}
