package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/swagsplit/oaserrors"
	"go.yaml.in/yaml/v4"
)

// MaxNestingDepth is the maximum object/array nesting accepted while decoding.
// It keeps pathological inputs from exhausting the stack.
const MaxNestingDepth = 2000

// jsonDecoder turns JSON text into an order-preserving yaml.Node tree.
// encoding/json's token stream is used instead of the YAML scanner because
// YAML double-quoted scalars reject some JSON escapes (\/ and surrogate pairs).
type jsonDecoder struct {
	dec *json.Decoder
}

func decodeJSON(data []byte) (*yaml.Node, error) {
	d := &jsonDecoder{dec: json.NewDecoder(bytes.NewReader(data))}
	d.dec.UseNumber()

	node, err := d.value(0)
	if err != nil {
		return nil, err
	}
	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, d.wrap(err)
	}
	return node, nil
}

func (d *jsonDecoder) wrap(err error) error {
	var limitErr *oaserrors.ResourceLimitError
	if errors.As(err, &limitErr) {
		return err
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &oaserrors.ParseError{Offset: syntaxErr.Offset, Message: "invalid JSON", Cause: err}
	}
	return &oaserrors.ParseError{Offset: d.dec.InputOffset(), Message: "invalid JSON", Cause: err}
}

func (d *jsonDecoder) value(depth int) (*yaml.Node, error) {
	if depth > MaxNestingDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        MaxNestingDepth,
			Message:      "document is nested too deeply",
		}
	}

	tok, err := d.dec.Token()
	if err != nil {
		return nil, d.wrap(err)
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return d.object(depth)
		case '[':
			return d.array(depth)
		default:
			return nil, d.wrap(fmt.Errorf("unexpected delimiter %q", v))
		}
	case string:
		return NewString(v), nil
	case json.Number:
		return newNumber(v), nil
	case bool:
		if v {
			return scalarNode(boolTag, "true"), nil
		}
		return scalarNode(boolTag, "false"), nil
	case nil:
		return scalarNode(nullTag, "null"), nil
	default:
		return nil, d.wrap(fmt.Errorf("unexpected token %v", tok))
	}
}

func (d *jsonDecoder) object(depth int) (*yaml.Node, error) {
	m := NewMapping()
	// Duplicate keys keep the position of the first occurrence and the
	// value of the last one, matching encoding/json's last-wins rule.
	index := make(map[string]int)
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, d.wrap(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, d.wrap(fmt.Errorf("object key must be a string, got %v", tok))
		}
		val, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if i, seen := index[key]; seen {
			m.Content[i+1] = val
			continue
		}
		index[key] = len(m.Content)
		m.Content = append(m.Content, NewString(key), val)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, d.wrap(err)
	}
	return m, nil
}

func (d *jsonDecoder) array(depth int) (*yaml.Node, error) {
	seq := NewSequence()
	for d.dec.More() {
		val, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, val)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, d.wrap(err)
	}
	return seq, nil
}

func newNumber(n json.Number) *yaml.Node {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return scalarNode(floatTag, s)
	}
	return scalarNode(intTag, s)
}
