package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// MarshalJSON writes n as compact JSON with object keys in document order.
//
// The output is deterministic: marshalling the same tree twice yields the same
// bytes, which is what makes repeated splits byte-identical.
func MarshalJSON(n *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := marshalNodeAsJSON(&buf, Unwrap(n)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSONIndent is like MarshalJSON but applies json.Indent to the result.
func MarshalJSONIndent(n *yaml.Node, prefix, indent string) ([]byte, error) {
	data, err := MarshalJSON(n)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// marshalNodeAsJSON writes a yaml.Node to a buffer as JSON.
func marshalNodeAsJSON(buf *bytes.Buffer, node *yaml.Node) error {
	if node == nil {
		buf.WriteString("null")
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		return marshalNodeAsJSON(buf, Unwrap(node))

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, node.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := marshalNodeAsJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalNodeAsJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return writeScalar(buf, node)

	default:
		return fmt.Errorf("parser: cannot marshal node kind %v as JSON", node.Kind)
	}
}

func writeScalar(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.ShortTag() {
	case nullTag:
		buf.WriteString("null")
	case boolTag, intTag, floatTag:
		// Values come from the JSON token stream, so the literal text is already valid JSON.
		if !json.Valid([]byte(node.Value)) {
			return fmt.Errorf("parser: scalar %q is not a valid JSON literal", node.Value)
		}
		buf.WriteString(node.Value)
	default:
		return writeJSONString(buf, node.Value)
	}
	return nil
}

// writeJSONString writes s as a JSON string without HTML escaping,
// so descriptions containing <, > or & round-trip unchanged.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
