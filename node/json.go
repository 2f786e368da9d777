package node

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// FromJSON parses JSON into a tree using a streaming token decoder so
// that member order is preserved exactly as written.
func FromJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	n, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}

	// Reject trailing garbage after the first document.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("node: unexpected trailing content in JSON document")
	}
	return n, nil
}

// ToJSON serializes the tree as compact JSON, preserving member order.
func (n *Node) ToJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeJSONValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("node: failed to parse JSON: %w", err)
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("node: unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("node: invalid number %q: %w", t, err)
		}
		return Number(f), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("node: unexpected JSON token %T", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (*Node, error) {
	obj := Object()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("node: failed to parse JSON object: %w", err)
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("node: expected object key, got %T", tok)
		}
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, Field(key, value))
	}
}

func decodeJSONArray(dec *json.Decoder) (*Node, error) {
	arr := Array()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("node: failed to parse JSON array: %w", err)
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}
		item, err := decodeJSONToken(dec, tok)
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, item)
	}
}

func (n *Node) encodeJSON(buf *bytes.Buffer) error {
	switch n.Kind {
	case KindNull:
		buf.WriteString("null")
		return nil
	case KindBoolean, KindNumber:
		return encodeJSONScalar(buf, n)
	case KindString:
		return encodeJSONString(buf, n.Str)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindObject:
		buf.WriteByte('{')
		for i, m := range n.Members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSONString(buf, m.Key.Str); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.Value.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("node: unsupported kind %d", n.Kind)
	}
}

func encodeJSONScalar(buf *bytes.Buffer, n *Node) error {
	var v any
	if n.Kind == KindBoolean {
		v = n.Bool
	} else {
		v = n.Number
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("node: failed to encode scalar: %w", err)
	}
	buf.Write(data)
	return nil
}

func encodeJSONString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("node: failed to encode string: %w", err)
	}
	buf.Write(data)
	return nil
}
