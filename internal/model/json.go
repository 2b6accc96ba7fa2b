package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Marshal serializes a value to compact JSON with map keys in insertion
// order and no HTML escaping.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v, "", ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent serializes a value to indented JSON, producing the
// printable structured-text form of a record document.
func MarshalIndent(v Value, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v, "", indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value, prefix, indent string) error {
	switch val := v.(type) {
	case nil:
		return fmt.Errorf("nil value in document")
	case String:
		return writeJSONString(buf, string(val))
	case Int:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
		return nil
	case Float:
		return writeJSONFloat(buf, float64(val))
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(val)))
		return nil
	case Array:
		return writeJSONArray(buf, val, prefix, indent)
	case *Map:
		return writeJSONMap(buf, val, prefix, indent)
	default:
		return fmt.Errorf("unsupported value type: %T", v)
	}
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encoder appends a trailing newline, drop it.
	b := buf.Bytes()
	if len(b) > 0 && b[len(b)-1] == '\n' {
		buf.Truncate(len(b) - 1)
	}
	return nil
}

func writeJSONFloat(buf *bytes.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("non-finite float %v cannot be serialized", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Keep whole-valued floats distinguishable from ints in the output.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	buf.WriteString(s)
	return nil
}

func writeJSONArray(buf *bytes.Buffer, arr Array, prefix, indent string) error {
	if len(arr) == 0 {
		buf.WriteString("[]")
		return nil
	}
	inner := prefix + indent
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(inner)
		}
		if err := writeJSON(buf, elem, inner, indent); err != nil {
			return fmt.Errorf("array[%d]: %w", i, err)
		}
	}
	if indent != "" {
		buf.WriteByte('\n')
		buf.WriteString(prefix)
	}
	buf.WriteByte(']')
	return nil
}

func writeJSONMap(buf *bytes.Buffer, m *Map, prefix, indent string) error {
	if m == nil || m.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}
	inner := prefix + indent
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(inner)
		}
		if err := writeJSONString(buf, k); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		buf.WriteByte(':')
		if indent != "" {
			buf.WriteByte(' ')
		}
		if err := writeJSON(buf, m.items[k], inner, indent); err != nil {
			return fmt.Errorf("value for key %q: %w", k, err)
		}
	}
	if indent != "" {
		buf.WriteByte('\n')
		buf.WriteString(prefix)
	}
	buf.WriteByte('}')
	return nil
}

// Unmarshal parses JSON into a Value tree, preserving object key order.
// Numbers without a fraction or exponent decode as Int, others as Float.
// JSON null is rejected: absent fields stay absent in record documents,
// null placeholders never appear.
func Unmarshal(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Trailing garbage after the document is an error.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected content after document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeMap(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return decodeNumber(t)
	case nil:
		return nil, fmt.Errorf("null is not allowed in record documents")
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeNumber(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := n.Int64()
		if err == nil {
			return Int(i), nil
		}
		// Out of int64 range, fall through to float.
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Float(f), nil
}

func decodeMap(dec *json.Decoder) (Value, error) {
	m := NewMap()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("object[%q]: %w", key, err)
		}
		if m.Has(key) {
			// Duplicate keys in the input accumulate like Append does.
			m.Append(key, v)
		} else {
			m.Set(key, v)
		}
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return m, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Array{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", len(arr), err)
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return arr, nil
}
