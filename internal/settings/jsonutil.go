package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeObject splits a JSON object into its keys (in document order) and raw values.
func decodeObject(data []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var keys []string
	values := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}
		if _, dup := values[key]; !dup {
			keys = append(keys, key)
		}
		values[key] = raw
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	if dec.More() {
		return nil, nil, fmt.Errorf("unexpected data after JSON object")
	}

	return keys, values, nil
}

// jsonKind returns the first significant byte of a JSON value
func jsonKind(raw json.RawMessage) byte {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c
	}
	return 0
}

// isTruthy reports whether a JSON value is present and not null, false, 0 or ""
func isTruthy(raw json.RawMessage) bool {
	switch jsonKind(raw) {
	case 0, 'n', 'f':
		return false
	case '"':
		var s string
		return json.Unmarshal(raw, &s) == nil && s != ""
	case '[', '{', 't':
		return true
	default:
		var n float64
		return json.Unmarshal(raw, &n) == nil && n != 0
	}
}

// objectWriter builds a compact JSON object with keys in insertion order
type objectWriter struct {
	buf   bytes.Buffer
	count int
}

func newObjectWriter() *objectWriter {
	w := &objectWriter{}
	w.buf.WriteByte('{')
	return w
}

func (w *objectWriter) field(key string, value []byte) error {
	if w.count > 0 {
		w.buf.WriteByte(',')
	}
	k, err := marshalNoEscape(key)
	if err != nil {
		return err
	}
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(value)
	w.count++
	return nil
}

func (w *objectWriter) bytes() []byte {
	w.buf.WriteByte('}')
	return w.buf.Bytes()
}

// marshalNoEscape encodes v without HTML escaping, so commands containing
// "&&" or "<" stay readable in settings.json.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// indent pretty-prints compact JSON with two-space indentation and a trailing newline
func indent(data []byte) ([]byte, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
