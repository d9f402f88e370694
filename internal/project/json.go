package project

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// jsonDoc is a JSON file edited in place. Keys keep their order.
type jsonDoc struct {
	data []byte
}

func parseJSON(content string) (*jsonDoc, error) {
	if !gjson.Valid(content) {
		return nil, fmt.Errorf("invalid JSON")
	}
	return &jsonDoc{data: []byte(content)}, nil
}

func (d *jsonDoc) get(path string) gjson.Result {
	return gjson.GetBytes(d.data, path)
}

// set stores v at path. Values are encoded without HTML escaping so that
// an author such as "Jane <jane@example.com>" stays readable.
func (d *jsonDoc) set(path string, v any) error {
	raw, err := marshalValue(v)
	if err != nil {
		return err
	}
	return d.setRaw(path, raw)
}

func (d *jsonDoc) setRaw(path string, raw []byte) error {
	data, err := sjson.SetRawBytes(d.data, path, raw)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	d.data = data
	return nil
}

func (d *jsonDoc) delete(paths ...string) error {
	for _, path := range paths {
		if !d.get(path).Exists() {
			continue
		}
		data, err := sjson.DeleteBytes(d.data, path)
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", path, err)
		}
		d.data = data
	}
	return nil
}

// firstKey returns the first key of the object at path.
func (d *jsonDoc) firstKey(path string) (string, bool) {
	var key string
	found := false
	d.get(path).ForEach(func(k, _ gjson.Result) bool {
		key, found = k.String(), true
		return false
	})
	return key, found
}

// valueOf returns the member of the object at path named key. Keys are
// compared literally so names such as "@scope/lib" need no escaping.
func (d *jsonDoc) valueOf(path, key string) gjson.Result {
	var value gjson.Result
	d.get(path).ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			value = v
			return false
		}
		return true
	})
	return value
}

// String renders the document with two space indentation and a trailing
// newline, the layout npm writes.
func (d *jsonDoc) String() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(d.data), "", "  "); err != nil {
		return string(d.data)
	}
	buf.WriteByte('\n')
	return buf.String()
}

func marshalValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

// editJSON rewrites the JSON file name through fn.
func (p *Project) editJSON(name string, fn func(*jsonDoc) error) error {
	content, err := p.readFile(name)
	if err != nil {
		return err
	}
	doc, err := parseJSON(content)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := fn(doc); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return p.writeFile(name, doc.String())
}
