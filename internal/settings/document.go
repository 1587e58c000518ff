// Package settings reads and writes Claude Code's settings.json while keeping
// every key it does not understand intact.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samhoang/claude-notify/internal/errors"
)

// HooksKey is the reserved top-level key holding hook registrations
const HooksKey = "hooks"

// Document is an in-memory settings.json. Top-level keys other than "hooks"
// are kept as raw JSON in their original order.
type Document struct {
	keys   []string
	fields map[string]json.RawMessage
	hooks  *Hooks
}

// Hooks is the "hooks" object: hook-type name to entry, in document order
type Hooks struct {
	order   []string
	entries map[string]*Entry
}

// NewDocument creates an empty settings document
func NewDocument() *Document {
	return &Document{fields: make(map[string]json.RawMessage)}
}

// Load reads settings.json. A missing file yields an empty document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDocument(), nil
		}
		return nil, errors.NewPathError(path, "read settings", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, errors.NewPathError(path, "parse settings", err)
	}
	return doc, nil
}

// Parse decodes a settings document, normalizing every hook entry once
func Parse(data []byte) (*Document, error) {
	keys, fields, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidSettings, err)
	}

	doc := &Document{keys: keys, fields: fields}

	raw, ok := fields[HooksKey]
	if !ok {
		return doc, nil
	}
	switch jsonKind(raw) {
	case 'n':
		// "hooks": null is treated as no hooks; the key stays until hooks are added or removed
		return doc, nil
	case '{':
	default:
		return nil, fmt.Errorf("%w: %q must be an object", errors.ErrInvalidSettings, HooksKey)
	}

	hookKeys, hookValues, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidSettings, err)
	}
	doc.hooks = newHooks()
	for _, k := range hookKeys {
		doc.hooks.Set(k, ParseEntry(hookValues[k]))
	}
	return doc, nil
}

func newHooks() *Hooks {
	return &Hooks{entries: make(map[string]*Entry)}
}

// Keys returns the top-level keys in document order
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Field returns the raw value of a top-level key other than "hooks"
func (d *Document) Field(key string) (json.RawMessage, bool) {
	if key == HooksKey && d.hooks != nil {
		return nil, false
	}
	raw, ok := d.fields[key]
	return raw, ok
}

// Hooks returns the hooks object, or nil when the document has none
func (d *Document) Hooks() *Hooks {
	return d.hooks
}

// EnsureHooks returns the hooks object, creating an empty one if absent
func (d *Document) EnsureHooks() *Hooks {
	if d.hooks == nil {
		d.hooks = newHooks()
		if _, ok := d.fields[HooksKey]; !ok {
			d.keys = append(d.keys, HooksKey)
		}
		d.fields[HooksKey] = nil
	}
	return d.hooks
}

// RemoveHooks deletes the whole "hooks" key and returns the hook types it held
func (d *Document) RemoveHooks() []string {
	var removed []string
	if d.hooks != nil {
		removed = d.hooks.Types()
	}
	d.hooks = nil
	d.deleteKey(HooksKey)
	return removed
}

// RemoveHookType unconditionally deletes one hook type, whoever installed it.
// When no hook types remain, the "hooks" key itself is removed.
func (d *Document) RemoveHookType(hookType string) bool {
	if d.hooks == nil {
		return false
	}
	removed := d.hooks.Delete(hookType)
	if d.hooks.Len() == 0 {
		d.RemoveHooks()
	}
	return removed
}

// HasHooks reports whether the document has a "hooks" key
func (d *Document) HasHooks() bool {
	_, ok := d.fields[HooksKey]
	return ok
}

// IsEmpty reports whether the document has no top-level keys
func (d *Document) IsEmpty() bool {
	return len(d.keys) == 0
}

func (d *Document) deleteKey(key string) {
	if _, ok := d.fields[key]; !ok {
		return
	}
	delete(d.fields, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Marshal encodes the document as pretty-printed JSON (two-space indent)
func (d *Document) Marshal() ([]byte, error) {
	w := newObjectWriter()
	for _, k := range d.keys {
		value := d.fields[k]
		if k == HooksKey && d.hooks != nil {
			b, err := d.hooks.encode()
			if err != nil {
				return nil, err
			}
			value = b
		}
		if err := w.field(k, value); err != nil {
			return nil, err
		}
	}
	return indent(w.bytes())
}

// Save writes the document to path atomically: the content goes to a
// temporary file in the same directory which is then renamed over path.
// An empty document removes the file instead; deleted reports that case.
func (d *Document) Save(path string) (deleted bool, err error) {
	if d.IsEmpty() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return false, errors.NewPathError(path, "remove settings", err)
		}
		return true, nil
	}

	data, err := d.Marshal()
	if err != nil {
		return false, fmt.Errorf("encoding settings: %w", err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return false, errors.NewPathError(path, "write settings", err)
	}
	return false, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// Get returns the entry for a hook type, or nil
func (h *Hooks) Get(hookType string) *Entry {
	if h == nil {
		return nil
	}
	return h.entries[hookType]
}

// Set stores the entry for a hook type, keeping its position if present
func (h *Hooks) Set(hookType string, e *Entry) {
	if _, ok := h.entries[hookType]; !ok {
		h.order = append(h.order, hookType)
	}
	h.entries[hookType] = e
}

// Delete removes a hook type and reports whether it was present
func (h *Hooks) Delete(hookType string) bool {
	if _, ok := h.entries[hookType]; !ok {
		return false
	}
	delete(h.entries, hookType)
	for i, k := range h.order {
		if k == hookType {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	return true
}

// Types returns hook-type names in document order. A nil Hooks has none.
func (h *Hooks) Types() []string {
	if h == nil {
		return nil
	}
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Len returns the number of hook types
func (h *Hooks) Len() int {
	if h == nil {
		return 0
	}
	return len(h.order)
}

func (h *Hooks) encode() ([]byte, error) {
	w := newObjectWriter()
	for _, k := range h.order {
		b, err := h.entries[k].encode()
		if err != nil {
			return nil, err
		}
		if err := w.field(k, b); err != nil {
			return nil, err
		}
	}
	return w.bytes(), nil
}

// MarshalJSON implements json.Marshaler
func (h *Hooks) MarshalJSON() ([]byte, error) {
	return h.encode()
}
