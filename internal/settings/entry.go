package settings

import (
	"bytes"
	"encoding/json"
	"math"
)

// EntryKind tags the shape of a hook-type entry in settings.json
type EntryKind int

const (
	KindGroups EntryKind = iota // current shape: list of hook groups
	KindSingle                  // legacy shape: {command, args?, env?, timeout?}
	KindOther                   // anything else, carried verbatim
)

// String returns the string representation of EntryKind
func (k EntryKind) String() string {
	switch k {
	case KindGroups:
		return "groups"
	case KindSingle:
		return "single"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// CommandHook is a single command inside a hook group
type CommandHook struct {
	Type    string
	Command string
	Timeout int

	// raw holds the original encoding of hooks read from disk. Hooks read from
	// disk are never edited in place, so raw is re-emitted unchanged.
	raw json.RawMessage
}

// NewCommandHook creates a "command" hook
func NewCommandHook(command string, timeout int) CommandHook {
	return CommandHook{Type: "command", Command: command, Timeout: timeout}
}

// IsCommand reports whether the hook has type "command"
func (h CommandHook) IsCommand() bool {
	return h.Type == "command"
}

func parseCommandHook(raw json.RawMessage) CommandHook {
	h := CommandHook{raw: raw}
	if jsonKind(raw) != '{' {
		return h
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return h
	}
	_ = json.Unmarshal(fields["type"], &h.Type)
	_ = json.Unmarshal(fields["command"], &h.Command)
	h.Timeout = parseTimeout(fields["timeout"])
	return h
}

func parseTimeout(raw json.RawMessage) int {
	if raw == nil {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || math.IsNaN(f) || f < 0 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

func (h CommandHook) encode() ([]byte, error) {
	if h.raw != nil {
		return h.raw, nil
	}

	w := newObjectWriter()
	for _, f := range []struct {
		key   string
		value any
	}{
		{"type", h.Type},
		{"command", h.Command},
		{"timeout", h.Timeout},
	} {
		v, err := marshalNoEscape(f.value)
		if err != nil {
			return nil, err
		}
		if err := w.field(f.key, v); err != nil {
			return nil, err
		}
	}
	return w.bytes(), nil
}

// MarshalJSON implements json.Marshaler
func (h CommandHook) MarshalJSON() ([]byte, error) {
	return h.encode()
}

// Group is one element of a hook-type list: a matcher plus its commands.
// Elements that are not {matcher, hooks[]} objects are kept opaque.
type Group struct {
	Matcher string
	Hooks   []CommandHook

	opaque bool
	raw    json.RawMessage
	keys   []string
	fields map[string]json.RawMessage
}

// NewGroup creates a hook group with a single command hook
func NewGroup(matcher, command string, timeout int) Group {
	return Group{
		Matcher: matcher,
		Hooks:   []CommandHook{NewCommandHook(command, timeout)},
	}
}

// OpaqueGroup wraps an arbitrary JSON value as a list element
func OpaqueGroup(raw json.RawMessage) Group {
	return Group{opaque: true, raw: raw}
}

// IsOpaque reports whether the element is not a hook group. Opaque elements
// are never scanned for commands, never pruned, and written back verbatim.
func (g Group) IsOpaque() bool {
	return g.opaque
}

// Raw returns the original JSON of the element, or nil for in-memory groups
func (g Group) Raw() json.RawMessage {
	return g.raw
}

func parseGroup(raw json.RawMessage) Group {
	if jsonKind(raw) != '{' {
		return OpaqueGroup(raw)
	}

	keys, fields, err := decodeObject(raw)
	if err != nil {
		return OpaqueGroup(raw)
	}
	hooksRaw, ok := fields["hooks"]
	if !ok || jsonKind(hooksRaw) != '[' {
		return OpaqueGroup(raw)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(hooksRaw, &items); err != nil {
		return OpaqueGroup(raw)
	}

	g := Group{raw: raw, keys: keys, fields: fields}
	_ = json.Unmarshal(fields["matcher"], &g.Matcher)
	for _, item := range items {
		g.Hooks = append(g.Hooks, parseCommandHook(item))
	}
	return g
}

// removeHooks drops every command matching fn and returns how many were removed
func (g *Group) removeHooks(fn func(CommandHook) bool) int {
	if g.opaque {
		return 0
	}

	kept := g.Hooks[:0:0]
	for _, h := range g.Hooks {
		if !fn(h) {
			kept = append(kept, h)
		}
	}
	removed := len(g.Hooks) - len(kept)
	if removed > 0 {
		g.Hooks = kept
		g.raw = nil
	}
	return removed
}

func (g Group) encode() ([]byte, error) {
	if g.raw != nil {
		return g.raw, nil
	}

	var hooks bytes.Buffer
	hooks.WriteByte('[')
	for i, h := range g.Hooks {
		if i > 0 {
			hooks.WriteByte(',')
		}
		b, err := h.encode()
		if err != nil {
			return nil, err
		}
		hooks.Write(b)
	}
	hooks.WriteByte(']')

	keys := g.keys
	if keys == nil {
		keys = []string{"matcher", "hooks"}
	}

	w := newObjectWriter()
	for _, k := range keys {
		var value []byte
		switch {
		case k == "hooks":
			value = hooks.Bytes()
		case g.fields[k] != nil:
			value = g.fields[k]
		case k == "matcher":
			m, err := marshalNoEscape(g.Matcher)
			if err != nil {
				return nil, err
			}
			value = m
		default:
			continue
		}
		if err := w.field(k, value); err != nil {
			return nil, err
		}
	}
	return w.bytes(), nil
}

// MarshalJSON implements json.Marshaler
func (g Group) MarshalJSON() ([]byte, error) {
	return g.encode()
}

// SingleHook is the legacy single-object hook shape
type SingleHook struct {
	Command string
	Timeout int
	Matcher string

	raw json.RawMessage
}

// Raw returns the original JSON of the legacy hook
func (s *SingleHook) Raw() json.RawMessage {
	return s.raw
}

// Entry is the value stored under one hook type in settings.json.
// Exactly one of Groups, Single or raw is meaningful, selected by Kind.
type Entry struct {
	Kind   EntryKind
	Groups []Group
	Single *SingleHook

	raw json.RawMessage
}

// NewGroupsEntry creates a current-shape entry from the given groups
func NewGroupsEntry(groups ...Group) *Entry {
	return &Entry{Kind: KindGroups, Groups: groups}
}

// ParseEntry normalizes a raw hook-type value into its tagged shape
func ParseEntry(raw json.RawMessage) *Entry {
	switch jsonKind(raw) {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return &Entry{Kind: KindOther, raw: raw}
		}
		e := &Entry{Kind: KindGroups, Groups: make([]Group, 0, len(items))}
		for _, item := range items {
			e.Groups = append(e.Groups, parseGroup(item))
		}
		return e

	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return &Entry{Kind: KindOther, raw: raw}
		}
		if !isTruthy(fields["command"]) {
			return &Entry{Kind: KindOther, raw: raw}
		}
		// only string commands take part in ownership checks
		single := &SingleHook{raw: raw}
		_ = json.Unmarshal(fields["command"], &single.Command)
		single.Timeout = parseTimeout(fields["timeout"])
		_ = json.Unmarshal(fields["matcher"], &single.Matcher)
		return &Entry{Kind: KindSingle, Single: single}
	}

	return &Entry{Kind: KindOther, raw: raw}
}

// Raw returns the verbatim value for KindSingle and KindOther entries
func (e *Entry) Raw() json.RawMessage {
	if e.Kind == KindSingle && e.Single != nil {
		return e.Single.raw
	}
	return e.raw
}

// RemoveHooks drops every command matching fn from every group, then prunes
// hook groups left without commands. It returns the number of commands removed.
// Only KindGroups entries are affected.
func (e *Entry) RemoveHooks(fn func(CommandHook) bool) int {
	if e.Kind != KindGroups {
		return 0
	}

	removed := 0
	kept := make([]Group, 0, len(e.Groups))
	for i := range e.Groups {
		g := e.Groups[i]
		removed += g.removeHooks(fn)
		if !g.opaque && len(g.Hooks) == 0 {
			continue
		}
		kept = append(kept, g)
	}
	e.Groups = kept
	return removed
}

// IsEmptyList reports whether the entry is a list with no elements
func (e *Entry) IsEmptyList() bool {
	return e.Kind == KindGroups && len(e.Groups) == 0
}

// AppendGroup adds a group to the end of a current-shape entry
func (e *Entry) AppendGroup(g Group) {
	e.Groups = append(e.Groups, g)
}

// WrapSingle converts a legacy entry into a list whose first element is the
// original object, unchanged.
func (e *Entry) WrapSingle() {
	if e.Kind != KindSingle {
		return
	}
	e.Groups = []Group{OpaqueGroup(e.Single.raw)}
	e.Kind = KindGroups
	e.Single = nil
}

func (e *Entry) encode() ([]byte, error) {
	if e.Kind != KindGroups {
		return e.Raw(), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, g := range e.Groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := g.encode()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler
func (e *Entry) MarshalJSON() ([]byte, error) {
	return e.encode()
}
