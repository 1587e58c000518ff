package hooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/samhoang/claude-notify/internal/settings"
)

func mustParse(t *testing.T, data string) *settings.Document {
	t.Helper()
	doc, err := settings.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc
}

func mustMarshal(t *testing.T, doc *settings.Document) []byte {
	t.Helper()
	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	return out
}

// roundTrip re-reads the document from its serialized form, as the next
// invocation of the tool would
func roundTrip(t *testing.T, doc *settings.Document) *settings.Document {
	t.Helper()
	return mustParse(t, string(mustMarshal(t, doc)))
}

func install(t *testing.T, doc *settings.Document, hookType, command string, choose Chooser) *InstallResult {
	t.Helper()
	result, err := Install(doc, InstallRequest{HookType: hookType, Command: command}, choose)
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	return result
}

func TestInstallIntoEmptyDocument(t *testing.T) {
	doc := settings.NewDocument()
	command := `npx claude-notify notify --title "X"`

	result := install(t, doc, "Stop", command, nil)
	if result.Total != 1 || result.Aborted || len(result.Owned) != 0 {
		t.Errorf("unexpected result %+v", result)
	}

	want := `{
  "hooks": {
    "Stop": [
      {
        "matcher": ".*",
        "hooks": [
          {
            "type": "command",
            "command": "npx claude-notify notify --title \"X\"",
            "timeout": 10
          }
        ]
      }
    ]
  }
}
`
	if got := string(mustMarshal(t, doc)); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}

	owned := FindOwned(roundTrip(t, doc).Hooks().Get("Stop"))
	if len(owned) != 1 || owned[0].Command != command {
		t.Errorf("FindOwned() = %+v", owned)
	}
}

func TestInstallTwiceKeepAll(t *testing.T) {
	doc := settings.NewDocument()
	install(t, doc, "Stop", "claude-notify notify --title \"A\"", Policy(KeepAll()))
	doc = roundTrip(t, doc)

	calls := 0
	chooser := func(owned []OwnedHook) (Disposition, error) {
		calls++
		if len(owned) != 1 {
			t.Errorf("chooser saw %d owned hooks, want 1", len(owned))
		}
		return KeepAll(), nil
	}
	result := install(t, doc, "Stop", "claude-notify notify --title \"B\"", chooser)

	if calls != 1 {
		t.Errorf("chooser called %d times, want 1", calls)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
	if got := FindOwned(roundTrip(t, doc).Hooks().Get("Stop")); len(got) != 2 {
		t.Errorf("owned = %+v, want 2 entries", got)
	}
}

func TestInstallDeleteAllThenReinstall(t *testing.T) {
	doc := settings.NewDocument()
	install(t, doc, "Stop", "claude-notify notify", nil)
	doc = roundTrip(t, doc)

	result := install(t, doc, "Stop", "claude-notify notify --title \"new\"", Policy(DeleteAll()))
	if result.Removed != 1 {
		t.Errorf("Removed = %d, want 1", result.Removed)
	}

	entry := roundTrip(t, doc).Hooks().Get("Stop")
	if len(entry.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(entry.Groups))
	}
	if g := entry.Groups[0]; len(g.Hooks) != 1 || g.Hooks[0].Command != `claude-notify notify --title "new"` {
		t.Errorf("unexpected group %+v", g)
	}
}

func TestInstallDeleteSelected(t *testing.T) {
	doc := settings.NewDocument()
	install(t, doc, "Stop", "claude-notify notify --title \"first\"", nil)
	install(t, doc, "Stop", "claude-notify notify --title \"second\"", nil)
	doc = roundTrip(t, doc)

	if n := len(doc.Hooks().Get("Stop").Groups); n != 2 {
		t.Fatalf("setup: %d groups, want 2", n)
	}

	// the user types "1"
	chooser := func(owned []OwnedHook) (Disposition, error) {
		return ParseSelection("1", len(owned)), nil
	}
	result := install(t, doc, "Stop", "claude-notify notify --title \"third\"", chooser)
	if result.Removed != 1 {
		t.Errorf("Removed = %d, want 1", result.Removed)
	}

	owned := FindOwned(roundTrip(t, doc).Hooks().Get("Stop"))
	var commands []string
	for _, o := range owned {
		commands = append(commands, o.Command)
	}
	want := []string{`claude-notify notify --title "second"`, `claude-notify notify --title "third"`}
	if !reflect.DeepEqual(commands, want) {
		t.Errorf("remaining commands = %v, want %v", commands, want)
	}
}

func TestDeleteSelectedRemovesDuplicates(t *testing.T) {
	doc := mustParse(t, `{"hooks": {"Stop": [
  {"matcher": ".*", "hooks": [{"type": "command", "command": "claude-notify notify", "timeout": 10}]},
  {"matcher": "Bash", "hooks": [
    {"type": "command", "command": "claude-notify notify", "timeout": 10},
    {"type": "command", "command": "echo keep"}
  ]}
]}}`)

	result := install(t, doc, "Stop", "claude-notify notify --sound true", Policy(DeleteSelected(0)))
	if result.Removed != 2 {
		t.Errorf("Removed = %d, want 2", result.Removed)
	}

	entry := roundTrip(t, doc).Hooks().Get("Stop")
	if len(entry.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(entry.Groups))
	}
	if g := entry.Groups[0]; g.Matcher != "Bash" || len(g.Hooks) != 1 || g.Hooks[0].Command != "echo keep" {
		t.Errorf("foreign hook not kept: %+v", g)
	}
}

func TestInstallAbortLeavesDocumentUntouched(t *testing.T) {
	input := `{"model": "opus", "hooks": {"Stop": [{"matcher": ".*", "hooks": [{"type": "command", "command": "claude-notify notify", "timeout": 10}]}]}}`
	doc := mustParse(t, input)
	before := mustMarshal(t, doc)

	result := install(t, doc, "Stop", "claude-notify notify --title \"X\"", Policy(Abort()))
	if !result.Aborted {
		t.Error("Aborted = false")
	}
	if result.Total != 1 {
		t.Errorf("Total = %d, want 1", result.Total)
	}
	if after := mustMarshal(t, doc); !bytes.Equal(before, after) {
		t.Errorf("document changed on abort:\n%s", after)
	}
}

func TestInstallChooserNotCalledWithoutOwnedHooks(t *testing.T) {
	doc := mustParse(t, `{"hooks": {"Stop": [{"matcher": "", "hooks": [{"type": "command", "command": "say done"}]}]}}`)

	chooser := func([]OwnedHook) (Disposition, error) {
		t.Error("chooser should not be called")
		return Abort(), nil
	}
	result := install(t, doc, "Stop", "claude-notify notify", chooser)
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
}

func TestInstallChooserError(t *testing.T) {
	doc := settings.NewDocument()
	install(t, doc, "Stop", "claude-notify notify", nil)

	wantErr := fmt.Errorf("no input")
	_, err := Install(doc, InstallRequest{HookType: "Stop", Command: "claude-notify notify"},
		func([]OwnedHook) (Disposition, error) { return Disposition{}, wantErr })
	if err != wantErr {
		t.Errorf("Install() error = %v, want %v", err, wantErr)
	}
}

func TestInstallPreservesUnrelatedKeys(t *testing.T) {
	input := `{"model":"opus","permissions":{"allow":["Bash(ls <dir>)"],"deny":[]},"hooks":{"PreToolUse":[{"matcher":"Bash","hooks":[{"type":"command","command":"lint","extra":{"a":1}}],"note":"mine"}]},"env":{"X":"1"}}`
	doc := mustParse(t, input)
	original := mustParse(t, input)

	install(t, doc, "Stop", "claude-notify notify", nil)
	install(t, doc, "Stop", "claude-notify notify", Policy(DeleteAll()))
	after := roundTrip(t, doc)

	for _, key := range []string{"model", "permissions", "env"} {
		a, _ := original.Field(key)
		b, _ := after.Field(key)
		if !bytes.Equal(compact(t, a), compact(t, b)) {
			t.Errorf("%s changed: %s -> %s", key, a, b)
		}
	}

	pre := after.Hooks().Get("PreToolUse")
	var got, want any
	_ = json.Unmarshal(pre.Groups[0].Raw(), &got)
	_ = json.Unmarshal([]byte(`{"matcher":"Bash","hooks":[{"type":"command","command":"lint","extra":{"a":1}}],"note":"mine"}`), &want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("foreign group changed: %s", pre.Groups[0].Raw())
	}
}

func compact(t *testing.T, raw json.RawMessage) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		t.Fatalf("Compact() error: %v", err)
	}
	return buf.Bytes()
}

func TestInstallWrapsLegacySingleHook(t *testing.T) {
	legacy := `{"command": "node", "args": ["/path/to/existing-hook.js"], "env": {"CUSTOM_VAR": "value"}}`
	doc := mustParse(t, `{"hooks": {"UserPromptSubmit": `+legacy+`}}`)

	chooser := func([]OwnedHook) (Disposition, error) {
		t.Error("foreign legacy hook should not be offered")
		return Abort(), nil
	}
	result := install(t, doc, "UserPromptSubmit", "claude-notify notify", chooser)
	if result.Total != 2 {
		t.Fatalf("Total = %d, want 2", result.Total)
	}

	entry := roundTrip(t, doc).Hooks().Get("UserPromptSubmit")
	if entry.Kind != settings.KindGroups || len(entry.Groups) != 2 {
		t.Fatalf("entry = %v with %d groups", entry.Kind, len(entry.Groups))
	}
	if !entry.Groups[0].IsOpaque() {
		t.Error("legacy object should be the first, opaque element")
	}
	if got := compact(t, entry.Groups[0].Raw()); !bytes.Equal(got, compact(t, json.RawMessage(legacy))) {
		t.Errorf("legacy object changed: %s", got)
	}
	if g := entry.Groups[1]; g.Matcher != ".*" || g.Hooks[0].Command != "claude-notify notify" || g.Hooks[0].Timeout != 10 {
		t.Errorf("new group = %+v", g)
	}
}

func TestInstallWrapsLegacyNonStringCommand(t *testing.T) {
	legacy := `{"command": ["x"], "timeout": 3}`
	doc := mustParse(t, `{"hooks": {"Stop": `+legacy+`}}`)

	result := install(t, doc, "Stop", "claude-notify notify", nil)
	if result.Total != 2 {
		t.Fatalf("Total = %d, want 2", result.Total)
	}

	entry := roundTrip(t, doc).Hooks().Get("Stop")
	if len(entry.Groups) != 2 || !entry.Groups[0].IsOpaque() {
		t.Fatalf("entry = %v with %d groups", entry.Kind, len(entry.Groups))
	}
	if got := compact(t, entry.Groups[0].Raw()); !bytes.Equal(got, compact(t, json.RawMessage(legacy))) {
		t.Errorf("legacy object changed: %s", got)
	}
}

func TestInstallOwnedLegacySingleHook(t *testing.T) {
	doc := mustParse(t, `{"hooks": {"Stop": {"command": "npx claude-notify notify"}}}`)

	var seen []OwnedHook
	chooser := func(owned []OwnedHook) (Disposition, error) {
		seen = owned
		return DeleteAll(), nil
	}
	install(t, doc, "Stop", "claude-notify notify --title \"X\"", chooser)

	want := []OwnedHook{{Command: "npx claude-notify notify", Timeout: 10, Matcher: ".*"}}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("owned = %+v, want %+v", seen, want)
	}

	entry := roundTrip(t, doc).Hooks().Get("Stop")
	if len(entry.Groups) != 1 || entry.Groups[0].IsOpaque() {
		t.Errorf("legacy hook should be replaced, got %d groups", len(entry.Groups))
	}
}

func TestInstallReplacesOtherShapes(t *testing.T) {
	doc := mustParse(t, `{"hooks": {"Stop": "say done"}}`)
	install(t, doc, "Stop", "claude-notify notify", nil)

	entry := roundTrip(t, doc).Hooks().Get("Stop")
	if entry.Kind != settings.KindGroups || len(entry.Groups) != 1 || entry.Groups[0].IsOpaque() {
		t.Errorf("unexpected entry %+v", entry)
	}
}

func TestInstallCustomMatcherAndTimeout(t *testing.T) {
	doc := settings.NewDocument()
	_, err := Install(doc, InstallRequest{HookType: "Stop", Command: "claude-notify notify", Matcher: "Bash", Timeout: 30}, nil)
	if err != nil {
		t.Fatal(err)
	}
	g := doc.Hooks().Get("Stop").Groups[0]
	if g.Matcher != "Bash" || g.Hooks[0].Timeout != 30 {
		t.Errorf("group = %+v", g)
	}
}

func TestInstallRequiresHookType(t *testing.T) {
	if _, err := Install(settings.NewDocument(), InstallRequest{Command: "claude-notify notify"}, nil); err == nil {
		t.Error("Install() should fail without a hook type")
	}
}

func TestRemoveOwnedPrunesEmptyType(t *testing.T) {
	doc := mustParse(t, `{"hooks": {
  "Stop": [{"matcher": ".*", "hooks": [{"type": "command", "command": "claude-notify notify"}]}],
  "PreToolUse": [{"matcher": "", "hooks": [
    {"type": "command", "command": "claude-notify notify"},
    {"type": "command", "command": "lint"}
  ]}]
}}`)

	if n := RemoveOwned(doc, "Stop"); n != 1 {
		t.Errorf("RemoveOwned(Stop) = %d, want 1", n)
	}
	if n := RemoveOwned(doc, "PreToolUse"); n != 1 {
		t.Errorf("RemoveOwned(PreToolUse) = %d, want 1", n)
	}
	if n := RemoveOwned(doc, "Notification"); n != 0 {
		t.Errorf("RemoveOwned(Notification) = %d, want 0", n)
	}

	after := roundTrip(t, doc)
	if after.Hooks().Get("Stop") != nil {
		t.Error("Stop should be absent, not an empty list")
	}
	pre := after.Hooks().Get("PreToolUse")
	if len(pre.Groups) != 1 || len(pre.Groups[0].Hooks) != 1 || pre.Groups[0].Hooks[0].Command != "lint" {
		t.Errorf("PreToolUse = %+v", pre.Groups)
	}
}

func TestRemoveOwnedNoHooks(t *testing.T) {
	if n := RemoveOwned(settings.NewDocument(), "Stop"); n != 0 {
		t.Errorf("RemoveOwned() = %d, want 0", n)
	}
}

func TestRemoveHookTypeDeletesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := settings.NewDocument()
	install(t, doc, "Stop", "claude-notify notify", nil)
	if _, err := doc.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := settings.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	loaded.RemoveHookType("Stop")
	deleted, err := loaded.Save(path)
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Error("Save() should delete the emptied document")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("settings file should be gone")
	}
}

func TestFindOwned(t *testing.T) {
	doc := mustParse(t, `{"hooks": {"Stop": [
  {"command": "claude-notify notify"},
  {"matcher": "Bash", "hooks": [
    {"type": "command", "command": "claude-notify notify --title \"A\"", "timeout": 5},
    {"type": "script", "command": "claude-notify notify"},
    {"type": "command", "command": "echo hi"}
  ]},
  {"hooks": [{"type": "command", "command": "x claude-notify y"}]}
]}}`)

	got := FindOwned(doc.Hooks().Get("Stop"))
	want := []OwnedHook{
		{Command: `claude-notify notify --title "A"`, Timeout: 5, Matcher: "Bash"},
		{Command: "x claude-notify y", Timeout: 10, Matcher: ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindOwned() = %+v, want %+v", got, want)
	}

	if got := FindOwned(nil); len(got) != 0 {
		t.Errorf("FindOwned(nil) = %+v", got)
	}
}

func TestIsOwnedCommand(t *testing.T) {
	tests := []struct {
		command  string
		expected bool
	}{
		{"npx claude-notify notify", true},
		{"/usr/local/bin/claude-notify notify --sound true", true},
		{"claude notify", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsOwnedCommand(tt.command); got != tt.expected {
			t.Errorf("IsOwnedCommand(%q) = %v, want %v", tt.command, got, tt.expected)
		}
	}
}
