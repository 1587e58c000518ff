package settings

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNormalizeLegacyEntry(t *testing.T) {
	doc := mustParse(t, `{"hooks": {
  "PreToolUse": [{"matcher": ".*", "hooks": [{"type": "command", "command": "echo pre", "timeout": 5}]}],
  "UserPromptSubmit": {"command": "node", "args": ["/path/to/existing-hook.js"], "env": {"CUSTOM_VAR": "value"}},
  "Stop": "say done"
}}`)

	migrated := MigrateLegacy(doc)
	if migrated == nil {
		t.Fatal("MigrateLegacy() = nil")
	}
	if got := migrated.Types(); !reflect.DeepEqual(got, []string{"PreToolUse", "UserPromptSubmit", "Stop"}) {
		t.Errorf("Types() = %v", got)
	}

	pre := migrated.Get("PreToolUse")
	if pre != doc.Hooks().Get("PreToolUse") {
		t.Error("list entries should pass through unchanged")
	}

	single := migrated.Get("UserPromptSubmit")
	if single.Kind != KindGroups || len(single.Groups) != 1 || !single.Groups[0].IsOpaque() {
		t.Fatalf("UserPromptSubmit not wrapped: %+v", single)
	}
	semantic(t, single.Groups[0].Raw(), `{"command": "node", "args": ["/path/to/existing-hook.js"], "env": {"CUSTOM_VAR": "value"}}`)

	other := migrated.Get("Stop")
	if other.Kind != KindGroups || len(other.Groups) != 1 {
		t.Fatalf("Stop not wrapped: %+v", other)
	}
	semantic(t, other.Groups[0].Raw(), `"say done"`)
}

func TestMigrateLegacyNoHooks(t *testing.T) {
	if MigrateLegacy(mustParse(t, `{"other": 1}`)) != nil {
		t.Error("MigrateLegacy() should be nil without hooks")
	}
}

func TestMigrateFile(t *testing.T) {
	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "hooks.json")
	settingsPath := filepath.Join(dir, "settings.json")

	legacy := `{"hooks": {"UserPromptSubmit": {"command": "node", "args": ["a.js"]}}}`
	current := `{"model": "opus", "hooks": {
  "UserPromptSubmit": [{"matcher": "", "hooks": [{"type": "command", "command": "old"}]}],
  "Stop": [{"matcher": "", "hooks": [{"type": "command", "command": "keep me"}]}]
}}`
	if err := os.WriteFile(legacyPath, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(settingsPath, []byte(current), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := MigrateFile(legacyPath, settingsPath)
	if err != nil {
		t.Fatalf("MigrateFile() error: %v", err)
	}
	if !reflect.DeepEqual(result.Migrated, []string{"UserPromptSubmit"}) {
		t.Errorf("Migrated = %v", result.Migrated)
	}
	if !result.LegacyRemoved {
		t.Error("LegacyRemoved = false")
	}
	if _, err := os.Stat(legacyPath); !os.IsNotExist(err) {
		t.Error("hooks.json should be deleted")
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}
	semantic(t, data, `{"model": "opus", "hooks": {
  "UserPromptSubmit": [{"command": "node", "args": ["a.js"]}],
  "Stop": [{"matcher": "", "hooks": [{"type": "command", "command": "keep me"}]}]
}}`)
}

func TestMigrateFileMissingLegacy(t *testing.T) {
	dir := t.TempDir()
	result, err := MigrateFile(filepath.Join(dir, "hooks.json"), filepath.Join(dir, "settings.json"))
	if err != nil {
		t.Fatalf("MigrateFile() error: %v", err)
	}
	if len(result.Migrated) != 0 || result.LegacyRemoved {
		t.Errorf("unexpected result %+v", result)
	}
	if _, err := os.Stat(filepath.Join(dir, "settings.json")); !os.IsNotExist(err) {
		t.Error("settings.json should not be created")
	}
}

func TestMigrateFileLegacyWithoutHooks(t *testing.T) {
	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "hooks.json")
	if err := os.WriteFile(legacyPath, []byte(`{"version": 1}`), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := MigrateFile(legacyPath, filepath.Join(dir, "settings.json"))
	if err != nil {
		t.Fatalf("MigrateFile() error: %v", err)
	}
	if result.LegacyRemoved {
		t.Error("legacy file without hooks should be kept")
	}
	if _, err := os.Stat(legacyPath); err != nil {
		t.Errorf("hooks.json should still exist: %v", err)
	}
}
