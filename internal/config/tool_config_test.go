package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samhoang/claude-notify/internal/errors"
)

func TestLoadToolConfigMissingFile(t *testing.T) {
	cfg, err := LoadToolConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadToolConfig() error: %v", err)
	}

	if cfg.Defaults.Title != "Claude Code" {
		t.Errorf("Title = %q, want %q", cfg.Defaults.Title, "Claude Code")
	}
	if cfg.Defaults.Message != "Hook triggered" {
		t.Errorf("Message = %q", cfg.Defaults.Message)
	}
	if !cfg.Defaults.Sound || cfg.Defaults.Wait {
		t.Errorf("Sound/Wait = %v/%v, want true/false", cfg.Defaults.Sound, cfg.Defaults.Wait)
	}
	if cfg.Hook.Launcher != "claude-notify" || cfg.Hook.Matcher != ".*" || cfg.Hook.Timeout != 10 {
		t.Errorf("Hook = %+v", cfg.Hook)
	}
	if cfg.Notifier.Backend != NotifierBeeep {
		t.Errorf("Backend = %q", cfg.Notifier.Backend)
	}
}

func TestLoadToolConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[defaults]
title = "Build Bot"
sound = false

[hook]
launcher = "npx claude-notify"
timeout = 30

[notifier]
backend = "command"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig() error: %v", err)
	}

	if cfg.Defaults.Title != "Build Bot" {
		t.Errorf("Title = %q", cfg.Defaults.Title)
	}
	if cfg.Defaults.Message != "Hook triggered" {
		t.Errorf("Message should keep its default, got %q", cfg.Defaults.Message)
	}
	if cfg.Defaults.Sound {
		t.Error("Sound should be false")
	}
	if cfg.Hook.Launcher != "npx claude-notify" || cfg.Hook.Timeout != 30 {
		t.Errorf("Hook = %+v", cfg.Hook)
	}
	if cfg.Hook.Matcher != ".*" {
		t.Errorf("Matcher = %q", cfg.Hook.Matcher)
	}
	if cfg.Notifier.Backend != NotifierCommand {
		t.Errorf("Backend = %q", cfg.Notifier.Backend)
	}
}

func TestLoadToolConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[defaults]\ntitle = \"From File\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLAUDE_NOTIFY_DEFAULTS_TITLE", "From Env")
	t.Setenv("CLAUDE_NOTIFY_HOOK_TIMEOUT", "25")

	cfg, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig() error: %v", err)
	}

	if cfg.Defaults.Title != "From Env" {
		t.Errorf("Title = %q, want env override", cfg.Defaults.Title)
	}
	if cfg.Hook.Timeout != 25 {
		t.Errorf("Timeout = %d, want 25", cfg.Hook.Timeout)
	}
}

func TestLoadToolConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"launcher without tool name", "[hook]\nlauncher = \"notifier\"\n", errors.ErrLauncherNotOwned},
		{"zero timeout", "[hook]\ntimeout = 0\n", errors.ErrInvalidConfig},
		{"unknown backend", "[notifier]\nbackend = \"pigeon\"\n", errors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := LoadToolConfig(path)
			if !errors.Is(err, tt.target) {
				t.Errorf("LoadToolConfig() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestLoadToolConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[defaults\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadToolConfig(path)
	var pathErr *errors.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("LoadToolConfig() error = %v, want PathError", err)
	}
	if pathErr.Path != path {
		t.Errorf("PathError.Path = %q, want %q", pathErr.Path, path)
	}
}

func TestToolConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultToolConfig()
	cfg.Defaults.VoiceLink = "https://example.com/ding.mp3"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig() error: %v", err)
	}
	if loaded.Defaults.VoiceLink != cfg.Defaults.VoiceLink {
		t.Errorf("VoiceLink = %q, want %q", loaded.Defaults.VoiceLink, cfg.Defaults.VoiceLink)
	}
}
