package config

import (
	"os"
	"path/filepath"
)

// ToolName is the invocation name of this tool. Hook commands containing it
// are treated as installed by claude-notify.
const ToolName = "claude-notify"

// Paths holds all resolved paths for claude-notify operations
type Paths struct {
	Home      string // user home directory
	ClaudeDir string // ~/.claude (Claude Code config directory)
	ToolDir   string // ~/.claude-notify (claude-notify data directory)
}

// ResolvePaths resolves all paths based on environment and defaults
func ResolvePaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// Claude config directory (can be overridden)
	claudeDir := os.Getenv("CLAUDE_CONFIG_DIR")
	if claudeDir == "" {
		claudeDir = filepath.Join(home, ".claude")
	}

	toolDir := os.Getenv("CLAUDE_NOTIFY_DIR")
	if toolDir == "" {
		toolDir = filepath.Join(home, ".claude-notify")
	}

	return &Paths{
		Home:      home,
		ClaudeDir: claudeDir,
		ToolDir:   toolDir,
	}, nil
}

// SettingsPath returns the path to Claude Code's settings.json
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.ClaudeDir, "settings.json")
}

// LegacyHooksPath returns the path to the legacy hooks.json file
func (p *Paths) LegacyHooksPath() string {
	return filepath.Join(p.ClaudeDir, "hooks.json")
}

// ConfigPath returns the path to claude-notify's config.toml
func (p *Paths) ConfigPath() string {
	return filepath.Join(p.ToolDir, "config.toml")
}

// EnsureClaudeDir creates the Claude config directory if it does not exist
func (p *Paths) EnsureClaudeDir() error {
	return os.MkdirAll(p.ClaudeDir, 0755)
}

// LegacyHooksExist reports whether a legacy hooks.json is present
func (p *Paths) LegacyHooksExist() bool {
	info, err := os.Stat(p.LegacyHooksPath())
	if err != nil {
		return false
	}
	return !info.IsDir()
}
