package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/samhoang/claude-notify/internal/errors"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "CLAUDE_NOTIFY_"

// Notifier backend names
const (
	NotifierBeeep   = "beeep"
	NotifierCommand = "command"
)

// ToolConfig represents the config.toml configuration file
type ToolConfig struct {
	// Defaults used by install and notify when flags are not given
	Defaults NotificationDefaults `toml:"defaults" envPrefix:"DEFAULTS_"`

	// Shape of the hook entry written to settings.json
	Hook HookDefaults `toml:"hook" envPrefix:"HOOK_"`

	// Desktop notification backend
	Notifier NotifierConfig `toml:"notifier" envPrefix:"NOTIFIER_"`
}

// NotificationDefaults holds default notification content
type NotificationDefaults struct {
	Title     string `toml:"title" env:"TITLE"`
	Message   string `toml:"message" env:"MESSAGE"`
	Sound     bool   `toml:"sound" env:"SOUND"`
	Wait      bool   `toml:"wait" env:"WAIT"`
	Icon      string `toml:"icon,omitempty" env:"ICON"`
	VoiceLink string `toml:"voicelink,omitempty" env:"VOICELINK"`
}

// HookDefaults controls the hook group appended on install
type HookDefaults struct {
	// Launcher is the command prefix placed before "notify" (e.g. "npx claude-notify")
	Launcher string `toml:"launcher" env:"LAUNCHER"`
	Matcher  string `toml:"matcher" env:"MATCHER"`
	Timeout  int    `toml:"timeout" env:"TIMEOUT"`
}

// NotifierConfig selects and tunes the notification backend
type NotifierConfig struct {
	Backend string `toml:"backend" env:"BACKEND"`
	AppID   string `toml:"app_id" env:"APP_ID"`
}

// DefaultTitle and DefaultMessage are the notification defaults
const (
	DefaultTitle   = "Claude Code"
	DefaultMessage = "Hook triggered"
)

// DefaultToolConfig returns default configuration
func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		Defaults: NotificationDefaults{
			Title:   DefaultTitle,
			Message: DefaultMessage,
			Sound:   true,
			Wait:    false,
		},
		Hook: HookDefaults{
			Launcher: ToolName,
			Matcher:  DefaultHookMatcher(),
			Timeout:  DefaultHookTimeout(),
		},
		Notifier: NotifierConfig{
			Backend: NotifierBeeep,
			AppID:   ToolName,
		},
	}
}

// LoadToolConfig loads config.toml from the given path, then applies
// CLAUDE_NOTIFY_* environment overrides. A missing file yields defaults.
func LoadToolConfig(path string) (*ToolConfig, error) {
	cfg := DefaultToolConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.NewPathError(path, "read config", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewPathError(path, "parse config", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise produce an unowned or broken hook
func (c *ToolConfig) Validate() error {
	if !strings.Contains(c.Hook.Launcher, ToolName) {
		return fmt.Errorf("%w: hook.launcher %q must contain %q", errors.ErrLauncherNotOwned, c.Hook.Launcher, ToolName)
	}
	if c.Hook.Timeout <= 0 {
		return fmt.Errorf("%w: hook.timeout must be positive, got %d", errors.ErrInvalidConfig, c.Hook.Timeout)
	}
	switch c.Notifier.Backend {
	case NotifierBeeep, NotifierCommand:
	default:
		return fmt.Errorf("%w: unknown notifier.backend %q", errors.ErrInvalidConfig, c.Notifier.Backend)
	}
	return nil
}

// Marshal encodes the configuration as TOML
func (c *ToolConfig) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Save writes config.toml to disk, creating its directory if needed
func (c *ToolConfig) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewPathError(filepath.Dir(path), "create config dir", err)
	}

	return os.WriteFile(path, data, 0644)
}
