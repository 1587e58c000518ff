package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective claude-notify configuration",
	Long: `Print the configuration used by install and notify: the defaults, merged
with ~/.claude-notify/config.toml and CLAUDE_NOTIFY_* environment variables.

Environment variables:
  CLAUDE_NOTIFY_DEFAULTS_TITLE, CLAUDE_NOTIFY_DEFAULTS_MESSAGE,
  CLAUDE_NOTIFY_DEFAULTS_SOUND, CLAUDE_NOTIFY_DEFAULTS_WAIT,
  CLAUDE_NOTIFY_DEFAULTS_ICON, CLAUDE_NOTIFY_DEFAULTS_VOICELINK,
  CLAUDE_NOTIFY_HOOK_LAUNCHER, CLAUDE_NOTIFY_HOOK_MATCHER,
  CLAUDE_NOTIFY_HOOK_TIMEOUT, CLAUDE_NOTIFY_NOTIFIER_BACKEND,
  CLAUDE_NOTIFY_NOTIFIER_APP_ID`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	paths, cfg, err := loadEnvironment()
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Dim.Render("# "+paths.ConfigPath()))
	fmt.Fprint(out, string(data))
	return nil
}
