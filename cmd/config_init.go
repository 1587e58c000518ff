package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/config"
)

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate default config.toml",
	Long: `Generate a default ~/.claude-notify/config.toml.

Example config.toml:

  [defaults]
  title = "Claude Code"
  message = "Hook triggered"
  sound = true
  wait = false

  [hook]
  launcher = "claude-notify"
  matcher = ".*"
  timeout = 10

  [notifier]
  backend = "beeep"
  app_id = "claude-notify"`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.ResolvePaths()
	if err != nil {
		return err
	}

	configPath := paths.ConfigPath()
	out := cmd.OutOrStdout()

	if _, err := os.Stat(configPath); err == nil && !configInitForce {
		fmt.Fprintf(out, "Config already exists: %s\n", configPath)
		fmt.Fprintln(out, "Edit it directly or use --force to regenerate.")
		return nil
	}

	cfg := config.DefaultToolConfig()
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "Created: %s\n", configPath)
	return nil
}
