package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/ui"
)

var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "claude-notify",
	Short: "Claude Code hooks installer with desktop notifications",
	Long: `claude-notify installs hook entries into Claude Code's settings.json that
raise a desktop notification (and optionally play a voice link) when the hook
fires. Hooks installed by other tools are left untouched.`,
	Version:          Version,
	SilenceErrors:    true,
	SilenceUsage:     true,
	PersistentPreRun: setupLogging,
}

func setupLogging(cmd *cobra.Command, args []string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadEnvironment resolves paths and loads config.toml with env overrides
func loadEnvironment() (*config.Paths, *config.ToolConfig, error) {
	paths, err := config.ResolvePaths()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadToolConfig(paths.ConfigPath())
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("config", paths.ConfigPath()).Str("claude_dir", paths.ClaudeDir).Msg("environment loaded")

	return paths, cfg, nil
}
