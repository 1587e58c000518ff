package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/settings"
	"github.com/samhoang/claude-notify/internal/ui"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Move hooks from hooks.json into settings.json",
	Long: `Move hook definitions from the legacy ~/.claude/hooks.json into
~/.claude/settings.json, converting them to the current list-of-groups shape.

Legacy single-object hooks are wrapped unchanged in a one-element list.
Hook types present in both files take the hooks.json definition.
hooks.json is deleted after a successful migration.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// failures are reported but do not change the exit code
	if err := migrateLegacy(out); err != nil {
		fmt.Fprintln(out, ui.Error.Render("Migration failed: "+err.Error()))
	}
	return nil
}

func migrateLegacy(out io.Writer) error {
	paths, err := config.ResolvePaths()
	if err != nil {
		return err
	}

	if !paths.LegacyHooksExist() {
		fmt.Fprintln(out, ui.Warning.Render("No hooks.json found, nothing to migrate"))
		return nil
	}

	header := "Migrating hooks.json to settings.json"
	fmt.Fprintln(out, ui.Title.Render(header))
	fmt.Fprintln(out, ui.Rule(header))

	result, err := settings.MigrateFile(paths.LegacyHooksPath(), paths.SettingsPath())
	if err != nil {
		return err
	}

	if len(result.Migrated) == 0 {
		fmt.Fprintln(out, ui.Warning.Render("No hooks found in hooks.json"))
		return nil
	}

	for _, t := range result.Migrated {
		fmt.Fprintln(out, ui.Success.Render("  Migrated "+t))
	}
	fmt.Fprintln(out, ui.Dim.Render("   Hook types: "+strings.Join(result.Migrated, ", ")))
	if result.LegacyRemoved {
		fmt.Fprintln(out, ui.Success.Render("Removed hooks.json"))
	}
	fmt.Fprintln(out, ui.Success.Render("Migration completed!"))
	return nil
}
