package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/hooks"
	"github.com/samhoang/claude-notify/internal/settings"
	"github.com/samhoang/claude-notify/internal/ui"
)

var (
	removeType  string
	removeOwned bool
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Remove installed hooks",
	Long: `Remove hooks from Claude Code's settings.json.

Without flags the whole "hooks" section is deleted, including hooks installed
by other tools. --type limits removal to one hook type. --owned removes only
claude-notify hooks and keeps everything else.

settings.json is deleted when nothing else is left in it.`,
	Example: `  claude-notify remove
  claude-notify remove --type Stop
  claude-notify remove --owned`,
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVarP(&removeType, "type", "t", "", "Only remove hooks of this type")
	removeCmd.Flags().BoolVar(&removeOwned, "owned", false, "Only remove hooks installed by claude-notify")
	removeCmd.RegisterFlagCompletionFunc("type", completeInstalledHookTypes)
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Warning.Render("Removing Claude Code hooks..."))

	// failures are reported but do not change the exit code
	if err := removeHooks(out, removeType, removeOwned); err != nil {
		fmt.Fprintln(out, ui.Error.Render("Failed to remove hooks: "+err.Error()))
	}
	return nil
}

func removeHooks(out io.Writer, hookType string, ownedOnly bool) error {
	paths, err := config.ResolvePaths()
	if err != nil {
		return err
	}
	settingsPath := paths.SettingsPath()

	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		fmt.Fprintln(out, ui.Warning.Render("No settings file found"))
		return nil
	}

	doc, err := settings.Load(settingsPath)
	if err != nil {
		return err
	}
	// "hooks": null counts as no hooks and is left as it is
	if doc.Hooks() == nil {
		fmt.Fprintln(out, ui.Warning.Render("No hooks found to remove"))
		return nil
	}

	types := doc.Hooks().Types()
	if hookType != "" {
		t, err := config.ParseHookType(hookType)
		if err != nil {
			return err
		}
		types = []string{string(t)}
	}

	var removed []string
	switch {
	case ownedOnly:
		for _, t := range types {
			if hooks.RemoveOwned(doc, t) > 0 {
				removed = append(removed, t)
			}
		}
	case hookType != "":
		if doc.RemoveHookType(types[0]) {
			removed = types
		}
	default:
		removed = doc.RemoveHooks()
	}

	if len(removed) == 0 {
		fmt.Fprintln(out, ui.Warning.Render("No hooks found to remove"))
		return nil
	}

	deleted, err := doc.Save(settingsPath)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintln(out, ui.Success.Render("Settings file removed as it became empty!"))
	} else {
		fmt.Fprintln(out, ui.Success.Render("Hooks removed successfully!"))
	}
	fmt.Fprintln(out, ui.Title.Render("   Removed hooks: "+strings.Join(removed, ", ")))
	return nil
}
