package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/hooks"
	"github.com/samhoang/claude-notify/internal/settings"
	"github.com/samhoang/claude-notify/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose common issues",
	Long: `Check for common claude-notify issues.

Checks:
- Does ~/.claude exist?
- Is settings.json valid?
- Is there a leftover hooks.json?
- Is config.toml valid?
- Can the hook launcher be found on PATH?`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	paths, err := config.ResolvePaths()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	header := "claude-notify doctor"
	fmt.Fprintln(out, ui.Title.Render(header))
	fmt.Fprintln(out, ui.Rule(header))

	issues := runDoctorChecks(out, paths)

	fmt.Fprintln(out)
	if issues == 0 {
		fmt.Fprintln(out, ui.Success.Render("All checks passed!"))
	} else {
		fmt.Fprintln(out, ui.Warning.Render(fmt.Sprintf("Found %d issue(s)", issues)))
	}
	return nil
}

// runDoctorChecks prints each check and returns the number of failures
func runDoctorChecks(out io.Writer, paths *config.Paths) int {
	issues := 0

	fmt.Fprint(out, "Checking Claude directory... ")
	if info, err := os.Stat(paths.ClaudeDir); err != nil || !info.IsDir() {
		fmt.Fprintln(out, ui.Warning.Render("WARN"))
		fmt.Fprintf(out, "  → %s does not exist yet, install will create it\n", paths.ClaudeDir)
	} else {
		fmt.Fprintln(out, ui.Success.Render("OK"))
	}

	fmt.Fprint(out, "Checking settings.json... ")
	doc, err := settings.Load(paths.SettingsPath())
	switch {
	case err != nil:
		fmt.Fprintln(out, ui.Error.Render("FAIL"))
		fmt.Fprintf(out, "  → %v\n", err)
		issues++
	default:
		owned := 0
		if h := doc.Hooks(); h != nil {
			for _, t := range h.Types() {
				owned += len(hooks.FindOwned(h.Get(t)))
			}
		}
		fmt.Fprintln(out, ui.Success.Render(fmt.Sprintf("OK (%d claude-notify hooks)", owned)))
	}

	fmt.Fprint(out, "Checking for legacy hooks.json... ")
	if paths.LegacyHooksExist() {
		fmt.Fprintln(out, ui.Warning.Render("WARN"))
		fmt.Fprintln(out, "  → Run 'claude-notify migrate' to move it into settings.json")
	} else {
		fmt.Fprintln(out, ui.Success.Render("OK"))
	}

	fmt.Fprint(out, "Checking config.toml... ")
	cfg, err := config.LoadToolConfig(paths.ConfigPath())
	if err != nil {
		fmt.Fprintln(out, ui.Error.Render("FAIL"))
		fmt.Fprintf(out, "  → %v\n", err)
		return issues + 1
	}
	fmt.Fprintln(out, ui.Success.Render("OK"))

	fmt.Fprint(out, "Checking hook launcher... ")
	launcher := launcherBinary(cfg.Hook.Launcher)
	if _, err := exec.LookPath(launcher); err != nil {
		fmt.Fprintln(out, ui.Warning.Render("WARN"))
		fmt.Fprintf(out, "  → %q not found on PATH, installed hooks will fail to run\n", launcher)
		issues++
	} else {
		fmt.Fprintln(out, ui.Success.Render("OK"))
	}

	return issues
}

// launcherBinary returns the executable a launcher string starts with
func launcherBinary(launcher string) string {
	fields := strings.Fields(launcher)
	if len(fields) == 0 {
		return config.ToolName
	}
	return fields[0]
}
