package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/hooks"
	"github.com/samhoang/claude-notify/internal/settings"
	"github.com/samhoang/claude-notify/internal/ui"
)

var statusOutput string

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show hooks configured in settings.json",
	Long: `Show every hook configured in Claude Code's settings.json, grouped by hook
type, marking the ones installed by claude-notify.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", outputText, "Output format: text, json, yaml")
	statusCmd.RegisterFlagCompletionFunc("output", completeOutputFormats)
	rootCmd.AddCommand(statusCmd)
}

// hookStatus describes the hooks configured for one hook type
type hookStatus struct {
	Type  string      `json:"type" yaml:"type"`
	Shape string      `json:"shape" yaml:"shape"`
	Hooks []hookState `json:"hooks" yaml:"hooks"`
}

// hookState is one command under a hook type
type hookState struct {
	Matcher string `json:"matcher" yaml:"matcher"`
	Command string `json:"command" yaml:"command"`
	Timeout int    `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Owned   bool   `json:"owned" yaml:"owned"`
	Legacy  bool   `json:"legacy,omitempty" yaml:"legacy,omitempty"`
}

type statusReport struct {
	SettingsPath string       `json:"settings_path" yaml:"settings_path"`
	LegacyHooks  bool         `json:"legacy_hooks_file" yaml:"legacy_hooks_file"`
	Types        []hookStatus `json:"types" yaml:"types"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := validateOutput(statusOutput); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	paths, err := config.ResolvePaths()
	if err != nil {
		fmt.Fprintln(out, ui.Error.Render("Failed to read status: "+err.Error()))
		return nil
	}

	report, err := buildStatus(paths)
	if err != nil {
		fmt.Fprintln(out, ui.Error.Render("Failed to read status: "+err.Error()))
		return nil
	}

	if statusOutput != outputText {
		return writeStructured(out, statusOutput, report)
	}
	printStatus(out, report)
	return nil
}

func buildStatus(paths *config.Paths) (*statusReport, error) {
	report := &statusReport{
		SettingsPath: paths.SettingsPath(),
		LegacyHooks:  paths.LegacyHooksExist(),
		Types:        []hookStatus{},
	}

	doc, err := settings.Load(paths.SettingsPath())
	if err != nil {
		return nil, err
	}
	h := doc.Hooks()
	if h == nil {
		return report, nil
	}

	for _, t := range h.Types() {
		report.Types = append(report.Types, describeEntry(t, h.Get(t)))
	}
	return report, nil
}

func describeEntry(hookType string, e *settings.Entry) hookStatus {
	st := hookStatus{Type: hookType, Shape: e.Kind.String(), Hooks: []hookState{}}

	switch e.Kind {
	case settings.KindGroups:
		for _, g := range e.Groups {
			if g.IsOpaque() {
				st.Hooks = append(st.Hooks, hookState{Command: "(legacy entry)", Legacy: true})
				continue
			}
			for _, c := range g.Hooks {
				if !c.IsCommand() {
					continue
				}
				st.Hooks = append(st.Hooks, hookState{
					Matcher: g.Matcher,
					Command: c.Command,
					Timeout: c.Timeout,
					Owned:   hooks.IsOwnedCommand(c.Command),
				})
			}
		}

	case settings.KindSingle:
		command := e.Single.Command
		if command == "" {
			command = "(non-string command)"
		}
		st.Hooks = append(st.Hooks, hookState{
			Matcher: e.Single.Matcher,
			Command: command,
			Timeout: e.Single.Timeout,
			Owned:   hooks.IsOwnedCommand(e.Single.Command),
			Legacy:  true,
		})
	}

	return st
}

func printStatus(out io.Writer, report *statusReport) {
	header := "Claude Code Hooks Status"
	fmt.Fprintln(out, ui.Title.Render(header))
	fmt.Fprintln(out, ui.Rule(header))
	fmt.Fprintln(out, "Settings: "+ui.Path.Render(report.SettingsPath))
	if report.LegacyHooks {
		fmt.Fprintln(out, ui.Warning.Render("Legacy hooks.json found. Run 'claude-notify migrate' to move it into settings.json"))
	}
	fmt.Fprintln(out)

	if len(report.Types) == 0 {
		fmt.Fprintln(out, ui.Dim.Render("No hooks configured"))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tMATCHER\tOWNED\tCOMMAND")
	for _, st := range report.Types {
		if len(st.Hooks) == 0 {
			fmt.Fprintf(w, "%s\t-\t-\t(%s value)\n", st.Type, st.Shape)
			continue
		}
		for _, h := range st.Hooks {
			owned := ""
			if h.Owned {
				owned = "yes"
			}
			matcher := h.Matcher
			if matcher == "" {
				matcher = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", st.Type, matcher, owned, h.Command)
		}
	}
	w.Flush()

	if _, err := os.Stat(report.SettingsPath); os.IsNotExist(err) {
		fmt.Fprintln(out, ui.Dim.Render("(settings.json does not exist yet)"))
	}
}
