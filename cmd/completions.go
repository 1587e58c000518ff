package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/hooks"
)

// completeHookTypes completes hook type names, plus "interactive" when allowed
func completeHookTypes(interactive bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		if interactive {
			names = append(names, "interactive\tChoose the hook type from a menu")
		}
		for _, info := range config.HookCatalog() {
			names = append(names, string(info.Key)+"\t"+info.Description)
		}
		return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// completeInstalledHookTypes completes hook types present in settings.json
func completeInstalledHookTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	paths, err := config.ResolvePaths()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	report, err := buildStatus(paths)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, st := range report.Types {
		names = append(names, st.Type)
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeExistingPolicy completes values for install --existing
func completeExistingPolicy(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	values := []string{"ask"}
	for _, a := range []hooks.Action{hooks.ActionKeepAll, hooks.ActionDeleteAll, hooks.ActionAbort} {
		values = append(values, a.String())
	}
	return filterPrefix(values, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeOutputFormats completes values for --output
func completeOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix([]string{outputText, outputJSON, outputYAML}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeBool(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix([]string{"true", "false"}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(values []string, prefix string) []string {
	if prefix == "" {
		return values
	}
	var out []string
	for _, v := range values {
		if strings.HasPrefix(strings.ToLower(v), strings.ToLower(prefix)) {
			out = append(out, v)
		}
	}
	return out
}
