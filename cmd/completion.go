package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

// completionGenerators maps each supported shell to its cobra generator
var completionGenerators = map[string]func(io.Writer) error{
	"bash": func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
	"zsh":  func(w io.Writer) error { return rootCmd.GenZshCompletion(w) },
	"fish": func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": func(w io.Writer) error {
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a shell completion script for claude-notify.

Hook types, --existing policies and --output formats complete as values, so
"claude-notify install --type <TAB>" lists the hook catalog.

Bash:
  $ source <(claude-notify completion bash)

Zsh (compinit must be enabled):
  $ claude-notify completion zsh > "${fpath[1]}/_claude-notify"
  # then start a new shell

Fish:
  $ claude-notify completion fish > ~/.config/fish/completions/claude-notify.fish

PowerShell:
  PS> claude-notify completion powershell | Out-String | Invoke-Expression
  # add the line above to your PowerShell profile to load it in every session`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return completionGenerators[args[0]](cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
