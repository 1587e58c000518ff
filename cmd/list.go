package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/ui"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available hook types",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", outputText, "Output format: text, json, yaml")
	listCmd.RegisterFlagCompletionFunc("output", completeOutputFormats)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if err := validateOutput(listOutput); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	catalog := config.HookCatalog()

	if listOutput != outputText {
		return writeStructured(out, listOutput, catalog)
	}

	header := "Available Hook Types:"
	fmt.Fprintln(out, ui.Title.Render(header))
	fmt.Fprintln(out, ui.Rule(header))
	for i, info := range catalog {
		fmt.Fprintln(out, ui.Item.Render(fmt.Sprintf("%d. %s", i+1, info.Name)))
		fmt.Fprintln(out, ui.Dim.Render("   Key: "+string(info.Key)))
		fmt.Fprintln(out, ui.Dim.Render("   Description: "+info.Description))
		fmt.Fprintln(out)
	}
	return nil
}
