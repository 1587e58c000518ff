package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/hooks"
	"github.com/samhoang/claude-notify/internal/ui"
)

// SelectHookType prints the hook-type catalog and asks until a valid number
// is entered.
func SelectHookType(p Prompter, out io.Writer) (config.HookType, error) {
	catalog := config.HookCatalog()

	for {
		header := "Select hook type to install:"
		fmt.Fprintln(out, ui.Title.Render(header))
		fmt.Fprintln(out, ui.Rule(header))
		for i, info := range catalog {
			fmt.Fprintln(out, ui.Item.Render(fmt.Sprintf("%d. %s", i+1, info.Name)))
			fmt.Fprintln(out, ui.Dim.Render("   "+info.Description))
			fmt.Fprintln(out)
		}

		answer, err := p.Ask(fmt.Sprintf("Enter your choice (1-%d): ", len(catalog)))
		if err != nil {
			return "", err
		}

		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(catalog) {
			return catalog[n-1].Key, nil
		}
		fmt.Fprintln(out, ui.Error.Render("Invalid choice. Please try again."))
	}
}

// DispositionChooser returns a hooks.Chooser that lists the owned hooks and
// asks what to do with them. Unrecognized answers keep all hooks.
func DispositionChooser(p Prompter, out io.Writer) hooks.Chooser {
	return func(owned []hooks.OwnedHook) (hooks.Disposition, error) {
		header := "Found existing claude-notify hooks:"
		fmt.Fprintln(out, ui.Warning.Render(header))
		fmt.Fprintln(out, ui.Rule(header))
		printOwned(out, owned)
		fmt.Fprintln(out)

		action, err := p.Ask("Choose action: [D]elete all, [K]eep all, [S]elective delete, [A]bort: ")
		if err != nil {
			return hooks.Disposition{}, err
		}

		switch strings.ToLower(action) {
		case "d", "delete":
			return hooks.DeleteAll(), nil
		case "a", "abort":
			return hooks.Abort(), nil
		case "s", "selective":
			return askSelection(p, out, len(owned))
		default:
			return hooks.KeepAll(), nil
		}
	}
}

func askSelection(p Prompter, out io.Writer, count int) (hooks.Disposition, error) {
	fmt.Fprintln(out, ui.Title.Render(`Select hooks to delete (comma-separated numbers, or "all"):`))
	answer, err := p.Ask("Enter selection: ")
	if err != nil {
		return hooks.Disposition{}, err
	}

	d := hooks.ParseSelection(answer, count)
	if d.Action == hooks.ActionKeepAll {
		fmt.Fprintln(out, ui.Warning.Render("No valid selection, keeping all hooks"))
	}
	return d, nil
}

func printOwned(out io.Writer, owned []hooks.OwnedHook) {
	for i, h := range owned {
		fmt.Fprintln(out, ui.Item.Render(fmt.Sprintf("%d. %s", i+1, h.Command)))
		fmt.Fprintln(out, ui.Dim.Render(fmt.Sprintf("   Timeout: %ds", h.Timeout)))
	}
}

// PolicyChooser maps an --existing value to a chooser: "ask" (or empty)
// prompts with DispositionChooser, keep/delete/abort answer without asking.
func PolicyChooser(existing string, p Prompter, out io.Writer) (hooks.Chooser, error) {
	if existing == "" || strings.EqualFold(existing, "ask") {
		return DispositionChooser(p, out), nil
	}
	action, err := hooks.ParseAction(existing)
	if err != nil {
		return nil, err
	}
	return hooks.Policy(hooks.Disposition{Action: action}), nil
}
