package picker

import (
	"fmt"
	"strconv"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/hooks"
)

// HookTypeItems lists the hook-type catalog as picker items
func HookTypeItems() []Item {
	catalog := config.HookCatalog()
	items := make([]Item, len(catalog))
	for i, info := range catalog {
		items[i] = Item{
			ID:     string(info.Key),
			Label:  info.Name,
			Detail: info.Description,
		}
	}
	return items
}

// SelectHookType shows the hook-type picker. ok is false when the user quit.
func SelectHookType() (hookType config.HookType, ok bool, err error) {
	id, err := RunSingle("Select hook type to install", HookTypeItems())
	if err != nil {
		return "", false, err
	}
	if id == "" {
		return "", false, nil
	}
	return config.HookType(id), true, nil
}

// OwnedHookItems lists owned hooks as picker items, none preselected
func OwnedHookItems(owned []hooks.OwnedHook) []Item {
	items := make([]Item, len(owned))
	for i, h := range owned {
		items[i] = Item{
			ID:     strconv.Itoa(i),
			Label:  h.Command,
			Detail: fmt.Sprintf("matcher %q, timeout %ds", h.Matcher, h.Timeout),
		}
	}
	return items
}

// DispositionFor converts a multi-select result into a disposition. Quitting
// or selecting nothing keeps all hooks; selecting everything deletes all.
func DispositionFor(selected []int, ok bool, count int) hooks.Disposition {
	switch {
	case !ok || len(selected) == 0:
		return hooks.KeepAll()
	case len(selected) == count:
		return hooks.DeleteAll()
	default:
		return hooks.DeleteSelected(selected...)
	}
}

// OwnedHookChooser returns a hooks.Chooser that lets the user tick the owned
// hooks to delete before installing.
func OwnedHookChooser() hooks.Chooser {
	return func(owned []hooks.OwnedHook) (hooks.Disposition, error) {
		selected, ok, err := Run("Existing claude-notify hooks: select the ones to delete", OwnedHookItems(owned))
		if err != nil {
			return hooks.Disposition{}, err
		}
		return DispositionFor(selected, ok, len(owned)), nil
	}
}
