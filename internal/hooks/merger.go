package hooks

import (
	"fmt"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/settings"
)

// InstallRequest describes the hook group to add
type InstallRequest struct {
	HookType string
	Command  string
	Matcher  string // defaults to ".*"
	Timeout  int    // defaults to 10 seconds
}

// InstallResult reports what Install did
type InstallResult struct {
	Owned       []OwnedHook // claude-notify hooks present before the install
	Disposition Disposition // decision applied to them
	Removed     int         // commands removed before appending
	Aborted     bool
	Total       int // hook groups for the type after the install
}

// Install adds a claude-notify hook group for req.HookType to doc.
//
// When claude-notify hooks already exist for the type, choose decides whether
// to keep them, delete them all, delete a selection, or abort. A nil chooser
// keeps them. On abort doc is left untouched. Persisting doc is up to the caller.
func Install(doc *settings.Document, req InstallRequest, choose Chooser) (*InstallResult, error) {
	if req.HookType == "" {
		return nil, fmt.Errorf("hook type is required")
	}
	if req.Matcher == "" {
		req.Matcher = config.DefaultHookMatcher()
	}
	if req.Timeout <= 0 {
		req.Timeout = config.DefaultHookTimeout()
	}

	var existing *settings.Entry
	if h := doc.Hooks(); h != nil {
		existing = h.Get(req.HookType)
	}

	result := &InstallResult{
		Owned:       FindOwned(existing),
		Disposition: KeepAll(),
	}

	if len(result.Owned) > 0 && choose != nil {
		d, err := choose(result.Owned)
		if err != nil {
			return nil, err
		}
		result.Disposition = d.normalize(len(result.Owned))
	}

	if result.Disposition.Action == ActionAbort {
		result.Aborted = true
		if existing != nil && existing.Kind == settings.KindGroups {
			result.Total = len(existing.Groups)
		}
		return result, nil
	}

	hooks := doc.EnsureHooks()

	switch result.Disposition.Action {
	case ActionDeleteAll:
		result.Removed = removeMatching(hooks, req.HookType, isOwnedHook, IsOwnedCommand)
	case ActionDeleteSelected:
		selected := make(map[string]bool)
		for _, i := range result.Disposition.Indices {
			selected[result.Owned[i].Command] = true
		}
		result.Removed = removeMatching(hooks, req.HookType,
			func(h settings.CommandHook) bool { return h.IsCommand() && selected[h.Command] },
			func(command string) bool { return selected[command] },
		)
	}

	group := settings.NewGroup(req.Matcher, req.Command, req.Timeout)
	entry := hooks.Get(req.HookType)
	switch {
	case entry == nil:
		entry = settings.NewGroupsEntry(group)
		hooks.Set(req.HookType, entry)
	case entry.Kind == settings.KindGroups:
		entry.AppendGroup(group)
	case entry.Kind == settings.KindSingle:
		// the legacy object is kept as-is as the first list element
		entry.WrapSingle()
		entry.AppendGroup(group)
	default:
		entry = settings.NewGroupsEntry(group)
		hooks.Set(req.HookType, entry)
	}

	result.Total = len(entry.Groups)
	return result, nil
}

// RemoveOwned removes every claude-notify command for a hook type, pruning
// emptied groups and the type itself when nothing is left. Hooks installed by
// other tools are kept. It returns the number of commands removed.
func RemoveOwned(doc *settings.Document, hookType string) int {
	hooks := doc.Hooks()
	if hooks == nil {
		return 0
	}
	return removeMatching(hooks, hookType, isOwnedHook, IsOwnedCommand)
}

// removeMatching applies a removal to one hook type. Legacy single entries
// are dropped whole when singleMatch accepts their command.
func removeMatching(hooks *settings.Hooks, hookType string, match func(settings.CommandHook) bool, singleMatch func(string) bool) int {
	entry := hooks.Get(hookType)
	if entry == nil {
		return 0
	}

	switch entry.Kind {
	case settings.KindGroups:
		removed := entry.RemoveHooks(match)
		if entry.IsEmptyList() {
			hooks.Delete(hookType)
		}
		return removed

	case settings.KindSingle:
		if singleMatch(entry.Single.Command) {
			hooks.Delete(hookType)
			return 1
		}
	}

	return 0
}
