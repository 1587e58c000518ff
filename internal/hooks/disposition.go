package hooks

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is what to do with claude-notify hooks already present for a hook type
type Action int

const (
	ActionKeepAll        Action = iota // keep existing hooks, append the new one
	ActionDeleteAll                    // remove every owned hook first
	ActionDeleteSelected               // remove only the selected owned hooks
	ActionAbort                        // leave the document untouched
)

// String returns the string representation of Action
func (a Action) String() string {
	switch a {
	case ActionKeepAll:
		return "keep-all"
	case ActionDeleteAll:
		return "delete-all"
	case ActionDeleteSelected:
		return "delete-selected"
	case ActionAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// ParseAction parses a pre-decided policy name (keep, delete, abort)
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keep", "keep-all":
		return ActionKeepAll, nil
	case "delete", "delete-all":
		return ActionDeleteAll, nil
	case "abort":
		return ActionAbort, nil
	default:
		return ActionKeepAll, fmt.Errorf("unknown action %q (want keep, delete or abort)", s)
	}
}

// Disposition is the caller's decision about existing owned hooks.
// Indices are 0-based positions in the owned-hook list.
type Disposition struct {
	Action  Action
	Indices []int
}

// KeepAll keeps existing hooks
func KeepAll() Disposition { return Disposition{Action: ActionKeepAll} }

// DeleteAll removes all existing owned hooks
func DeleteAll() Disposition { return Disposition{Action: ActionDeleteAll} }

// Abort cancels the install
func Abort() Disposition { return Disposition{Action: ActionAbort} }

// DeleteSelected removes the owned hooks at the given 0-based indices
func DeleteSelected(indices ...int) Disposition {
	return Disposition{Action: ActionDeleteSelected, Indices: indices}
}

// Chooser decides what to do with the owned hooks found for a hook type.
// It is only called when at least one owned hook exists.
type Chooser func(owned []OwnedHook) (Disposition, error)

// Policy returns a Chooser that always answers with the same disposition
func Policy(d Disposition) Chooser {
	return func([]OwnedHook) (Disposition, error) {
		return d, nil
	}
}

// ParseSelection turns a user selection of 1-based, comma-separated numbers
// into a disposition. "all" selects everything. Non-numeric and out-of-range
// tokens are dropped; if nothing valid remains the result is keep-all.
func ParseSelection(input string, count int) Disposition {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "all") {
		return DeleteAll()
	}

	var indices []int
	for _, tok := range strings.Split(input, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		if i := n - 1; i >= 0 && i < count {
			indices = append(indices, i)
		}
	}

	if len(indices) == 0 {
		return KeepAll()
	}
	return DeleteSelected(indices...)
}

// normalize drops out-of-range indices; an empty selection becomes keep-all
func (d Disposition) normalize(count int) Disposition {
	if d.Action != ActionDeleteSelected {
		return d
	}
	var valid []int
	for _, i := range d.Indices {
		if i >= 0 && i < count {
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return KeepAll()
	}
	return DeleteSelected(valid...)
}
