// Package hooks merges claude-notify hook registrations into a settings
// document without disturbing hooks installed by anything else.
package hooks

import (
	"strings"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/settings"
)

// IsOwnedCommand reports whether a hook command was installed by claude-notify.
// Ownership is recognized by the tool name appearing anywhere in the command.
func IsOwnedCommand(command string) bool {
	return strings.Contains(command, config.ToolName)
}

func isOwnedHook(h settings.CommandHook) bool {
	return h.IsCommand() && IsOwnedCommand(h.Command)
}

// OwnedHook describes one claude-notify command found in settings.json
type OwnedHook struct {
	Command string `json:"command" yaml:"command"`
	Timeout int    `json:"timeout" yaml:"timeout"`
	Matcher string `json:"matcher" yaml:"matcher"`
}

// FindOwned collects every claude-notify command in an entry, in document
// order, from either the legacy single-object shape or the group-list shape.
func FindOwned(e *settings.Entry) []OwnedHook {
	var owned []OwnedHook
	if e == nil {
		return owned
	}

	switch e.Kind {
	case settings.KindGroups:
		for _, g := range e.Groups {
			if g.IsOpaque() {
				continue
			}
			for _, h := range g.Hooks {
				if !isOwnedHook(h) {
					continue
				}
				owned = append(owned, OwnedHook{
					Command: h.Command,
					Timeout: timeoutOrDefault(h.Timeout),
					Matcher: g.Matcher,
				})
			}
		}

	case settings.KindSingle:
		if IsOwnedCommand(e.Single.Command) {
			matcher := e.Single.Matcher
			if matcher == "" {
				matcher = config.DefaultHookMatcher()
			}
			owned = append(owned, OwnedHook{
				Command: e.Single.Command,
				Timeout: timeoutOrDefault(e.Single.Timeout),
				Matcher: matcher,
			})
		}
	}

	return owned
}

func timeoutOrDefault(timeout int) int {
	if timeout == 0 {
		return config.DefaultHookTimeout()
	}
	return timeout
}
