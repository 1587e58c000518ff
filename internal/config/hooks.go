package config

import (
	"strings"

	"github.com/samhoang/claude-notify/internal/errors"
)

// HookType represents the type of hook event
type HookType string

const (
	HookPreToolUse       HookType = "PreToolUse"
	HookPostToolUse      HookType = "PostToolUse"
	HookNotification     HookType = "Notification"
	HookUserPromptSubmit HookType = "UserPromptSubmit"
	HookStop             HookType = "Stop"
	HookSubagentStop     HookType = "SubagentStop"
	HookPreCompact       HookType = "PreCompact"
	HookSessionStart     HookType = "SessionStart"
)

// HookTypeInfo describes a hook type for display
type HookTypeInfo struct {
	Key         HookType `json:"key" yaml:"key"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
}

var catalog = []HookTypeInfo{
	{HookPreToolUse, "Pre Tool Use", "Before tool execution"},
	{HookPostToolUse, "Post Tool Use", "After tool execution"},
	{HookNotification, "Notification", "System notifications"},
	{HookUserPromptSubmit, "User Prompt Submit", "When user submits a prompt"},
	{HookStop, "Stop", "When Claude stops execution"},
	{HookSubagentStop, "Subagent Stop", "When subagent stops"},
	{HookPreCompact, "Pre Compact", "Before context compaction"},
	{HookSessionStart, "Session Start", "When a Claude session starts"},
}

// HookCatalog returns the fixed, ordered catalog of hook types
func HookCatalog() []HookTypeInfo {
	out := make([]HookTypeInfo, len(catalog))
	copy(out, catalog)
	return out
}

// AllHookTypes returns all valid hook types in catalog order
func AllHookTypes() []HookType {
	types := make([]HookType, len(catalog))
	for i, info := range catalog {
		types[i] = info.Key
	}
	return types
}

// IsValid reports whether the hook type is in the catalog
func (t HookType) IsValid() bool {
	for _, info := range catalog {
		if info.Key == t {
			return true
		}
	}
	return false
}

// ParseHookType resolves a user-supplied name to a catalog hook type.
// Matching ignores case so "stop" and "Stop" are equivalent.
func ParseHookType(name string) (HookType, error) {
	for _, info := range catalog {
		if strings.EqualFold(string(info.Key), name) {
			return info.Key, nil
		}
	}
	return "", errors.NewHookTypeError(name)
}

// DefaultHookTimeout returns the default timeout, in seconds, for installed hooks
func DefaultHookTimeout() int {
	return 10
}

// DefaultHookMatcher returns the matcher used for installed hook groups
func DefaultHookMatcher() string {
	return ".*"
}
