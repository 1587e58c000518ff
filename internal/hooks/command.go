package hooks

import (
	"strconv"
	"strings"

	"github.com/samhoang/claude-notify/internal/config"
)

// NotifyOptions are the notification parameters baked into an installed hook
type NotifyOptions struct {
	Launcher  string // command prefix, e.g. "npx claude-notify"
	Title     string
	Message   string
	Icon      string
	VoiceLink string
	Sound     bool
	Wait      bool
}

// MessageFor returns the notification message for a hook type. The generic
// default message is replaced with one naming the hook type.
func MessageFor(hookType, message string) string {
	if message == "" || message == config.DefaultMessage {
		return hookType + " " + config.DefaultMessage
	}
	return message
}

// BuildNotifyCommand renders the shell command a hook runs to raise a
// notification. Optional flags are emitted only when non-empty.
func BuildNotifyCommand(o NotifyOptions) string {
	launcher := o.Launcher
	if launcher == "" {
		launcher = config.ToolName
	}

	parts := []string{launcher, "notify"}
	add := func(flag, value string) {
		if value != "" {
			parts = append(parts, flag, shellQuote(value))
		}
	}
	add("--title", o.Title)
	add("--message", o.Message)
	add("--icon", o.Icon)
	add("--voicelink", o.VoiceLink)
	parts = append(parts,
		"--sound", strconv.FormatBool(o.Sound),
		"--wait", strconv.FormatBool(o.Wait),
	)

	return strings.Join(parts, " ")
}

var shellEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

// shellQuote wraps s in double quotes, escaping characters the shell would
// otherwise interpret inside them.
func shellQuote(s string) string {
	return `"` + shellEscaper.Replace(s) + `"`
}
