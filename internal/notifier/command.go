package notifier

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/samhoang/claude-notify/internal/config"
)

// CommandNotifier shows notifications by running the platform's notification
// command (osascript, notify-send or powershell).
type CommandNotifier struct {
	goos string
	run  func(name string, args ...string) error
}

// NewCommandNotifier creates a notifier for the current platform
func NewCommandNotifier() *CommandNotifier {
	return &CommandNotifier{goos: runtime.GOOS, run: runCommand}
}

func runCommand(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Notify implements Notifier
func (c *CommandNotifier) Notify(n Notification) error {
	name, args, err := notifyCommand(c.goos, n)
	if err != nil {
		return err
	}
	return c.run(name, args...)
}

// notifyCommand builds the command line that shows n on goos
func notifyCommand(goos string, n Notification) (string, []string, error) {
	switch goos {
	case "darwin":
		script := fmt.Sprintf(`display notification %s with title %s`, appleQuote(n.Message), appleQuote(n.Title))
		if n.Sound {
			script += ` sound name "default"`
		}
		return "osascript", []string{"-e", script}, nil

	case "linux", "freebsd", "openbsd", "netbsd":
		args := []string{}
		if n.AppID != "" {
			args = append(args, "-a", n.AppID)
		}
		if n.Icon != "" {
			args = append(args, "-i", n.Icon)
		}
		if n.Wait {
			args = append(args, "--wait")
		}
		args = append(args, n.Title, n.Message)
		return "notify-send", args, nil

	case "windows":
		appID := n.AppID
		if appID == "" {
			appID = config.ToolName
		}
		script := fmt.Sprintf(`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$text = $template.GetElementsByTagName("text")
$text.Item(0).AppendChild($template.CreateTextNode(%s)) | Out-Null
$text.Item(1).AppendChild($template.CreateTextNode(%s)) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast)`,
			psQuote(n.Title), psQuote(n.Message), psQuote(appID))
		return "powershell", []string{"-NoProfile", "-Command", script}, nil

	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// appleQuote quotes s as an AppleScript string literal
func appleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// psQuote quotes s as a single-quoted PowerShell string literal
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
