package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/hooks"
	"github.com/samhoang/claude-notify/internal/notifier"
	"github.com/samhoang/claude-notify/internal/picker"
	"github.com/samhoang/claude-notify/internal/prompt"
	"github.com/samhoang/claude-notify/internal/settings"
	"github.com/samhoang/claude-notify/internal/ui"
)

var (
	installType      string
	installTitle     string
	installMessage   string
	installSound     string
	installWait      string
	installIcon      string
	installVoiceLink string
	installExisting  string
	installTUI       bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install a notification hook into settings.json",
	Long: `Install a Claude Code hook that raises a desktop notification.

With --type interactive (the default) you are asked for the hook type and the
notification details. When claude-notify hooks already exist for the chosen
type you can keep them, delete them all, delete a selection, or abort.
Hooks installed by other tools are never touched.

Defaults for the notification come from ~/.claude-notify/config.toml and
CLAUDE_NOTIFY_* environment variables.`,
	Example: `  claude-notify install
  claude-notify install --type Stop --title "Claude Code" --message "Done" --sound true
  claude-notify install --type Notification --existing delete
  claude-notify install --tui`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installType, "type", "t", "interactive", "Hook type to install, or \"interactive\"")
	installCmd.Flags().StringVar(&installTitle, "title", config.DefaultTitle, "Notification title")
	installCmd.Flags().StringVar(&installMessage, "message", config.DefaultMessage, "Notification message")
	installCmd.Flags().StringVar(&installSound, "sound", "true", "Sound setting (true/false)")
	installCmd.Flags().StringVar(&installWait, "wait", "false", "Wait setting (true/false)")
	installCmd.Flags().StringVar(&installIcon, "icon", "", "Custom icon path")
	installCmd.Flags().StringVar(&installVoiceLink, "voicelink", "", "Voice notification URL or file")
	installCmd.Flags().StringVar(&installExisting, "existing", "ask", "Existing claude-notify hooks: ask, keep, delete, abort")
	installCmd.Flags().BoolVar(&installTUI, "tui", false, "Use interactive pickers instead of line prompts")
	installCmd.RegisterFlagCompletionFunc("type", completeHookTypes(true))
	installCmd.RegisterFlagCompletionFunc("existing", completeExistingPolicy)
	installCmd.RegisterFlagCompletionFunc("sound", completeBool)
	installCmd.RegisterFlagCompletionFunc("wait", completeBool)
	rootCmd.AddCommand(installCmd)
}

// installOptions is the resolved notification setup for one install
type installOptions struct {
	HookType  config.HookType
	Title     string
	Message   string
	Icon      string
	VoiceLink string
	Sound     bool
	Wait      bool
}

// newDispatcher builds the notification dispatcher; replaced in tests
var newDispatcher = func(cfg *config.ToolConfig) *notifier.Dispatcher {
	n, err := notifier.New(cfg.Notifier)
	if err != nil {
		log.Warn().Err(err).Msg("notifications disabled")
		return &notifier.Dispatcher{}
	}
	return notifier.NewDispatcher(n)
}

func runInstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	header := "Claude Code Hooks Installer"
	fmt.Fprintln(out, ui.Title.Render(header))
	fmt.Fprintln(out, ui.Rule(header))

	paths, cfg, err := loadEnvironment()
	if err != nil {
		return err
	}
	dispatcher := newDispatcher(cfg)

	if installTUI && !ui.IsInteractive() {
		return fmt.Errorf("--tui requires an interactive terminal")
	}

	p := prompt.Default()
	result, err := func() (*hooks.InstallResult, error) {
		opts, err := resolveInstallOptions(cmd, cfg, p, out)
		if err != nil {
			return nil, err
		}
		if opts == nil {
			fmt.Fprintln(out, ui.Warning.Render("Installation aborted"))
			return &hooks.InstallResult{Aborted: true}, nil
		}
		choose, err := chooserFor(installExisting, installTUI, p, out)
		if err != nil {
			return nil, err
		}
		if err := paths.EnsureClaudeDir(); err != nil {
			return nil, err
		}
		return performInstall(out, paths.SettingsPath(), opts, cfg.Hook, choose)
	}()

	if err != nil {
		dispatcher.Send(notifier.Notification{
			Title:   "Claude Code Hooks",
			Message: "Installation failed!",
			Sound:   true,
			AppID:   cfg.Notifier.AppID,
		}, "")
		return fmt.Errorf("installation failed: %w", err)
	}
	if result.Aborted {
		return nil
	}

	dispatcher.Send(notifier.Notification{
		Title:   "Claude Code Hooks",
		Message: "Hooks installed successfully!",
		Icon:    notifier.DefaultIcon(),
		Sound:   true,
		AppID:   cfg.Notifier.AppID,
	}, "")
	fmt.Fprintln(out, ui.Success.Render("Installation completed!"))
	return nil
}

// resolveInstallOptions asks for everything in interactive mode; otherwise
// it uses the flags, falling back to config.toml for flags not given.
// It returns nil options when the user quits the hook-type picker.
func resolveInstallOptions(cmd *cobra.Command, cfg *config.ToolConfig, p prompt.Prompter, out io.Writer) (*installOptions, error) {
	d := cfg.Defaults

	if installType != "interactive" {
		hookType, err := config.ParseHookType(installType)
		if err != nil {
			return nil, err
		}

		opts := &installOptions{
			HookType:  hookType,
			Title:     d.Title,
			Message:   d.Message,
			Icon:      d.Icon,
			VoiceLink: d.VoiceLink,
			Sound:     d.Sound,
			Wait:      d.Wait,
		}
		flags := cmd.Flags()
		if flags.Changed("title") {
			opts.Title = installTitle
		}
		if flags.Changed("message") {
			opts.Message = installMessage
		}
		if flags.Changed("icon") {
			opts.Icon = installIcon
		}
		if flags.Changed("voicelink") {
			opts.VoiceLink = installVoiceLink
		}
		if flags.Changed("sound") {
			opts.Sound = parseBoolFlag(installSound)
		}
		if flags.Changed("wait") {
			opts.Wait = parseBoolFlag(installWait)
		}
		return opts, nil
	}

	opts := &installOptions{}
	if installTUI {
		hookType, ok, err := picker.SelectHookType()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		opts.HookType = hookType
	} else {
		hookType, err := prompt.SelectHookType(p, out)
		if err != nil {
			return nil, err
		}
		opts.HookType = hookType
	}

	var err error
	if opts.Title, err = prompt.AskDefault(p, fmt.Sprintf("Enter notification title (default: %s): ", d.Title), d.Title); err != nil {
		return nil, err
	}
	if opts.Message, err = prompt.AskDefault(p, fmt.Sprintf("Enter notification message (default: %s): ", d.Message), d.Message); err != nil {
		return nil, err
	}
	if opts.Icon, err = prompt.AskDefault(p, "Enter custom icon path (optional): ", d.Icon); err != nil {
		return nil, err
	}
	if opts.VoiceLink, err = prompt.AskDefault(p, "Enter voice notification URL (optional): ", d.VoiceLink); err != nil {
		return nil, err
	}
	if opts.Sound, err = prompt.AskYesNo(p, "Enable sound? "+yesNoHint(d.Sound), d.Sound); err != nil {
		return nil, err
	}
	if opts.Wait, err = prompt.AskYesNo(p, "Wait for user interaction? "+yesNoHint(d.Wait), d.Wait); err != nil {
		return nil, err
	}
	return opts, nil
}

func yesNoHint(def bool) string {
	if def {
		return "(Y/n): "
	}
	return "(y/N): "
}

// chooserFor picks how existing claude-notify hooks are handled
func chooserFor(existing string, tui bool, p prompt.Prompter, out io.Writer) (hooks.Chooser, error) {
	if tui && (existing == "" || existing == "ask") {
		return picker.OwnedHookChooser(), nil
	}
	return prompt.PolicyChooser(existing, p, out)
}

// performInstall merges the hook into settingsPath and reports the outcome
func performInstall(out io.Writer, settingsPath string, opts *installOptions, hookCfg config.HookDefaults, choose hooks.Chooser) (*hooks.InstallResult, error) {
	doc, err := settings.Load(settingsPath)
	if err != nil {
		return nil, err
	}

	hookType := string(opts.HookType)
	message := hooks.MessageFor(hookType, opts.Message)
	command := hooks.BuildNotifyCommand(hooks.NotifyOptions{
		Launcher:  hookCfg.Launcher,
		Title:     opts.Title,
		Message:   message,
		Icon:      opts.Icon,
		VoiceLink: opts.VoiceLink,
		Sound:     opts.Sound,
		Wait:      opts.Wait,
	})

	result, err := hooks.Install(doc, hooks.InstallRequest{
		HookType: hookType,
		Command:  command,
		Matcher:  hookCfg.Matcher,
		Timeout:  hookCfg.Timeout,
	}, choose)
	if err != nil {
		return nil, err
	}

	if result.Aborted {
		fmt.Fprintln(out, ui.Warning.Render("Installation aborted"))
		return result, nil
	}

	switch result.Disposition.Action {
	case hooks.ActionDeleteAll:
		fmt.Fprintln(out, ui.Success.Render("All existing claude-notify hooks removed"))
	case hooks.ActionDeleteSelected:
		fmt.Fprintln(out, ui.Success.Render(fmt.Sprintf("Removed %d selected hooks", len(result.Disposition.Indices))))
	}
	log.Debug().Str("type", hookType).Stringer("action", result.Disposition.Action).Int("removed", result.Removed).Msg("merged hook")

	if _, err := doc.Save(settingsPath); err != nil {
		return nil, err
	}

	fmt.Fprintln(out, ui.Success.Render(fmt.Sprintf("Hook '%s' installed successfully!", hookType)))
	fmt.Fprintln(out, ui.Dim.Render("   Config file: "+settingsPath))
	fmt.Fprintln(out, ui.Dim.Render("   Title: "+opts.Title))
	fmt.Fprintln(out, ui.Dim.Render("   Message: "+message))
	fmt.Fprintln(out, ui.Dim.Render("   Sound: "+enabled(opts.Sound)))
	if opts.Icon != "" {
		fmt.Fprintln(out, ui.Dim.Render("   Icon: "+opts.Icon))
	}
	if opts.VoiceLink != "" {
		fmt.Fprintln(out, ui.Dim.Render("   Voice: "+opts.VoiceLink))
	}
	fmt.Fprintln(out, ui.Dim.Render("   Command: "+command))
	fmt.Fprintln(out, ui.Title.Render(fmt.Sprintf("   Total hooks for '%s': %d", hookType, result.Total)))

	return result, nil
}

func enabled(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}
