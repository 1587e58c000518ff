package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/samhoang/claude-notify/internal/config"
	"github.com/samhoang/claude-notify/internal/notifier"
)

var (
	notifyTitle     string
	notifyMessage   string
	notifyIcon      string
	notifyVoiceLink string
	notifySound     string
	notifyWait      string
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Show a notification (used by installed hooks)",
	Long: `Show a desktop notification and optionally play a voice link.

This is the command installed hooks run. Delivery failures are logged as
warnings and do not fail the hook.`,
	RunE: runNotify,
}

func init() {
	notifyCmd.Flags().StringVar(&notifyTitle, "title", config.DefaultTitle, "Notification title")
	notifyCmd.Flags().StringVar(&notifyMessage, "message", config.DefaultMessage, "Notification message")
	notifyCmd.Flags().StringVar(&notifyIcon, "icon", "", "Custom icon path")
	notifyCmd.Flags().StringVar(&notifyVoiceLink, "voicelink", "", "Voice notification URL or file")
	notifyCmd.Flags().StringVar(&notifySound, "sound", "true", "Sound setting (true/false)")
	notifyCmd.Flags().StringVar(&notifyWait, "wait", "false", "Wait setting (true/false)")
	notifyCmd.RegisterFlagCompletionFunc("sound", completeBool)
	notifyCmd.RegisterFlagCompletionFunc("wait", completeBool)
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadEnvironment()
	if err != nil {
		return err
	}

	n, voiceLink := notificationFromFlags(cmd, cfg)
	if n.Icon == "" {
		n.Icon = notifier.DefaultIcon()
	}

	log.Debug().Str("title", n.Title).Str("message", n.Message).Bool("sound", n.Sound).Msg("sending notification")
	newDispatcher(cfg).Send(n, voiceLink)
	return nil
}

// notificationFromFlags builds the notification from flags, using config.toml
// defaults for flags not given
func notificationFromFlags(cmd *cobra.Command, cfg *config.ToolConfig) (notifier.Notification, string) {
	d := cfg.Defaults
	n := notifier.Notification{
		Title:   d.Title,
		Message: d.Message,
		Icon:    d.Icon,
		Sound:   d.Sound,
		Wait:    d.Wait,
		AppID:   cfg.Notifier.AppID,
	}
	voiceLink := d.VoiceLink

	flags := cmd.Flags()
	if flags.Changed("title") {
		n.Title = notifyTitle
	}
	if flags.Changed("message") {
		n.Message = notifyMessage
	}
	if flags.Changed("icon") {
		n.Icon = notifyIcon
	}
	if flags.Changed("sound") {
		n.Sound = parseBoolFlag(notifySound)
	}
	if flags.Changed("wait") {
		n.Wait = parseBoolFlag(notifyWait)
	}
	if flags.Changed("voicelink") {
		voiceLink = notifyVoiceLink
	}

	return n, voiceLink
}
