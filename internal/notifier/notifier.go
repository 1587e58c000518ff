// Package notifier delivers desktop notifications and plays voice links.
// Delivery is best-effort: failures are logged, never fatal.
package notifier

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog/log"

	"github.com/samhoang/claude-notify/internal/config"
)

// Notification is one desktop notification
type Notification struct {
	Title   string
	Message string
	Icon    string
	AppID   string
	Sound   bool
	Wait    bool
}

// Notifier shows desktop notifications
type Notifier interface {
	Notify(n Notification) error
}

// New returns the notifier for the configured backend
func New(cfg config.NotifierConfig) (Notifier, error) {
	switch cfg.Backend {
	case "", config.NotifierBeeep:
		return NewBeeepNotifier(), nil
	case config.NotifierCommand:
		return NewCommandNotifier(), nil
	default:
		return nil, fmt.Errorf("unknown notifier backend %q", cfg.Backend)
	}
}

type beeepFunc func(title, message string, icon any) error

// BeeepNotifier shows notifications through the native OS service
type BeeepNotifier struct {
	notify beeepFunc
	alert  beeepFunc
}

// NewBeeepNotifier creates a notifier backed by gen2brain/beeep
func NewBeeepNotifier() *BeeepNotifier {
	return &BeeepNotifier{notify: beeep.Notify, alert: beeep.Alert}
}

// Notify implements Notifier. Sound selects an alert over a silent
// notification.
func (b *BeeepNotifier) Notify(n Notification) error {
	if n.AppID != "" {
		beeep.AppName = n.AppID
	}
	if n.Wait {
		log.Debug().Msg("beeep backend cannot wait for user interaction, ignoring --wait")
	}

	send := b.notify
	if n.Sound {
		send = b.alert
	}
	if err := send(n.Title, n.Message, n.Icon); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	return nil
}

// DefaultIcon returns assets/icon.png from the installation root (the parent
// of the executable's directory), or "" if there is none.
func DefaultIcon() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	icon := filepath.Join(filepath.Dir(filepath.Dir(exe)), "assets", "icon.png")
	if _, err := os.Stat(icon); err != nil {
		return ""
	}
	return icon
}
