package notifier

import (
	"github.com/rs/zerolog/log"
)

// Dispatcher sends a notification followed by an optional voice link
type Dispatcher struct {
	Notifier Notifier
	Voice    Player
}

// NewDispatcher creates a dispatcher with the given notifier and the default
// voice player
func NewDispatcher(n Notifier) *Dispatcher {
	return &Dispatcher{Notifier: n, Voice: NewVoicePlayer()}
}

// Send shows n and then plays voiceLink. Failures are logged as warnings;
// it reports whether everything succeeded.
func (d *Dispatcher) Send(n Notification, voiceLink string) bool {
	ok := true

	if d.Notifier != nil {
		if err := d.Notifier.Notify(n); err != nil {
			log.Warn().Err(err).Str("title", n.Title).Msg("desktop notification failed")
			ok = false
		}
	}

	if voiceLink != "" && d.Voice != nil {
		if err := d.Voice.Play(voiceLink); err != nil {
			log.Warn().Err(err).Msg("voice notification failed")
			ok = false
		}
	}

	return ok
}
