package notifier

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
)

// Player plays a voice link
type Player interface {
	Play(link string) error
}

// VoicePlayer opens voice links with the platform's default handler
type VoicePlayer struct {
	openURL  func(url string) error
	openFile func(path string) error
}

// NewVoicePlayer creates a player backed by pkg/browser
func NewVoicePlayer() *VoicePlayer {
	browser.Stdout = os.Stderr
	return &VoicePlayer{openURL: browser.OpenURL, openFile: browser.OpenFile}
}

// Play opens http(s) links in the default handler and local files with the
// application registered for them. Anything else is skipped.
func (p *VoicePlayer) Play(link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil
	}

	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		if err := p.openURL(link); err != nil {
			return fmt.Errorf("opening voice link %s: %w", link, err)
		}
		return nil
	}

	if info, err := os.Stat(link); err == nil && !info.IsDir() {
		if err := p.openFile(link); err != nil {
			return fmt.Errorf("opening voice file %s: %w", link, err)
		}
		return nil
	}

	log.Debug().Str("voicelink", link).Msg("voice link is neither a URL nor an existing file, skipping")
	return nil
}
