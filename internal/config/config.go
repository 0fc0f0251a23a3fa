// Package config provides YAML-based game configuration loading and
// difficulty presets for memylon.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/vovakirdan/memylon/internal/anim"
)

// Board geometry. Grid size is fixed.
const (
	BoardCols = 6
	BoardRows = 4
	BoardSize = BoardCols * BoardRows
	Pairs     = BoardSize / 2
)

// WinnerPlaceholder is replaced by the winning card name in finale captions.
const WinnerPlaceholder = "{winner}"

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Timing       TimingConfig      `yaml:"timing"`
	Caption      anim.TextDefaults `yaml:"caption"`
	Match        MatchConfig       `yaml:"match"`
	Finale       FinaleConfig      `yaml:"finale"`
	LinkTemplate string            `yaml:"link_template"` // fmt verb %s receives the query-escaped name
	Cards        []DeckEntry       `yaml:"deck"`
}

// TimingConfig defines animation timings in milliseconds.
type TimingConfig struct {
	FrameMS   int `yaml:"frame_ms"`   // Tick interval
	FlipMS    int `yaml:"flip_ms"`    // Full flip of one card
	HideMS    int `yaml:"hide_ms"`    // Fade out of a matched card
	ShowMS    int `yaml:"show_ms"`    // Hold of a mismatched pair before flipping back
	FlashMS   int `yaml:"flash_ms"`   // Face-up hold of the intro flash
	StaggerMS int `yaml:"stagger_ms"` // Intro delay per board column
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Frame returns the tick interval.
func (t TimingConfig) Frame() time.Duration { return ms(t.FrameMS) }

// Flip returns the flip duration.
func (t TimingConfig) Flip() time.Duration { return ms(t.FlipMS) }

// Hide returns the fade out duration.
func (t TimingConfig) Hide() time.Duration { return ms(t.HideMS) }

// Show returns the mismatch hold duration.
func (t TimingConfig) Show() time.Duration { return ms(t.ShowMS) }

// Flash returns the intro face-up hold.
func (t TimingConfig) Flash() time.Duration { return ms(t.FlashMS) }

// Stagger returns the intro delay unit.
func (t TimingConfig) Stagger() time.Duration { return ms(t.StaggerMS) }

// MatchConfig is the caption flying over the board after a match.
type MatchConfig struct {
	DurationMS int             `yaml:"duration_ms"`
	Caption    anim.TextParams `yaml:"caption"` // Text is replaced by the card name
}

// Duration returns the caption duration.
func (m MatchConfig) Duration() time.Duration { return ms(m.DurationMS) }

// FinaleConfig is the win scene script.
type FinaleConfig struct {
	Captions []FinaleCaption `yaml:"captions"`
	RevealMS int             `yaml:"reveal_ms"` // Delay before the winner link is revealed
}

// Reveal returns the link reveal delay.
func (f FinaleConfig) Reveal() time.Duration { return ms(f.RevealMS) }

// FinaleCaption is one caption of the win scene, shown after DelayMS.
type FinaleCaption struct {
	DelayMS    int             `yaml:"delay_ms"`
	DurationMS int             `yaml:"duration_ms"`
	Caption    anim.TextParams `yaml:"caption"`
}

// Delay returns the wait before the caption starts.
func (c FinaleCaption) Delay() time.Duration { return ms(c.DelayMS) }

// Duration returns the caption duration.
func (c FinaleCaption) Duration() time.Duration { return ms(c.DurationMS) }

// Params returns the caption with the winner placeholder filled in.
func (c FinaleCaption) Params(winner string) anim.TextParams {
	p := c.Caption
	p.Text = strings.ReplaceAll(p.Text, WinnerPlaceholder, winner)
	return p
}

// DeckEntry is the metadata of one face value.
type DeckEntry struct {
	Name string `yaml:"name"`
	Link string `yaml:"link,omitempty"`
}

// CardInfo is the resolved metadata of a face value.
type CardInfo struct {
	Name string
	Link string
}

// Deck looks up card metadata by 1-based face value.
type Deck struct {
	entries  []DeckEntry
	template string
}

// Deck returns the deck described by the config.
func (c MemoryConfig) Deck() Deck {
	return Deck{entries: c.Cards, template: c.LinkTemplate}
}

// NewDeck creates a deck from entries and a link template.
func NewDeck(entries []DeckEntry, template string) Deck {
	return Deck{entries: entries, template: template}
}

// Len returns the number of face values.
func (d Deck) Len() int {
	return len(d.entries)
}

// Card returns the metadata of a face value. The sign of face is ignored.
// It panics when the face is not in the deck.
func (d Deck) Card(face int) CardInfo {
	if face < 0 {
		face = -face
	}
	if face < 1 || face > len(d.entries) {
		panic(fmt.Sprintf("config: face %d outside deck of %d", face, len(d.entries)))
	}
	e := d.entries[face-1]
	link := e.Link
	if link == "" && d.template != "" {
		link = fmt.Sprintf(d.template, url.QueryEscape(e.Name))
	}
	return CardInfo{Name: e.Name, Link: link}
}

// Names returns the card names ordered by face value.
func (d Deck) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.Name
	}
	return names
}

// Validate reports the first rule the config breaks.
func (c MemoryConfig) Validate() error {
	t := c.Timing
	timings := []struct {
		name string
		v    int
	}{
		{"frame_ms", t.FrameMS},
		{"flip_ms", t.FlipMS},
		{"hide_ms", t.HideMS},
		{"show_ms", t.ShowMS},
		{"flash_ms", t.FlashMS},
		{"match.duration_ms", c.Match.DurationMS},
	}
	for _, tm := range timings {
		if tm.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", tm.name, tm.v)
		}
	}
	if t.StaggerMS < 0 {
		return fmt.Errorf("config: stagger_ms must not be negative, got %d", t.StaggerMS)
	}
	if len(c.Cards) < Pairs {
		return fmt.Errorf("config: deck has %d cards, need at least %d", len(c.Cards), Pairs)
	}
	for i, e := range c.Cards {
		if e.Name == "" {
			return fmt.Errorf("config: deck entry %d has no name", i+1)
		}
	}
	for i, fc := range c.Finale.Captions {
		if fc.DelayMS < 0 || fc.DurationMS <= 0 {
			return fmt.Errorf("config: finale caption %d needs delay_ms >= 0 and duration_ms > 0", i+1)
		}
	}
	if c.Finale.RevealMS <= 0 {
		return fmt.Errorf("config: finale.reveal_ms must be positive, got %d", c.Finale.RevealMS)
	}
	return nil
}
