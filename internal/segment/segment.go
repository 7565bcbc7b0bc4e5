// Package segment defines the unit a prompt is built from and the machinery
// that turns configured segment requests into segments.
package segment

import (
	"fmt"

	"github.com/alexisbeaulieu97/promptr/internal/ansi"
)

// Separator is the glyph drawn after a segment.
type Separator uint8

const (
	Thin Separator = iota
	Thick
)

// Glyph returns the Powerline codepoint for s.
func (s Separator) Glyph() string {
	if s == Thin {
		return "\uE0B1"
	}
	return "\uE0B0"
}

func (s Separator) String() string {
	if s == Thin {
		return "Thin"
	}
	return "Thick"
}

// MarshalText lets separators appear by name in JSON dumps.
func (s Separator) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Segment is one colored unit of the prompt. Source only labels where the
// segment came from.
type Segment struct {
	BG        ansi.Color `json:"bg"`
	FG        ansi.Color `json:"fg"`
	Text      string     `json:"text"`
	Separator Separator  `json:"separator"`
	Source    string     `json:"source"`
}

func (s Segment) String() string {
	return fmt.Sprintf("%s %q fg=%s bg=%s sep=%s", s.Source, s.Text, s.FG, s.BG, s.Separator)
}
