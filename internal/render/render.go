// Package render turns a segment list into the escaped prompt string.
package render

import (
	"strings"

	"github.com/alexisbeaulieu97/promptr/internal/ansi"
	"github.com/alexisbeaulieu97/promptr/internal/segment"
)

// Options tunes rendering.
type Options struct {
	Mode ansi.Mode

	// ThinSeparatorFG colors Thin glyphs forced by equal backgrounds. Nil
	// keeps the glyph in the current segment's background.
	ThinSeparatorFG *ansi.Color
}

// Renderer writes segments as a single prompt line.
type Renderer struct {
	opts Options
}

// New returns a Renderer.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render walks segments pairwise. After each segment comes its separator:
// Thin when the next segment shares its background, otherwise the kind it
// asked for. The glyph is drawn in the current background over the next
// background, or over a reset after the last segment. The output always
// ends with a reset and one space.
func (r *Renderer) Render(segments []segment.Segment) string {
	mode := r.opts.Mode

	var b strings.Builder
	for i, cur := range segments {
		b.WriteString(cur.FG.FG(mode))
		b.WriteString(cur.BG.BG(mode))
		b.WriteString(" ")
		b.WriteString(cur.Text)
		b.WriteString(" ")

		sep := cur.Separator
		glyphFG := cur.BG
		nextBG := ansi.Reset(mode)

		if i+1 < len(segments) {
			next := segments[i+1]
			nextBG = next.BG.BG(mode)
			if next.BG == cur.BG {
				sep = segment.Thin
				if r.opts.ThinSeparatorFG != nil {
					glyphFG = *r.opts.ThinSeparatorFG
				}
			}
		}

		b.WriteString(nextBG)
		b.WriteString(glyphFG.FG(mode))
		b.WriteString(sep.Glyph())
	}

	b.WriteString(ansi.Reset(mode))
	b.WriteString(" ")
	return b.String()
}

// Separators returns the separator Render would draw after each segment.
func Separators(segments []segment.Segment) []segment.Separator {
	out := make([]segment.Separator, len(segments))
	for i, cur := range segments {
		out[i] = cur.Separator
		if i+1 < len(segments) && segments[i+1].BG == cur.BG {
			out[i] = segment.Thin
		}
	}
	return out
}
