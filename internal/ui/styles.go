// Package ui styles the human-facing output of the diagnostic commands.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/promptr/internal/ansi"
	"github.com/alexisbeaulieu97/promptr/internal/segment"
)

const labelWidth = 11

// Styles renders for one output stream. Color output follows what the
// stream supports, so writing to a pipe or buffer yields plain text.
type Styles struct {
	renderer *lipgloss.Renderer

	Title lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
}

// NewStyles creates styles bound to w.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		renderer: r,
		Title:    r.NewStyle().Bold(true),
		Label:    r.NewStyle().Width(labelWidth).Foreground(lipgloss.Color("245")),
		Muted:    r.NewStyle().Faint(true),
		Error:    r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Swatch shows a block painted with c followed by its description.
func (s *Styles) Swatch(c ansi.Color) string {
	block := s.renderer.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
	return block + " " + c.String()
}

// Segment describes one evaluated segment.
func (s *Styles) Segment(index int, seg segment.Segment) string {
	rows := []string{
		s.Title.Render(fmt.Sprintf("segment %d", index)) + " " + s.Muted.Render(seg.Source),
		s.row("text", fmt.Sprintf("%q", seg.Text)),
		s.row("foreground", s.Swatch(seg.FG)),
		s.row("background", s.Swatch(seg.BG)),
		s.row("separator", seg.Separator.String()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Providers lists provider metadata, one per line.
func (s *Styles) Providers(list []segment.Metadata) string {
	nameWidth := 0
	for _, meta := range list {
		if len(meta.Name) > nameWidth {
			nameWidth = len(meta.Name)
		}
	}
	name := s.Title.Width(nameWidth + 2)

	rows := make([]string, 0, len(list))
	for _, meta := range list {
		line := name.Render(meta.Name) + meta.Description
		if len(meta.Aliases) > 0 {
			line += " " + s.Muted.Render("(aliases: "+strings.Join(meta.Aliases, ", ")+")")
		}
		rows = append(rows, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *Styles) row(label, value string) string {
	return "  " + s.Label.Render(label) + value
}
