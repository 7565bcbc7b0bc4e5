// Package ansi holds the color model and the SGR escape encoding used by the
// renderer.
//
// A color is either an index into the 256-color palette or a 24-bit RGB
// triple. In a configuration file a palette color is written as a bare
// integer and an RGB color as an object or a hex string:
//
//	{ "bg": 240 }
//	{ "bg": { "r": 255, "g": 80, "b": 95 } }
//	{ "bg": "#ff505f" }
package ansi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type kind uint8

const (
	kindNumbered kind = iota
	kindRGB
)

// Color is an immutable palette or RGB color. Colors compare with ==.
type Color struct {
	kind    kind
	n       uint8
	r, g, b uint8
}

// Numbered returns a color from the 256-color palette.
func Numbered(n uint8) Color {
	return Color{kind: kindNumbered, n: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// IsRGB reports whether c is a 24-bit color.
func (c Color) IsRGB() bool {
	return c.kind == kindRGB
}

// Index returns the palette index of a numbered color.
func (c Color) Index() uint8 {
	return c.n
}

// Components returns the red, green and blue channels of an RGB color.
func (c Color) Components() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Hex returns the #rrggbb form of an RGB color or the decimal palette index
// of a numbered one.
func (c Color) Hex() string {
	if c.IsRGB() {
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return fmt.Sprintf("%d", c.n)
}

// Params returns the SGR parameters selecting this color, without the
// leading 38/48 command.
func (c Color) Params() string {
	if c.IsRGB() {
		return fmt.Sprintf("2;%d;%d;%d", c.r, c.g, c.b)
	}
	return fmt.Sprintf("5;%d", c.n)
}

func (c Color) String() string {
	if c.IsRGB() {
		return fmt.Sprintf("Rgb{r: %d, g: %d, b: %d}", c.r, c.g, c.b)
	}
	return fmt.Sprintf("Numbered(%d)", c.n)
}

// FG returns the escape that sets c as the foreground color.
func (c Color) FG(mode Mode) string {
	return Escape(mode, SetForeground, c.Params())
}

// BG returns the escape that sets c as the background color.
func (c Color) BG(mode Mode) string {
	return Escape(mode, SetBackground, c.Params())
}

type rgbObject struct {
	R *uint8 `json:"r"`
	G *uint8 `json:"g"`
	B *uint8 `json:"b"`
}

// MarshalJSON writes palette colors as integers and RGB colors as objects.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.IsRGB() {
		return json.Marshal(struct {
			R uint8 `json:"r"`
			G uint8 `json:"g"`
			B uint8 `json:"b"`
		}{c.r, c.g, c.b})
	}
	return json.Marshal(c.n)
}

// UnmarshalJSON accepts an integer, an {r,g,b} object or a "#rrggbb" string.
func (c *Color) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty color value")
	}

	switch trimmed[0] {
	case '{':
		var obj rgbObject
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&obj); err != nil {
			return fmt.Errorf("invalid rgb color: %w", err)
		}
		if obj.R == nil || obj.G == nil || obj.B == nil {
			return fmt.Errorf("rgb color requires r, g and b")
		}
		*c = RGB(*obj.R, *obj.G, *obj.B)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		parsed, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	default:
		var n uint8
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("palette color must be an integer between 0 and 255: %w", err)
		}
		*c = Numbered(n)
		return nil
	}
}

// ParseHex parses a "#rrggbb" (or "#rgb") string into an RGB color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("hex color %q must start with #", s)
	}
	parsed, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := parsed.RGB255()
	return RGB(r, g, b), nil
}
