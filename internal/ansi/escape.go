package ansi

import "fmt"

// Mode selects how escape sequences are wrapped.
type Mode int

const (
	// Shell wraps each sequence in \[ \] and spells ESC as \e so bash can
	// exclude it from prompt width calculations.
	Shell Mode = iota
	// Raw emits the ESC byte with no wrapping, for writing to a terminal.
	Raw
)

// Command is an SGR command number.
type Command int

const (
	ResetAll      Command = 0
	SetForeground Command = 38
	SetBackground Command = 48
)

// Escape builds a single SGR sequence. args may be empty.
func Escape(mode Mode, cmd Command, args string) string {
	params := fmt.Sprintf("%d", int(cmd))
	if args != "" {
		params += ";" + args
	}
	if mode == Raw {
		return "\x1b[" + params + "m"
	}
	return `\[\e[` + params + `m\]`
}

// Reset returns the full color and style reset sequence.
func Reset(mode Mode) string {
	return Escape(mode, ResetAll, "")
}
