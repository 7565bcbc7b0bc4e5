package screenprovider

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/promptr/internal/segment"
)

// Args selects which parts of the GNU screen session are shown.
type Args struct {
	ShowScreenIcon   bool `json:"show_screen_icon"`
	ShowScreenName   bool `json:"show_screen_name"`
	ShowScreenPID    bool `json:"show_screen_pid"`
	ShowWindowNumber bool `json:"show_window_number"`
}

type screenProvider struct{}

// New creates the screen provider.
func New() segment.Provider[Args] {
	return screenProvider{}
}

func (screenProvider) Metadata() segment.Metadata {
	return segment.Metadata{
		Name:        "screen",
		Description: "GNU screen session and window",
	}
}

func (screenProvider) DefaultArgs() Args {
	return Args{
		ShowScreenIcon:   true,
		ShowScreenName:   true,
		ShowScreenPID:    false,
		ShowWindowNumber: true,
	}
}

// Segments renders "{window}[{pid}.{name}] {icon}" from $STY and $WINDOW.
// Outside a screen session it returns nothing.
func (screenProvider) Segments(args Args, state *segment.State) ([]segment.Segment, error) {
	sty, ok := state.Get("STY")
	if !ok {
		return nil, nil
	}
	window, ok := state.Get("WINDOW")
	if !ok {
		return nil, nil
	}

	pid, name, found := strings.Cut(sty, ".")
	if !found {
		return nil, fmt.Errorf("couldn't parse $STY %q", sty)
	}

	th := state.Theme().Screen
	bracket := args.ShowWindowNumber && (args.ShowScreenPID || args.ShowScreenName)

	var b strings.Builder
	if args.ShowWindowNumber {
		b.WriteString(window)
	}
	if bracket {
		b.WriteString("[")
	}
	if args.ShowScreenPID {
		b.WriteString(pid)
		b.WriteString(".")
	}
	if args.ShowScreenName {
		b.WriteString(name)
	}
	if bracket {
		b.WriteString("]")
	}
	if args.ShowScreenIcon {
		b.WriteString(" ")
		b.WriteString(th.ScreenSymbol)
	}

	return []segment.Segment{{
		FG:        th.FG,
		BG:        th.BG,
		Text:      b.String(),
		Separator: segment.Thick,
		Source:    "Screen",
	}}, nil
}
