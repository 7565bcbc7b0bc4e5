package commandstatusprovider

import (
	"strconv"

	"github.com/alexisbeaulieu97/promptr/internal/segment"
)

// Args is empty; the exit code and uid come from the code and uid facts.
type Args struct{}

type commandStatusProvider struct{}

// New creates the command_status provider.
func New() segment.Provider[Args] {
	return commandStatusProvider{}
}

func (commandStatusProvider) Metadata() segment.Metadata {
	return segment.Metadata{
		Name:        "command_status",
		Description: "Prompt indicator colored by the last exit status",
	}
}

func (commandStatusProvider) DefaultArgs() Args {
	return Args{}
}

// Segments colors by the last exit status and picks the root or user
// indicator by uid. A missing or unparsable code counts as success and a
// missing uid as an unprivileged user.
func (commandStatusProvider) Segments(_ Args, state *segment.State) ([]segment.Segment, error) {
	th := state.Theme().CommandStatus

	fg, bg := th.SuccessFG, th.SuccessBG
	if code, err := strconv.ParseUint(state.Lookup("code", "0"), 10, 8); err == nil && code != 0 {
		fg, bg = th.FailureFG, th.FailureBG
	}

	text := th.UserIndicator
	if uid, err := strconv.ParseUint(state.Lookup("uid", "65535"), 10, 32); err == nil && uid == 0 {
		text = th.RootIndicator
	}

	return []segment.Segment{{
		FG:        fg,
		BG:        bg,
		Text:      text,
		Separator: segment.Thick,
		Source:    "CommandStatus",
	}}, nil
}
