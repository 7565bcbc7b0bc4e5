package usernameprovider

import (
	"github.com/alexisbeaulieu97/promptr/internal/segment"
)

// Args is empty; the username segment takes no options.
type Args struct{}

type usernameProvider struct{}

// New creates the username provider.
func New() segment.Provider[Args] {
	return usernameProvider{}
}

func (usernameProvider) Metadata() segment.Metadata {
	return segment.Metadata{
		Name:        "username",
		Description: "Current user name from $USER",
	}
}

func (usernameProvider) DefaultArgs() Args {
	return Args{}
}

func (usernameProvider) Segments(_ Args, state *segment.State) ([]segment.Segment, error) {
	user, err := state.Require("USER")
	if err != nil {
		return nil, err
	}

	th := state.Theme().Username
	return []segment.Segment{{
		FG:        th.FG,
		BG:        th.BG,
		Text:      user,
		Separator: segment.Thick,
		Source:    "Username",
	}}, nil
}
