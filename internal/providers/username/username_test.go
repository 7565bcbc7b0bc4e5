package usernameprovider

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/promptr/internal/segment"
	"github.com/alexisbeaulieu97/promptr/internal/segment/segmenttest"
)

func TestUsername(t *testing.T) {
	t.Parallel()

	state := segmenttest.New(map[string]string{"USER": "newbie"}).State()
	segments := segmenttest.Run(t, New(), "", state)

	require.Len(t, segments, 1)
	require.Equal(t, "newbie", segments[0].Text)
	require.Equal(t, state.Theme().Username.BG, segments[0].BG)
	require.Equal(t, segment.Thick, segments[0].Separator)
}

func TestUsernameMissing(t *testing.T) {
	t.Parallel()

	err := segmenttest.RunErr(t, New(), "", segmenttest.New(nil).State())

	var missing *segment.MissingFactError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "USER", missing.Key)
}

func TestUsernameRejectsArgs(t *testing.T) {
	t.Parallel()

	err := segmenttest.RunErr(t, New(), `{"bold": true}`, segmenttest.New(map[string]string{"USER": "x"}).State())

	var decodeErr *segment.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}
