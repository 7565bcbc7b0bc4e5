package pathprovider

import (
	"fmt"
	"path"
	"strings"

	"github.com/alexisbeaulieu97/promptr/internal/segment"
	"github.com/alexisbeaulieu97/promptr/internal/theme"
)

// Args controls the breadcrumb.
type Args struct {
	// ShowRoot adds a "/" segment for paths outside the home directory.
	ShowRoot bool `json:"show_root"`

	// ShowDirStack adds a leading segment when the directory stack holds
	// more than one entry.
	ShowDirStack bool `json:"show_dir_stack"`

	// MaxDepth keeps at most this many trailing components and collapses
	// the rest into one segment. Zero means unlimited.
	MaxDepth int `json:"max_depth" validate:"gte=0"`
}

type pathProvider struct{}

// New creates the path provider.
func New() segment.Provider[Args] {
	return pathProvider{}
}

func (pathProvider) Metadata() segment.Metadata {
	return segment.Metadata{
		Name:        "path",
		Aliases:     []string{"paths"},
		Description: "Breadcrumbs to the working directory",
	}
}

func (pathProvider) DefaultArgs() Args {
	return Args{
		ShowRoot:     false,
		ShowDirStack: true,
	}
}

func (pathProvider) Segments(args Args, state *segment.State) ([]segment.Segment, error) {
	pwd, err := state.Require("PWD")
	if err != nil {
		return nil, err
	}
	home, err := state.Require("HOME")
	if err != nil {
		return nil, err
	}

	th := state.Theme().Path
	pwd = path.Clean(pwd)

	var segments []segment.Segment
	if args.ShowDirStack {
		if depth := dirStackDepth(state.Lookup("dirs", "")); depth > 1 {
			segments = append(segments, segment.Segment{
				FG:        th.FG,
				BG:        th.BG,
				Text:      fmt.Sprintf("%d %s", depth, th.DirStackIndicator),
				Separator: segment.Thick,
				Source:    "Path::DirStack",
			})
		}
	}

	rest, inHome := relativeToHome(pwd, home)
	switch {
	case inHome:
		segments = append(segments, segment.Segment{
			FG:        th.HomeFG,
			BG:        th.HomeBG,
			Text:      th.HomeDirReplacement,
			Separator: segment.Thick,
			Source:    "Path::Home",
		})
	case pwd == "/":
		return append(segments, segment.Segment{
			FG:        th.LastFG,
			BG:        th.LastBG,
			Text:      "/",
			Separator: segment.Thick,
			Source:    "Path::Root",
		}), nil
	case args.ShowRoot:
		segments = append(segments, segment.Segment{
			FG:        th.FG,
			BG:        th.BG,
			Text:      "/",
			Separator: segment.Thin,
			Source:    "Path::Root",
		})
	}

	components := splitComponents(rest)
	if args.MaxDepth > 0 && len(components) > args.MaxDepth {
		segments = append(segments, segment.Segment{
			FG:        th.FG,
			BG:        th.BG,
			Text:      th.CollapsedIndicator,
			Separator: segment.Thin,
			Source:    "Path::Collapsed",
		})
		components = components[len(components)-args.MaxDepth:]
	}

	return append(segments, componentSegments(th, components)...), nil
}

func componentSegments(th theme.Path, components []string) []segment.Segment {
	out := make([]segment.Segment, 0, len(components))
	for i, component := range components {
		if i == len(components)-1 {
			out = append(out, segment.Segment{
				FG:        th.LastFG,
				BG:        th.LastBG,
				Text:      component,
				Separator: segment.Thick,
				Source:    "Path::Last",
			})
			continue
		}
		out = append(out, segment.Segment{
			FG:        th.FG,
			BG:        th.BG,
			Text:      component,
			Separator: segment.Thin,
			Source:    "Path::Middle",
		})
	}
	return out
}

// relativeToHome reports whether pwd is home or below it, matching whole
// components, and returns the remainder. Outside home it returns pwd.
func relativeToHome(pwd, home string) (string, bool) {
	home = path.Clean(home)
	if home == "/" || home == "." || !path.IsAbs(home) {
		return pwd, false
	}
	if pwd == home {
		return "", true
	}
	if rest, ok := strings.CutPrefix(pwd, home+"/"); ok {
		return rest, true
	}
	return pwd, false
}

func splitComponents(p string) []string {
	var out []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// dirStackDepth counts entries in the output of `dirs -p`.
func dirStackDepth(dirs string) int {
	dirs = strings.TrimRight(dirs, "\n")
	if dirs == "" {
		return 0
	}
	return strings.Count(dirs, "\n") + 1
}
