package rvmprovider

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/alexisbeaulieu97/promptr/internal/segment"
)

// Args for the rvm segment.
type Args struct {
	// ForceShow shows the segment even without a Gemfile in the working
	// directory or its ancestors.
	ForceShow bool `json:"force_show"`
}

// rubiePattern matches [interpreter-]version[@gemset].
var rubiePattern = regexp.MustCompile(`(([\w_]+)-)?(((\d+)\.)?((\d+)\.)?(\d+))(@([\w_]+))?`)

// rubie is one ruby environment: an interpreter, a version and an optional
// gemset.
type rubie struct {
	interp  string
	version string
	gemset  string
}

func parseRubie(s string) (rubie, bool) {
	m := rubiePattern.FindStringSubmatch(s)
	if m == nil {
		return rubie{}, false
	}
	r := rubie{interp: m[2], version: m[3], gemset: m[10]}
	if r.interp == "" {
		r.interp = "ruby"
	}
	return r, true
}

type rvmProvider struct{}

// New creates the rvm provider.
func New() segment.Provider[Args] {
	return rvmProvider{}
}

func (rvmProvider) Metadata() segment.Metadata {
	return segment.Metadata{
		Name:        "rvm",
		Description: "Active RVM ruby and gemset",
	}
}

func (rvmProvider) DefaultArgs() Args {
	return Args{}
}

// Segments shows the ruby selected through $GEM_HOME. When the nearest
// .ruby-version asks for something else the mismatch symbol is appended.
func (rvmProvider) Segments(args Args, state *segment.State) ([]segment.Segment, error) {
	required := make(map[string]string, 4)
	for _, key := range []string{"rvm_version", "PWD", "HOME", "rvm_path"} {
		value, err := state.Require(key)
		if err != nil {
			return nil, err
		}
		required[key] = value
	}

	pwd := required["PWD"]
	home := required["HOME"]
	gems := filepath.Join(required["rvm_path"], "gems")

	if !args.ForceShow && findAncestor("Gemfile", pwd, home, gems) == "" {
		return nil, nil
	}

	gemHome, err := state.Require("GEM_HOME")
	if err != nil {
		return nil, err
	}

	current, ok := parseRubie(strings.TrimPrefix(strings.TrimPrefix(gemHome, gems), "/"))
	if !ok {
		return nil, fmt.Errorf("couldn't parse the current ruby version from %q", gemHome)
	}
	currentVersion, err := semver.NewVersion(current.version)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse the current ruby version %q: %w", current.version, err)
	}

	matched := true
	if versionFile := findAncestor(".ruby-version", pwd, home, gems); versionFile != "" {
		data, err := os.ReadFile(versionFile)
		if err != nil {
			return nil, err
		}
		requested, ok := parseRubie(strings.TrimSpace(string(data)))
		if !ok {
			return nil, fmt.Errorf("couldn't parse the desired ruby version in %s", versionFile)
		}
		constraint, err := semver.NewConstraint("^" + requested.version)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse the desired ruby version %q: %w", requested.version, err)
		}
		matched = requested.interp == current.interp && constraint.Check(currentVersion)
	}

	text := currentVersion.String()
	if current.gemset != "" {
		text = fmt.Sprintf("%s (v%s)", current.gemset, currentVersion)
	}

	th := state.Theme().Rvm
	if !matched {
		text += th.MismatchSymbol
	}

	return []segment.Segment{{
		FG:        th.FG,
		BG:        th.BG,
		Text:      text,
		Separator: segment.Thick,
		Source:    "Rvm",
	}}, nil
}

// findAncestor looks for name in dir and its parents, stopping before home
// and the rvm gems directory. It returns the file path or "".
func findAncestor(name, dir, home, gems string) string {
	dir = filepath.Clean(dir)
	home = filepath.Clean(home)
	gems = filepath.Clean(gems)

	for {
		if dir == home || dir == gems {
			return ""
		}
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
