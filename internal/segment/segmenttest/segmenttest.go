// Package segmenttest builds States for provider tests.
package segmenttest

import (
	"testing"

	"github.com/alexisbeaulieu97/promptr/internal/segment"
	"github.com/alexisbeaulieu97/promptr/internal/theme"
)

// Builder accumulates facts and theme tweaks for a test State.
type Builder struct {
	env   map[string]string
	theme theme.Theme
}

// New starts a builder with the default theme and the supplied facts.
func New(env map[string]string) *Builder {
	copied := make(map[string]string, len(env))
	for k, v := range env {
		copied[k] = v
	}
	return &Builder{env: copied, theme: theme.Default()}
}

// With sets one fact.
func (b *Builder) With(key, value string) *Builder {
	b.env[key] = value
	return b
}

// Without removes one fact.
func (b *Builder) Without(key string) *Builder {
	delete(b.env, key)
	return b
}

// Theme lets a test adjust the theme before the State is built.
func (b *Builder) Theme(fn func(*theme.Theme)) *Builder {
	fn(&b.theme)
	return b
}

// State builds the immutable State.
func (b *Builder) State() *segment.State {
	th := b.theme
	return segment.NewState(&th, b.env)
}

// Run decodes rawArgs for p, evaluates it and fails the test on error.
func Run[A any](t testing.TB, p segment.Provider[A], rawArgs string, state *segment.State) []segment.Segment {
	t.Helper()

	segments, err := segment.Adapt(p).Run([]byte(rawArgs), state)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", p.Metadata().Name, err)
	}
	return segments
}

// RunErr is Run for cases expected to fail; it returns the error.
func RunErr[A any](t testing.TB, p segment.Provider[A], rawArgs string, state *segment.State) error {
	t.Helper()

	segments, err := segment.Adapt(p).Run([]byte(rawArgs), state)
	if err == nil {
		t.Fatalf("%s: expected an error, got segments %v", p.Metadata().Name, segments)
	}
	return err
}
