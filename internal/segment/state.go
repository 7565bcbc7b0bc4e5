package segment

import (
	"maps"
	"sort"

	"github.com/alexisbeaulieu97/promptr/internal/theme"
)

// State is the read-only snapshot every provider is evaluated against: the
// resolved theme plus the facts collected from the shell and platform.
type State struct {
	theme *theme.Theme
	env   map[string]string
}

// NewState copies env so later changes by the caller are not observed.
func NewState(th *theme.Theme, env map[string]string) *State {
	if th == nil {
		def := theme.Default()
		th = &def
	}
	return &State{theme: th, env: maps.Clone(env)}
}

// Theme returns the resolved theme.
func (s *State) Theme() *theme.Theme {
	return s.theme
}

// Get returns a fact and whether it was set.
func (s *State) Get(key string) (string, bool) {
	value, ok := s.env[key]
	return value, ok
}

// Lookup returns a fact or fallback when it is not set.
func (s *State) Lookup(key, fallback string) string {
	if value, ok := s.env[key]; ok {
		return value
	}
	return fallback
}

// Require returns a fact or a MissingFactError naming it.
func (s *State) Require(key string) (string, error) {
	value, ok := s.env[key]
	if !ok {
		return "", &MissingFactError{Key: key}
	}
	return value, nil
}

// Keys returns the fact names in sorted order.
func (s *State) Keys() []string {
	keys := make([]string, 0, len(s.env))
	for key := range s.env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
