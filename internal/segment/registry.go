package segment

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/promptr/internal/logger"
)

// Registry maps segment names and aliases to runners.
type Registry struct {
	runners map[string]Runner
	aliases map[string]string
	logger  *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		runners: make(map[string]Runner),
		aliases: make(map[string]string),
		logger:  log,
	}
}

// Register adds a runner under its name and aliases.
func (r *Registry) Register(runner Runner) error {
	if runner == nil {
		return fmt.Errorf("segment runner is nil")
	}

	meta := runner.Metadata()
	if err := meta.Validate(); err != nil {
		return err
	}

	if r.taken(meta.Name) {
		return fmt.Errorf("segment '%s' already registered", meta.Name)
	}
	for _, alias := range meta.Aliases {
		if r.taken(alias) {
			return fmt.Errorf("segment alias '%s' for '%s' already registered", alias, meta.Name)
		}
	}

	r.runners[meta.Name] = runner
	for _, alias := range meta.Aliases {
		r.aliases[alias] = meta.Name
	}

	r.logger.WithFields(map[string]any{"segment": meta.Name}).Debug("registered segment")
	return nil
}

// MustRegister registers every runner and panics on the first failure.
// It is meant for the compile-time provider table.
func (r *Registry) MustRegister(runners ...Runner) *Registry {
	for _, runner := range runners {
		if err := r.Register(runner); err != nil {
			panic(err)
		}
	}
	return r
}

// Get resolves a name or alias.
func (r *Registry) Get(name string) (Runner, error) {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	runner, ok := r.runners[name]
	if !ok {
		return nil, ErrProviderNotFound{Name: name}
	}
	return runner, nil
}

// List returns metadata for every registered runner sorted by name.
func (r *Registry) List() []Metadata {
	out := make([]Metadata, 0, len(r.runners))
	for _, runner := range r.runners {
		out = append(out, runner.Metadata())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns registered canonical names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.runners))
	for name := range r.runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) taken(name string) bool {
	if _, ok := r.runners[name]; ok {
		return true
	}
	_, ok := r.aliases[name]
	return ok
}
