package segment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/promptr/internal/config"
)

// Metadata describes a provider.
type Metadata struct {
	Name        string
	Aliases     []string
	Description string
}

// Validate ensures metadata is well-formed.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("segment metadata requires a non-empty Name")
	}
	if err := config.GetValidator().Var(m.Name, "segment_name"); err != nil {
		return fmt.Errorf("segment '%s' has an invalid name (expected lowercase letters, digits and underscores)", m.Name)
	}

	seen := map[string]struct{}{m.Name: {}}
	for _, alias := range m.Aliases {
		if err := config.GetValidator().Var(alias, "segment_name"); err != nil {
			return fmt.Errorf("segment '%s' has an invalid alias '%s'", m.Name, alias)
		}
		if _, exists := seen[alias]; exists {
			return fmt.Errorf("segment '%s' lists alias '%s' more than once", m.Name, alias)
		}
		seen[alias] = struct{}{}
	}
	return nil
}

// Provider computes the segments for one prompt feature. A is the
// provider's argument struct; DefaultArgs supplies every field so partial
// or absent argument blobs are legal.
//
// Segments may return no segments when the feature does not apply, such as
// a git provider outside a repository.
type Provider[A any] interface {
	Metadata() Metadata
	DefaultArgs() A
	Segments(args A, state *State) ([]Segment, error)
}

// Runner is a provider with its argument type erased.
type Runner interface {
	Metadata() Metadata
	Run(raw json.RawMessage, state *State) ([]Segment, error)
}

// Adapt erases a provider's argument type. The returned Runner decodes the
// raw blob onto the provider's defaults, validates it and delegates.
func Adapt[A any](p Provider[A]) Runner {
	return adapter[A]{provider: p}
}

type adapter[A any] struct {
	provider Provider[A]
}

func (a adapter[A]) Metadata() Metadata {
	return a.provider.Metadata()
}

func (a adapter[A]) Run(raw json.RawMessage, state *State) ([]Segment, error) {
	name := a.provider.Metadata().Name

	args, err := DecodeArgs(raw, a.provider.DefaultArgs())
	if err != nil {
		return nil, NewDecodeError(name, err)
	}

	segments, err := a.provider.Segments(args, state)
	if err != nil {
		return nil, NewEvaluationError(name, err)
	}
	return segments, nil
}

// DecodeArgs decodes raw onto defaults. Unknown fields are rejected and the
// result is checked against its validate tags. Empty or null raw yields
// defaults.
func DecodeArgs[A any](raw json.RawMessage, defaults A) (A, error) {
	args := defaults

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&args); err != nil {
			return defaults, err
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return defaults, fmt.Errorf("unexpected data after arguments")
		}
	}

	if err := config.GetValidator().Struct(args); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return args, nil
		}
		return defaults, err
	}
	return args, nil
}
