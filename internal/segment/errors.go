package segment

import (
	"errors"
	"fmt"
)

// ErrProviderNotFound is returned when no provider is registered under a name.
type ErrProviderNotFound struct {
	Name string
}

func (e ErrProviderNotFound) Error() string {
	return fmt.Sprintf("segment '%s' not found in registry\nHint: run 'promptr list' to see available segments", e.Name)
}

// ProviderError is implemented by failures attributable to one provider.
type ProviderError interface {
	error
	Provider() string
	Unwrap() error
}

// DecodeError means a provider's argument blob could not be decoded or did
// not validate.
type DecodeError struct {
	Name string
	Err  error
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(name string, err error) *DecodeError {
	return &DecodeError{Name: name, Err: err}
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "invalid arguments for segment " + e.Name
	}
	return "invalid arguments for segment " + e.Name + ": " + e.Err.Error()
}

// Provider returns the name of the provider whose arguments failed.
func (e *DecodeError) Provider() string {
	return e.Name
}

// Unwrap returns the underlying decode error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is checks if this error matches another DecodeError.
func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}

// EvaluationError means a provider ran and failed.
type EvaluationError struct {
	Name string
	Err  error
}

// NewEvaluationError creates a new EvaluationError.
func NewEvaluationError(name string, err error) *EvaluationError {
	return &EvaluationError{Name: name, Err: err}
}

func (e *EvaluationError) Error() string {
	if e.Err == nil {
		return "segment " + e.Name + " failed"
	}
	return "segment " + e.Name + " failed: " + e.Err.Error()
}

// Provider returns the name of the failing provider.
func (e *EvaluationError) Provider() string {
	return e.Name
}

// Unwrap returns the underlying failure.
func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Is checks if this error matches another EvaluationError.
func (e *EvaluationError) Is(target error) bool {
	_, ok := target.(*EvaluationError)
	return ok
}

// MissingFactError reports a required fact absent from the State.
type MissingFactError struct {
	Key string
}

func (e *MissingFactError) Error() string {
	return fmt.Sprintf("required value %q is not set, check the shell init script", e.Key)
}

// AsProviderError extracts a ProviderError from err's chain.
func AsProviderError(err error) (ProviderError, bool) {
	var pe ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
