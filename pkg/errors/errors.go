package errors

import (
	"fmt"
)

// ParseError represents a JSON parsing failure with optional offset metadata.
type ParseError struct {
	Path    string
	Offset  int64
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, offset int64, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Offset: offset, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Offset > 0 {
		return fmt.Sprintf("parse error: %s: offset %d: %s", e.Path, e.Offset, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SchemaVersionError reports a configuration written for another schema.
type SchemaVersionError struct {
	Path     string
	Got      uint32
	Expected uint32
}

// NewSchemaVersionError constructs a SchemaVersionError.
func NewSchemaVersionError(path string, got, expected uint32) error {
	return &SchemaVersionError{Path: path, Got: got, Expected: expected}
}

func (e *SchemaVersionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Got == 0 {
		return fmt.Sprintf("schema error: %s: missing promptr_config (expected %d)", e.Path, e.Expected)
	}
	return fmt.Sprintf("schema error: %s: promptr_config is %d, expected %d", e.Path, e.Got, e.Expected)
}
