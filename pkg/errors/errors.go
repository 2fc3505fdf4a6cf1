package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
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

// ValidationError names a field whose value was rejected, either in a theme
// file or in a form submission.
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

// MisuseKind classifies programmer errors in component props.
type MisuseKind string

const (
	// MisuseConflictingValue means both a controlled value and a default were supplied.
	MisuseConflictingValue MisuseKind = "conflicting_value"
	// MisuseModeSwitch means a field moved between controlled and uncontrolled.
	MisuseModeSwitch MisuseKind = "mode_switch"
)

// MisuseError reports props that the caller got wrong. Behaviour after a
// misuse is undefined; components report it and carry on.
type MisuseError struct {
	Kind   MisuseKind
	Field  string
	Detail string
}

// NewMisuseError constructs a MisuseError.
func NewMisuseError(kind MisuseKind, field, detail string) error {
	return &MisuseError{Kind: kind, Field: field, Detail: detail}
}

func (e *MisuseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("misuse [%s] on field %s: %s", e.Kind, e.Field, e.Detail)
	}
	return fmt.Sprintf("misuse [%s]: %s", e.Kind, e.Detail)
}
