// Package errors provides custom error types for the chanmap system.
// These errors enable programmatic error checking at the top level, where the
// caller decides whether a run may write its output.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Standard library helpers, re-exported so callers need a single import.
var (
	Join   = errors.Join
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// Common sentinel errors for the chanmap system
var (
	// ErrInputRead indicates the input export could not be read or parsed
	ErrInputRead = errors.New("input read failed")

	// ErrSchema indicates a persisted channel table does not match the canonical schema
	ErrSchema = errors.New("schema mismatch")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// InputReadError is returned when the input export is missing, unreadable,
// or cannot be parsed as a channel table. Nothing is written after it.
type InputReadError struct {
	Path    string
	Row     int // 1-based data row, 0 when the failure is not row specific
	Message string
	Err     error
}

// Error implements the error interface
func (e *InputReadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("reading input %s (row %d): %s", e.Path, e.Row, e.Message)
	}
	return fmt.Sprintf("reading input %s: %s", e.Path, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *InputReadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *InputReadError) Is(target error) bool {
	return target == ErrInputRead
}

// NewInputReadError creates a new InputReadError
func NewInputReadError(path string, row int, message string, err error) *InputReadError {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &InputReadError{Path: path, Row: row, Message: message, Err: err}
}

// SchemaError is returned when a loaded channel table is missing its key
// column or carries keys that cannot identify a row.
type SchemaError struct {
	Path    string
	Column  string
	Message string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema error in %s: column %s: %s", e.Path, e.Column, e.Message)
	}
	return fmt.Sprintf("schema error in %s: %s", e.Path, e.Message)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(path, column, message string) *SchemaError {
	return &SchemaError{Path: path, Column: column, Message: message}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "xlsx", "yaml"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsInputRead checks if an error is an input read error
func IsInputRead(err error) bool {
	return errors.Is(err, ErrInputRead)
}

// IsSchema checks if an error is a schema error
func IsSchema(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapInputRead wraps an error as an InputReadError
func WrapInputRead(path string, err error) error {
	if err == nil {
		return nil
	}
	return NewInputReadError(path, 0, "", err)
}
