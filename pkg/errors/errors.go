// Package errors provides custom error types for the gradeport system.
// These errors enable programmatic error checking and carry enough
// positional context (row, column, field) to locate faults in source files.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the gradeport system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateKey indicates that two rows share the same identity key
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// SchemaError reports a required header that is missing or misplaced.
type SchemaError struct {
	File     string
	Header   string
	WantPos  int // expected zero-based column, -1 when position is unconstrained
	GotPos   int // actual zero-based column, -1 when absent
	Message  string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.GotPos < 0 {
		return fmt.Sprintf("schema error in %s: required header %q is missing", e.File, e.Header)
	}
	if e.WantPos >= 0 {
		return fmt.Sprintf("schema error in %s: header %q must be column %d, found at column %d", e.File, e.Header, e.WantPos, e.GotPos)
	}
	return fmt.Sprintf("schema error in %s: %s", e.File, e.Message)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(file, header string, wantPos, gotPos int) *SchemaError {
	return &SchemaError{File: file, Header: header, WantPos: wantPos, GotPos: gotPos}
}

// StructuralError reports a row whose column count deviates from the header.
type StructuralError struct {
	File string
	Row  int // 1-based row number, counted from the primary header
	Want int
	Got  int
}

// Error implements the error interface
func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error in %s at row %d: expected %d columns, got %d", e.File, e.Row, e.Want, e.Got)
}

// Is implements errors.Is support
func (e *StructuralError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewStructuralError creates a new StructuralError
func NewStructuralError(file string, row, want, got int) *StructuralError {
	return &StructuralError{File: file, Row: row, Want: want, Got: got}
}

// DataIntegrityError reports a semantically invalid field value: an empty
// required field, a malformed email, an email/id mismatch, or a duplicate
// identity key.
type DataIntegrityError struct {
	File    string
	Row     int // 1-based data row number, 0 when not row-specific
	Field   string
	Value   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DataIntegrityError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("data integrity error in %s at row %d (%s): %s", e.File, e.Row, e.Field, e.Message)
	}
	return fmt.Sprintf("data integrity error in %s (%s): %s", e.File, e.Field, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DataIntegrityError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DataIntegrityError) Is(target error) bool {
	if errors.Is(e.Err, ErrDuplicateKey) {
		return target == ErrDuplicateKey || target == ErrInvalidInput
	}
	return target == ErrInvalidInput
}

// NewDataIntegrityError creates a new DataIntegrityError
func NewDataIntegrityError(file string, row int, field, value, message string) *DataIntegrityError {
	return &DataIntegrityError{File: file, Row: row, Field: field, Value: value, Message: message}
}

// NewDuplicateKeyError creates a DataIntegrityError for a repeated identity key
func NewDuplicateKeyError(file string, row int, field, key string) *DataIntegrityError {
	return &DataIntegrityError{
		File:    file,
		Row:     row,
		Field:   field,
		Value:   key,
		Message: fmt.Sprintf("identity key %q appears more than once", key),
		Err:     ErrDuplicateKey,
	}
}

// ClassificationError reports activity metadata that cannot be aligned with
// the assignment columns it describes.
type ClassificationError struct {
	File        string
	Platform    string
	Assignments int
	Types       int
	Message     string
}

// Error implements the error interface
func (e *ClassificationError) Error() string {
	if e.Assignments != e.Types {
		return fmt.Sprintf("classification error in %s (%s): activity type row has %d entries for %d assignment columns", e.File, e.Platform, e.Types, e.Assignments)
	}
	return fmt.Sprintf("classification error in %s (%s): %s", e.File, e.Platform, e.Message)
}

// Is implements errors.Is support
func (e *ClassificationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewClassificationError creates a new ClassificationError
func NewClassificationError(file, platform string, assignments, types int) *ClassificationError {
	return &ClassificationError{File: file, Platform: platform, Assignments: assignments, Types: types}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close", "stat"
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
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "yaml"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s file %s at line %d: %s", e.Format, e.File, e.Line, e.Message)
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
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
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
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsDuplicateKey checks if an error is a duplicate key error
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

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

// WrapConfig wraps an error as a ConfigError
func WrapConfig(component string, err error) error {
	if err == nil {
		return nil
	}
	return NewConfigError(component, err.Error(), err)
}
