// Package errors provides custom error types for the automark system.
// These errors let the merge engine and the CLI tell fatal conditions
// (a document that does not have the expected shape, unreadable files)
// apart from per-record anomalies that are reported and skipped.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is, As and Join are re-exported so callers need a single errors import.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Common sentinel errors for the automark system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrStructure indicates the document does not have the expected folder shape
	ErrStructure = errors.New("unexpected document structure")

	// ErrFormat indicates unparseable record text, such as a malformed coordinate
	ErrFormat = errors.New("malformed value")

	// ErrLookup indicates a record names a folder or category that does not exist
	ErrLookup = errors.New("lookup failed")

	// ErrDuplicateKey indicates two placemarks share an identity key
	ErrDuplicateKey = errors.New("duplicate identity key")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// StructuralError reports a document whose folder nesting does not match
// the layout the index expects. It is always fatal.
type StructuralError struct {
	Path    string // slash-joined folder path where the mismatch was found
	Message string
}

// Error implements the error interface
func (e *StructuralError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("document structure error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("document structure error: %s", e.Message)
}

// Is implements errors.Is support
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructure
}

// NewStructuralError creates a new StructuralError
func NewStructuralError(path, message string) *StructuralError {
	return &StructuralError{Path: path, Message: message}
}

// FormatError reports a record field that could not be parsed.
type FormatError struct {
	Field   string // "latitude", "longitude", "name"
	Value   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid value %q: %s", e.Value, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NewFormatError creates a new FormatError
func NewFormatError(field, value, message string, err error) *FormatError {
	return &FormatError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// LookupError reports a record whose group, subgroup or category could not
// be resolved to a container in the document.
type LookupError struct {
	Kind     string // "category", "container"
	Group    string
	Subgroup string
	Category string
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.Kind == "category" {
		return fmt.Sprintf("unknown category %q", e.Category)
	}
	return fmt.Sprintf("could not find %s folder for locale %s in lighthouse %s", e.Category, e.Subgroup, e.Group)
}

// Is implements errors.Is support
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup || target == ErrNotFound
}

// NewLookupError creates a new LookupError for an unresolvable container
func NewLookupError(group, subgroup, category string) *LookupError {
	return &LookupError{
		Kind:     "container",
		Group:    group,
		Subgroup: subgroup,
		Category: category,
	}
}

// NewCategoryError creates a new LookupError for a tag outside the category vocabulary
func NewCategoryError(category string) *LookupError {
	return &LookupError{Kind: "category", Category: category}
}

// DuplicateKeyWarning reports two placemarks sharing an identity key while
// indexing. The later placemark wins.
type DuplicateKeyWarning struct {
	Key      string
	Previous string // path of the container that held the earlier placemark
	Current  string // path of the container that now owns the key
}

// Error implements the error interface
func (e *DuplicateKeyWarning) Error() string {
	return fmt.Sprintf("duplicated name %s detected (%s, %s)", e.Key, e.Previous, e.Current)
}

// Is implements errors.Is support
func (e *DuplicateKeyWarning) Is(target error) bool {
	return target == ErrDuplicateKey
}

// NewDuplicateKeyWarning creates a new DuplicateKeyWarning
func NewDuplicateKeyWarning(key, previous, current string) *DuplicateKeyWarning {
	return &DuplicateKeyWarning{Key: key, Previous: previous, Current: current}
}

// RecordError attaches the source location of an input row to a per-record error.
type RecordError struct {
	Source string
	Line   int
	Err    error
}

// Error implements the error interface
func (e *RecordError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *RecordError) Unwrap() error {
	return e.Err
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
	Format  string // "kml", "csv"
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

// Is implements errors.Is support. A malformed row is a format problem of
// that record, not of the whole run.
func (e *ParseError) Is(target error) bool {
	return e.Format == "csv" && target == ErrFormat
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
	Operation string // "read", "write", "create", "open", "close"
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

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "build", "save"
	Resource  string // "config", "document", "index"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStructural checks if an error is a document structure error
func IsStructural(err error) bool {
	return errors.Is(err, ErrStructure)
}

// IsFormat checks if an error is a per-record format error
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsLookup checks if an error is a per-record lookup error
func IsLookup(err error) bool {
	return errors.Is(err, ErrLookup)
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

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapRecord attaches a source location to a per-record error
func WrapRecord(source string, line int, err error) error {
	if err == nil {
		return nil
	}
	return &RecordError{Source: source, Line: line, Err: err}
}
