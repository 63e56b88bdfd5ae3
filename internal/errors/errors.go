package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType classifies application errors for logging and HTTP mapping.
type ErrorType string

const (
	ErrTypeSchema     ErrorType = "SCHEMA"
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeConfig     ErrorType = "CONFIG"
)

// ErrInsufficientData is returned by the forecaster when there are no dated
// rows to fit a model on.
var ErrInsufficientData = errors.New("insufficient data: no dated rows to forecast from")

// SchemaError reports the required columns missing from an uploaded table.
// It always carries every missing column, not just the first one found.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// NewSchemaError creates a SchemaError from the set of missing column names.
// The columns are sorted so the message is stable regardless of input order.
func NewSchemaError(missing []string) *SchemaError {
	cols := make([]string, len(missing))
	copy(cols, missing)
	sort.Strings(cols)
	return &SchemaError{Missing: cols}
}

// ParseError reports a cell value that could not be parsed into the type its
// column declares. Row is 1-based and matches the spreadsheet row number.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("row %d: cannot parse %q for column %s: %v", e.Row, e.Value, e.Column, e.Cause)
	}
	return fmt.Sprintf("row %d: cannot parse %q for column %s", e.Row, e.Value, e.Column)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a ParseError for a single cell.
func NewParseError(row int, column, value string, cause error) *ParseError {
	return &ParseError{Row: row, Column: column, Value: value, Cause: cause}
}

// NotFoundError reports a missing resource, typically a report artifact
// requested before any forecast run has produced one.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFoundError creates a not found error for the named resource.
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// PayloadTooLargeError reports an upload rejected before parsing because it
// exceeds the configured size cap.
type PayloadTooLargeError struct {
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("upload exceeds the %d byte limit", e.Limit)
}

// NewPayloadTooLargeError creates a payload too large error for the given cap.
func NewPayloadTooLargeError(limit int64) *PayloadTooLargeError {
	return &PayloadTooLargeError{Limit: limit}
}

// AppError represents an application-specific error with a classified type.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{Type: errType, Message: message, Cause: cause}
}

// NewStorageError creates a storage error for artifact read/write failures.
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
