package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConnection indicates that the storage engine could not be reached or opened.
var ErrConnection = errors.New("database connection error")

// ErrQuery indicates that a read or write statement failed.
var ErrQuery = errors.New("query failed")

// ErrInitialization indicates that the schema could not be created. It is fatal.
var ErrInitialization = errors.New("database initialization failed")

// ErrBackup indicates that a database snapshot could not be written.
var ErrBackup = errors.New("database backup failed")

// ErrRender indicates that an invoice document could not be generated.
var ErrRender = errors.New("invoice rendering failed")

// ValidationError carries every field violation found on an entity.
type ValidationError struct {
	Messages []string
}

// NewValidationError wraps a list of messages returned by an entity's Validate method.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// QueryError records the statement that failed along with the engine error.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return ErrQuery.Error() + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() []error { return []error{ErrQuery, e.Err} }

// ConnectionError is returned when the database file cannot be opened or pinged.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return ErrConnection.Error() + " (" + e.Path + "): " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() []error { return []error{ErrConnection, e.Err} }

// InitializationError is returned when a schema statement or its commit fails.
type InitializationError struct {
	Step string
	Err  error
}

func (e *InitializationError) Error() string {
	return ErrInitialization.Error() + " at " + e.Step + ": " + e.Err.Error()
}

func (e *InitializationError) Unwrap() []error { return []error{ErrInitialization, e.Err} }

// RenderError is returned when an invoice document cannot be produced.
type RenderError struct {
	Message string
	Err     error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRender}
	}
	return []error{ErrRender, e.Err}
}

// NewRenderError creates a new RenderError.
func NewRenderError(message string, err error) *RenderError {
	return &RenderError{Message: message, Err: err}
}
