package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// HTTPError is implemented by every application error that knows how it
// should be rendered at the HTTP boundary.
type HTTPError interface {
	error
	HTTPStatus() int
	Title() string
	Kind() string
}

// ValidationError represents a request that failed field-level validation.
// Fields maps the JSON field name to its message.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a new validation error
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s - %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

func (e *ValidationError) HTTPStatus() int { return http.StatusBadRequest }
func (e *ValidationError) Title() string   { return "Validation Failed" }
func (e *ValidationError) Kind() string    { return "ValidationError" }

// InvalidArgumentError is returned for malformed input that never reaches
// field validation, such as a non-numeric path id.
type InvalidArgumentError struct {
	Message string
}

// NewInvalidArgumentError creates a new invalid argument error
func NewInvalidArgumentError(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func (e *InvalidArgumentError) HTTPStatus() int { return http.StatusBadRequest }
func (e *InvalidArgumentError) Title() string   { return "Bad Request" }
func (e *InvalidArgumentError) Kind() string    { return "InvalidArgument" }

// MalformedRequestMessage is the client-facing message of MalformedRequestError.
const MalformedRequestMessage = "Malformed request body"

// MalformedRequestError is returned when a request body cannot be decoded.
// The decoder error is kept in Err for logging and never rendered.
type MalformedRequestError struct {
	Err error
}

// NewMalformedRequestError creates a new malformed request error
func NewMalformedRequestError(err error) *MalformedRequestError {
	return &MalformedRequestError{Err: err}
}

// Error implements the error interface
func (e *MalformedRequestError) Error() string {
	return MalformedRequestMessage
}

// Unwrap returns the wrapped error
func (e *MalformedRequestError) Unwrap() error {
	return e.Err
}

func (e *MalformedRequestError) HTTPStatus() int { return http.StatusBadRequest }
func (e *MalformedRequestError) Title() string   { return "Bad Request" }
func (e *MalformedRequestError) Kind() string    { return "MalformedRequest" }

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
	Heading  string // overrides the default title when set
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// WithTitle sets the title rendered in error responses.
func (e *NotFoundError) WithTitle(title string) *NotFoundError {
	e.Heading = title
	return e
}

func (e *NotFoundError) HTTPStatus() int { return http.StatusNotFound }
func (e *NotFoundError) Kind() string    { return capitalize(e.Resource) + "NotFound" }

func (e *NotFoundError) Title() string {
	if e.Heading != "" {
		return e.Heading
	}
	return capitalize(e.Resource) + " Not Found"
}

// AlreadyExistsError represents a resource already exists error
type AlreadyExistsError struct {
	Resource string
	Message  string
	Heading  string // overrides the default title when set
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// WithTitle sets the title rendered in error responses.
func (e *AlreadyExistsError) WithTitle(title string) *AlreadyExistsError {
	e.Heading = title
	return e
}

func (e *AlreadyExistsError) HTTPStatus() int { return http.StatusConflict }
func (e *AlreadyExistsError) Kind() string    { return capitalize(e.Resource) + "AlreadyExists" }

func (e *AlreadyExistsError) Title() string {
	if e.Heading != "" {
		return e.Heading
	}
	return capitalize(e.Resource) + " Already Exists"
}

// InternalError represents an infrastructure failure with context.
// Its message is never shown to clients.
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

func (e *InternalError) HTTPStatus() int { return http.StatusInternalServerError }
func (e *InternalError) Title() string   { return "Internal Server Error" }
func (e *InternalError) Kind() string    { return "InternalError" }

func capitalize(s string) string {
	if s == "" {
		return "Resource"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
