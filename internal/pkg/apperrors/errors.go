package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrNotLoggedIn        = errors.New("not logged in")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Transport errors
	ErrNetwork = errors.New("network failure")
	ErrBackend = errors.New("backend error")
)

// Collection errors
var (
	// ErrOperationInFlight is returned when a record already has a mutation outstanding.
	ErrOperationInFlight = errors.New("another operation is in progress for this record")
	// ErrIntegrityViolation is returned when a delete would orphan references.
	ErrIntegrityViolation = errors.New("integrity constraint violated")
	// ErrUploadRejected is returned for files that are not acceptable images.
	ErrUploadRejected = errors.New("upload rejected")
)

// Messages shown to the operator for refused operations.
const (
	MsgInstructorInUse = "This instructor is assigned to a course and cannot be deleted."
	MsgInFlight        = "Please wait, a previous change to this item is still being saved."
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewIntegrityError creates a custom error for a refused delete
func NewIntegrityError(message string) error {
	return &CustomError{
		Err:     ErrIntegrityViolation,
		Message: message,
	}
}

// NewInFlightError reports a rejected concurrent mutation on the record with the given id
func NewInFlightError(id int64) error {
	return (&CustomError{
		Err:     ErrOperationInFlight,
		Message: MsgInFlight,
	}).WithDetails(map[string]interface{}{"id": id})
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}

// BackendError is a non-2xx answer from the backend of record.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend responded with status %d", e.Status)
}

// Unwrap maps the HTTP status onto the sentinel taxonomy.
func (e *BackendError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrResourceNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidationFailed
	case http.StatusConflict:
		return ErrIntegrityViolation
	default:
		return ErrBackend
	}
}

// UserMessage returns the text to show for err. Backend and custom messages win;
// anything else falls back to the generic text.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var backendErr *BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}

	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}

	return fallback
}
