// Package httperror maps internal failures onto the public HTTP contract.
// The mobile client sees either a verdict or {"error": "<message>"}; every
// post-validation failure shares one generic message, and the distinguishing
// error code exists for server-side logs only.
package httperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/habitlock/verify-server/internal/gemini"
	"github.com/habitlock/verify-server/internal/verify"
)

// ErrorCode distinguishes failure classes in logs.
type ErrorCode string

const (
	CodeRequestInvalid   ErrorCode = "REQUEST_INVALID"
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeUpstream         ErrorCode = "UPSTREAM_ERROR"
	CodeExtraction       ErrorCode = "EXTRACTION_FAILURE"
	CodeSchema           ErrorCode = "SCHEMA_VIOLATION"
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// genericFailureMessage is the only text the client sees for upstream,
// extraction, schema, and internal failures. Upstream detail never leaks.
const genericFailureMessage = "Verification failed. Please try again."

// ErrorResponse is the public failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error is the internal standard error type.
type Error struct {
	Code    ErrorCode
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Response converts an error into its HTTP status and public body.
func Response(err error) (int, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = NewInternal(errors.New("unknown error"))
	}
	return apiErr.Status, ErrorResponse{Error: apiErr.Message}
}

// FromError classifies an error into the internal taxonomy.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, verify.ErrNoJSON) {
		return &Error{Code: CodeExtraction, Status: http.StatusInternalServerError, Message: genericFailureMessage, cause: err}
	}
	if errors.Is(err, verify.ErrSchema) {
		return &Error{Code: CodeSchema, Status: http.StatusInternalServerError, Message: genericFailureMessage, cause: err}
	}
	if errors.Is(err, gemini.ErrUpstream) || errors.Is(err, gemini.ErrMissingAPIKey) {
		return &Error{Code: CodeUpstream, Status: http.StatusInternalServerError, Message: genericFailureMessage, cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Code: CodeUpstream, Status: http.StatusInternalServerError, Message: genericFailureMessage, cause: err}
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewRequestInvalid(validationMessage(validationErrors), err)
	}

	return NewInternal(err)
}

// NewRequestInvalid builds a 400 for missing or malformed fields. Detected
// before any upstream call so invalid requests never incur inference cost.
func NewRequestInvalid(message string, cause error) *Error {
	return &Error{
		Code:    CodeRequestInvalid,
		Status:  http.StatusBadRequest,
		Message: message,
		cause:   cause,
	}
}

// NewMissingField builds a 400 naming the absent field.
func NewMissingField(field string) *Error {
	return NewRequestInvalid(fmt.Sprintf("%s is required", field), nil)
}

// NewMethodNotAllowed builds a 405.
func NewMethodNotAllowed() *Error {
	return &Error{
		Code:    CodeMethodNotAllowed,
		Status:  http.StatusMethodNotAllowed,
		Message: "method not allowed",
	}
}

// NewUnauthorized builds a 401.
func NewUnauthorized() *Error {
	return &Error{
		Code:    CodeUnauthorized,
		Status:  http.StatusUnauthorized,
		Message: "invalid API key",
	}
}

// NewInternal builds a 500 with the generic public message.
func NewInternal(cause error) *Error {
	return &Error{
		Code:    CodeInternal,
		Status:  http.StatusInternalServerError,
		Message: genericFailureMessage,
		cause:   cause,
	}
}

func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "invalid request body"
	}
	first := errs[0]
	if first.Tag() == "required" {
		return fmt.Sprintf("%s is required", first.Field())
	}
	return fmt.Sprintf("%s is invalid", first.Field())
}
