// Package errors defines the error taxonomy the HTTP layer maps onto
// responses. Services wrap repository and analytics failures into an
// AppError; handlers read Code and Status instead of inspecting error
// strings.
package errors

import "fmt"

// Stable machine-readable codes, surfaced verbatim in JSON error bodies.
const (
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// AppError pairs an error code with the HTTP status a handler should
// answer with. Err holds the underlying cause when there is one; it is
// logged but never sent to the client.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing resource, such as an unknown rider
// name.
func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewBadRequestError reports an unusable request, such as a missing
// required query parameter.
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewInternalError wraps an unexpected failure. The cause stays
// reachable through Unwrap; the client-facing message is generic.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}
