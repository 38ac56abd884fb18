package apperror

import "fmt"

// NotFoundError means the primary subject of the request does not exist.
// Surfaced as 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// AuthorizationError means the subject may exist but the requester has no
// standing to act on it (wrong owner, no active consultation, profile
// missing). Surfaced as 403.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ValidationError means the request is well-authorized but violates a
// business invariant (duplicate agreement, duplicate daily record).
// Surfaced as 400/409.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func NewAuthorization(format string, args ...interface{}) *AuthorizationError {
	return &AuthorizationError{Message: fmt.Sprintf(format, args...)}
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
