package service

import "errors"

// ErrorKind classifies a service failure. The HTTP layer translates each
// kind into a status code exactly once; services never deal in statuses.
type ErrorKind string

const (
	KindBadRequest          ErrorKind = "bad_request"
	KindUnauthorized        ErrorKind = "unauthorized"
	KindForbidden           ErrorKind = "forbidden"
	KindNotFound            ErrorKind = "not_found"
	KindConflict            ErrorKind = "conflict"
	KindUnprocessableEntity ErrorKind = "unprocessable_entity"
)

// Error is a kind-tagged service failure. The message is written for the
// API client and is returned verbatim in the response body.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewError constructs a kind-tagged [Error].
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Well-known failures shared across services. Note that both login failure
// causes (unknown email, wrong password) are the SAME value: callers cannot
// distinguish them, which keeps user enumeration off the table.
var (
	ErrEmailAlreadyInUse    = NewError(KindConflict, "This email is already in use. Please choose a new email for registration")
	ErrIncorrectCredentials = NewError(KindUnauthorized, "Incorrect email and/or password")

	ErrTokenNotSent       = NewError(KindUnauthorized, "Token JWT not sent")
	ErrInvalidToken       = NewError(KindUnauthorized, "Invalid or expired token")
	ErrPermissionDenied   = NewError(KindForbidden, "You don't have permission to perform this action")
	ErrInvalidRecordID    = NewError(KindBadRequest, "Invalid id was passed")
	ErrInvalidRequestBody = NewError(KindBadRequest, "Invalid JSON was passed")
)

// ErrVersionIsNotSpecified is returned at startup when the application
// version was not provided via build flags or configuration.
var ErrVersionIsNotSpecified = errors.New("app version is not specified")
