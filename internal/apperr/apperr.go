// Package apperr defines the application error kinds that reach clients.
// Each kind carries the HTTP status it is reported with and a default
// message used when the caller does not supply one.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Default messages for each error kind.
const (
	MsgConflict            = "Conflict Access"
	MsgForbidden           = "Forbidden Access"
	MsgNotFound            = "Resource Not Found"
	MsgUnauthorized        = "Unauthorized Access"
	MsgUnprocessableEntity = "UnprocessableEntity"
)

// Error is an error tagged with an HTTP status code.
type Error struct {
	Status  int
	Message string
	Err     error
}

// Kind sentinels, usable as errors.Is targets. Two *Error values match when
// their statuses are equal.
var (
	ErrConflict            = &Error{Status: http.StatusConflict, Message: MsgConflict}
	ErrForbidden           = &Error{Status: http.StatusForbidden, Message: MsgForbidden}
	ErrNotFound            = &Error{Status: http.StatusNotFound, Message: MsgNotFound}
	ErrUnauthorized        = &Error{Status: http.StatusUnauthorized, Message: MsgUnauthorized}
	ErrUnprocessableEntity = &Error{Status: http.StatusUnprocessableEntity, Message: MsgUnprocessableEntity}
)

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// Wrap returns a copy of e that records cause as its underlying error.
// The client-facing message is unchanged.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Status: e.Status, Message: e.Message, Err: cause}
}

func newError(status int, def string, msg []string) *Error {
	m := def
	if len(msg) > 0 && msg[0] != "" {
		m = msg[0]
	}
	return &Error{Status: status, Message: m}
}

// Conflict returns a 409 error. An optional message replaces the default.
func Conflict(msg ...string) *Error {
	return newError(http.StatusConflict, MsgConflict, msg)
}

// Forbidden returns a 403 error. An optional message replaces the default.
func Forbidden(msg ...string) *Error {
	return newError(http.StatusForbidden, MsgForbidden, msg)
}

// NotFound returns a 404 error. An optional message replaces the default.
func NotFound(msg ...string) *Error {
	return newError(http.StatusNotFound, MsgNotFound, msg)
}

// Unauthorized returns a 401 error. An optional message replaces the default.
func Unauthorized(msg ...string) *Error {
	return newError(http.StatusUnauthorized, MsgUnauthorized, msg)
}

// UnprocessableEntity returns a 422 error. An optional message replaces the default.
func UnprocessableEntity(msg ...string) *Error {
	return newError(http.StatusUnprocessableEntity, MsgUnprocessableEntity, msg)
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// StatusOf returns the status carried by err, or 0 if err is not an *Error.
func StatusOf(err error) int {
	if e, ok := As(err); ok {
		return e.Status
	}
	return 0
}
