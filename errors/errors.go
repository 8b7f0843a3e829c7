// Package errors provides error values that carry an HTTP status code, so a
// failed request outcome can always produce the status recorded on its span.
// Construction wraps github.com/pkg/errors to keep stack traces attached.
package errors

import (
	stderrors "errors"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// HTTPError is the capability a failure value exposes so observers can derive
// a response status from it without owning the error.
type HTTPError interface {
	error
	StatusCode() int
}

type httpError struct {
	err    error
	status int
}

func (e *httpError) Error() string {
	if e == nil || e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *httpError) StatusCode() int {
	if e == nil {
		return http.StatusInternalServerError
	}
	return e.status
}

func (e *httpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// New returns a new error with the given message and a recorded stack trace.
func New(message string) error {
	return pkgerrors.New(message)
}

// Wrap annotates err with a message and a recorded stack trace. Returns nil
// if err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStatus attaches an HTTP status code to err. Returns nil if err is nil.
// The original error stays reachable through Unwrap, so errors.Is/As keep
// working across the attachment.
func WithStatus(err error, status int) error {
	if err == nil {
		return nil
	}
	return &httpError{err: err, status: status}
}

// BadRequest returns a stack-carrying error answering as 400.
func BadRequest(message string) error {
	return WithStatus(pkgerrors.New(message), http.StatusBadRequest)
}

// NotFound returns a stack-carrying error answering as 404.
func NotFound(message string) error {
	return WithStatus(pkgerrors.New(message), http.StatusNotFound)
}

// Internal returns a stack-carrying error answering as 500.
func Internal(message string) error {
	return WithStatus(pkgerrors.New(message), http.StatusInternalServerError)
}

// StatusCodeOf derives the response status carried by err. Errors without an
// attached status, including nil-wrapped chains, map to 500.
func StatusCodeOf(err error) int {
	var httpErr HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.StatusCode()
	}
	return http.StatusInternalServerError
}
