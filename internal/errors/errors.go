package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// IsNotFound reports whether err carries a 404 status code.
func IsNotFound(err error) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}

// ValidationErrors is the ordered list of per-field validation messages for
// one request. It is a returned value, not an exceptional condition; the
// handler serializes it as a message array with status 400.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// ConflictError is the typed uniqueness-violation signal reported by the
// user store. Field names the unique column that caused the conflict
// ("email" or "username").
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("unique constraint violated on %s", e.Field)
}
