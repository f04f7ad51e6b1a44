package service

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrNetwork indicates a transport or connectivity failure.
	ErrNetwork = errors.New("network error")

	// ErrServer indicates a non-2xx response without a usable error body,
	// or a response that could not be decoded.
	ErrServer = errors.New("server error")

	// ErrValidation indicates a non-2xx response carrying a server message.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the requested task does not exist.
	ErrNotFound = errors.New("not found")
)

// Error is the error returned by Service implementations.
type Error struct {
	// Kind is one of ErrNetwork, ErrServer, ErrValidation, ErrNotFound.
	Kind error

	// Status is the HTTP status code, 0 for transport failures.
	Status int

	// Message is the server-supplied message, if any.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%v (status %d)", e.Kind, e.Status)
	}
	return e.Kind.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// MessageOf returns the server-supplied message carried by err, or fallback
// if there is none.
func MessageOf(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
