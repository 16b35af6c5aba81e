package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service error so the transport layer can pick a status
// code without inspecting message strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
)

// Error is the typed error every service method returns for expected failure
// modes. Msg is safe to show to the client.
type Error struct {
	Kind Kind
	Msg  string

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.cause }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Authf(format string, args ...any) *Error {
	return &Error{Kind: KindAuth, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected error with a client-safe message.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, cause: cause}
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal
// for anything untyped.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}
