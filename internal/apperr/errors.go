// Package apperr defines the error taxonomy shared by all services.
// Handlers translate a Kind into an HTTP status; services never touch
// status codes directly.
package apperr

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindForbidden
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional cause
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Msg: msg} }
func Auth(msg string) *Error       { return &Error{Kind: KindAuth, Msg: msg} }
func Forbidden(msg string) *Error  { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Msg: msg} }

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: cause}
}

// KindOf reports the Kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, k Kind) bool { return err != nil && KindOf(err) == k }
