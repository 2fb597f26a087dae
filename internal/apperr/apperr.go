package apperr

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the service reports.
// Handlers map kinds onto HTTP status codes; nothing outside this set
// ever crosses a package boundary as a classified failure.
type Kind int

const (
	// Validation: a required or malformed input was rejected before any write.
	Validation Kind = iota
	// NotFound: the operation targeted an identifier that does not exist.
	NotFound
	// Unavailable: the document store could not be reached or the query faulted.
	Unavailable
	// Upload: the upstream image host rejected or errored on one or more files.
	Upload
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Unavailable:
		return "unavailable"
	case Upload:
		return "upload"
	}
	return "unknown"
}

// Error carries a kind plus enough context to log and to surface a field-level
// message to the caller. Field is set for validation failures only.
type Error struct {
	Kind  Kind
	Op    string
	Field string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s: %s", e.Op, e.Kind, e.Field, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error with a caller-facing message.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap classifies an underlying error without losing it.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Invalid reports a per-field validation failure.
func Invalid(op, field, msg string) *Error {
	return &Error{Kind: Validation, Op: op, Field: field, Msg: msg}
}

// KindOf extracts the kind of err. Unclassified errors count as Unavailable,
// matching the "anything unexpected is a 500" contract.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unavailable
}

func IsNotFound(err error) bool   { return classified(err, NotFound) }
func IsValidation(err error) bool { return classified(err, Validation) }

func classified(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
