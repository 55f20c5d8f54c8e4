package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInvalidInput Kind = "INVALID_INPUT"
	KindGeneration   Kind = "GENERATION_ERROR"
	KindTimeout      Kind = "TIMEOUT"
	KindUpload       Kind = "UPLOAD_ERROR"
	KindStorage      Kind = "STORAGE_ERROR"
	KindNotFound     Kind = "NOT_FOUND"
)

// Error is a classified failure. Message is safe to return to clients.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// KindOf returns the kind of the outermost *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
