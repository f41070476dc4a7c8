// README: Tagged error kinds shared by services and the HTTP layer.
package types

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers switch on it instead of inspecting concrete types.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConfig is a missing or invalid credential; surfaced verbatim.
	KindConfig
	// KindMalformedResponse means the model output held no parseable JSON guide.
	KindMalformedResponse
	// KindService is a network or service failure on the text-generation path.
	KindService
	// KindImage is an image-generation failure; always absorbed.
	KindImage
	// KindPersistence is a storage failure; always absorbed.
	KindPersistence
	// KindValidation is a caller input error.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindMalformedResponse:
		return "malformed_response"
	case KindService:
		return "service"
	case KindImage:
		return "image"
	case KindPersistence:
		return "persistence"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error carries a Kind, the failing operation and an optional user-facing message.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": " + e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// E builds an *Error.
func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds an *Error whose Message is user-facing text.
func Errorf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the user-facing message of the outermost *Error, falling back to
// the message of the wrapped cause.
func MessageOf(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}
