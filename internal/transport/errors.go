package transport

import (
	"errors"
	"fmt"
)

// fallbackMessage is reported when a failure carries no message of its own.
const fallbackMessage = "request failed"

// Kind classifies a request failure by where it arose. The set is closed:
// the retry loop switches over it exhaustively.
type Kind int8

const (
	// KindTransport covers protocol-level failures where no usable response
	// arrived: connection refused, DNS, timeouts.
	KindTransport Kind = iota
	// KindLogical covers responses that arrived but did not report success:
	// an envelope with success=false, an undecodable body, an error status.
	KindLogical
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindLogical:
		return "logical"
	default:
		return fmt.Sprintf("kind(%d)", int8(k))
	}
}

// Error is a failed API request. Message holds the server-supplied error
// string verbatim when the server sent one.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Attempts   int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("pi-builder api error (%s, status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("pi-builder api error (%s): %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt is allowed for this failure.
// Transport and logical failures both retry; transient server trouble is
// expected to surface as either.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTransport, KindLogical:
		return true
	default:
		return false
	}
}

// AsError extracts an *Error from anywhere in an error chain.
func AsError(err error) (*Error, bool) {
	var reqErr *Error
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// IsKind reports whether err carries a request failure of the given kind.
func IsKind(err error, kind Kind) bool {
	reqErr, ok := AsError(err)
	return ok && reqErr.Kind == kind
}
