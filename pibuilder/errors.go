package pibuilder

import (
	"errors"

	"github.com/pi-builder/sdk-go/internal/models"
	"github.com/pi-builder/sdk-go/internal/transport"
)

// Error is the terminal failure returned once the retry budget is spent.
// Its Message field preserves the server-supplied error string verbatim.
type Error = transport.Error

// ErrorKind classifies a request failure.
type ErrorKind = transport.Kind

const (
	// ErrorKindTransport marks protocol-level failures where no usable
	// response arrived.
	ErrorKindTransport = transport.KindTransport
	// ErrorKindLogical marks responses that arrived but did not report
	// success.
	ErrorKindLogical = transport.KindLogical
)

// FieldError reports a server record that arrived without one of its
// required fields. It is never retried.
type FieldError = models.FieldError

var (
	// ErrAgentIDRequired rejects agent lookups with an empty identifier.
	ErrAgentIDRequired = errors.New("agent id is required")
	// ErrTaskIDRequired rejects task lookups with an empty identifier.
	ErrTaskIDRequired = errors.New("task id is required")
)

// AsError extracts an *Error from anywhere in an error chain.
func AsError(err error) (*Error, bool) {
	return transport.AsError(err)
}

// IsKind reports whether err carries a request failure of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return transport.IsKind(err, kind)
}
