package chiarpc

import (
	"errors"
	"fmt"
)

// Kind classifies an RPC call failure.
type Kind int

const (
	// Transport failures cover connection establishment errors, request
	// send errors and timeouts. The remote effect of the call is unknown,
	// retrying is the caller's decision.
	Transport Kind = iota
	// Decode failures mean the response body was not the JSON we expected.
	Decode
	// Remote failures are reported by the service itself via the success
	// flag of the response envelope.
	Remote
)

// Sentinel values for errors.Is checks, one per failure kind.
var (
	ErrTransport = errors.New("transport failure")
	ErrDecode    = errors.New("decode failure")
	ErrRemote    = errors.New("remote failure")
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case Transport:
		return "transport"
	case Decode:
		return "decode"
	case Remote:
		return "remote"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed failure of a single RPC call. It carries enough information
// to distinguish a network problem from a protocol problem and from a request
// the service itself rejected.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// Method is the remote method the failed call targeted.
	Method string
	// Message is a human-readable description. For Remote failures it is
	// the message supplied by the service.
	Message string
	// Payload keeps the raw response body when one was received, it can be
	// inspected for details the typed fields don't carry.
	Payload []byte

	cause error
}

// NewTransportError wraps a connection or timeout failure for the given method.
func NewTransportError(method string, cause error) *Error {
	return &Error{Kind: Transport, Method: method, Message: cause.Error(), cause: cause}
}

// NewDecodeError wraps a JSON decoding failure together with the offending body.
func NewDecodeError(method string, payload []byte, cause error) *Error {
	return &Error{Kind: Decode, Method: method, Message: cause.Error(), Payload: payload, cause: cause}
}

// NewRemoteError creates an error for a call the service reported as failed.
func NewRemoteError(method string, message string, payload []byte) *Error {
	return &Error{Kind: Remote, Method: method, Message: message, Payload: payload}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %s", e.Method, e.Kind, e.Message)
}

// Is allows errors.Is to match the per-kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == Transport
	case ErrDecode:
		return e.Kind == Decode
	case ErrRemote:
		return e.Kind == Remote
	}
	return false
}

// Unwrap returns the underlying cause if there is one.
func (e *Error) Unwrap() error {
	return e.cause
}
