package routeros

import (
	"fmt"
	"strings"
)

// LibraryError is implemented by every error this package returns.
// It exists so callers can do `var libErr routeros.LibraryError; errors.As(err, &libErr)`
// without enumerating every concrete type.
type LibraryError interface {
	error
	routerosError()
}

// ConnectionClosedError is returned when the peer or network drops the
// stream mid-sentence. Unrecoverable for the connection it came from.
type ConnectionClosedError struct {
	Err error
}

func (e *ConnectionClosedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("routeros: connection closed: %v", e.Err)
	}
	return "routeros: connection closed"
}

func (e *ConnectionClosedError) Unwrap() error { return e.Err }
func (*ConnectionClosedError) routerosError()  {}

// ProtocolError signals a violated encoding or framing invariant: a length
// overflow, an unknown control byte, a malformed word, or an unexpected
// empty sentence where a reply word was expected. Unrecoverable for the
// connection it came from.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string { return "routeros: protocol error: " + e.Msg }
func (*ProtocolError) routerosError()  {}

// FatalError is raised when the device sends a !fatal sentence. The
// transport has already been closed by the time this error is returned.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string { return "routeros: fatal: " + e.Message }
func (*FatalError) routerosError()  {}

// Unwrap lets callers match FatalError against *ProtocolError via
// errors.As, since a fatal reply is a kind of protocol failure.
func (e *FatalError) Unwrap() error { return &ProtocolError{Msg: e.Message} }

// TrapError is a command-level rejection from the device (a single !trap
// sentence). The connection remains usable after a TrapError.
type TrapError struct {
	Message  string
	Category *int
}

func (e *TrapError) Error() string {
	return "routeros: trap: " + strings.ReplaceAll(e.Message, "\r\n", ",")
}
func (*TrapError) routerosError() {}

// MultiTrapError aggregates two or more TrapErrors raised within a single
// response.
type MultiTrapError struct {
	Traps []*TrapError
}

func (e *MultiTrapError) Error() string {
	parts := make([]string, len(e.Traps))
	for i, t := range e.Traps {
		parts[i] = t.Error()
	}
	return strings.Join(parts, ", ")
}
func (*MultiTrapError) routerosError() {}

// ErrNonASCIIPassword is returned before any bytes reach the wire when a
// password contains non-ASCII characters.
type ErrNonASCIIPassword struct{}

func (*ErrNonASCIIPassword) Error() string {
	return "routeros: password must be representable in ASCII"
}
func (*ErrNonASCIIPassword) routerosError() {}
