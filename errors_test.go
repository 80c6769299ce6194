package routeros

import (
	"errors"
	"testing"
)

// Compile-time assertions that every exported error type satisfies
// LibraryError.
var (
	_ LibraryError = (*ConnectionClosedError)(nil)
	_ LibraryError = (*ProtocolError)(nil)
	_ LibraryError = (*FatalError)(nil)
	_ LibraryError = (*TrapError)(nil)
	_ LibraryError = (*MultiTrapError)(nil)
	_ LibraryError = (*ErrNonASCIIPassword)(nil)
)

func TestFatalErrorUnwrapsToProtocolError(t *testing.T) {
	err := error(&FatalError{Message: "session terminated on request"})
	var proto *ProtocolError
	if !errors.As(err, &proto) {
		t.Fatal("errors.As(FatalError, *ProtocolError) = false, want true")
	}
	if proto.Msg != "session terminated on request" {
		t.Errorf("unwrapped ProtocolError.Msg = %q", proto.Msg)
	}
}

func TestMultiTrapErrorMessageJoinsTraps(t *testing.T) {
	err := &MultiTrapError{Traps: []*TrapError{
		{Message: "first"},
		{Message: "second"},
	}}
	want := "routeros: trap: first, routeros: trap: second"
	if err.Error() != want {
		t.Errorf("MultiTrapError.Error() = %q, want %q", err.Error(), want)
	}
}
