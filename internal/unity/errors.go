package unity

import "errors"

// Transport error kinds. Remote failures (the editor returning an
// "error" field) are not errors at this layer; they come back inside
// the wire.Result so tools can render them per command.
var (
	// ErrConnection means a socket to the editor could not be
	// established or re-established within the configured retries.
	ErrConnection = errors.New("cannot reach unity editor")

	// ErrTimeout means the editor was connected but produced no
	// complete response within the configured timeout.
	ErrTimeout = errors.New("unity editor did not respond in time")
)

// transientError wraps a send/receive failure that warrants one
// transparent reconnect-and-retry of the whole operation. It never
// escapes SendCommand.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }
