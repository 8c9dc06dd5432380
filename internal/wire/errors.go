package wire

import "errors"

// ErrProtocol marks response bytes that do not parse as a well-formed
// envelope. Transport errors (dial, timeout) belong to the connection
// layer; this is the codec's only failure mode.
var ErrProtocol = errors.New("malformed unity response")
