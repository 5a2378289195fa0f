package remote

import "io"

// DelegateID identifies a remote-invokable target, shared by convention
// between both ends of a Transport.
type DelegateID int

// Transport is the byte-stream sink a Sender hands a completed frame to.
// Implementations decide how the frame reaches the remote process (a TCP
// socket, an in-process channel, a message queue); the core only fixes the
// framing, never the medium.
type Transport interface {
	DispatchDelegate(frame []byte) error
}

// Stream is the user-supplied buffer a Sender writes a frame into before
// handing the accumulated bytes to a Transport. Reset clears it for reuse
// between calls, and Bytes exposes what's been written so far; *bytes.Buffer
// satisfies this directly.
type Stream interface {
	io.Writer
	Bytes() []byte
	Reset()
}
