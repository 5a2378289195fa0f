package remote

import "fmt"

// Sender is the send-side remote delegate: invoking it frames id and args
// through the NUL-terminated codec into its Stream buffer and hands the
// accumulated bytes to a Transport, never calling anything locally.
type Sender[Args any] struct {
	transport Transport
	stream    Stream
	id        DelegateID
}

// NewSender constructs a Sender bound to transport, stream and id. Args must
// implement ArgsEncoder; this is checked on every Invoke rather than at
// construction, since Go has no way to express "Args implements ArgsEncoder"
// as a generic constraint without forcing every Args type to name the
// interface explicitly in its type parameter list.
func NewSender[Args any](transport Transport, stream Stream, id DelegateID) Sender[Args] {
	return Sender[Args]{transport: transport, stream: stream, id: id}
}

// Invoke encodes args behind id into the bound Stream and dispatches the
// resulting frame through the bound Transport. Returns an error if Args
// doesn't implement ArgsEncoder, if encoding fails, or if the Transport
// itself reports a failure, which propagates verbatim.
func (s Sender[Args]) Invoke(args Args) error {
	enc, ok := any(args).(ArgsEncoder)
	if !ok {
		return fmt.Errorf("remote: %T does not implement ArgsEncoder", args)
	}
	s.stream.Reset()
	if err := encodeFrame(s.stream, s.id, enc); err != nil {
		return err
	}
	return s.transport.DispatchDelegate(s.stream.Bytes())
}

// ID reports the DelegateID this Sender targets.
func (s Sender[Args]) ID() DelegateID {
	return s.id
}
