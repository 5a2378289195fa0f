package remote

import (
	"fmt"

	"github.com/joeycumines/delegate"
)

// Receiver is the receive-side remote delegate: it registers itself under
// id in a Registry at construction, and on Dispatch decodes an inbound
// frame's argument fields and invokes the bound target synchronously on the
// calling goroutine — no implicit threading.
type Receiver[Args, Ret any] struct {
	id       DelegateID
	target   delegate.Callable[Args, Ret]
	registry *Registry
}

// ReceiverOption configures a Receiver.
type ReceiverOption[Args, Ret any] func(*receiverConfig)

type receiverConfig struct {
	registry *Registry
}

// WithRegistry registers the Receiver in reg instead of the package-level
// Default.
func WithRegistry[Args, Ret any](reg *Registry) ReceiverOption[Args, Ret] {
	return func(c *receiverConfig) { c.registry = reg }
}

// NewReceiver binds target under id and registers it, failing with
// ErrDuplicateRemoteID if id is already taken in the chosen Registry.
func NewReceiver[Args, Ret any](target delegate.Callable[Args, Ret], id DelegateID, opts ...ReceiverOption[Args, Ret]) (*Receiver[Args, Ret], error) {
	cfg := receiverConfig{registry: Default}
	for _, o := range opts {
		o(&cfg)
	}

	r := &Receiver[Args, Ret]{id: id, target: target, registry: cfg.registry}
	if err := cfg.registry.register(id, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Close deregisters the Receiver, freeing id for reuse. Idempotent.
func (r *Receiver[Args, Ret]) Close() {
	r.registry.unregister(r.id)
}

// ID reports the DelegateID this Receiver is registered under.
func (r *Receiver[Args, Ret]) ID() DelegateID {
	return r.id
}

// dispatchFrame implements invoker: it decodes frame's argument fields into
// a fresh Args value and invokes the bound target with it.
func (r *Receiver[Args, Ret]) dispatchFrame(frame []byte) error {
	_, fields, err := decodeFrame(frame)
	if err != nil {
		return err
	}

	var args Args
	dec, ok := any(&args).(ArgsDecoder)
	if !ok {
		return fmt.Errorf("remote: *%T does not implement ArgsDecoder", args)
	}
	if err := dec.DecodeFields(fields); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteDecode, err)
	}

	_, err = r.target.Invoke(args)
	return err
}
