package remote

import "sync"

// invoker is the receiver side's registration handle; a Receiver implements
// this directly.
type invoker interface {
	dispatchFrame(frame []byte) error
}

// Registry is a process-wide id -> receiver directory, exposed here as an
// explicit type, constructable independently of the package-level Default,
// so tests (and multi-registry setups) don't share global state.
type Registry struct {
	mu        sync.Mutex
	receivers map[DelegateID]invoker
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{receivers: make(map[DelegateID]invoker)}
}

// Default is the process-wide registry. Receivers constructed without an
// explicit Registry register here.
var Default = NewRegistry()

// register adds r under id, failing with ErrDuplicateRemoteID if already
// taken.
func (reg *Registry) register(id DelegateID, r invoker) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.receivers[id]; exists {
		return ErrDuplicateRemoteID
	}
	reg.receivers[id] = r
	return nil
}

// unregister removes id, if present. A no-op for an unknown id, matching
// "deregistration is idempotent."
func (reg *Registry) unregister(id DelegateID) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.receivers, id)
}

// Dispatch peeks the id out of frame, looks up the registered Receiver, and
// hands it the whole frame to decode and invoke. Returns
// ErrNoSuchRemoteTarget for an unknown id, or ErrRemoteDecode if the id
// segment itself can't be parsed.
func (reg *Registry) Dispatch(frame []byte) error {
	id, _, err := decodeFrame(frame)
	if err != nil {
		return err
	}

	reg.mu.Lock()
	r, ok := reg.receivers[id]
	reg.mu.Unlock()
	if !ok {
		getLogger().Warning().
			Str(`component`, `registry`).
			Log(`no receiver for remote id`)
		return ErrNoSuchRemoteTarget
	}
	return r.dispatchFrame(frame)
}
