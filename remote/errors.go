package remote

import "errors"

// Sentinel errors for the remote bridge, matching the root package's
// Err-prefixed errors.go convention.
var (
	// ErrDuplicateRemoteID is returned by NewReceiver when the given id is
	// already registered in the chosen Registry.
	ErrDuplicateRemoteID = errors.New("remote: id already registered")

	// ErrNoSuchRemoteTarget is returned when an inbound frame names an id
	// with no registered Receiver.
	ErrNoSuchRemoteTarget = errors.New("remote: no receiver registered for id")

	// ErrRemoteDecode is returned when an inbound frame's bytes cannot be
	// parsed into the expected id/argument framing.
	ErrRemoteDecode = errors.New("remote: malformed frame")
)
