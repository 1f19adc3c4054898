package actuator

import "errors"

// Manager errors.
var (
	// ErrSizeMismatch indicates an update supplied a non-empty source whose
	// length differs from the destination buffer. This signals caller misuse
	// (stale sizing after a membership change) and is not recoverable in
	// place; the owning loop must re-size and redo the step.
	ErrSizeMismatch = errors.New("action source size mismatch")

	// ErrActuatorNotFound indicates a lookup by name matched no actuator.
	ErrActuatorNotFound = errors.New("actuator not found")

	// ErrIndexOutOfRange indicates an index-based sequence operation was
	// given an index outside the current sequence bounds.
	ErrIndexOutOfRange = errors.New("actuator index out of range")

	// ErrStaleLayout indicates the buffer layout changed (membership, sort
	// or slot counts) after the last EnsureBufferSize. Only reported when
	// strict checking is enabled.
	ErrStaleLayout = errors.New("stale buffer layout")
)
