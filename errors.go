package pydesim

import "errors"

// Kernel error kinds. These are the only sentinel errors the core
// exposes; everything else (user-handler errors) propagates unchanged.
var (
	// ErrNegativeDelay is returned by Schedule when delay < 0.
	ErrNegativeDelay = errors.New("pydesim: negative delay")

	// ErrEmptyQueue is returned by an internal pop on an empty heap.
	// The dispatch loop never triggers it because it checks Empty first;
	// it surfaces only as a programmer-error indication.
	ErrEmptyQueue = errors.New("pydesim: pop from empty event queue")

	// ErrUnknownName is returned by indexed lookups (parameter bag,
	// handler registry, children manager, connection manager) on an
	// absent key. The Get(name, default) variants swallow this.
	ErrUnknownName = errors.New("pydesim: unknown name")

	// ErrInvariantViolation marks a popped event whose fire-time precedes
	// the kernel's current stime. Should be unreachable in correct use.
	ErrInvariantViolation = errors.New("pydesim: invariant violation")
)
