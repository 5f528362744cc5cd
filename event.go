package pydesim

import "fmt"

// Handler is a tagged variant over the two callable shapes a scheduled
// event may carry: a method bound to some model instance, or a free
// function receiving the simulator as its first argument.
//
// The dispatcher switches on which field is set; no reflection is used.
type Handler struct {
	bound *boundHandler
	free  FreeFunc
}

// BoundFunc is a method-shaped handler: invoked as fn(args..., kwargs).
// The target it is bound to is carried alongside for trace logging and
// is opaque to the kernel.
type BoundFunc func(args []any, kwargs map[string]any)

// FreeFunc is invoked as fn(sim, args..., kwargs).
type FreeFunc func(sim *Simulator, args []any, kwargs map[string]any)

type boundHandler struct {
	target any
	name   string
	fn     BoundFunc
}

// Bound builds a Handler wrapping a method bound to target. name is used
// purely for trace-log identification (e.g. "Queue.onArrival").
func Bound(target any, name string, fn BoundFunc) Handler {
	return Handler{bound: &boundHandler{target: target, name: name, fn: fn}}
}

// Free builds a Handler wrapping a function that receives the simulator
// as its first argument.
func Free(fn FreeFunc) Handler {
	return Handler{free: fn}
}

// IsBound reports whether h wraps a bound method rather than a free
// function.
func (h Handler) IsBound() bool {
	return h.bound != nil
}

// Source names the handler's origin for trace logging: for methods, the
// name given to Bound (or the bound target's description when that name
// is empty); for free callables, the literal "kernel".
func (h Handler) Source() string {
	if h.bound != nil {
		if h.bound.name != "" {
			return h.bound.name
		}
		return fmt.Sprintf("%v", h.bound.target)
	}
	return "kernel"
}

func (h Handler) invoke(sim *Simulator, args []any, kwargs map[string]any) {
	if h.bound != nil {
		h.bound.fn(args, kwargs)
		return
	}
	h.free(sim, args, kwargs)
}

// Event is the immutable-after-insert carrier of a scheduled invocation.
// Only the tombstone bit may change after construction.
type Event struct {
	ID        uint64
	FireTime  float64
	Handler   Handler
	Args      []any
	Kwargs    map[string]any
	tombstone bool
}

// Tombstoned reports whether the event has been cancelled.
func (e *Event) Tombstoned() bool {
	return e.tombstone
}
