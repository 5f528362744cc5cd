package pydesim

import (
	"context"
	"fmt"
)

// StopPredicate is a pure function of kernel state; once true the
// dispatch loop halts before running the next event's handler.
type StopPredicate func(k *Kernel) bool

// Initializer is implemented by root models that want a one-time setup
// call before init/run, mirroring the optional initialize(sim) hook.
type Initializer interface {
	Initialize(sim *Simulator)
}

// MessageReceiver is implemented by models that can be the target of a
// Connection.Send.
type MessageReceiver interface {
	HandleMessage(msg any, sender any)
}

// Kernel owns simulated time, the event queue, the id allocator and the
// stop-predicate list. It exposes Schedule/Cancel and runs the dispatch
// loop; it knows nothing about models, parameters or handler registries.
type Kernel struct {
	stime      float64
	queue      *EventQueue
	nextID     uint64
	numEvents  int
	predicates []StopPredicate
	logger     Logger
	*observerRegistry
}

var _ Subject = (*Kernel)(nil)

// NewKernel returns a Kernel at stime 0 with an empty queue.
func NewKernel(logger Logger) *Kernel {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Kernel{
		queue:            NewEventQueue(),
		logger:           logger,
		observerRegistry: newObserverRegistry(),
	}
}

// STime returns the kernel's current simulated time.
func (k *Kernel) STime() float64 { return k.stime }

// NumEvents returns the count of handler invocations so far.
func (k *Kernel) NumEvents() int { return k.numEvents }

// QueueSize returns the count of live (non-tombstoned) events queued.
func (k *Kernel) QueueSize() int { return k.queue.Size() }

// Schedule allocates a fresh event id, builds an Event firing at
// stime+delay, and pushes it onto the queue. delay must be
// non-negative, or ErrNegativeDelay is returned and no event is
// ingested.
func (k *Kernel) Schedule(delay float64, handler Handler, args []any, kwargs map[string]any) (uint64, error) {
	if delay < 0 {
		return 0, ErrNegativeDelay
	}
	id := k.nextID
	k.nextID++
	ev := &Event{
		ID:       id,
		FireTime: k.stime + delay,
		Handler:  handler,
		Args:     args,
		Kwargs:   kwargs,
	}
	k.queue.Push(ev)
	k.emit(EventTypeScheduled, map[string]any{
		"eventId": id,
		"fireAt":  ev.FireTime,
		"source":  handler.Source(),
	})
	return id, nil
}

// Cancel tombstones the event identified by id. It is idempotent and
// never errors: unknown ids (already fired, already cancelled) are
// silently ignored.
func (k *Kernel) Cancel(id uint64) {
	if ev, ok := k.queue.Cancel(id); ok {
		k.emit(EventTypeCancelled, map[string]any{
			"eventId": ev.ID,
			"source":  ev.Handler.Source(),
		})
	}
}

// Setup installs a time-limit stop predicate when stimeLimit > 0.
// Multiple calls accumulate predicates.
func (k *Kernel) Setup(stimeLimit float64) {
	if stimeLimit > 0 {
		k.AddStopPredicate(func(k *Kernel) bool {
			return k.stime > stimeLimit
		})
	}
}

// AddStopPredicate registers an additional stop predicate.
func (k *Kernel) AddStopPredicate(p StopPredicate) {
	k.predicates = append(k.predicates, p)
}

func (k *Kernel) testStop() bool {
	for _, p := range k.predicates {
		if p(k) {
			return true
		}
	}
	return false
}

// Run drives the dispatch loop. If the root model (sim.Data()) exposes
// Initialize, it is invoked first with sim; then init (if non-nil); then
// the loop: pop the next live event, advance stime to its fire-time,
// test stop predicates, and either break (stop vetoes dispatch, but
// stime has already advanced — this is deliberate, see the design notes)
// or dispatch the handler and count it. fin (if non-nil) runs last,
// including on stop-predicate termination; it does not run when Run
// returns an error.
func (k *Kernel) Run(sim *Simulator, initFn, finFn func(*Simulator)) error {
	k.emit(EventTypeRunStarted, nil)

	if init, ok := sim.Data().(Initializer); ok {
		init.Initialize(sim)
	}
	if initFn != nil {
		initFn(sim)
	}

	for !k.queue.Empty() {
		ev, err := k.queue.PopNext()
		if err != nil {
			// Empty was just checked; PopNext only fails when no live
			// event remains, which the loop guard already excluded.
			return fmt.Errorf("pydesim: %w", err)
		}
		if ev.FireTime < k.stime {
			return fmt.Errorf("pydesim: event %d fires at %v before stime %v: %w",
				ev.ID, ev.FireTime, k.stime, ErrInvariantViolation)
		}
		k.stime = ev.FireTime

		if k.testStop() {
			k.emit(EventTypeStopped, map[string]any{
				"stime":          k.stime,
				"rejectedEvent":  ev.ID,
				"rejectedSource": ev.Handler.Source(),
			})
			break
		}

		k.logger.Trace(k.stime, ev.Handler.Source(), "dispatch event %d", ev.ID)
		k.emit(EventTypeDispatched, map[string]any{
			"eventId": ev.ID,
			"stime":   k.stime,
			"source":  ev.Handler.Source(),
		})
		ev.Handler.invoke(sim, ev.Args, ev.Kwargs)
		k.numEvents++
	}

	if finFn != nil {
		finFn(sim)
	}
	k.emit(EventTypeRunEnded, map[string]any{"stime": k.stime, "numEvents": k.numEvents})
	return nil
}

func (k *Kernel) emit(eventType string, data map[string]any) {
	if len(k.observerRegistry.observers) == 0 {
		return
	}
	evt := NewCloudEvent(eventType, "pydesim.kernel", data, nil)
	_ = k.NotifyObservers(context.Background(), evt)
}
