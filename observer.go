// Package pydesim provides Observer pattern interfaces for kernel lifecycle
// and trace events. These interfaces use the CloudEvents specification for
// standardized event format and better interoperability with external
// tracing/analysis tools.
package pydesim

import (
	"context"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// Observer defines the interface for objects that want to be notified of
// kernel events. Observers register with a Subject (the Kernel) to receive
// notifications on scheduling, cancellation, dispatch and termination.
type Observer interface {
	// OnEvent is called when a kernel event occurs that the observer is
	// interested in. Observers should handle events quickly; the kernel
	// notifies synchronously on the dispatch thread.
	OnEvent(ctx context.Context, event cloudevents.Event) error

	// ObserverID returns a unique identifier for this observer.
	ObserverID() string
}

// Subject defines the interface for objects that can be observed. The
// Kernel implements this to let embedding code attach trace sinks without
// coupling to any specific transport.
type Subject interface {
	RegisterObserver(observer Observer, eventTypes ...string) error
	UnregisterObserver(observer Observer) error
	NotifyObservers(ctx context.Context, event cloudevents.Event) error
	GetObservers() []ObserverInfo
}

// ObserverInfo describes a registered observer.
type ObserverInfo struct {
	ID           string    `json:"id"`
	EventTypes   []string  `json:"eventTypes"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// EventType constants name the kernel's lifecycle vocabulary in reverse
// domain notation, following the CloudEvents convention.
const (
	EventTypeScheduled  = "com.pydesim.event.scheduled"
	EventTypeCancelled  = "com.pydesim.event.cancelled"
	EventTypeDispatched = "com.pydesim.event.dispatched"
	EventTypeStopped    = "com.pydesim.run.stopped"
	EventTypeRunStarted = "com.pydesim.run.started"
	EventTypeRunEnded   = "com.pydesim.run.ended"
)

// FunctionalObserver adapts a plain function to the Observer interface.
type FunctionalObserver struct {
	id      string
	handler func(ctx context.Context, event cloudevents.Event) error
}

// NewFunctionalObserver builds an Observer around handler, useful for
// quick trace sinks without defining a full type.
func NewFunctionalObserver(id string, handler func(ctx context.Context, event cloudevents.Event) error) Observer {
	return &FunctionalObserver{id: id, handler: handler}
}

func (f *FunctionalObserver) OnEvent(ctx context.Context, event cloudevents.Event) error {
	return f.handler(ctx, event)
}

func (f *FunctionalObserver) ObserverID() string {
	return f.id
}
