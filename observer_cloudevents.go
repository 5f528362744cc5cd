package pydesim

import (
	"context"
	"fmt"
	"sync"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// CloudEvent is an alias for the CloudEvents Event type for convenience.
type CloudEvent = cloudevents.Event

// NewCloudEvent builds a CloudEvent for a kernel trace/lifecycle point.
func NewCloudEvent(eventType, source string, data interface{}, metadata map[string]interface{}) cloudevents.Event {
	event := cloudevents.NewEvent()
	event.SetID(generateEventID())
	event.SetSource(source)
	event.SetType(eventType)
	event.SetTime(time.Now())
	event.SetSpecVersion(cloudevents.VersionV1)

	if data != nil {
		_ = event.SetData(cloudevents.ApplicationJSON, data)
	}
	for key, value := range metadata {
		event.SetExtension(key, value)
	}
	return event
}

// generateEventID returns a time-ordered unique id for the CloudEvents
// envelope. This is independent of the kernel's own monotonic event ids,
// which must stay plain integers per the ordering contract.
func generateEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

// ValidateCloudEvent validates that a CloudEvent conforms to spec.
func ValidateCloudEvent(event cloudevents.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("CloudEvent validation failed: %w", err)
	}
	return nil
}

// observerRegistry is a minimal Subject implementation shared by the Kernel.
type observerRegistry struct {
	mu        sync.RWMutex
	observers map[string]registeredObserver
}

type registeredObserver struct {
	observer   Observer
	eventTypes map[string]struct{}
	info       ObserverInfo
}

func newObserverRegistry() *observerRegistry {
	return &observerRegistry{observers: make(map[string]registeredObserver)}
}

func (r *observerRegistry) RegisterObserver(observer Observer, eventTypes ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := make(map[string]struct{}, len(eventTypes))
	for _, t := range eventTypes {
		set[t] = struct{}{}
	}
	r.observers[observer.ObserverID()] = registeredObserver{
		observer:   observer,
		eventTypes: set,
		info: ObserverInfo{
			ID:           observer.ObserverID(),
			EventTypes:   eventTypes,
			RegisteredAt: time.Now(),
		},
	}
	return nil
}

func (r *observerRegistry) UnregisterObserver(observer Observer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.observers, observer.ObserverID())
	return nil
}

func (r *observerRegistry) NotifyObservers(ctx context.Context, event cloudevents.Event) error {
	r.mu.RLock()
	targets := make([]registeredObserver, 0, len(r.observers))
	for _, ro := range r.observers {
		if len(ro.eventTypes) == 0 {
			targets = append(targets, ro)
			continue
		}
		if _, ok := ro.eventTypes[event.Type()]; ok {
			targets = append(targets, ro)
		}
	}
	r.mu.RUnlock()

	var firstErr error
	for _, ro := range targets {
		if err := ro.observer.OnEvent(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *observerRegistry) GetObservers() []ObserverInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ObserverInfo, 0, len(r.observers))
	for _, ro := range r.observers {
		out = append(out, ro.info)
	}
	return out
}
