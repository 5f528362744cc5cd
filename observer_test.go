package pydesim

import (
	"context"
	"testing"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernel_EmitsScheduledAndDispatchedEvents(t *testing.T) {
	k := NewKernel(NopLogger{})
	sim := &Simulator{kernel: k}

	var seen []string
	obs := NewFunctionalObserver("trace", func(ctx context.Context, event cloudevents.Event) error {
		seen = append(seen, event.Type())
		return nil
	})
	require.NoError(t, k.RegisterObserver(obs))

	_, err := k.Schedule(1, Free(func(*Simulator, []any, map[string]any) {}), nil, nil)
	require.NoError(t, err)
	require.NoError(t, k.Run(sim, nil, nil))

	assert.Contains(t, seen, EventTypeScheduled)
	assert.Contains(t, seen, EventTypeDispatched)
	assert.Contains(t, seen, EventTypeRunStarted)
	assert.Contains(t, seen, EventTypeRunEnded)
}

func TestKernel_EmitsCancelledAndStoppedEvents(t *testing.T) {
	k := NewKernel(NopLogger{})
	sim := &Simulator{kernel: k}

	var seen []string
	obs := NewFunctionalObserver("trace", func(ctx context.Context, event cloudevents.Event) error {
		seen = append(seen, event.Type())
		return nil
	})
	require.NoError(t, k.RegisterObserver(obs))

	id, err := k.Schedule(1, Free(func(*Simulator, []any, map[string]any) {}), nil, nil)
	require.NoError(t, err)
	k.Cancel(id)
	assert.Contains(t, seen, EventTypeCancelled)

	k.Setup(0.5)
	_, err = k.Schedule(1, Free(func(*Simulator, []any, map[string]any) {}), nil, nil)
	require.NoError(t, err)
	require.NoError(t, k.Run(sim, nil, nil))
	assert.Contains(t, seen, EventTypeStopped)
}

func TestObserverRegistry_UnregisterStopsNotifications(t *testing.T) {
	k := NewKernel(NopLogger{})
	var calls int
	obs := NewFunctionalObserver("o", func(ctx context.Context, event cloudevents.Event) error {
		calls++
		return nil
	})
	require.NoError(t, k.RegisterObserver(obs))
	require.NoError(t, k.UnregisterObserver(obs))

	_, err := k.Schedule(1, Free(func(*Simulator, []any, map[string]any) {}), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
}
