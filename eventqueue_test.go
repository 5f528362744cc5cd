package pydesim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueue_PopOrdersByFireTimeThenID(t *testing.T) {
	q := NewEventQueue()
	e2 := &Event{ID: 2, FireTime: 5}
	e1 := &Event{ID: 1, FireTime: 5}
	e3 := &Event{ID: 3, FireTime: 1}
	q.Push(e2)
	q.Push(e1)
	q.Push(e3)

	got, err := q.PopNext()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), got.ID)

	got, err = q.PopNext()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.ID)

	got, err = q.PopNext()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.ID)

	_, err = q.PopNext()
	assert.True(t, errors.Is(err, ErrEmptyQueue))
}

func TestEventQueue_CancelSkipsOnPop(t *testing.T) {
	q := NewEventQueue()
	e1 := &Event{ID: 1, FireTime: 1}
	e2 := &Event{ID: 2, FireTime: 2}
	q.Push(e1)
	q.Push(e2)

	cancelled, ok := q.Cancel(1)
	require.True(t, ok)
	assert.Equal(t, e1, cancelled)
	assert.Equal(t, 1, q.Size())

	got, err := q.PopNext()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.ID)
}

func TestEventQueue_CancelUnknownIDIsNoop(t *testing.T) {
	q := NewEventQueue()
	_, ok := q.Cancel(999)
	assert.False(t, ok)
}

func TestEventQueue_CancelIsIdempotent(t *testing.T) {
	q := NewEventQueue()
	q.Push(&Event{ID: 1, FireTime: 1})

	_, ok := q.Cancel(1)
	assert.True(t, ok)
	_, ok = q.Cancel(1)
	assert.False(t, ok)
}

func TestEventQueue_SizeTracksLiveEvents(t *testing.T) {
	q := NewEventQueue()
	assert.True(t, q.Empty())
	q.Push(&Event{ID: 1, FireTime: 1})
	q.Push(&Event{ID: 2, FireTime: 2})
	assert.Equal(t, 2, q.Size())

	q.Cancel(1)
	assert.Equal(t, 1, q.Size())

	_, _ = q.PopNext()
	assert.Equal(t, 0, q.Size())
	assert.True(t, q.Empty())
}
