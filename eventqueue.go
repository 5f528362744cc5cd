package pydesim

import "container/heap"

// EventQueue is a min-heap of *Event ordered by (FireTime, ID), with lazy
// cancellation via tombstones and an id-index for O(1) Cancel.
//
// The heap is never rewritten on cancellation: a cancelled entry is left
// in place and skipped when it eventually reaches the root. This keeps
// Cancel O(1) and Push at the ordinary O(log n) heap-insert cost.
type EventQueue struct {
	heap  eventHeap
	index map[uint64]*Event
}

// NewEventQueue returns an empty queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{index: make(map[uint64]*Event)}
	heap.Init(&q.heap)
	return q
}

// Push inserts event into the heap and its id into the index.
func (q *EventQueue) Push(event *Event) {
	heap.Push(&q.heap, event)
	q.index[event.ID] = event
}

// Size reports the count of non-tombstoned events currently queued.
func (q *EventQueue) Size() int {
	return len(q.index)
}

// Empty reports whether any live event remains.
func (q *EventQueue) Empty() bool {
	return len(q.index) == 0
}

// PopNext repeatedly pops the heap root, skipping tombstoned entries,
// until it finds a live event (which it removes from the index and
// returns) or the heap is exhausted, in which case it returns
// ErrEmptyQueue.
func (q *EventQueue) PopNext() (*Event, error) {
	for q.heap.Len() > 0 {
		ev := heap.Pop(&q.heap).(*Event)
		if ev.tombstone {
			continue
		}
		delete(q.index, ev.ID)
		return ev, nil
	}
	return nil, ErrEmptyQueue
}

// Cancel tombstones the event identified by id, if present and not
// already cancelled. Returns the event and true, or nil and false if the
// id is unknown (already fired or already cancelled) — this is never an
// error, per the idempotent cancellation contract.
func (q *EventQueue) Cancel(id uint64) (*Event, bool) {
	ev, ok := q.index[id]
	if !ok {
		return nil, false
	}
	ev.tombstone = true
	delete(q.index, id)
	return ev, true
}

// eventHeap implements heap.Interface over *Event, ordered by
// (FireTime, ID) exactly as the ordering contract requires.
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].FireTime != h[j].FireTime {
		return h[i].FireTime < h[j].FireTime
	}
	return h[i].ID < h[j].ID
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*Event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
