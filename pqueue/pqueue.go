/*
Package pqueue implements a min-priority queue with an explicit ordering
function.

Elements comparing equal under the ordering function are removed in the order
they have been pushed. This makes the removal order deterministic for any
sequence of pushes, independent of heap internals.
*/
package pqueue

import "container/heap"

// Queue is a min-priority queue over elements of type T.
// The zero value is not usable; create queues with New.
type Queue[T any] struct {
	h entries[T]
}

type entry[T any] struct {
	value T
	seq   uint64 // insertion sequence number, used to break ties
}

// entries implements heap.Interface.
type entries[T any] struct {
	items   []entry[T]
	less    func(a, b T) bool
	nextSeq uint64
}

// New creates an empty queue. less(a, b) must report whether a has to be
// removed before b.
func New[T any](less func(a, b T) bool) *Queue[T] {
	if less == nil {
		panic("pqueue: ordering function may not be nil")
	}
	return &Queue[T]{h: entries[T]{less: less}}
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return len(q.h.items)
}

// Push inserts x.
func (q *Queue[T]) Push(x T) {
	heap.Push(&q.h, x)
}

// Pop removes and returns the least element. ok is false if q is empty.
func (q *Queue[T]) Pop() (x T, ok bool) {
	if len(q.h.items) == 0 {
		return x, false
	}
	return heap.Pop(&q.h).(T), true
}

// Peek returns the least element without removing it.
func (q *Queue[T]) Peek() (x T, ok bool) {
	if len(q.h.items) == 0 {
		return x, false
	}
	return q.h.items[0].value, true
}

func (h entries[T]) Len() int { return len(h.items) }

func (h entries[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.value, b.value) {
		return true
	}
	if h.less(b.value, a.value) {
		return false
	}
	return a.seq < b.seq
}

func (h entries[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entries[T]) Push(x any) {
	h.items = append(h.items, entry[T]{value: x.(T), seq: h.nextSeq})
	h.nextSeq++
}

func (h *entries[T]) Pop() any {
	n := len(h.items)
	e := h.items[n-1]
	var zero entry[T]
	h.items[n-1] = zero // do not retain popped values
	h.items = h.items[:n-1]
	return e.value
}
