package fifo

import "deedles.dev/fifo/list"

// A ListQueue is a FIFO queue backed by a doubly-linked list. Both
// Enqueue and Dequeue are O(1) with no bookkeeping, at the cost of
// one allocation per element and per-node link overhead compared to
// the slice-backed queues.
//
// A zero value ListQueue is ready to use. A ListQueue must not be
// copied after first use.
type ListQueue[T any] struct {
	ls list.List[T]
}

// Enqueue adds v to the back of the queue.
func (q *ListQueue[T]) Enqueue(v T) {
	q.ls.PushBack(v)
}

// Dequeue removes and returns the front element of the queue. It
// returns false if the queue is empty.
func (q *ListQueue[T]) Dequeue() (T, bool) {
	return q.ls.PopFront()
}

// Peek returns the front element of the queue without removing it. It
// returns false if the queue is empty.
func (q *ListQueue[T]) Peek() (T, bool) {
	return q.ls.Front()
}

// Len returns the number of elements in the queue.
func (q *ListQueue[T]) Len() int {
	return q.ls.Len()
}

// Empty reports whether the queue has no elements.
func (q *ListQueue[T]) Empty() bool {
	return q.ls.Empty()
}
