package fifo

// A SliceQueue is a FIFO queue backed directly by a slice. Enqueue
// appends, and Dequeue shifts every remaining element down by one,
// making it O(n). It is the simplest possible representation and is
// fine for short queues; see [Queue] for one that dequeues in
// amortized constant time.
//
// A zero value SliceQueue is ready to use. A SliceQueue must not be
// copied after first use, as the copies will share backing storage.
type SliceQueue[T any] struct {
	vals []T
}

// Enqueue adds v to the back of the queue.
func (q *SliceQueue[T]) Enqueue(v T) {
	q.vals = append(q.vals, v)
}

// Dequeue removes and returns the front element of the queue. It
// returns false if the queue is empty.
func (q *SliceQueue[T]) Dequeue() (v T, ok bool) {
	if len(q.vals) == 0 {
		return v, false
	}

	v = q.vals[0]
	n := copy(q.vals, q.vals[1:])
	clear(q.vals[n:])
	q.vals = q.vals[:n]
	return v, true
}

// Peek returns the front element of the queue without removing it. It
// returns false if the queue is empty.
func (q *SliceQueue[T]) Peek() (v T, ok bool) {
	if len(q.vals) == 0 {
		return v, false
	}
	return q.vals[0], true
}

// Len returns the number of elements in the queue.
func (q *SliceQueue[T]) Len() int {
	return len(q.vals)
}

// Empty reports whether the queue has no elements.
func (q *SliceQueue[T]) Empty() bool {
	return len(q.vals) == 0
}
