package fifo

// Compaction fires only once the backing slice is longer than
// compactMinLen and more than compactMaxWaste of it is dead prefix.
// Both conditions are required: without the length floor, a small
// queue would compact over and over for no benefit.
const (
	compactMinLen   = 20
	compactMaxWaste = 0.25
)

// A Queue is a FIFO queue backed by a slice of optional slots and a
// cursor marking the logical front. Enqueue appends to the slice, and
// Dequeue clears the front slot and advances the cursor instead of
// shifting the remaining elements, making both amortized O(1). The
// dead prefix left behind by dequeues is reclaimed in bulk once it
// grows past a threshold.
//
// A zero value Queue is ready to use. A Queue must not be copied
// after first use, as the copies will share backing storage.
type Queue[T any] struct {
	slots []*T
	head  int
}

// Enqueue adds v to the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.slots = append(q.slots, &v)
}

// Dequeue removes and returns the front element of the queue. It
// returns false if the queue is empty.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q.head >= len(q.slots) || q.slots[q.head] == nil {
		return v, false
	}

	v = *q.slots[q.head]
	q.slots[q.head] = nil
	q.head++

	waste := float64(q.head) / float64(len(q.slots))
	if len(q.slots) > compactMinLen && waste > compactMaxWaste {
		q.compact()
	}

	return v, true
}

// compact shifts the live elements down to the start of the backing
// slice and resets the cursor. Everything observable about the queue
// is unchanged.
func (q *Queue[T]) compact() {
	n := copy(q.slots, q.slots[q.head:])
	clear(q.slots[n:])
	q.slots = q.slots[:n]
	q.head = 0
}

// Peek returns the front element of the queue without removing it. It
// returns false if the queue is empty.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.head >= len(q.slots) {
		return v, false
	}
	return *q.slots[q.head], true
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return len(q.slots) - q.head
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}
