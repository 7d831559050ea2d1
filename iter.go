//go:build go1.23

package fifo

import "iter"

// All returns an iterator over the elements of the queue from front
// to back without removing them. The queue must not be modified
// during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range q.slots[q.head:] {
			if !yield(*s) {
				return
			}
		}
	}
}

// All returns an iterator over the elements of the queue from front
// to back without removing them. The queue must not be modified
// during iteration.
func (q *SliceQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range q.vals {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over the elements of the queue from front
// to back without removing them. The queue must not be modified
// during iteration.
func (q *ListQueue[T]) All() iter.Seq[T] {
	return q.ls.All()
}
