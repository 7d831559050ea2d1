// Package fifo provides first-in-first-out queues backed by several
// different representations. All of them share the same contract,
// described by [Interface]: elements come back out in the order they
// went in, and operations on an empty queue report the absence of a
// value instead of panicking or returning an error.
//
// None of the types in this package are safe for concurrent use. A
// caller that shares a queue between goroutines must provide its own
// synchronization.
package fifo

// Interface is the contract shared by the queue implementations in
// this package. Dequeue and Peek return false if the queue is empty.
type Interface[T any] interface {
	Enqueue(v T)
	Dequeue() (T, bool)
	Peek() (T, bool)
	Len() int
	Empty() bool
}
