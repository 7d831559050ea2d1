// Package list provides a doubly-linked list with O(1) access to both
// ends. It underlies [deedles.dev/fifo.ListQueue] but is useful on
// its own wherever cheap removal from either end is needed.
package list

import "iter"

// A List is a doubly-linked list. It keeps references to both ends,
// so pushing to the back and popping from either end are all O(1).
//
// A zero value List is ready to use. A List must not be copied after
// first use.
type List[T any] struct {
	head, tail *node[T]
	len        int
}

type node[T any] struct {
	val        T
	prev, next *node[T]
}

// PushBack adds a new node containing v to the tail of the list.
func (ls *List[T]) PushBack(v T) {
	n := node[T]{val: v, prev: ls.tail}
	if ls.head == nil {
		ls.head = &n
		ls.tail = &n
	} else {
		ls.tail.next = &n
		ls.tail = &n
	}
	ls.len++
}

// PopFront removes the head node and returns its value. It returns
// false if the list is empty.
func (ls *List[T]) PopFront() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}

	n := ls.head
	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	} else {
		ls.head.prev = nil
	}
	n.next = nil
	ls.len--
	return n.val, true
}

// PopBack removes the tail node and returns its value. It returns
// false if the list is empty.
func (ls *List[T]) PopBack() (v T, ok bool) {
	if ls.tail == nil {
		return v, false
	}

	n := ls.tail
	if ls.head == ls.tail {
		ls.head = nil
		ls.tail = nil
	} else {
		ls.tail = n.prev
		ls.tail.next = nil
	}
	n.prev = nil
	ls.len--
	return n.val, true
}

// Front returns the value at the head of the list. It returns false
// if the list is empty.
func (ls *List[T]) Front() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.val, true
}

// Back returns the value at the tail of the list. It returns false if
// the list is empty.
func (ls *List[T]) Back() (v T, ok bool) {
	if ls.tail == nil {
		return v, false
	}
	return ls.tail.val, true
}

// Len returns the number of nodes in the list.
func (ls *List[T]) Len() int {
	return ls.len
}

// Empty reports whether the list has no nodes.
func (ls *List[T]) Empty() bool {
	return ls.len == 0
}

// All returns an iterator over the elements of the list from head to
// tail. The list must not be modified during iteration.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.val) {
				return
			}
			cur = cur.next
		}
	}
}
