package datastructure

import (
	"github.com/pkg/errors"
)

type listNode[T any] struct {
	prev *listNode[T]
	next *listNode[T]
	// list is nil once the node has been erased or cleared.
	list  *DoublyLinkedList[T]
	value T
}

// DoublyLinkedList is a node-based sequence with O(1) insertion and removal
// at any position held by an iterator.
//
// The zero value is an empty list ready to use.
type DoublyLinkedList[T any] struct {
	head *listNode[T]
	tail *listNode[T]
	size int
}

// NewDoublyLinkedList returns an empty list.
func NewDoublyLinkedList[T any]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

func (l *DoublyLinkedList[T]) Len() int {
	return l.size
}

func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// linkBefore splices a new node holding v in front of mark. A nil mark
// appends at the tail.
func (l *DoublyLinkedList[T]) linkBefore(mark *listNode[T], v T) *listNode[T] {
	n := &listNode[T]{list: l, value: v, next: mark}
	if mark == nil {
		n.prev = l.tail
		if l.tail != nil {
			l.tail.next = n
		} else {
			l.head = n
		}
		l.tail = n
	} else {
		n.prev = mark.prev
		if mark.prev != nil {
			mark.prev.next = n
		} else {
			l.head = n
		}
		mark.prev = n
	}
	l.size++
	return n
}

// unlink removes n from the chain and returns the node that followed it.
func (l *DoublyLinkedList[T]) unlink(n *listNode[T]) *listNode[T] {
	next := n.next
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next, n.list = nil, nil, nil
	l.size--
	return next
}

// PushBack appends v at the end of the list.
func (l *DoublyLinkedList[T]) PushBack(v T) {
	l.linkBefore(nil, v)
}

// PushFront inserts v at the beginning of the list.
func (l *DoublyLinkedList[T]) PushFront(v T) {
	l.linkBefore(l.head, v)
}

// PopBack removes and returns the last element.
func (l *DoublyLinkedList[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, emptyError("PopBack")
	}
	v := l.tail.value
	l.unlink(l.tail)
	return v, nil
}

// PopFront removes and returns the first element.
func (l *DoublyLinkedList[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, emptyError("PopFront")
	}
	v := l.head.value
	l.unlink(l.head)
	return v, nil
}

func (l *DoublyLinkedList[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, emptyError("Front")
	}
	return l.head.value, nil
}

func (l *DoublyLinkedList[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, emptyError("Back")
	}
	return l.tail.value, nil
}

// Begin returns an iterator to the first element, or End() if the list is empty.
func (l *DoublyLinkedList[T]) Begin() ListIterator[T] {
	return ListIterator[T]{list: l, node: l.head}
}

// End returns the past-the-end sentinel. It is never dereferenced.
func (l *DoublyLinkedList[T]) End() ListIterator[T] {
	return ListIterator[T]{list: l}
}

// check verifies that pos belongs to l and has not been invalidated.
func (l *DoublyLinkedList[T]) check(op string, pos ListIterator[T]) error {
	if pos.list != l {
		return errors.Wrapf(ErrInvalidIterator, "%s: iterator belongs to another list", op)
	}
	if pos.node != nil && pos.node.list != l {
		return errors.Wrapf(ErrInvalidIterator, "%s: iterator refers to a removed element", op)
	}
	return nil
}

// Insert places v immediately before pos and returns an iterator to it.
// Inserting before End() appends.
func (l *DoublyLinkedList[T]) Insert(pos ListIterator[T], v T) (ListIterator[T], error) {
	if err := l.check("Insert", pos); err != nil {
		return l.End(), err
	}
	return ListIterator[T]{list: l, node: l.linkBefore(pos.node, v)}, nil
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it, or End() if pos was the last element.
func (l *DoublyLinkedList[T]) Erase(pos ListIterator[T]) (ListIterator[T], error) {
	if err := l.check("Erase", pos); err != nil {
		return l.End(), err
	}
	if pos.node == nil {
		return l.End(), errors.Wrap(ErrInvalidIterator, "Erase: cannot erase end()")
	}
	return ListIterator[T]{list: l, node: l.unlink(pos.node)}, nil
}

// Clear removes every element, unlinking each node. Linear in Len().
func (l *DoublyLinkedList[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next, n.list = nil, nil, nil
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

// Clone returns a copy of l with its own node chain.
func (l *DoublyLinkedList[T]) Clone() *DoublyLinkedList[T] {
	c := &DoublyLinkedList[T]{}
	for n := l.head; n != nil; n = n.next {
		c.linkBefore(nil, n.value)
	}
	return c
}

// Assign replaces the contents of l with a copy of src.
func (l *DoublyLinkedList[T]) Assign(src *DoublyLinkedList[T]) {
	if l == src {
		return
	}
	l.Clear()
	for n := src.head; n != nil; n = n.next {
		l.linkBefore(nil, n.value)
	}
}

// Range calls fn for each element from front to back until fn returns false.
func (l *DoublyLinkedList[T]) Range(fn func(v T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// Values returns the elements from front to back in a new slice.
func (l *DoublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// EqualList reports whether a and b hold equal elements in the same order.
func EqualList[T comparable](a, b *DoublyLinkedList[T]) bool {
	return EqualListFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualListFunc is like EqualList but compares elements with eq.
func EqualListFunc[T any](a, b *DoublyLinkedList[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	for x, y := a.head, b.head; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// ListIterator is a position in a DoublyLinkedList. It hides the node it
// refers to; a nil node is the End() sentinel.
type ListIterator[T any] struct {
	list *DoublyLinkedList[T]
	node *listNode[T]
}

// Next returns the following position. Advancing the last element yields
// End(); advancing End() stays at End().
func (it ListIterator[T]) Next() ListIterator[T] {
	if it.node != nil {
		it.node = it.node.next
	}
	return it
}

// Prev returns the preceding position. Prev of End() is the last element and
// Prev of the first element is End(), so reverse loops can start at
// End().Prev() and stop at End().
func (it ListIterator[T]) Prev() ListIterator[T] {
	if it.node == nil {
		if it.list != nil {
			it.node = it.list.tail
		}
		return it
	}
	it.node = it.node.prev
	return it
}

// Valid reports whether the iterator refers to a live element.
func (it ListIterator[T]) Valid() bool {
	return it.node != nil && it.node.list == it.list && it.list != nil
}

// Value returns the element at the iterator. It panics on End() or on an
// iterator whose element has been removed.
func (it ListIterator[T]) Value() T {
	if !it.Valid() {
		panic(errors.Wrap(ErrInvalidIterator, "ListIterator.Value"))
	}
	return it.node.value
}

// Set replaces the element at the iterator.
func (it ListIterator[T]) Set(v T) error {
	if !it.Valid() {
		return errors.Wrap(ErrInvalidIterator, "ListIterator.Set")
	}
	it.node.value = v
	return nil
}
