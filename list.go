// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fwlist

import "iter"

// List is a singly linked sequence of T.
//
// The sentinel node is embedded in the List and is the predecessor of the
// first element, so inserting or erasing "after a position" works the same
// at the front as anywhere else. The zero value is an empty list ready to use.
//
// A List must not be copied by value after first use: the copy would share
// the chain with the original. Use [List.Clone] or [List.Assign] for copies.
//
// List is not safe for concurrent use. Callers that share a List between
// goroutines must provide their own synchronization.
type List[T any] struct {
	noCopy noCopy
	head   node[T]
	size   int
}

// New returns a list holding values in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	tail := &l.head
	for _, v := range values {
		tail = l.linkAfter(tail, v)
	}
	return l
}

// FromSeq returns a list holding the values yielded by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	l.InsertAfterSeq(l.BeforeBegin(), seq)
	return l
}

// FromRange returns a list holding copies of the elements in the half-open
// range [first, last). last must be reachable from first.
// Use [Iterator.Const] to pass mutable positions.
func FromRange[T any](first, last ConstIterator[T]) *List[T] {
	l := &List[T]{}
	tail := &l.head
	for n := first.n; n != last.n; n = n.next {
		if n == nil {
			panicAdvance()
		}
		tail = l.linkAfter(tail, n.value)
	}
	return l
}

// GetSize returns the number of elements in l.
func (l *List[T]) GetSize() int { return l.size }

// IsEmpty reports whether l holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Front returns the first element.
// Panics if l is empty.
func (l *List[T]) Front() T {
	if l.head.next == nil {
		panicEmpty("Front")
	}
	return l.head.next.value
}

// TryFront returns (first element, true), or (zero, false) if l is empty.
func (l *List[T]) TryFront() (T, bool) {
	if l.head.next == nil {
		var zero T
		return zero, false
	}
	return l.head.next.value, true
}

// PushFront inserts v as the new first element and returns its position.
func (l *List[T]) PushFront(v T) Iterator[T] {
	return Iterator[T]{n: l.linkAfter(&l.head, v)}
}

// PopFront removes the first element.
// Panics if l is empty.
func (l *List[T]) PopFront() {
	if l.head.next == nil {
		panicEmpty("PopFront")
	}
	l.eraseAfter(&l.head)
}

// TryPopFront removes the first element and returns (element, true),
// or returns (zero, false) if l is empty.
func (l *List[T]) TryPopFront() (T, bool) {
	if l.head.next == nil {
		var zero T
		return zero, false
	}
	v := l.head.next.value
	l.eraseAfter(&l.head)
	return v, true
}

// InsertAfter inserts v immediately after pos and returns the position of
// the new element. pos may be [List.BeforeBegin] to insert at the front.
// Panics if pos is the end position.
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	prev := pos.nodeOf()
	if prev == nil {
		panicInsertAfter()
	}
	return Iterator[T]{n: l.linkAfter(prev, v)}
}

// InsertAfterSeq inserts the values yielded by seq after pos, in order, and
// returns the position of the last inserted element, or pos itself (as an
// [Iterator]) when seq yields nothing.
// Panics if pos is the end position.
func (l *List[T]) InsertAfterSeq(pos Position[T], seq iter.Seq[T]) Iterator[T] {
	tail := pos.nodeOf()
	if tail == nil {
		panicInsertAfter()
	}
	for v := range seq {
		tail = l.linkAfter(tail, v)
	}
	return Iterator[T]{n: tail}
}

// EraseAfter removes the element following pos and returns the position of
// the element after the removed one, which is the end position when the
// removed element was the last.
// Panics if pos is the end position or has no successor.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	prev := pos.nodeOf()
	if prev == nil || prev.next == nil {
		panicEraseAfter()
	}
	return Iterator[T]{n: l.eraseAfter(prev)}
}

// TryEraseAfter is the non-panicking variant of [List.EraseAfter].
// Returns (successor, true) on success, or (end, false) if pos is the end
// position or has no successor.
func (l *List[T]) TryEraseAfter(pos Position[T]) (Iterator[T], bool) {
	prev := pos.nodeOf()
	if prev == nil || prev.next == nil {
		return Iterator[T]{}, false
	}
	return Iterator[T]{n: l.eraseAfter(prev)}, true
}

// Clear removes every element. It is a no-op on an empty list.
//
// Each removed node is zeroed, so positions still held into the old chain
// reach neither values nor other nodes.
func (l *List[T]) Clear() {
	n := l.head.next
	l.head.next = nil
	l.size = 0
	for n != nil {
		next := n.next
		n.release()
		n = next
	}
}

// Swap exchanges the contents of l and other in constant time.
// No element is copied. Positions to elements move with their elements;
// each list keeps its own before-begin position.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of a and b in constant time.
func Swap[T any](a, b *List[T]) { a.Swap(b) }

// BeforeBegin returns the sentinel position preceding the first element.
// It must not be dereferenced.
func (l *List[T]) BeforeBegin() Iterator[T] { return Iterator[T]{n: &l.head} }

// Begin returns the position of the first element, or End if l is empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{n: l.head.next} }

// End returns the position one past the last element.
// It must not be dereferenced.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// CBeforeBegin is the read-only form of [List.BeforeBegin].
func (l *List[T]) CBeforeBegin() ConstIterator[T] { return ConstIterator[T]{n: &l.head} }

// CBegin is the read-only form of [List.Begin].
func (l *List[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{n: l.head.next} }

// CEnd is the read-only form of [List.End].
func (l *List[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{} }

// linkAfter allocates a node for v, splices it after prev and returns it.
// The node is fully built before prev is touched.
func (l *List[T]) linkAfter(prev *node[T], v T) *node[T] {
	n := &node[T]{value: v, next: prev.next}
	prev.next = n
	l.size++
	return n
}

// eraseAfter removes prev's successor and returns the node that follows it.
func (l *List[T]) eraseAfter(prev *node[T]) *node[T] {
	victim := unlinkAfter(prev)
	l.size--
	next := victim.next
	victim.release()
	return next
}
