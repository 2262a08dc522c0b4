// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fwlist

// Position is the sealed interface shared by [Iterator] and [ConstIterator].
// Insert and erase operations accept either flavor as their anchor.
//
// Both implementations are a single pointer, so passing one as a Position
// does not allocate.
type Position[T any] interface {
	nodeOf() *node[T]
}

// Iterator is a mutable forward position in a [List].
//
// The zero Iterator and the one returned by [List.End] denote the end
// position. The position returned by [List.BeforeBegin] denotes the
// sentinel; it is valid only as an anchor for [List.InsertAfter] and
// [List.EraseAfter] and must not be dereferenced.
//
// Iterators are comparable with == within the same flavor. Use
// [Iterator.Equal] to compare across flavors.
type Iterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) nodeOf() *node[T] { return it.n }

// Value returns the element at it.
// Panics if it is the end position.
func (it Iterator[T]) Value() T {
	if it.n == nil {
		panicEnd()
	}
	return it.n.value
}

// Ptr returns a pointer to the element at it, valid until the element is erased.
// Panics if it is the end position.
func (it Iterator[T]) Ptr() *T {
	if it.n == nil {
		panicEnd()
	}
	return &it.n.value
}

// Set replaces the element at it.
// Panics if it is the end position.
func (it Iterator[T]) Set(v T) {
	if it.n == nil {
		panicEnd()
	}
	it.n.value = v
}

// Next returns the position following it.
// Panics if it is the end position.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		panicAdvance()
	}
	return Iterator[T]{n: it.n.next}
}

// Advance returns the position n steps after it.
// Panics if the walk would step past the end position.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	return Iterator[T]{n: advance(it.n, n)}
}

// IsEnd reports whether it is the end position.
func (it Iterator[T]) IsEnd() bool { return it.n == nil }

// Const returns the read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{n: it.n} }

// Equal reports whether it and p refer to the same node.
func (it Iterator[T]) Equal(p Position[T]) bool { return it.n == p.nodeOf() }

// ConstIterator is a read-only forward position in a [List].
// It has the same end and before-begin rules as [Iterator].
type ConstIterator[T any] struct {
	n *node[T]
}

func (it ConstIterator[T]) nodeOf() *node[T] { return it.n }

// Value returns the element at it.
// Panics if it is the end position.
func (it ConstIterator[T]) Value() T {
	if it.n == nil {
		panicEnd()
	}
	return it.n.value
}

// Next returns the position following it.
// Panics if it is the end position.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	if it.n == nil {
		panicAdvance()
	}
	return ConstIterator[T]{n: it.n.next}
}

// Advance returns the position n steps after it.
// Panics if the walk would step past the end position.
func (it ConstIterator[T]) Advance(n int) ConstIterator[T] {
	return ConstIterator[T]{n: advance(it.n, n)}
}

// IsEnd reports whether it is the end position.
func (it ConstIterator[T]) IsEnd() bool { return it.n == nil }

// Equal reports whether it and p refer to the same node.
func (it ConstIterator[T]) Equal(p Position[T]) bool { return it.n == p.nodeOf() }

func advance[T any](n *node[T], steps int) *node[T] {
	for range steps {
		if n == nil {
			panicAdvance()
		}
		n = n.next
	}
	return n
}
