// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fwlist

import (
	"fmt"
	"iter"
	"strings"
)

// All returns an iterator over the elements of l, in order.
// Ranging does not consume the list; each call starts from the front.
//
// The successor is read before yield is called, so the body may erase the
// element it was handed through a position it already holds, but must not
// erase the one after it.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; {
			next := n.next
			if !yield(n.value) {
				return
			}
			n = next
		}
	}
}

// Positions returns an iterator over mutable positions of l, in order.
//
//	for it := range l.Positions() {
//		*it.Ptr() *= 2
//	}
func (l *List[T]) Positions() iter.Seq[Iterator[T]] {
	return func(yield func(Iterator[T]) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(Iterator[T]{n: n}) {
				return
			}
		}
	}
}

// Slice returns the elements of l in a new slice.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}

// String formats l like a slice, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.value)
	}
	b.WriteByte(']')
	return b.String()
}
