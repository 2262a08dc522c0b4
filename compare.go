// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fwlist

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

// Equal reports whether a and b have the same length and pairwise equal
// elements in order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if x.value != y.value {
			return false
		}
	}
	return true
}

// EqualFunc is like [Equal] but compares elements with eq.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically, element by element.
// The first unequal pair decides; if one list is a prefix of the other, the
// shorter list is less. The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if r := cmp.Compare(x.value, y.value); r != 0 {
			return r
		}
	}
	return byLength(x == nil, y == nil)
}

// CompareFunc is like [Compare] but orders elements with c, which returns a
// negative number, zero or a positive number.
func CompareFunc[T, U any](a *List[T], b *List[U], c func(T, U) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if r := c(x.value, y.value); r != 0 {
			return sign(r)
		}
	}
	return byLength(x == nil, y == nil)
}

// CompareBy is like [Compare] but orders elements with a gods comparator,
// such as [utils.IntComparator] or [utils.StringComparator].
func CompareBy[T any](a, b *List[T], c utils.Comparator) int {
	return CompareFunc(a, b, func(x, y T) int { return c(x, y) })
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) < 0 }

// LessOrEqual reports whether a orders before b or equals it.
func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports whether a orders after b or equals it.
func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) >= 0 }

// byLength orders two lists whose common prefix is equal: the one that ran out
// first is less.
func byLength(aDone, bDone bool) int {
	switch {
	case aDone && bDone:
		return 0
	case aDone:
		return -1
	default:
		return +1
	}
}

func sign(r int) int {
	if r < 0 {
		return -1
	}
	return +1
}
