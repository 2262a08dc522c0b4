// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fwlist

import "github.com/emirpasic/gods/containers"

// containerView adapts a List to the gods container interface.
// It shares the list; it does not copy it.
type containerView[T any] struct {
	l *List[T]
}

var _ containers.Container = containerView[int]{}

// Container returns a view of l that implements gods' containers.Container,
// for use with gods helpers such as containers.GetSortedValues.
// Mutations through the view (Clear) apply to l.
func (l *List[T]) Container() containers.Container {
	return containerView[T]{l: l}
}

func (v containerView[T]) Empty() bool { return v.l.IsEmpty() }

func (v containerView[T]) Size() int { return v.l.GetSize() }

func (v containerView[T]) Clear() { v.l.Clear() }

func (v containerView[T]) Values() []interface{} {
	values := make([]interface{}, 0, v.l.size)
	for n := v.l.head.next; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func (v containerView[T]) String() string { return "ForwardList\n" + v.l.String() }
