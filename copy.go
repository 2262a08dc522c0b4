// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fwlist

// Value semantics.
//
// Copies never share nodes with their source. Assignment builds the whole
// replacement chain in a detached list before the target is touched, so
// self-assignment and failed copies leave the target intact.

// Clone returns an independent copy of l with equal values in equal order.
// Values are copied by Go assignment.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{}
	tail := &c.head
	for n := l.head.next; n != nil; n = n.next {
		tail = c.linkAfter(tail, n.value)
	}
	return c
}

// CloneFunc returns an independent copy of l whose values are produced by
// copyValue. If copyValue fails, the partially built chain is discarded and
// the error is returned wrapped with the failing index.
func (l *List[T]) CloneFunc(copyValue func(T) (T, error)) (*List[T], error) {
	if copyValue == nil {
		return nil, ErrNilConstructor
	}
	c := &List[T]{}
	tail := &c.head
	i := 0
	for n := l.head.next; n != nil; n = n.next {
		v, err := copyValue(n.value)
		if err != nil {
			c.Clear()
			return nil, wrapCopy(err, i)
		}
		tail = c.linkAfter(tail, v)
		i++
	}
	return c, nil
}

// Assign replaces the contents of l with a copy of src.
// Assigning a list to itself leaves it unchanged.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	tmp := src.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// AssignFunc replaces the contents of l with a copy of src whose values are
// produced by copyValue. On failure l is unchanged and the error is returned.
// Self-assignment runs copyValue over every element like any other source.
func (l *List[T]) AssignFunc(src *List[T], copyValue func(T) (T, error)) error {
	tmp, err := src.CloneFunc(copyValue)
	if err != nil {
		return err
	}
	l.Swap(tmp)
	tmp.Clear()
	return nil
}
