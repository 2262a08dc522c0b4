// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fwlist

// Fallible insertion with the strong guarantee.
//
// The value is constructed first and the node linked second. A constructor
// that returns an error or panics therefore leaves the list exactly as it
// was: no node is allocated, no link or count is touched. Errors come back
// wrapped; panics propagate unchanged.

// PushFrontFunc builds a value with construct and inserts it as the new
// first element. On failure l is unchanged and the wrapped error is returned.
func (l *List[T]) PushFrontFunc(construct func() (T, error)) (Iterator[T], error) {
	return l.InsertAfterFunc(l.BeforeBegin(), construct)
}

// InsertAfterFunc builds a value with construct and inserts it immediately
// after pos. On failure l is unchanged and the wrapped error is returned.
// Panics if pos is the end position, before construct is called.
func (l *List[T]) InsertAfterFunc(pos Position[T], construct func() (T, error)) (Iterator[T], error) {
	prev := pos.nodeOf()
	if prev == nil {
		panicInsertAfter()
	}
	if construct == nil {
		return Iterator[T]{}, ErrNilConstructor
	}
	v, err := construct()
	if err != nil {
		return Iterator[T]{}, wrapConstruct(err)
	}
	return Iterator[T]{n: l.linkAfter(prev, v)}, nil
}
