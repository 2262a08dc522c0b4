// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fwlist

// node is one link of the chain. Each node is reachable from exactly one
// predecessor next link: the sentinel for the first element, the previous
// node otherwise. Positions hold *node values but never own them.
type node[T any] struct {
	value T
	next  *node[T]
}

// release zeroes n so that a position still pointing at it keeps neither
// the value nor the rest of the chain alive.
func (n *node[T]) release() {
	var zero T
	n.value = zero
	n.next = nil
}

// unlinkAfter detaches and returns the successor of prev.
// The caller guarantees prev.next != nil.
func unlinkAfter[T any](prev *node[T]) *node[T] {
	victim := prev.next
	prev.next = victim.next
	return victim
}

// noCopy may be embedded into structs which must not be copied after first
// use. The sentinel lives inside List, so a copied List would share the
// original chain. See go vet's copylocks checker.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Precondition failures. Extracted as noinline functions so that the
// position accessors and the list fast paths remain inlineable.

//go:noinline
func panicEnd() {
	panic("fwlist: dereference of end position")
}

//go:noinline
func panicAdvance() {
	panic("fwlist: advance past end position")
}

//go:noinline
func panicEmpty(op string) {
	panic("fwlist: " + op + " on empty list")
}

//go:noinline
func panicEraseAfter() {
	panic("fwlist: EraseAfter at position without successor")
}

//go:noinline
func panicInsertAfter() {
	panic("fwlist: InsertAfter at end position")
}
