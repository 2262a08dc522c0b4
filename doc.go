// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fwlist provides a generic singly linked forward list.
//
// [List] supports constant-time insertion and removal at the front, and at
// any position given the position that precedes it. Traversal is forward
// only. Lists have value semantics through explicit copies and compare
// lexicographically.
//
// # Sentinel Design
//
// Every List embeds one sentinel node whose successor is the first element.
// Its position, [List.BeforeBegin], is a valid anchor for every "after"
// operation, so the front of the list needs no special case:
//
//	l.InsertAfter(l.BeforeBegin(), v) // same as l.PushFront(v)
//	l.EraseAfter(l.BeforeBegin())     // same as l.PopFront()
//
// The sentinel is never allocated on its own and never dereferenced.
//
// # Ownership
//
// Each node is owned by exactly one predecessor link. Positions are non-owning.
// Erased nodes are zeroed, so a stale position keeps neither a value nor the
// rest of the chain alive. A List must not be copied by value after first
// use; go vet reports such copies.
//
// # Construction
//
//   - [New]: Build from values, preserving order
//   - [FromSeq]: Build from an iter.Seq, preserving order
//   - [FromRange]: Copy the half-open range [first, last) of another list
//   - The zero value is an empty list
//
// # Value Semantics
//
//   - [List.Clone]: Independent deep copy
//   - [List.CloneFunc]: Deep copy through a fallible value copier
//   - [List.Assign]: Replace contents with a copy (self-assignment is a no-op)
//   - [List.AssignFunc]: Fallible assignment; the target is unchanged on failure
//   - [List.Swap], [Swap]: Exchange contents in constant time
//
// # Modifiers
//
//   - [List.PushFront], [List.PopFront], [List.TryPopFront]
//   - [List.InsertAfter], [List.InsertAfterSeq]
//   - [List.EraseAfter], [List.TryEraseAfter]
//   - [List.Clear]
//
// Fallible construction:
//
//   - [List.PushFrontFunc], [List.InsertAfterFunc]
//
// These build the value before linking anything. If the constructor returns an
// error or panics, the list is left exactly as it was. Errors are wrapped with
// github.com/pkg/errors; errors.Cause and errors.Is reach the original error.
//
// # Positions
//
// [Iterator] is a mutable position and [ConstIterator] a read-only one. Both
// satisfy [Position], so either can anchor an insert or erase.
// [Iterator.Const] converts to read-only. [Iterator.Equal] and
// [ConstIterator.Equal] compare by node identity across flavors.
//
//	for it := l.Begin(); it != l.End(); it = it.Next() {
//		it.Set(it.Value() + 1)
//	}
//
// Range-over-func forms:
//
//   - [List.All]: Read-only values
//   - [List.Positions]: Mutable positions
//
// # Comparison
//
//   - [Equal], [EqualFunc]: Same length and pairwise equal elements
//   - [Compare], [CompareFunc], [CompareBy]: Lexicographic; a proper prefix is less
//   - [Less], [LessOrEqual], [Greater], [GreaterOrEqual]
//
// [CompareBy] accepts a gods utils.Comparator, and [List.Container] exposes a
// list as a gods containers.Container.
//
// # Preconditions
//
// Misuse panics with a "fwlist: ..." message:
//
//   - [List.PopFront] or [List.Front] on an empty list
//   - Dereferencing or advancing the end position
//   - [List.InsertAfter] at the end position
//   - [List.EraseAfter] at a position with no successor
//
// Reading through [List.BeforeBegin] is not detected and is a contract
// violation. Passing a position that belongs to a different list is
// undefined behavior.
//
// # Concurrency
//
// A List is not safe for concurrent use and does no locking. No operation
// blocks.
package fwlist
