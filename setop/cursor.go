// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package setop

import (
	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// Kind - which set operation a cursor performs
type Kind int

// the available operations
const (
	UnionKind Kind = iota
	IntersectionKind
	SymmetricDifferenceKind
	SubtractionKind
)

// String - conversion from fmt package
func (k Kind) String() string {
	switch k {
	case UnionKind:
		return "union"
	case IntersectionKind:
		return "intersection"
	case SymmetricDifferenceKind:
		return "symmetric-difference"
	case SubtractionKind:
		return "subtraction"
	default:
		return "invalid"
	}
}

// Cursor - the result of a set operation on two ascending cursors
type Cursor[K, V any] struct {
	kind    Kind
	a       avl.Ordered[K, V]
	b       avl.Ordered[K, V]
	compare func(a, b K) int

	current *avl.Entry[K, V]
	matched *avl.Entry[K, V]

	// inputs that supplied the current entry and must move on Next
	pendingA bool
	pendingB bool

	err error
}

// compile time check
var _ avl.Ordered[int, int] = (*Cursor[int, int])(nil)

// Union - every entry of both inputs in key order, on equal keys the
// entry from a comes first
func Union[K, V any](a, b avl.Ordered[K, V]) (*Cursor[K, V], error) {
	return New(UnionKind, a, b)
}

// Intersection - the entries of a whose key also occurs in b
//
// Matched gives the corresponding entry of b
func Intersection[K, V any](a, b avl.Ordered[K, V]) (*Cursor[K, V], error) {
	return New(IntersectionKind, a, b)
}

// SymmetricDifference - the entries of either input whose key does not
// occur in the other
func SymmetricDifference[K, V any](a, b avl.Ordered[K, V]) (*Cursor[K, V], error) {
	return New(SymmetricDifferenceKind, a, b)
}

// Subtraction - the entries of a whose key does not occur in b
func Subtraction[K, V any](a, b avl.Ordered[K, V]) (*Cursor[K, V], error) {
	return New(SubtractionKind, a, b)
}

// New - create a set operation cursor positioned at its first entry
func New[K, V any](kind Kind, a, b avl.Ordered[K, V]) (*Cursor[K, V], error) {
	switch kind {
	case UnionKind, IntersectionKind, SymmetricDifferenceKind, SubtractionKind:
	default:
		return nil, fault.ErrUnknownOperation
	}
	if nil == a || nil == b {
		return nil, fault.ErrInvalidStructPointer
	}
	if !a.Ascending() || !b.Ascending() {
		return nil, fault.ErrNotAscending
	}

	c := &Cursor[K, V]{
		kind:    kind,
		a:       a,
		b:       b,
		compare: a.Compare,
	}
	c.settle()
	return c, nil
}

// Kind - the operation this cursor performs
func (c *Cursor[K, V]) Kind() Kind {
	return c.kind
}

// More - true while there is a current entry
func (c *Cursor[K, V]) More() bool {
	return nil != c.current
}

// Next - move to the next result entry, no effect once exhausted
func (c *Cursor[K, V]) Next() {
	if nil == c.current {
		return
	}
	if c.pendingA {
		c.a.Next()
	}
	if c.pendingB {
		c.b.Next()
	}
	c.settle()
}

// Entry - the current entry, nil once exhausted
func (c *Cursor[K, V]) Entry() *avl.Entry[K, V] {
	return c.current
}

// Matched - for an intersection the entry of the second input with
// the same key as the current entry, otherwise nil
func (c *Cursor[K, V]) Matched() *avl.Entry[K, V] {
	return c.matched
}

// Key - key of the current entry, zero once exhausted
func (c *Cursor[K, V]) Key() K {
	if nil == c.current {
		var zero K
		return zero
	}
	return c.current.Key()
}

// Value - value of the current entry, zero once exhausted
func (c *Cursor[K, V]) Value() V {
	if nil == c.current {
		var zero V
		return zero
	}
	return c.current.Value()
}

// Err - the first error reported by either input
func (c *Cursor[K, V]) Err() error {
	return c.err
}

// Compare - the key comparison of the first input
func (c *Cursor[K, V]) Compare(a, b K) int {
	return c.compare(a, b)
}

// Ascending - always true
func (c *Cursor[K, V]) Ascending() bool {
	return true
}

// Collect - the remaining entries of a cursor and the error, if any,
// that stopped it
func Collect[K, V any](c avl.Cursor[K, V]) ([]*avl.Entry[K, V], error) {
	entries := []*avl.Entry[K, V]{}
	for ; c.More(); c.Next() {
		entries = append(entries, c.Entry())
	}
	return entries, c.Err()
}
