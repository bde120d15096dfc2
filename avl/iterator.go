// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/bintree"
	"github.com/bitmark-inc/avlmap/fault"
)

// Order - the sequence an iterator follows
type Order int

// the available orders
const (
	Inorder Order = iota
	InorderBackward
	Preorder
	Postorder
	Levelorder
	LowerBound
	UpperBound
)

// String - conversion from fmt package
func (o Order) String() string {
	switch o {
	case Inorder:
		return "inorder"
	case InorderBackward:
		return "inorder-backward"
	case Preorder:
		return "preorder"
	case Postorder:
		return "postorder"
	case Levelorder:
		return "levelorder"
	case LowerBound:
		return "lower-bound"
	case UpperBound:
		return "upper-bound"
	default:
		return "invalid"
	}
}

// Cursor - a position in some sequence of entries
//
// typical use:
//
//	for it := tree.Inorder(); it.More(); it.Next() {
//		e := it.Entry()
//		...
//	}
//	if err := it.Err(); nil != err {
//		...
//	}
type Cursor[K, V any] interface {
	// More - true while there is a current entry
	More() bool

	// Next - advance to the next entry, no effect once exhausted
	Next()

	// Entry - the current entry, nil once exhausted
	Entry() *Entry[K, V]

	// Key - key of the current entry
	Key() K

	// Value - value of the current entry
	Value() V

	// Err - the reason the cursor stopped early, nil if it ran to
	// completion
	Err() error
}

// Ordered - a cursor whose keys never decrease
type Ordered[K, V any] interface {
	Cursor[K, V]

	// Compare - the key comparison of the underlying map
	Compare(a, b K) int

	// Ascending - true if the keys are visited in non-decreasing order
	Ascending() bool
}

// Iterator - a cursor over a single map
type Iterator[K, V any] struct {
	tree       *Map[K, V]
	current    *Entry[K, V]
	step       stepper[K, V]
	order      Order
	generation uint64
	err        error
}

// compile time check
var _ Ordered[int, int] = (*Iterator[int, int])(nil)

// Inorder - ascending key order
func (tree *Map[K, V]) Inorder() *Iterator[K, V] {
	return tree.newIterator(Inorder, tree.First(), inorderStep[K, V]{})
}

// InorderBackward - descending key order
func (tree *Map[K, V]) InorderBackward() *Iterator[K, V] {
	return tree.newIterator(InorderBackward, tree.Last(), inorderBackwardStep[K, V]{})
}

// Preorder - parents before children
func (tree *Map[K, V]) Preorder() *Iterator[K, V] {
	return tree.newIterator(Preorder, tree.root, preorderStep[K, V]{})
}

// Postorder - children before parents
func (tree *Map[K, V]) Postorder() *Iterator[K, V] {
	var first *Entry[K, V]
	if nil != tree.root {
		first = bintree.DeepestLeftLeaf(tree.root)
	}
	return tree.newIterator(Postorder, first, postorderStep[K, V]{})
}

// Levelorder - breadth first from the root
func (tree *Map[K, V]) Levelorder() *Iterator[K, V] {
	return tree.newIterator(Levelorder, tree.root, levelorderStep[K, V]{})
}

// LowerBound - the run of entries with the given key, starting with
// the first and moving forwards
func (tree *Map[K, V]) LowerBound(key K) *Iterator[K, V] {
	s := boundStep[K, V]{
		key:     key,
		compare: tree.compare,
		next:    bintree.NextInorder[*Entry[K, V]],
	}
	return tree.newIterator(LowerBound, tree.Find(key), s)
}

// UpperBound - the run of entries with the given key, starting with
// the last and moving backwards
func (tree *Map[K, V]) UpperBound(key K) *Iterator[K, V] {
	s := boundStep[K, V]{
		key:     key,
		compare: tree.compare,
		next:    bintree.PrevInorder[*Entry[K, V]],
	}
	return tree.newIterator(UpperBound, tree.findLast(key), s)
}

// Iterate - an iterator for any order that does not need a key
func (tree *Map[K, V]) Iterate(order Order) (*Iterator[K, V], error) {
	switch order {
	case Inorder:
		return tree.Inorder(), nil
	case InorderBackward:
		return tree.InorderBackward(), nil
	case Preorder:
		return tree.Preorder(), nil
	case Postorder:
		return tree.Postorder(), nil
	case Levelorder:
		return tree.Levelorder(), nil
	default:
		return nil, fault.ErrInvalidOrder
	}
}

// Walk - call fn for each entry in the given order until it returns
// false
func (tree *Map[K, V]) Walk(order Order, fn func(*Entry[K, V]) bool) error {
	it, err := tree.Iterate(order)
	if nil != err {
		return err
	}
	for ; it.More(); it.Next() {
		if !fn(it.Entry()) {
			return nil
		}
	}
	return it.Err()
}

func (tree *Map[K, V]) newIterator(order Order, first *Entry[K, V], s stepper[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{
		tree:       tree,
		current:    first,
		step:       s,
		order:      order,
		generation: tree.generation.Uint64(),
	}
}

// More - true while there is a current entry
func (it *Iterator[K, V]) More() bool {
	it.validate()
	return nil != it.current
}

// Next - advance according to the iterator's order
func (it *Iterator[K, V]) Next() {
	if !it.validate() {
		return
	}
	it.current = it.step.advance(it.current)
}

// Entry - the current entry, nil once exhausted
func (it *Iterator[K, V]) Entry() *Entry[K, V] {
	return it.current
}

// Key - key of the current entry, zero once exhausted
func (it *Iterator[K, V]) Key() K {
	if nil == it.current {
		var zero K
		return zero
	}
	return it.current.key
}

// Value - value of the current entry, zero once exhausted
func (it *Iterator[K, V]) Value() V {
	if nil == it.current {
		var zero V
		return zero
	}
	return it.current.value
}

// Err - fault.ErrMapModified if the map changed under the iterator
func (it *Iterator[K, V]) Err() error {
	return it.err
}

// Order - the sequence this iterator follows
func (it *Iterator[K, V]) Order() Order {
	return it.order
}

// Compare - the key comparison of the iterated map
func (it *Iterator[K, V]) Compare(a, b K) int {
	return it.tree.compare(a, b)
}

// Ascending - true for inorder and for the bound iterators, whose
// keys are all equal
func (it *Iterator[K, V]) Ascending() bool {
	switch it.order {
	case Inorder, LowerBound, UpperBound:
		return true
	default:
		return false
	}
}

// internal: terminate if the map was modified since creation
func (it *Iterator[K, V]) validate() bool {
	if nil == it.current {
		return false
	}
	if it.tree.generation.Changed(it.generation) {
		it.current = nil
		it.err = fault.ErrMapModified
		return false
	}
	return true
}

// stepper - how an iterator moves from one entry to the next
type stepper[K, V any] interface {
	advance(e *Entry[K, V]) *Entry[K, V]
}

type inorderStep[K, V any] struct{}

func (inorderStep[K, V]) advance(e *Entry[K, V]) *Entry[K, V] {
	return bintree.NextInorder(e)
}

type inorderBackwardStep[K, V any] struct{}

func (inorderBackwardStep[K, V]) advance(e *Entry[K, V]) *Entry[K, V] {
	return bintree.PrevInorder(e)
}

type preorderStep[K, V any] struct{}

func (preorderStep[K, V]) advance(e *Entry[K, V]) *Entry[K, V] {
	return bintree.NextPreorder(e)
}

type postorderStep[K, V any] struct{}

func (postorderStep[K, V]) advance(e *Entry[K, V]) *Entry[K, V] {
	return bintree.NextPostorder(e)
}

type levelorderStep[K, V any] struct{}

func (levelorderStep[K, V]) advance(e *Entry[K, V]) *Entry[K, V] {
	return bintree.NextLevelorder(e)
}

// walks in one direction while the key stays equal to the bound
type boundStep[K, V any] struct {
	key     K
	compare func(a, b K) int
	next    func(*Entry[K, V]) *Entry[K, V]
}

func (s boundStep[K, V]) advance(e *Entry[K, V]) *Entry[K, V] {
	n := s.next(e)
	if nil == n || 0 != s.compare(s.key, n.key) {
		return nil
	}
	return n
}
