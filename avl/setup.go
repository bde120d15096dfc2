// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avlmap/bintree"
	"github.com/bitmark-inc/avlmap/counter"
	"github.com/bitmark-inc/avlmap/fault"
)

// Map - type to hold the root entry of a tree
type Map[K, V any] struct {
	root       *Entry[K, V]
	count      int
	multiple   bool
	compare    func(a, b K) int
	generation counter.Counter
}

// New - create an initially empty map that rejects duplicate keys
//
// compare must return a negative number, zero or a positive number
// when a is less than, equal to or greater than b
func New[K, V any](compare func(a, b K) int) *Map[K, V] {
	return newMap[K, V](compare, false)
}

// NewMulti - create an initially empty multimap
func NewMulti[K, V any](compare func(a, b K) int) *Map[K, V] {
	return newMap[K, V](compare, true)
}

// NewOrdered - create an initially empty map using the natural order
// of the key type
func NewOrdered[K constraints.Ordered, V any](multiple bool) *Map[K, V] {
	return newMap[K, V](Compare[K], multiple)
}

// Compare - three way comparison for ordered types
func Compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

func newMap[K, V any](compare func(a, b K) int, multiple bool) *Map[K, V] {
	if nil == compare {
		fault.Panicf("avl: %s", fault.ErrNilComparator)
	}
	return &Map[K, V]{
		root:     nil,
		count:    0,
		multiple: multiple,
		compare:  compare,
	}
}

// IsEmpty - true if map contains no entries
func (tree *Map[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Len - number of entries currently in the map
func (tree *Map[K, V]) Len() int {
	return tree.count
}

// IsMulti - true if equal keys are allowed
func (tree *Map[K, V]) IsMulti() bool {
	return tree.multiple
}

// Root - return the root entry of the tree
func (tree *Map[K, V]) Root() *Entry[K, V] {
	return tree.root
}

// Compare - apply the map's key comparison
func (tree *Map[K, V]) Compare(a, b K) int {
	return tree.compare(a, b)
}

// First - return the entry with the lowest key value
func (tree *Map[K, V]) First() *Entry[K, V] {
	if nil == tree.root {
		return nil
	}
	return bintree.Leftmost(tree.root)
}

// Last - return the entry with the highest key value
func (tree *Map[K, V]) Last() *Entry[K, V] {
	if nil == tree.root {
		return nil
	}
	return bintree.Rightmost(tree.root)
}

// internal: put replacement (possibly nil) where old is in the tree
func (tree *Map[K, V]) replace(old *Entry[K, V], replacement *Entry[K, V]) {
	p := old.node.Parent()
	if nil != replacement {
		replacement.node.SetParent(p)
	}
	switch {
	case nil == p:
		tree.root = replacement
	case old == p.node.Left():
		p.node.SetLeft(replacement)
	default:
		p.node.SetRight(replacement)
	}
}
