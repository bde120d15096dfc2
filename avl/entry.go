// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/bintree"
	"github.com/bitmark-inc/avlmap/fault"
)

// Balance - which sub-tree of an entry is higher
type Balance int8

// possible balance factors
const (
	LeftHigher  Balance = -1
	Balanced    Balance = 0
	RightHigher Balance = +1
)

// String - conversion from fmt package
func (b Balance) String() string {
	switch b {
	case LeftHigher:
		return "left-higher"
	case Balanced:
		return "balanced"
	case RightHigher:
		return "right-higher"
	default:
		return "invalid"
	}
}

// Entry - a caller owned record that can be linked into one Map
type Entry[K, V any] struct {
	node    bintree.Node[*Entry[K, V]]
	balance Balance
	key     K
	value   V
	owner   *Map[K, V] // nil while detached
}

// NewEntry - create a detached entry
func NewEntry[K, V any](key K, value V) *Entry[K, V] {
	return &Entry[K, V]{
		key:   key,
		value: value,
	}
}

// Links - tree links of the entry
//
// the links belong to the map the entry is linked in and must not be
// modified by the caller
func (e *Entry[K, V]) Links() *bintree.Node[*Entry[K, V]] {
	return &e.node
}

// Key - read the key from an entry
func (e *Entry[K, V]) Key() K {
	return e.key
}

// SetKey - change the key of a detached entry
func (e *Entry[K, V]) SetKey(key K) error {
	if nil != e.owner {
		return fault.ErrEntryLinked
	}
	e.key = key
	return nil
}

// Value - read the value from an entry
func (e *Entry[K, V]) Value() V {
	return e.value
}

// SetValue - overwrite the value, allowed while linked
func (e *Entry[K, V]) SetValue(value V) {
	e.value = value
}

// Balance - the stored balance factor
func (e *Entry[K, V]) Balance() Balance {
	return e.balance
}

// Linked - true if the entry is currently in a map
func (e *Entry[K, V]) Linked() bool {
	return nil != e.owner
}

// Next - given an entry, return the entry with the next highest
// position or nil if no more entries
func (e *Entry[K, V]) Next() *Entry[K, V] {
	return bintree.NextInorder(e)
}

// Prev - given an entry, return the entry with the next lowest
// position or nil if no more entries
func (e *Entry[K, V]) Prev() *Entry[K, V] {
	return bintree.PrevInorder(e)
}

// internal: return a removed entry to the detached state
func (e *Entry[K, V]) detach() {
	e.node.Reset()
	e.balance = Balanced
	e.owner = nil
}
