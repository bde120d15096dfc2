// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - the first entry with the given key or nil
//
// for a multimap this is the lowest positioned entry of the run of
// equal keys so that repeated Next calls enumerate the whole run
func (tree *Map[K, V]) Find(key K) *Entry[K, V] {
	e := tree.ceiling(key)
	if nil == e || 0 != tree.compare(key, e.key) {
		return nil
	}
	return e
}

// FindOrNext - the first entry with the given key, or if there is
// none the entry with the next higher key
func (tree *Map[K, V]) FindOrNext(key K) *Entry[K, V] {
	return tree.ceiling(key)
}

// FindOrPrev - the first entry with the given key, or if there is
// none the entry with the next lower key
func (tree *Map[K, V]) FindOrPrev(key K) *Entry[K, V] {
	if e := tree.Find(key); nil != e {
		return e
	}
	return tree.below(key)
}

// Contains - true if at least one entry has the given key
func (tree *Map[K, V]) Contains(key K) bool {
	return nil != tree.Find(key)
}

// Count - number of entries with the given key
func (tree *Map[K, V]) Count(key K) int {
	n := 0
	for e := tree.Find(key); nil != e && 0 == tree.compare(key, e.key); e = e.Next() {
		n += 1
	}
	return n
}

// internal: lowest positioned entry with key >= the given key
func (tree *Map[K, V]) ceiling(key K) *Entry[K, V] {
	var found *Entry[K, V]
	for p := tree.root; nil != p; {
		if tree.compare(key, p.key) <= 0 {
			found = p
			p = p.node.Left()
		} else {
			p = p.node.Right()
		}
	}
	return found
}

// internal: highest positioned entry with key <= the given key
func (tree *Map[K, V]) floor(key K) *Entry[K, V] {
	var found *Entry[K, V]
	for p := tree.root; nil != p; {
		if tree.compare(key, p.key) >= 0 {
			found = p
			p = p.node.Right()
		} else {
			p = p.node.Left()
		}
	}
	return found
}

// internal: highest positioned entry with key < the given key
func (tree *Map[K, V]) below(key K) *Entry[K, V] {
	var found *Entry[K, V]
	for p := tree.root; nil != p; {
		if tree.compare(key, p.key) > 0 {
			found = p
			p = p.node.Right()
		} else {
			p = p.node.Left()
		}
	}
	return found
}

// internal: the last entry with the given key or nil
func (tree *Map[K, V]) findLast(key K) *Entry[K, V] {
	e := tree.floor(key)
	if nil == e || 0 != tree.compare(key, e.key) {
		return nil
	}
	return e
}
