// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Check - verify the structural invariants of the whole tree
//
// parent links, key order, stored balance factors, the AVL height
// property and the entry count are all checked; the first violation
// found is returned as a fault.CorruptError
func (tree *Map[K, V]) Check() error {
	if nil != tree.root && nil != tree.root.node.Parent() {
		return fault.ErrCorruptParent
	}

	n, _, err := tree.check(tree.root, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCorruptSize
	}

	// links are sound so an inorder walk is safe
	var previous *Entry[K, V]
	for e := tree.First(); nil != e; e = e.Next() {
		if nil != previous {
			c := tree.compare(previous.key, e.key)
			if c > 0 || (0 == c && !tree.multiple) {
				return fault.ErrCorruptOrder
			}
		}
		previous = e
	}
	return nil
}

// internal: returns the count and height of the sub-tree at p
func (tree *Map[K, V]) check(p *Entry[K, V], up *Entry[K, V]) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if p.node.Parent() != up || tree != p.owner {
		return 0, 0, fault.ErrCorruptParent
	}

	ln, lh, err := tree.check(p.node.Left(), p)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := tree.check(p.node.Right(), p)
	if nil != err {
		return 0, 0, err
	}

	d := rh - lh
	if d < -1 || d > 1 {
		return 0, 0, fault.ErrCorruptHeight
	}
	if Balance(d) != p.balance {
		return 0, 0, fault.ErrCorruptBalance
	}

	h := lh
	if rh > h {
		h = rh
	}
	return 1 + ln + rn, 1 + h, nil
}
