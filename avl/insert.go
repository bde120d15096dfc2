// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Insert - link a detached entry into the map
//
// in unique key mode an entry whose key is already present is not
// linked and fault.ErrKeyExists is returned, the map is unchanged
func (tree *Map[K, V]) Insert(e *Entry[K, V]) error {
	if nil != e.owner {
		return fault.ErrEntryLinked
	}

	var parent *Entry[K, V]
	left := false
	for p := tree.root; nil != p; {
		c := tree.compare(e.key, p.key)
		if 0 == c && !tree.multiple {
			return fault.ErrKeyExists
		}
		parent = p
		if c < 0 {
			left = true
			p = p.node.Left()
		} else {
			left = false
			p = p.node.Right()
		}
	}

	e.node.Reset()
	e.node.SetParent(parent)
	e.balance = Balanced
	e.owner = tree

	tree.count += 1
	tree.generation.Increment()

	switch {
	case nil == parent:
		tree.root = e
		return nil
	case left:
		parent.node.SetLeft(e)
	default:
		parent.node.SetRight(e)
	}

	tree.rebalanceInsert(e)
	return nil
}

// internal: climb from a newly linked entry whose sub-tree has grown
func (tree *Map[K, V]) rebalanceInsert(child *Entry[K, V]) {
	for p := child.node.Parent(); nil != p; child, p = p, p.node.Parent() {
		if child == p.node.Left() {
			// left branch has grown
			switch p.balance {
			case RightHigher:
				p.balance = Balanced
				return
			case Balanced:
				p.balance = LeftHigher
			default: // left-higher, rebalance
				if LeftHigher == child.balance {
					tree.rotateRight(p)
					p.balance = Balanced
					child.balance = Balanced
				} else {
					tree.rotateLeftRight(p)
				}
				return
			}
		} else {
			// right branch has grown
			switch p.balance {
			case LeftHigher:
				p.balance = Balanced
				return
			case Balanced:
				p.balance = RightHigher
			default: // right-higher, rebalance
				if RightHigher == child.balance {
					tree.rotateLeft(p)
					p.balance = Balanced
					child.balance = Balanced
				} else {
					tree.rotateRightLeft(p)
				}
				return
			}
		}
	}
}
