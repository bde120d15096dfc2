// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/bintree"
	"github.com/bitmark-inc/avlmap/fault"
)

// Remove - unlink an entry from the map and return it detached
//
// entries are relinked rather than having keys and values copied
// between them, so the record returned is always the one passed in
// and other entries stay valid during iteration
func (tree *Map[K, V]) Remove(e *Entry[K, V]) (*Entry[K, V], error) {
	if nil == e || tree != e.owner {
		return nil, fault.ErrNotLinked
	}

	if nil != e.node.Left() && nil != e.node.Right() {
		tree.swapWithPredecessor(e)
	}

	// now at most one child
	child := e.node.Left()
	if nil == child {
		child = e.node.Right()
	}
	parent := e.node.Parent()
	fromLeft := nil != parent && e == parent.node.Left()

	tree.replace(e, child)
	if nil != parent {
		tree.rebalanceRemove(parent, fromLeft)
	}

	e.detach()
	tree.count -= 1
	tree.generation.Increment()

	return e, nil
}

// RemoveKey - remove the first entry with the given key
func (tree *Map[K, V]) RemoveKey(key K) (*Entry[K, V], error) {
	e := tree.Find(key)
	if nil == e {
		return nil, fault.ErrKeyNotFound
	}
	return tree.Remove(e)
}

// RemoveFirst - remove the entry with the lowest key, nil if empty
func (tree *Map[K, V]) RemoveFirst() *Entry[K, V] {
	e := tree.First()
	if nil == e {
		return nil
	}
	e, err := tree.Remove(e)
	fault.PanicIfError("avl: remove first", err)
	return e
}

// RemoveLast - remove the entry with the highest key, nil if empty
func (tree *Map[K, V]) RemoveLast() *Entry[K, V] {
	e := tree.Last()
	if nil == e {
		return nil
	}
	e, err := tree.Remove(e)
	fault.PanicIfError("avl: remove last", err)
	return e
}

// Clear - detach every entry, leaving an empty map
func (tree *Map[K, V]) Clear() {
	if nil == tree.root {
		return
	}

	// postorder so that each entry is detached only after everything
	// that is still to be visited has been reached through it
	for e := bintree.DeepestLeftLeaf(tree.root); nil != e; {
		next := bintree.NextPostorder(e)
		e.detach()
		e = next
	}
	tree.root = nil
	tree.count = 0
	tree.generation.Increment()
}

// internal: exchange the tree positions of e, which has two
// children, and its inorder predecessor, which has no right child
func (tree *Map[K, V]) swapWithPredecessor(e *Entry[K, V]) {
	r := bintree.Rightmost(e.node.Left())

	el := e.node.Left()
	er := e.node.Right()
	rl := r.node.Left()
	rp := r.node.Parent()

	tree.replace(e, r)

	if r == el {
		// adjacent: e becomes the left child of r
		r.node.SetLeft(e)
		e.node.SetParent(r)
	} else {
		rp.node.SetRight(e)
		e.node.SetParent(rp)
		r.node.SetLeft(el)
		el.node.SetParent(r)
	}
	r.node.SetRight(er)
	er.node.SetParent(r)

	e.node.SetLeft(rl)
	if nil != rl {
		rl.node.SetParent(e)
	}
	e.node.SetRight(nil)

	e.balance, r.balance = r.balance, e.balance
}

// internal: climb from the parent of a spliced out entry while the
// sub-tree height keeps shrinking
func (tree *Map[K, V]) rebalanceRemove(p *Entry[K, V], fromLeft bool) {
	for nil != p {
		top := p
		shrunk := true

		if fromLeft {
			// left branch has shrunk
			switch p.balance {
			case LeftHigher:
				p.balance = Balanced
			case Balanced:
				p.balance = RightHigher
				shrunk = false
			default: // right-higher, rebalance
				p1 := p.node.Right()
				switch p1.balance {
				case LeftHigher:
					top = tree.rotateRightLeft(p)
				case Balanced:
					top = tree.rotateLeft(p)
					p.balance = RightHigher
					p1.balance = LeftHigher
					shrunk = false
				default:
					top = tree.rotateLeft(p)
					p.balance = Balanced
					p1.balance = Balanced
				}
			}
		} else {
			// right branch has shrunk
			switch p.balance {
			case RightHigher:
				p.balance = Balanced
			case Balanced:
				p.balance = LeftHigher
				shrunk = false
			default: // left-higher, rebalance
				p1 := p.node.Left()
				switch p1.balance {
				case RightHigher:
					top = tree.rotateLeftRight(p)
				case Balanced:
					top = tree.rotateRight(p)
					p.balance = LeftHigher
					p1.balance = RightHigher
					shrunk = false
				default:
					top = tree.rotateRight(p)
					p.balance = Balanced
					p1.balance = Balanced
				}
			}
		}

		if !shrunk {
			return
		}
		p = top.node.Parent()
		if nil != p {
			fromLeft = top == p.node.Left()
		}
	}
}
