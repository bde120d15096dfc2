// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// The rotations only relink entries, balance factors are the
// responsibility of the caller except for the double rotations which
// derive them from the balance of the entry that ends on top.

// single RR rotation: the right child of p takes its place
func (tree *Map[K, V]) rotateLeft(p *Entry[K, V]) *Entry[K, V] {
	p1 := p.node.Right()
	b := p1.node.Left()

	p.node.SetRight(b)
	if nil != b {
		b.node.SetParent(p)
	}
	tree.replace(p, p1)
	p1.node.SetLeft(p)
	p.node.SetParent(p1)

	return p1
}

// single LL rotation: the left child of p takes its place
func (tree *Map[K, V]) rotateRight(p *Entry[K, V]) *Entry[K, V] {
	p1 := p.node.Left()
	b := p1.node.Right()

	p.node.SetLeft(b)
	if nil != b {
		b.node.SetParent(p)
	}
	tree.replace(p, p1)
	p1.node.SetRight(p)
	p.node.SetParent(p1)

	return p1
}

// double LR rotation: p is left-higher and its left child is
// right-higher, the right child of the left child takes p's place
func (tree *Map[K, V]) rotateLeftRight(p *Entry[K, V]) *Entry[K, V] {
	p1 := p.node.Left()
	p2 := p1.node.Right()

	tree.rotateLeft(p1)
	tree.rotateRight(p)

	if LeftHigher == p2.balance {
		p.balance = RightHigher
	} else {
		p.balance = Balanced
	}
	if RightHigher == p2.balance {
		p1.balance = LeftHigher
	} else {
		p1.balance = Balanced
	}
	p2.balance = Balanced

	return p2
}

// double RL rotation: p is right-higher and its right child is
// left-higher, the left child of the right child takes p's place
func (tree *Map[K, V]) rotateRightLeft(p *Entry[K, V]) *Entry[K, V] {
	p1 := p.node.Right()
	p2 := p1.node.Left()

	tree.rotateRight(p1)
	tree.rotateLeft(p)

	if RightHigher == p2.balance {
		p.balance = LeftHigher
	} else {
		p.balance = Balanced
	}
	if LeftHigher == p2.balance {
		p1.balance = RightHigher
	} else {
		p1.balance = Balanced
	}
	p2.balance = Balanced

	return p2
}
