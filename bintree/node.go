// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

// Linker - a record that embeds a Node typed on its own pointer type
type Linker[T any] interface {
	comparable
	Links() *Node[T]
}

// Node - the three links of a binary tree node
type Node[T any] struct {
	parent T // zero for the root
	left   T // left sub-tree
	right  T // right sub-tree
}

// Parent - the parent node, zero at the root
func (n *Node[T]) Parent() T {
	return n.parent
}

// Left - the left child
func (n *Node[T]) Left() T {
	return n.left
}

// Right - the right child
func (n *Node[T]) Right() T {
	return n.right
}

// SetParent - overwrite the parent link
func (n *Node[T]) SetParent(p T) {
	n.parent = p
}

// SetLeft - overwrite the left link
func (n *Node[T]) SetLeft(l T) {
	n.left = l
}

// SetRight - overwrite the right link
func (n *Node[T]) SetRight(r T) {
	n.right = r
}

// Reset - clear all links
func (n *Node[T]) Reset() {
	var none T
	n.parent = none
	n.left = none
	n.right = none
}
