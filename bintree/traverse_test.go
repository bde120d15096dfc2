// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/bintree"
)

type item struct {
	node  bintree.Node[*item]
	value int
}

func (i *item) Links() *bintree.Node[*item] {
	return &i.node
}

// build:
//
//	        1
//	     /     \
//	    2       3
//	   / \       \
//	  4   5       7
//	     / \       \
//	    10  11      15
func sampleTree() (*item, map[int]*item) {
	nodes := make(map[int]*item)
	for _, v := range []int{1, 2, 3, 4, 5, 7, 10, 11, 15} {
		nodes[v] = &item{value: v}
	}
	link := func(parent int, child int, left bool) {
		p := nodes[parent]
		c := nodes[child]
		if left {
			p.node.SetLeft(c)
		} else {
			p.node.SetRight(c)
		}
		c.node.SetParent(p)
	}
	link(1, 2, true)
	link(1, 3, false)
	link(2, 4, true)
	link(2, 5, false)
	link(5, 10, true)
	link(5, 11, false)
	link(3, 7, false)
	link(7, 15, false)
	return nodes[1], nodes
}

func walk(start *item, step func(*item) *item) []int {
	values := []int{}
	for n := start; nil != n; n = step(n) {
		values = append(values, n.value)
	}
	return values
}

func TestExtremes(t *testing.T) {
	root, nodes := sampleTree()

	assert.Equal(t, 4, bintree.Leftmost(root).value, "wrong leftmost")
	assert.Equal(t, 15, bintree.Rightmost(root).value, "wrong rightmost")
	assert.Equal(t, 10, bintree.Leftmost(nodes[5]).value, "wrong sub-tree leftmost")
	assert.Equal(t, 4, bintree.DeepestLeftLeaf(root).value, "wrong deepest left leaf")
	assert.Equal(t, 15, bintree.DeepestLeftLeaf(nodes[3]).value, "wrong deepest left leaf of right spine")
	assert.Equal(t, 10, bintree.DeepestLeftLeaf(nodes[5]).value, "wrong deepest left leaf of sub-tree")
}

func TestInorder(t *testing.T) {
	root, _ := sampleTree()

	forward := walk(bintree.Leftmost(root), bintree.NextInorder[*item])
	assert.Equal(t, []int{4, 2, 10, 5, 11, 1, 3, 7, 15}, forward, "wrong inorder")

	backward := walk(bintree.Rightmost(root), bintree.PrevInorder[*item])
	assert.Equal(t, []int{15, 7, 3, 1, 11, 5, 10, 2, 4}, backward, "wrong backward inorder")
}

func TestPreorder(t *testing.T) {
	root, _ := sampleTree()

	values := walk(root, bintree.NextPreorder[*item])
	assert.Equal(t, []int{1, 2, 4, 5, 10, 11, 3, 7, 15}, values, "wrong preorder")
}

func TestPostorder(t *testing.T) {
	root, _ := sampleTree()

	values := walk(bintree.DeepestLeftLeaf(root), bintree.NextPostorder[*item])
	assert.Equal(t, []int{4, 10, 11, 5, 2, 15, 7, 3, 1}, values, "wrong postorder")
}

func TestLevelorder(t *testing.T) {
	root, _ := sampleTree()

	values := walk(root, bintree.NextLevelorder[*item])
	assert.Equal(t, []int{1, 2, 3, 4, 5, 7, 10, 11, 15}, values, "wrong level order")
}

func TestSingleNode(t *testing.T) {
	n := &item{value: 99}

	assert.Equal(t, n, bintree.Leftmost(n), "leftmost of single node")
	assert.Equal(t, n, bintree.Rightmost(n), "rightmost of single node")
	assert.Equal(t, n, bintree.DeepestLeftLeaf(n), "deepest left leaf of single node")
	assert.Nil(t, bintree.NextInorder(n), "inorder continued")
	assert.Nil(t, bintree.PrevInorder(n), "backward inorder continued")
	assert.Nil(t, bintree.NextPreorder(n), "preorder continued")
	assert.Nil(t, bintree.NextPostorder(n), "postorder continued")
	assert.Nil(t, bintree.NextLevelorder(n), "level order continued")
}

func TestShape(t *testing.T) {
	root, nodes := sampleTree()

	assert.Equal(t, root, bintree.Root(nodes[11]), "wrong root")
	assert.Equal(t, 0, bintree.Depth(root), "wrong root depth")
	assert.Equal(t, 3, bintree.Depth(nodes[15]), "wrong leaf depth")
	assert.Equal(t, 4, bintree.Height(root), "wrong height")
	assert.Equal(t, 0, bintree.Height[*item](nil), "wrong empty height")
	assert.Equal(t, 9, bintree.Count(root), "wrong count")
	assert.Equal(t, 3, bintree.Count(nodes[5]), "wrong sub-tree count")
}

func TestReset(t *testing.T) {
	_, nodes := sampleTree()

	n := nodes[5]
	n.node.Reset()
	assert.Nil(t, n.node.Parent(), "parent not cleared")
	assert.Nil(t, n.node.Left(), "left not cleared")
	assert.Nil(t, n.node.Right(), "right not cleared")
}
