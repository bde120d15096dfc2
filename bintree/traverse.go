// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

// Leftmost - lowest node in a sub-tree
func Leftmost[T Linker[T]](n T) T {
	var none T
	for l := n.Links().left; l != none; l = n.Links().left {
		n = l
	}
	return n
}

// Rightmost - highest node in a sub-tree
func Rightmost[T Linker[T]](n T) T {
	var none T
	for r := n.Links().right; r != none; r = n.Links().right {
		n = r
	}
	return n
}

// DeepestLeftLeaf - the first node of a postorder walk of a sub-tree
//
// descend left as far as possible, then right once if possible and
// repeat until a leaf is reached
func DeepestLeftLeaf[T Linker[T]](n T) T {
	var none T
	for {
		links := n.Links()
		if none != links.left {
			n = links.left
		} else if none != links.right {
			n = links.right
		} else {
			return n
		}
	}
}

// NextInorder - the node with the next highest position or zero if
// no more nodes
func NextInorder[T Linker[T]](n T) T {
	var none T
	if r := n.Links().right; none != r {
		return Leftmost(r)
	}
	for p := n.Links().parent; none != p; n, p = p, p.Links().parent {
		if p.Links().left == n {
			return p
		}
	}
	return none
}

// PrevInorder - the node with the next lowest position or zero if no
// more nodes
func PrevInorder[T Linker[T]](n T) T {
	var none T
	if l := n.Links().left; none != l {
		return Rightmost(l)
	}
	for p := n.Links().parent; none != p; n, p = p, p.Links().parent {
		if p.Links().right == n {
			return p
		}
	}
	return none
}

// NextPreorder - parent before children, left before right
func NextPreorder[T Linker[T]](n T) T {
	var none T
	links := n.Links()
	if none != links.left {
		return links.left
	}
	if none != links.right {
		return links.right
	}

	// climb to the nearest ancestor with an unvisited right sub-tree
	for p := links.parent; none != p; n, p = p, p.Links().parent {
		if pl := p.Links(); pl.left == n && none != pl.right {
			return pl.right
		}
	}
	return none
}

// NextPostorder - children before parent, left before right
//
// start from DeepestLeftLeaf of the root
func NextPostorder[T Linker[T]](n T) T {
	var none T
	p := n.Links().parent
	if none == p {
		return none
	}
	if pl := p.Links(); none != pl.right && n != pl.right {
		return DeepestLeftLeaf(pl.right)
	}
	return p
}

// NextLevelorder - breadth first, left to right within a level
//
// No queue is kept: climb from the node counting levels and at each
// ancestor that was reached from its left side look for the leftmost
// node at the original depth in its right sub-tree.  If there is
// none the level is finished and the walk restarts from the root one
// level deeper.
func NextLevelorder[T Linker[T]](n T) T {
	var none T
	up := 0
	c := n
	for p := c.Links().parent; none != p; c, p = p, p.Links().parent {
		up += 1
		if pl := p.Links(); pl.left == c && none != pl.right {
			if r := firstAtDepth(pl.right, up-1); none != r {
				return r
			}
		}
	}

	// c is now the root and up is the depth of n
	return firstAtDepth(c, up+1)
}

// internal: leftmost node exactly depth levels below s, zero if the
// sub-tree is not that deep
func firstAtDepth[T Linker[T]](s T, depth int) T {
	var none T
	n := s
	d := 0
	for {
		if d == depth {
			return n
		}
		links := n.Links()
		if none != links.left {
			n = links.left
			d += 1
			continue
		}
		if none != links.right {
			n = links.right
			d += 1
			continue
		}

	backtrack:
		for {
			if n == s {
				return none
			}
			p := n.Links().parent
			d -= 1
			if pl := p.Links(); pl.left == n && none != pl.right {
				n = pl.right
				d += 1
				break backtrack
			}
			n = p
		}
	}
}

// Root - climb to the top of the tree containing n
func Root[T Linker[T]](n T) T {
	var none T
	for p := n.Links().parent; none != p; p = n.Links().parent {
		n = p
	}
	return n
}

// Depth - number of links between n and the root
func Depth[T Linker[T]](n T) int {
	var none T
	count := 0
	for p := n.Links().parent; none != p; p = p.Links().parent {
		count += 1
	}
	return count
}

// Height - number of levels in a sub-tree, zero for an empty one
func Height[T Linker[T]](n T) int {
	var none T
	if none == n {
		return 0
	}
	lh := Height(n.Links().left)
	rh := Height(n.Links().right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// Count - number of nodes in a sub-tree
func Count[T Linker[T]](n T) int {
	var none T
	if none == n {
		return 0
	}
	return 1 + Count(n.Links().left) + Count(n.Links().right)
}
