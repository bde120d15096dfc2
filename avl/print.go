// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree,
// returns the depth of the tree
func (tree *Map[K, V]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, tree *Entry[K, V], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if r := tree.node.Right(); nil != r {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, r, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if p := tree.node.Parent(); nil != p {
		up = p.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+2d\n", tree.key, tree.value, up, tree.balance)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", tree.key, up)
	}
	if l := tree.node.Left(); nil != l {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, l, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
