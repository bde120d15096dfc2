// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bintree - intrusive binary tree links and traversal
//
// A Node holds the parent, left and right links of a binary tree.
// It carries no payload: a record that wants to be part of a tree
// embeds a Node typed on its own pointer type and exposes it through
// the Links method of the Linker constraint, so the tree links
// point directly from record to record.
//
// The traversal functions are stateless; given only a node they
// compute structural extremes or a single step of the inorder,
// preorder, postorder or level order sequences.  None of them modify
// any links.  The zero value of the record pointer type (nil) is
// used for "no node".
package bintree
