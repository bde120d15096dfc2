// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an intrusive AVL balanced map with parent pointers
// to allow iteration through the entries
//
// Note: an individual map is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The map never allocates or frees entries: the caller creates each
// Entry, links it with Insert and gets the same record back from
// Remove.  A map must be drained (Remove every entry or Clear) before
// it is discarded if its entries are to be reused.
//
// A map is created either in unique key mode, where inserting an
// existing key is rejected, or in multimap mode where entries with
// equal keys form one contiguous run of the inorder sequence.  The
// relative order of entries with equal keys is unspecified.
//
// Iterators are not robust: inserting into or removing from a map
// terminates every iterator created before the change and the
// iterator then reports fault.ErrMapModified.
package avl
