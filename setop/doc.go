// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package setop - set algebra over two ascending cursors
//
// each operation is a linear merge of its inputs and is itself an
// ascending cursor, so operations can be nested:
//
//	inner, err := setop.Intersection[int, string](a.Inorder(), b.Inorder())
//	...
//	outer, err := setop.Union[int, string](inner, c.Inorder())
//	...
//	for ; outer.More(); outer.Next() {
//		...
//	}
//
// both inputs must order keys with the same comparison; the one from
// the first input is used
package setop
