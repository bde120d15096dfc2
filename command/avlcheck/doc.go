// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlcheck - build maps described by a Lua configuration file and run
// traversals, bound queries and set operations over them
//
// each operation prints one line: the operation and the keys it
// produced.  with --watch the configuration is re-run whenever the
// file is written, until the file is removed or the program is
// interrupted.
package main
