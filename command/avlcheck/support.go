// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
)

// check if file exists
func fileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
