// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - modification counters
//
// A Counter records how many times a structure has been modified so
// that readers holding an earlier snapshot of the value can detect
// that the structure changed underneath them.
package counter

import (
	"sync/atomic"
)

// Counter - a modification count, just a 64 bit unsigned integer
// that is only ever advanced
type Counter uint64

// Increment - record one modification, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Changed - true if any modification happened after the snapshot
// was taken with Uint64
func (ic *Counter) Changed(snapshot uint64) bool {
	return atomic.LoadUint64((*uint64)(ic)) != snapshot
}

// IsZero - check if the structure was never modified
func (ic *Counter) IsZero() bool {
	return atomic.LoadUint64((*uint64)(ic)) == 0
}
