// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/fault"
)

var (
	ErrCorruptOne  = fault.CorruptError("corrupt one")
	ErrCorruptTwo  = fault.CorruptError("corrupt two")
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the various error classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		corrupt  bool
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrCorruptOne, true, false, false, false, false},
		{ErrCorruptTwo, true, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false},
		{ErrExistsTwo, false, true, false, false, false},
		{ErrInvalidOne, false, false, true, false, false},
		{ErrInvalidTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fault.ErrKeyExists, false, true, false, false, false},
		{fault.ErrNotLinked, false, false, false, true, false},
		{fault.ErrMapModified, false, false, false, false, true},
		{fault.ErrCorruptBalance, true, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrCorrupt(err) != e.corrupt {
			t.Errorf("%d: expected 'corrupt' == %v for err = %v", i, e.corrupt, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, "bad value: 42", func() {
		fault.Panicf("bad value: %d", 42)
	}, "wrong panic message")
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.PanicIfError("nothing", nil)
	}, "panic on nil error")
	assert.PanicsWithValue(t, "insert failed with error: key already exists", func() {
		fault.PanicIfError("insert", fault.ErrKeyExists)
	}, "wrong panic message")
}
