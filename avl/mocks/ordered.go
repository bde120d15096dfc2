// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles for the avl cursor interfaces
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	avl "github.com/bitmark-inc/avlmap/avl"
)

// MockOrdered is a mock of Ordered interface
type MockOrdered[K, V any] struct {
	ctrl     *gomock.Controller
	recorder *MockOrderedMockRecorder[K, V]
}

// MockOrderedMockRecorder is the mock recorder for MockOrdered
type MockOrderedMockRecorder[K, V any] struct {
	mock *MockOrdered[K, V]
}

// compile time check
var _ avl.Ordered[int, int] = (*MockOrdered[int, int])(nil)

// NewMockOrdered creates a new mock instance
func NewMockOrdered[K, V any](ctrl *gomock.Controller) *MockOrdered[K, V] {
	mock := &MockOrdered[K, V]{ctrl: ctrl}
	mock.recorder = &MockOrderedMockRecorder[K, V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockOrdered[K, V]) EXPECT() *MockOrderedMockRecorder[K, V] {
	return m.recorder
}

// More mocks base method
func (m *MockOrdered[K, V]) More() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "More")
	ret0, _ := ret[0].(bool)
	return ret0
}

// More indicates an expected call of More
func (mr *MockOrderedMockRecorder[K, V]) More() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "More", reflect.TypeOf((*MockOrdered[K, V])(nil).More))
}

// Next mocks base method
func (m *MockOrdered[K, V]) Next() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Next")
}

// Next indicates an expected call of Next
func (mr *MockOrderedMockRecorder[K, V]) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockOrdered[K, V])(nil).Next))
}

// Entry mocks base method
func (m *MockOrdered[K, V]) Entry() *avl.Entry[K, V] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Entry")
	ret0, _ := ret[0].(*avl.Entry[K, V])
	return ret0
}

// Entry indicates an expected call of Entry
func (mr *MockOrderedMockRecorder[K, V]) Entry() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Entry", reflect.TypeOf((*MockOrdered[K, V])(nil).Entry))
}

// Key mocks base method
func (m *MockOrdered[K, V]) Key() K {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Key")
	ret0, _ := ret[0].(K)
	return ret0
}

// Key indicates an expected call of Key
func (mr *MockOrderedMockRecorder[K, V]) Key() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Key", reflect.TypeOf((*MockOrdered[K, V])(nil).Key))
}

// Value mocks base method
func (m *MockOrdered[K, V]) Value() V {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Value")
	ret0, _ := ret[0].(V)
	return ret0
}

// Value indicates an expected call of Value
func (mr *MockOrderedMockRecorder[K, V]) Value() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Value", reflect.TypeOf((*MockOrdered[K, V])(nil).Value))
}

// Err mocks base method
func (m *MockOrdered[K, V]) Err() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Err")
	ret0, _ := ret[0].(error)
	return ret0
}

// Err indicates an expected call of Err
func (mr *MockOrderedMockRecorder[K, V]) Err() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Err", reflect.TypeOf((*MockOrdered[K, V])(nil).Err))
}

// Compare mocks base method
func (m *MockOrdered[K, V]) Compare(a, b K) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compare", a, b)
	ret0, _ := ret[0].(int)
	return ret0
}

// Compare indicates an expected call of Compare
func (mr *MockOrderedMockRecorder[K, V]) Compare(a, b interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compare", reflect.TypeOf((*MockOrdered[K, V])(nil).Compare), a, b)
}

// Ascending mocks base method
func (m *MockOrdered[K, V]) Ascending() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ascending")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Ascending indicates an expected call of Ascending
func (mr *MockOrderedMockRecorder[K, V]) Ascending() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ascending", reflect.TypeOf((*MockOrdered[K, V])(nil).Ascending))
}
