// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type CorruptError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCorruptBalance       = CorruptError("stored balance does not match subtree heights")
	ErrCorruptHeight        = CorruptError("subtree heights differ by more than one")
	ErrCorruptOrder         = CorruptError("keys out of order")
	ErrCorruptParent        = CorruptError("parent link does not match child link")
	ErrCorruptSize          = CorruptError("node count does not match size")
	ErrEntryLinked          = ExistsError("entry is already linked in a map")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOrder         = InvalidError("invalid traversal order")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyExists            = ExistsError("key already exists")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMapModified          = ProcessError("map modified during iteration")
	ErrMissingSet           = InvalidError("operation refers to an unknown set")
	ErrNilComparator        = InvalidError("comparator is nil")
	ErrNotAscending         = InvalidError("cursor does not yield ascending keys")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotLinked            = NotFoundError("entry is not linked in this map")
	ErrUnknownOperation     = InvalidError("unknown operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CorruptError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrCorrupt(e error) bool  { _, ok := e.(CorruptError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
