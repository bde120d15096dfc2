// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/logger"
)

const (
	eventTimeout = 5 * time.Second
)

func TestNewFileWatcherMissingFile(t *testing.T) {
	setupLogger(t)

	_, err := newFileWatcher(filepath.Join(t.TempDir(), "missing"), logger.New("test"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file accepted")
}

func TestStart(t *testing.T) {
	setupLogger(t)
	fileName := writeConfiguration(t, "return {}")

	w, err := newFileWatcher(fileName, logger.New("test"))
	require.NoError(t, err, "new watcher")
	require.NoError(t, w.Start(), "start")
	defer w.Stop()

	require.NoError(t, os.WriteFile(fileName, []byte("return { sets = {} }"), 0600), "write")
	select {
	case <-w.Change():
	case <-time.After(eventTimeout):
		t.Fatal("watcher did not receive change event")
	}

	require.NoError(t, os.Remove(fileName), "remove")
	select {
	case <-w.Remove():
	case <-time.After(eventTimeout):
		t.Fatal("watcher did not receive remove event")
	}
}

func TestIsChannelFull(t *testing.T) {
	setupLogger(t)
	w := &fileWatcher{log: logger.New("test")}

	ch := make(chan struct{}, 1)
	assert.False(t, w.isChannelFull(ch), "empty channel full")

	ch <- struct{}{}
	assert.True(t, w.isChannelFull(ch), "channel not full")
}

func TestSendEventMerges(t *testing.T) {
	setupLogger(t)
	w := &fileWatcher{log: logger.New("test")}

	ch := make(chan struct{}, 1)
	w.sendEvent(ch, "test")
	w.sendEvent(ch, "test")
	assert.Equal(t, 1, len(ch), "events not merged")
}

func TestEventClassification(t *testing.T) {
	assert.True(t, watcherEventFileRemove(fsnotify.Event{}), "closed channel event")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Remove}), "remove")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Rename}), "rename")
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")

	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Chmod}), "chmod")
	assert.False(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Create}), "create")
}
