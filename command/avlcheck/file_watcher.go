// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avlmap/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// FileWatcher - notification of changes to the configuration file
type FileWatcher interface {
	Start() error
	Stop() error
	Change() <-chan struct{}
	Remove() <-chan struct{}
}

type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %v", targetFile, err)
		return nil, err
	}

	if !fileExists(filePath) {
		return nil, fault.ErrNotFoundConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Start - watch the file in the background
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %v, abort", err)
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Infof("file event: %v", event)

				if watcherEventFileRemove(event) {
					w.log.Errorf("file %s removed, stop", w.filePath)
					w.sendEvent(w.remove, "remove")
					return
				}

				if path.Base(event.Name) != path.Base(w.filePath) {
					w.log.Infof("file %s not match, discard event", event.Name)
					continue
				}

				if watcherEventFileChange(event) {
					w.log.Info("sending config change event…")
					w.sendEvent(w.change, "change")
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warnf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Stop - release the watch, no further events are sent
func (w *fileWatcher) Stop() error {
	return w.watcher.Close()
}

// Change - receives when the file was written
func (w *fileWatcher) Change() <-chan struct{} {
	return w.change
}

// Remove - receives once when the file was removed or renamed
func (w *fileWatcher) Remove() <-chan struct{} {
	return w.remove
}

func (w *fileWatcher) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

// pending events are merged rather than queued
func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Infof("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
