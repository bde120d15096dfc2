// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
)

// re-runs the configuration each time the watcher reports a change
type reloader struct {
	fileName string
	watcher  FileWatcher
	out      io.Writer
	log      *logger.L
	checkLog *logger.L
	removed  chan struct{}
}

func newReloader(fileName string, watcher FileWatcher, out io.Writer, log *logger.L, checkLog *logger.L) *reloader {
	return &reloader{
		fileName: fileName,
		watcher:  watcher,
		out:      out,
		log:      log,
		checkLog: checkLog,
		removed:  make(chan struct{}),
	}
}

// Removed - closed once the configuration file has gone
func (r *reloader) Removed() <-chan struct{} {
	return r.removed
}

// Run - background process
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return

		case <-r.watcher.Remove():
			r.log.Warnf("configuration: %q removed", r.fileName)
			close(r.removed)
			return

		case <-r.watcher.Change():
			r.rerun()
		}
	}
}

// a bad edit is reported and the previous results stand
func (r *reloader) rerun() {
	config, err := getConfiguration(r.fileName)
	if nil != err {
		r.log.Errorf("reload: %q failed with error: %s", r.fileName, err)
		fmt.Fprintf(os.Stderr, "reload failed: %s\n", err)
		return
	}
	r.log.Infof("reload: %q", r.fileName)
	fmt.Fprintf(r.out, "\n")
	if err := run(config, r.out, r.checkLog); nil != err {
		fmt.Fprintf(os.Stderr, "run failed: %s\n", err)
	}
}
