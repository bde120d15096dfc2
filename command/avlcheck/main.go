// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/background"
	"github.com/bitmark-inc/avlmap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--watch] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic channel setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	quiet := len(options["quiet"]) > 0
	var out io.Writer = os.Stdout
	if quiet {
		out = io.Discard
	}

	checkLog := logger.New(checkLoggerPrefix)
	if err = run(masterConfiguration, out, checkLog); nil != err {
		log.Criticalf("run failed with error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}

	if 0 == len(options["watch"]) {
		return
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix))
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err = watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	if !quiet {
		fmt.Printf("\nWatching: %q  CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM) to stop…\n", configurationFile)
	}

	r := newReloader(configurationFile, watcher, out, log, checkLog)
	processes := background.Start(background.Processes{r}, nil)
	defer processes.Stop()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
		}
	case <-r.Removed():
		if !quiet {
			fmt.Printf("\nconfiguration: %q removed\n", configurationFile)
		}
	}
}
