// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avlcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// RangeType - keys from..to-1, each inserted copies times
type RangeType struct {
	From   int `gluamapper:"from" json:"from"`
	To     int `gluamapper:"to" json:"to"`
	Copies int `gluamapper:"copies" json:"copies"`
}

// SetType - one map to build
type SetType struct {
	Name     string    `gluamapper:"name" json:"name"`
	Multiple bool      `gluamapper:"multiple" json:"multiple"`
	Keys     []int     `gluamapper:"keys" json:"keys"`
	Range    RangeType `gluamapper:"range" json:"range"`
}

// OperationType - one operation to run over the sets
type OperationType struct {
	Op  string `gluamapper:"op" json:"op"`
	A   string `gluamapper:"a" json:"a"`
	B   string `gluamapper:"b" json:"b"`
	Key int    `gluamapper:"key" json:"key"`
}

// Configuration - the whole configuration file
type Configuration struct {
	Sets       []SetType            `gluamapper:"sets" json:"sets"`
	Operations []OperationType      `gluamapper:"operations" json:"operations"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the parser fills maps in place so the defaults are copied
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	names := make(map[string]struct{})
	for i, set := range options.Sets {
		if "" == set.Name {
			return nil, fmt.Errorf("set: %d has no name", i)
		}
		if _, ok := names[set.Name]; ok {
			return nil, fmt.Errorf("set: %q is defined more than once", set.Name)
		}
		names[set.Name] = struct{}{}
		if set.Range.Copies < 0 || set.Range.To < set.Range.From {
			return nil, fmt.Errorf("set: %q has an invalid range", set.Name)
		}
	}

	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = configuration.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}
