// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
)

const (
	logFileName      = "test.log"
	logSizeOfFiles   = 30000
	logNumberOfFiles = 10
)

var testLevelMap = map[string]string{
	logger.DefaultTag: "critical",
	checkLoggerPrefix: "debug",
}

func setupLogger(t *testing.T) {
	logging := logger.Configuration{
		Directory: t.TempDir(),
		File:      logFileName,
		Size:      logSizeOfFiles,
		Count:     logNumberOfFiles,
		Console:   false,
		Levels:    testLevelMap,
	}
	require.NoError(t, logger.Initialise(logging), "logger initialise")
	t.Cleanup(logger.Finalise)
}

// write a configuration file into a fresh directory
func writeConfiguration(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "avlcheck.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600), "write configuration")
	return fileName
}
