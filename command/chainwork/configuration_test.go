// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/fingerprint"
	"github.com/bitmark-inc/chainwork/util"
)

func TestGetConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeTestConfiguration(t, `return { data_directory = "." }`)
	defer cleanup()

	options, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		return
	}

	dir := filepath.Dir(fileName)
	assert.Equal(t, dir, options.DataDirectory, "wrong data directory")
	assert.Equal(t, difficulty.Default, options.Difficulty, "wrong default difficulty")
	assert.Equal(t, difficulty.MustNew(difficulty.Default), options.target(), "wrong target")
	assert.Equal(t, fingerprint.SHA256, options.fingerprintAlgorithm(), "wrong algorithm")
	assert.Equal(t, defaultMaxCPUUsage, options.Proofing.MaxCPUUsage, "wrong cpu usage")
	assert.Equal(t, uint64(0), options.Proofing.Limit, "limit must default to unbounded")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "wrong log directory")
	assert.True(t, util.EnsureFileExists(options.Logging.Directory), "log directory not created")
	assert.Equal(t, 0, len(options.Records), "unexpected records")
}

func TestGetConfigurationValues(t *testing.T) {
	source := `
local M = {}
M.data_directory = "."
M.difficulty = 2
M.algorithm = "sha3-256"
M.records = { "First block data", "Second block data" }
M.proofing = { workers = 3, max_cpu_usage = 500, limit = 10 }
M.logging = { directory = "logs", file = "x.log", levels = { DEFAULT = "debug" } }
return M
`
	fileName, cleanup := writeTestConfiguration(t, source)
	defer cleanup()

	options, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		return
	}

	assert.Equal(t, 2, options.target().Zeros(), "wrong difficulty")
	assert.Equal(t, fingerprint.SHA3_256, options.fingerprintAlgorithm(), "wrong algorithm")
	assert.Equal(t, []string{"First block data", "Second block data"}, options.Records, "wrong records")
	assert.Equal(t, 3, options.Proofing.Workers, "wrong workers")
	assert.Equal(t, defaultMaxCPUUsage, options.Proofing.MaxCPUUsage, "cpu usage not clamped")
	assert.Equal(t, uint64(10), options.Proofing.Limit, "wrong limit")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "logs"), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, "debug", options.Logging.Levels["DEFAULT"], "wrong level")
}

func TestGetConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		err    error
	}{
		{"missing data directory", `return { difficulty = 1 }`, fault.ErrMissingDataDirectory},
		{"difficulty too large", `return { data_directory = ".", difficulty = 65 }`, nil},
		{"negative difficulty", `return { data_directory = ".", difficulty = -1 }`, nil},
		{"unknown algorithm", `return { data_directory = ".", algorithm = "md5" }`, nil},
		{"missing directory", `return { data_directory = "does-not-exist" }`, nil},
		{"log file with path", `return { data_directory = ".", logging = { file = "a/b.log" } }`, nil},
		{"not a table", `return "."`, fault.ErrConfigurationNotTable},
	}

	for _, test := range tests {
		fileName, cleanup := writeTestConfiguration(t, test.source)

		options, err := getConfiguration(fileName)
		assert.Nil(t, options, "%s: configuration returned", test.name)
		assert.NotNil(t, err, "%s: no error", test.name)
		if nil != test.err {
			assert.Equal(t, test.err, err, "%s: wrong error", test.name)
		}

		cleanup()
	}
}

func TestSampleConfiguration(t *testing.T) {
	options, err := getConfiguration("chainwork.conf.sample")
	if !assert.Nil(t, err, "sample configuration error") {
		return
	}
	defer removeSampleLogDirectory(options.Logging.Directory)

	assert.Equal(t, difficulty.Default, options.target().Zeros(), "wrong difficulty")
	assert.Equal(t, fingerprint.SHA256, options.fingerprintAlgorithm(), "wrong algorithm")
	assert.Equal(t, 2, len(options.Records), "wrong records")
}
