// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chainwork/configuration"
	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/fingerprint"
	"github.com/bitmark-inc/chainwork/proof"
	"github.com/bitmark-inc/chainwork/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultMaxCPUUsage    = 50
	defaultReportInterval = 1000000

	defaultLogDirectory = "log"
	defaultLogFile      = "chainwork.log"
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

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Difficulty    int                  `gluamapper:"difficulty" json:"difficulty"`
	Algorithm     string               `gluamapper:"algorithm" json:"algorithm"`
	Records       []string             `gluamapper:"records" json:"records"`
	Proofing      proof.Configuration  `gluamapper:"proofing" json:"proofing"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	difficulty difficulty.Difficulty
	algorithm  fingerprint.Algorithm
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, err := util.ConfigurationDirectory(configurationFileName)
	if nil != err {
		return nil, err
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Difficulty:    difficulty.Default,
		Algorithm:     fingerprint.SHA256.String(),
		Records:       []string{},

		Proofing: proof.Configuration{
			MaxCPUUsage:    defaultMaxCPUUsage,
			ReportInterval: defaultReportInterval,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.difficulty, err = difficulty.New(options.Difficulty)
	if nil != err {
		return nil, fmt.Errorf("difficulty: %d  error: %s", options.Difficulty, err)
	}

	options.algorithm, err = fingerprint.ParseAlgorithm(options.Algorithm)
	if nil != err {
		return nil, fmt.Errorf("algorithm: %q  error: %s", options.Algorithm, err)
	}

	if options.Proofing.MaxCPUUsage <= 0 || options.Proofing.MaxCPUUsage > 100 {
		options.Proofing.MaxCPUUsage = defaultMaxCPUUsage
	}
	if options.Proofing.Workers < 0 {
		options.Proofing.Workers = 0
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrMissingDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// the log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// the validated difficulty
func (c *Configuration) target() difficulty.Difficulty {
	return c.difficulty
}

// the validated fingerprint algorithm
func (c *Configuration) fingerprintAlgorithm() fingerprint.Algorithm {
	return c.algorithm
}
