// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chainwork/chain"
	"github.com/bitmark-inc/chainwork/proof"
	"github.com/bitmark-inc/chainwork/util"
)

// output selection for runChain
type outputMode int

const (
	outputText outputMode = iota
	outputQuiet
	outputJSON
)

// build the chain, append every payload, print it and verify it
//
// returns whether the chain verified
func runChain(log *logger.L, options *Configuration, payloads []string, handle io.Writer, mode outputMode) (bool, error) {

	searcher := proof.New(logger.New("proof"), options.Proofing)
	log.Infof("search workers: %d", searcher.Workers())

	if outputText == mode {
		fmt.Fprintf(handle, "Mining origin block (difficulty %d)...\n", options.target().Zeros())
	}
	c, err := chain.New(logger.New("chain"), options.target(), options.fingerprintAlgorithm(), searcher)
	if nil != err {
		log.Criticalf("chain creation error: %s", err)
		return false, err
	}

	for i, payload := range payloads {
		if outputText == mode {
			fmt.Fprintf(handle, "Mining block %d...\n", i+1)
		}
		r, err := c.Append([]byte(payload))
		if nil != err {
			log.Errorf("append: %d  error: %s", i+1, err)
			return false, err
		}
		log.Infof("appended: %d  counter: %d  fingerprint: %s", r.Position(), r.SearchCounter(), r.Fingerprint())
	}

	verifyErr := c.Verify()
	valid := nil == verifyErr
	if valid {
		log.Info("chain verified")
	} else {
		log.Warnf("chain verification failed: %s", verifyErr)
	}

	switch mode {
	case outputJSON:
		report := chainReport{
			Difficulty: c.Difficulty().Zeros(),
			Algorithm:  c.Algorithm().String(),
			Records:    c.Records(),
			Valid:      valid,
		}
		if nil != verifyErr {
			report.Error = verifyErr.Error()
		}
		if err := util.PrintJSON(handle, report); nil != err {
			return valid, err
		}

	case outputText:
		printRecords(handle, c.Records())
		fmt.Fprintf(handle, "\nIs chain valid? %t\n", valid)
	}

	return valid, nil
}
