// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fingerprint"
	"github.com/bitmark-inc/chainwork/proof"
	"github.com/bitmark-inc/chainwork/record"
)

func runMine(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := difficulty.New(c.Int("difficulty"))
	if nil != err {
		return err
	}

	algorithm, err := fingerprint.ParseAlgorithm(c.String("algorithm"))
	if nil != err {
		return err
	}

	previous, err := parsePrevious(c.String("previous"))
	if nil != err {
		return err
	}

	searcher := proof.New(nil, proof.Configuration{
		Workers: c.Int("workers"),
		Limit:   c.Uint64("limit"),
	})

	candidate := record.NewCandidate(algorithm, c.Uint64("position"), []byte(c.String("message")), previous)

	if m.verbose {
		fmt.Fprintf(m.e, "searching: difficulty: %d  expected attempts: %.0f  workers: %d\n",
			target.Zeros(), target.ExpectedAttempts(), searcher.Workers())
	}

	result, err := searcher.Run(candidate, target)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "found after: %s\n", result.Elapsed)
	}

	header := candidate.Header()
	out := struct {
		Position     uint64                `json:"position"`
		Timestamp    record.Timestamp      `json:"timestamp,string"`
		Algorithm    fingerprint.Algorithm `json:"algorithm"`
		Counter      uint64                `json:"counter"`
		Fingerprint  fingerprint.Digest    `json:"fingerprint"`
		Attempts     uint64                `json:"attempts"`
		Elapsed      string                `json:"elapsed"`
		HashRate     float64               `json:"hash_rate"`
		LeadingZeros int                   `json:"leading_zeros"`
	}{
		Position:     header.Position,
		Timestamp:    header.CreatedAt,
		Algorithm:    algorithm,
		Counter:      result.Counter,
		Fingerprint:  result.Digest,
		Attempts:     result.Attempts,
		Elapsed:      result.Elapsed.String(),
		HashRate:     result.Rate(),
		LeadingZeros: result.Digest.LeadingZeros(),
	}
	return m.printJSON(out)
}
