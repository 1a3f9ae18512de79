// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chainwork/fingerprint"
	"github.com/bitmark-inc/chainwork/record"
)

func runFingerprint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	algorithm, err := fingerprint.ParseAlgorithm(c.String("algorithm"))
	if nil != err {
		return err
	}

	previous, err := parsePrevious(c.String("previous"))
	if nil != err {
		return err
	}

	if !c.IsSet("timestamp") {
		return fmt.Errorf("timestamp is required")
	}

	header := record.Header{
		Position:            c.Uint64("position"),
		CreatedAt:           record.Timestamp(c.Int64("timestamp")),
		Payload:             []byte(c.String("data")),
		PreviousFingerprint: previous,
		SearchCounter:       c.Uint64("counter"),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "packed: %q\n", header.Pack())
	}

	digest := header.Fingerprint(algorithm)

	out := struct {
		Algorithm    fingerprint.Algorithm `json:"algorithm"`
		Fingerprint  fingerprint.Digest    `json:"fingerprint"`
		LeadingZeros int                   `json:"leading_zeros"`
	}{
		Algorithm:    algorithm,
		Fingerprint:  digest,
		LeadingZeros: digest.LeadingZeros(),
	}
	return m.printJSON(out)
}

// previous fingerprint from hex, blank means the sentinel
func parsePrevious(s string) (fingerprint.Digest, error) {
	if "" == s {
		return fingerprint.Sentinel, nil
	}
	var digest fingerprint.Digest
	err := digest.UnmarshalText([]byte(s))
	return digest, err
}
