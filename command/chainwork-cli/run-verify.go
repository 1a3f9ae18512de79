// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chainwork/chain"
	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/record"
)

// the report written by "chainwork --verbose"
type savedChain struct {
	Difficulty int              `json:"difficulty"`
	Records    []*record.Record `json:"records"`
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	if "" == fileName {
		return fmt.Errorf("file is required")
	}

	var input io.Reader
	if "-" == fileName {
		input = os.Stdin
	} else {
		f, err := os.Open(fileName)
		if nil != err {
			return err
		}
		defer f.Close()
		input = f
	}

	saved := savedChain{}
	if err := json.NewDecoder(input).Decode(&saved); nil != err {
		return err
	}

	zeros := saved.Difficulty
	if c.Int("difficulty") >= 0 {
		zeros = c.Int("difficulty")
	}
	target, err := difficulty.New(zeros)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "verifying: %d records at difficulty: %d\n", len(saved.Records), target.Zeros())
	}

	out := struct {
		Records int    `json:"records"`
		Valid   bool   `json:"valid"`
		Index   *int   `json:"index,omitempty"`
		Error   string `json:"error,omitempty"`
	}{
		Records: len(saved.Records),
		Valid:   true,
	}

	err = chain.VerifyRecords(target, saved.Records)
	if nil != err {
		out.Valid = false
		out.Error = err.Error()
		if ve, ok := err.(*chain.ValidationError); ok {
			index := ve.Index
			out.Index = &index
		}
	}
	return m.printJSON(out)
}
