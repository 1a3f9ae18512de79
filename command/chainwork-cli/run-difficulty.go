// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/chainwork/difficulty"
)

func runDifficulty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := difficulty.New(c.Int("difficulty"))
	if nil != err {
		return err
	}

	out := struct {
		Zeros            int     `json:"zeros"`
		Prefix           string  `json:"prefix"`
		ExpectedAttempts float64 `json:"expected_attempts"`
	}{
		Zeros:            target.Zeros(),
		Prefix:           target.Prefix(),
		ExpectedAttempts: target.ExpectedAttempts(),
	}
	return m.printJSON(out)
}
