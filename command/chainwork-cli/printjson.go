// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/chainwork/util"
)

// every command result goes to the application's output writer
func (m *metadata) printJSON(message interface{}) error {
	return util.PrintJSON(m.w, message)
}
