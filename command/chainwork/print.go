// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/chainwork/record"
)

// one block of text per record
func printRecords(handle io.Writer, records []*record.Record) {
	fmt.Fprintf(handle, "\nFull Blockchain:\n\n")
	for _, r := range records {
		fmt.Fprintf(handle, "---------------\n")
		fmt.Fprintf(handle, "Index: %d\n", r.Position())
		fmt.Fprintf(handle, "Timestamp: %s\n", r.CreatedAt().Time().Format("2006-01-02T15:04:05.999999999Z07:00"))
		fmt.Fprintf(handle, "Data: %s\n", r.Payload())
		fmt.Fprintf(handle, "Previous Hash: %s\n", r.PreviousFingerprint())
		fmt.Fprintf(handle, "Hash: %s\n", r.Fingerprint())
		fmt.Fprintf(handle, "Nonce: %d\n", r.SearchCounter())
	}
}

// the whole chain with its verification result
type chainReport struct {
	Difficulty int              `json:"difficulty"`
	Algorithm  string           `json:"algorithm"`
	Records    []*record.Record `json:"records"`
	Valid      bool             `json:"valid"`
	Error      string           `json:"error,omitempty"`
}
