// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"

	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/fingerprint"
	"github.com/bitmark-inc/chainwork/record"
)

// ValidationError - the first record that failed and why
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Index, e.Err)
}

// Unwrap - the underlying fault
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate - true if every record passes all checks
func (c *Chain) Validate() bool {
	return nil == c.Verify()
}

// Verify - check every record, the origin included
func (c *Chain) Verify() error {
	c.RLock()
	defer c.RUnlock()

	err := VerifyRecords(c.difficulty, c.records)
	if nil != err && nil != c.log {
		c.log.Warnf("verify: %s", err)
	}
	return err
}

// VerifyRecords - check a sequence against a difficulty
//
// each record is checked in order, stopping at the first failure:
// linkage to its predecessor (the sentinel for the origin), the
// difficulty of its stored fingerprint, the stored fingerprint against
// a recomputation, and its position
func VerifyRecords(target difficulty.Difficulty, records []*record.Record) error {
	if 0 == len(records) {
		return fault.ErrEmptyChain
	}

	previous := fingerprint.Sentinel
	for i, r := range records {
		if nil == r {
			return &ValidationError{Index: i, Err: fault.ErrNilRecord}
		}

		checks := []func() error{
			func() error { return record.ValidLinkage(previous, r) },
			func() error { return record.ValidDifficulty(target, r) },
			func() error { return record.ValidFingerprint(r) },
			func() error { return record.ValidPosition(uint64(i), r) },
		}
		for _, check := range checks {
			if err := check(); nil != err {
				return &ValidationError{Index: i, Err: err}
			}
		}

		previous = r.Fingerprint()
	}
	return nil
}
