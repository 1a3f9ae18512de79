// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/fingerprint"
)

// ValidLinkage - the record must point at the fingerprint of its predecessor
func ValidLinkage(previousDigest fingerprint.Digest, r *Record) error {
	if previousDigest != r.header.PreviousFingerprint {
		return fault.ErrPreviousFingerprintDoesNotMatch
	}
	return nil
}

// ValidDifficulty - the stored fingerprint must have enough leading zeros
func ValidDifficulty(target difficulty.Difficulty, r *Record) error {
	if !target.IsMetBy(r.fingerprint) {
		return fault.ErrFingerprintMissesDifficulty
	}
	return nil
}

// ValidFingerprint - the stored fingerprint must be the digest of the stored fields
func ValidFingerprint(r *Record) error {
	if !r.algorithm.Valid() || r.fingerprint != r.ComputeFingerprint() {
		return fault.ErrFingerprintDoesNotMatch
	}
	return nil
}

// ValidPosition - the record must sit at its recorded position
func ValidPosition(expected uint64, r *Record) error {
	if expected != r.header.Position {
		return fault.ErrPositionOutOfSequence
	}
	return nil
}
