// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/fingerprint"
	"github.com/bitmark-inc/chainwork/record"
)

func sealedTestRecord(t *testing.T) *record.Record {
	c := newTestCandidate()
	r, err := c.Seal(c.Fingerprint())
	assert.Nil(t, err, "seal error")
	return r
}

func TestValidLinkageWhenValid(t *testing.T) {
	r := sealedTestRecord(t)
	err := record.ValidLinkage(fingerprint.Sentinel, r)
	assert.Equal(t, nil, err, "valid linkage")
}

func TestValidLinkageWhenInvalid(t *testing.T) {
	r := sealedTestRecord(t)
	err := record.ValidLinkage(fingerprint.Digest{9}, r)
	assert.Equal(t, fault.ErrPreviousFingerprintDoesNotMatch, err, "invalid linkage")
}

func TestValidDifficultyWhenZero(t *testing.T) {
	r := sealedTestRecord(t)
	err := record.ValidDifficulty(difficulty.MustNew(0), r)
	assert.Equal(t, nil, err, "zero difficulty")
}

func TestValidDifficultyWhenMissed(t *testing.T) {
	r := sealedTestRecord(t)
	err := record.ValidDifficulty(difficulty.MustNew(difficulty.Maximum), r)
	assert.Equal(t, fault.ErrFingerprintMissesDifficulty, err, "maximum difficulty")
}

func TestValidFingerprintWhenValid(t *testing.T) {
	r := sealedTestRecord(t)
	assert.Equal(t, nil, record.ValidFingerprint(r), "valid fingerprint")
}

func TestValidFingerprintWhenPayloadChanged(t *testing.T) {
	r := sealedTestRecord(t)
	h := r.Header()
	h.Payload = []byte("tampered")
	tampered := record.Restore(r.Algorithm(), h, r.Fingerprint())

	err := record.ValidFingerprint(tampered)
	assert.Equal(t, fault.ErrFingerprintDoesNotMatch, err, "tampered payload")
}

func TestValidFingerprintWhenTimestampChanged(t *testing.T) {
	r := sealedTestRecord(t)
	h := r.Header()
	h.CreatedAt += 1
	tampered := record.Restore(r.Algorithm(), h, r.Fingerprint())

	err := record.ValidFingerprint(tampered)
	assert.Equal(t, fault.ErrFingerprintDoesNotMatch, err, "tampered timestamp")
}

func TestValidFingerprintWhenAlgorithmChanged(t *testing.T) {
	r := sealedTestRecord(t)
	tampered := record.Restore(fingerprint.SHA3_256, r.Header(), r.Fingerprint())
	assert.Equal(t, fault.ErrFingerprintDoesNotMatch, record.ValidFingerprint(tampered), "other algorithm")

	unknown := record.Restore(fingerprint.Algorithm(42), r.Header(), r.Fingerprint())
	assert.Equal(t, fault.ErrFingerprintDoesNotMatch, record.ValidFingerprint(unknown), "unknown algorithm")
}

func TestValidPosition(t *testing.T) {
	r := sealedTestRecord(t)
	assert.Equal(t, nil, record.ValidPosition(3, r), "valid position")
	assert.Equal(t, fault.ErrPositionOutOfSequence, record.ValidPosition(4, r), "invalid position")
}

func TestRestoreKeepsFields(t *testing.T) {
	r := sealedTestRecord(t)
	restored := record.Restore(r.Algorithm(), r.Header(), r.Fingerprint())

	assert.Equal(t, r.Header(), restored.Header(), "header changed")
	assert.Equal(t, r.Fingerprint(), restored.Fingerprint(), "fingerprint changed")
	assert.Nil(t, record.ValidFingerprint(restored), "restored record invalid")
}
