// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/fingerprint"
	"github.com/bitmark-inc/chainwork/proof"
	"github.com/bitmark-inc/chainwork/record"
)

func TestValidateAfterStoredFingerprintChange(t *testing.T) {
	c, err := New(nil, difficulty.MustNew(1), fingerprint.SHA256, proof.NewSequential())
	assert.Nil(t, err, "chain creation failed")

	for _, p := range []string{"A", "B"} {
		_, err := c.Append([]byte(p))
		assert.Nil(t, err, "append failed")
	}
	assert.True(t, c.Validate(), "chain must be valid")

	r := c.records[1]
	digest := r.Fingerprint()
	digest[fingerprint.Length-1] ^= 0x10
	c.records[1] = record.Restore(r.Algorithm(), r.Header(), digest)

	assert.False(t, c.Validate(), "changed fingerprint not detected")

	err = c.Verify()
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve), "wrong error type")
	assert.Equal(t, 1, ve.Index, "wrong index")
	assert.Equal(t, fault.ErrFingerprintDoesNotMatch, ve.Err, "wrong condition")
}

func TestValidateAfterPayloadChange(t *testing.T) {
	c, err := New(nil, difficulty.MustNew(1), fingerprint.SHA256, proof.NewSequential())
	assert.Nil(t, err, "chain creation failed")

	_, err = c.Append([]byte("original"))
	assert.Nil(t, err, "append failed")

	r := c.records[1]
	h := r.Header()
	h.Payload = []byte("altered")
	c.records[1] = record.Restore(r.Algorithm(), h, r.Fingerprint())

	assert.False(t, c.Validate(), "changed payload not detected")
}

func TestValidateAfterOriginChange(t *testing.T) {
	c, err := New(nil, difficulty.MustNew(1), fingerprint.SHA256, proof.NewSequential())
	assert.Nil(t, err, "chain creation failed")

	_, err = c.Append([]byte("A"))
	assert.Nil(t, err, "append failed")

	origin := c.records[0]
	h := origin.Header()
	h.Payload = []byte("Other Genesis")
	c.records[0] = record.Restore(origin.Algorithm(), h, origin.Fingerprint())

	err = c.Verify()
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve), "wrong error type")
	assert.Equal(t, 0, ve.Index, "wrong index")
	assert.Equal(t, fault.ErrFingerprintDoesNotMatch, ve.Err, "wrong condition")
}
