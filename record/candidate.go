// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/fingerprint"
)

// Candidate - a record under construction
//
// only the search counter changes; each change recomputes the stored
// fingerprint
type Candidate struct {
	algorithm   fingerprint.Algorithm
	header      Header
	fingerprint fingerprint.Digest
	sealed      bool
}

// NewCandidate - start a record at the current time
func NewCandidate(algorithm fingerprint.Algorithm, position uint64, payload []byte, previous fingerprint.Digest) *Candidate {
	return NewCandidateAt(algorithm, position, Now(), payload, previous)
}

// NewCandidateAt - start a record with an explicit creation time
func NewCandidateAt(algorithm fingerprint.Algorithm, position uint64, createdAt Timestamp, payload []byte, previous fingerprint.Digest) *Candidate {
	c := &Candidate{
		algorithm: algorithm,
		header: Header{
			Position:            position,
			CreatedAt:           createdAt,
			Payload:             append([]byte(nil), payload...),
			PreviousFingerprint: previous,
			SearchCounter:       0,
		},
	}
	c.fingerprint = c.ComputeFingerprint()
	return c
}

// Algorithm - hash function of this candidate
func (c *Candidate) Algorithm() fingerprint.Algorithm {
	return c.algorithm
}

// Header - copy of the current fields
func (c *Candidate) Header() Header {
	return c.header.clone()
}

// SearchCounter - current counter value
func (c *Candidate) SearchCounter() uint64 {
	return c.header.SearchCounter
}

// Fingerprint - the stored fingerprint for the current counter
func (c *Candidate) Fingerprint() fingerprint.Digest {
	return c.fingerprint
}

// ComputeFingerprint - recompute from the current fields
func (c *Candidate) ComputeFingerprint() fingerprint.Digest {
	return c.header.Fingerprint(c.algorithm)
}

// Increment - advance the counter by one and recompute
func (c *Candidate) Increment() (fingerprint.Digest, error) {
	return c.SetSearchCounter(c.header.SearchCounter + 1)
}

// SetSearchCounter - move the counter to a value and recompute
func (c *Candidate) SetSearchCounter(n uint64) (fingerprint.Digest, error) {
	if c.sealed {
		return fingerprint.Digest{}, fault.ErrAlreadySealed
	}
	c.header.SearchCounter = n
	c.fingerprint = c.ComputeFingerprint()
	return c.fingerprint, nil
}

// Seal - freeze the candidate into a record
//
// the digest must be the fingerprint of the current fields
func (c *Candidate) Seal(digest fingerprint.Digest) (*Record, error) {
	if c.sealed {
		return nil, fault.ErrAlreadySealed
	}
	if digest != c.ComputeFingerprint() {
		return nil, fault.ErrFingerprintDoesNotMatch
	}
	c.sealed = true
	return &Record{
		algorithm:   c.algorithm,
		header:      c.header.clone(),
		fingerprint: digest,
	}, nil
}
