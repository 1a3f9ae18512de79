// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/fingerprint"
	"github.com/bitmark-inc/chainwork/record"
)

// OriginPayload - payload of the first record
const OriginPayload = "Genesis Block"

//go:generate mockgen -source=chain.go -destination=mocks/prover.go -package=mocks

// Prover - the proof-of-work search applied to each new record
type Prover interface {
	Search(candidate *record.Candidate, target difficulty.Difficulty) (fingerprint.Digest, error)
}

// Chain - ordered records sharing one difficulty
type Chain struct {
	sync.RWMutex

	log        *logger.L
	difficulty difficulty.Difficulty
	algorithm  fingerprint.Algorithm
	prover     Prover
	records    []*record.Record
}

// New - create a chain holding its proof-of-work origin record
func New(log *logger.L, target difficulty.Difficulty, algorithm fingerprint.Algorithm, prover Prover) (*Chain, error) {
	if nil == prover {
		return nil, fault.ErrMissingProver
	}
	if !algorithm.Valid() {
		return nil, fault.ErrInvalidAlgorithm
	}

	c := &Chain{
		log:        log,
		difficulty: target,
		algorithm:  algorithm,
		prover:     prover,
		records:    make([]*record.Record, 0, 16),
	}

	origin, err := c.createOrigin()
	if nil != err {
		return nil, err
	}
	c.records = append(c.records, origin)

	if nil != log {
		log.Infof("origin: %s  difficulty: %d  algorithm: %s", origin.Fingerprint(), target.Zeros(), algorithm)
	}
	return c, nil
}

// internal: position 0, sentinel link
func (c *Chain) createOrigin() (*record.Record, error) {
	candidate := record.NewCandidate(c.algorithm, 0, []byte(OriginPayload), fingerprint.Sentinel)
	return c.seal(candidate)
}

// Append - add a record holding the payload
//
// the payload is not examined; on error the chain is unchanged
func (c *Chain) Append(payload []byte) (*record.Record, error) {
	c.Lock()
	defer c.Unlock()

	last := c.records[len(c.records)-1]
	position := uint64(len(c.records))

	candidate := record.NewCandidate(c.algorithm, position, payload, last.Fingerprint())
	r, err := c.seal(candidate)
	if nil != err {
		if nil != c.log {
			c.log.Errorf("append: position: %d  error: %s", position, err)
		}
		return nil, err
	}
	c.records = append(c.records, r)

	if nil != c.log {
		c.log.Debugf("append: position: %d  counter: %d  fingerprint: %s", position, r.SearchCounter(), r.Fingerprint())
	}
	return r, nil
}

// internal: run the search and freeze the result
func (c *Chain) seal(candidate *record.Candidate) (*record.Record, error) {
	digest, err := c.prover.Search(candidate, c.difficulty)
	if nil != err {
		return nil, err
	}
	if !c.difficulty.IsMetBy(digest) {
		return nil, fault.ErrFingerprintMissesDifficulty
	}
	return candidate.Seal(digest)
}

// Difficulty - leading zeros required of every fingerprint
func (c *Chain) Difficulty() difficulty.Difficulty {
	return c.difficulty
}

// Algorithm - hash function used for fingerprints
func (c *Chain) Algorithm() fingerprint.Algorithm {
	return c.algorithm
}

// Len - number of records including the origin
func (c *Chain) Len() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.records)
}

// Record - the record at a position
func (c *Chain) Record(position int) (*record.Record, error) {
	c.RLock()
	defer c.RUnlock()
	if position < 0 || position >= len(c.records) {
		return nil, fault.ErrRecordNotFound
	}
	return c.records[position], nil
}

// Last - the most recent record
func (c *Chain) Last() *record.Record {
	c.RLock()
	defer c.RUnlock()
	return c.records[len(c.records)-1]
}

// Records - snapshot of the sequence
func (c *Chain) Records() []*record.Record {
	c.RLock()
	defer c.RUnlock()
	return append([]*record.Record(nil), c.records...)
}
