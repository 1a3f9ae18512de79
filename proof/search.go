// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"time"

	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/fingerprint"
	"github.com/bitmark-inc/chainwork/record"
)

// Result - outcome of one search
type Result struct {
	Digest   fingerprint.Digest
	Counter  uint64
	Attempts uint64
	Elapsed  time.Duration
}

// Rate - digests computed per second
func (result Result) Rate() float64 {
	seconds := result.Elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(result.Attempts) / seconds
}

// Search - find the digest that satisfies the target
//
// on success the candidate's counter is left at the value that produced
// the returned digest
func (s *Searcher) Search(candidate *record.Candidate, target difficulty.Difficulty) (fingerprint.Digest, error) {
	result, err := s.Run(candidate, target)
	if nil != err {
		return fingerprint.Digest{}, err
	}
	return result.Digest, nil
}

// Run - search and report the statistics
func (s *Searcher) Run(candidate *record.Candidate, target difficulty.Difficulty) (Result, error) {
	if nil != s.log {
		s.log.Debugf("search: position: %d  difficulty: %d  workers: %d  limit: %d",
			candidate.Header().Position, target.Zeros(), s.workers, s.limit)
	}

	start := time.Now()

	var result Result
	var err error
	if s.workers > 1 {
		result, err = s.sharded(candidate, target)
	} else {
		result, err = s.sequential(candidate, target)
	}
	result.Elapsed = time.Since(start)

	if nil != s.log {
		if nil != err {
			s.log.Warnf("search: position: %d  attempts: %d  error: %s", candidate.Header().Position, result.Attempts, err)
		} else {
			s.log.Infof("search: position: %d  counter: %d  digest: %s", candidate.Header().Position, result.Counter, result.Digest)
			s.log.Infof("hash rate: %f H/s", result.Rate())
		}
	}
	return result, err
}

// test the current counter then increment until the target is met
func (s *Searcher) sequential(candidate *record.Candidate, target difficulty.Difficulty) (Result, error) {
	result := Result{}
	digest := candidate.ComputeFingerprint()

	for {
		result.Attempts += 1
		if target.IsMetBy(digest) {
			result.Digest = digest
			result.Counter = candidate.SearchCounter()
			return result, nil
		}

		if s.limit > 0 && result.Attempts >= s.limit {
			return result, fault.ErrProofNotFound
		}

		s.report(result.Attempts, candidate.SearchCounter())

		d, err := candidate.Increment()
		if nil != err {
			return result, err
		}
		digest = d
	}
}

// debug progress every reportInterval attempts, rate limited
func (s *Searcher) report(attempts uint64, value uint64) {
	if nil == s.log || 0 == s.reportInterval || 0 != attempts%s.reportInterval {
		return
	}
	if s.progress.Allow() {
		s.log.Debugf("counter[%d]: %d", attempts, value)
	}
}
