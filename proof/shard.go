// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"math"
	"sync"

	"github.com/bitmark-inc/chainwork/counter"
	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/record"
)

// split the counter space between workers
//
// worker w tries start+w, start+w+N, ... in increasing order and stops
// once it passes the lowest valid counter found so far, so the result is
// the same counter the sequential search would find
func (s *Searcher) sharded(candidate *record.Candidate, target difficulty.Difficulty) (Result, error) {
	algorithm := candidate.Algorithm()
	start := candidate.SearchCounter()
	stride := uint64(s.workers)

	end := uint64(math.MaxUint64)
	if s.limit > 0 && start+s.limit > start {
		end = start + s.limit
	}

	best := counter.Counter(end)
	var attempts counter.Counter

	wg := new(sync.WaitGroup)
	for w := uint64(0); w < stride; w += 1 {
		wg.Add(1)
		go func(header record.Header, offset uint64) {
			defer wg.Done()

			n := uint64(0)
		search:
			for i := start + offset; i < best.Uint64(); i += stride {
				header.SearchCounter = i
				n += 1
				if target.IsMetBy(header.Fingerprint(algorithm)) {
					best.LowerTo(i)
					break search
				}
				s.report(n, i)
				if i+stride < i {
					break search
				}
			}
			attempts.Add(n)
		}(candidate.Header(), w)
	}
	wg.Wait()

	result := Result{
		Attempts: attempts.Uint64(),
	}

	found := best.Uint64()
	if found >= end {
		return result, fault.ErrProofNotFound
	}

	digest, err := candidate.SetSearchCounter(found)
	if nil != err {
		return result, err
	}
	result.Digest = digest
	result.Counter = found
	return result, nil
}
