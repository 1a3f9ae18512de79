// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chainwork/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start: %d", c.Uint64())

	c.Increment()
	c.Increment()
	assert.Equal(t, uint64(2), c.Uint64(), "wrong value after increments")

	assert.Equal(t, uint64(12), c.Add(10), "wrong value after add")
	assert.False(t, c.IsZero(), "counter is zero")
}

func TestConcurrentAdd(t *testing.T) {
	var c counter.Counter

	wg := new(sync.WaitGroup)
	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Add(2)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(16000), c.Uint64(), "lost updates")
}

func TestLowerTo(t *testing.T) {
	c := counter.Counter(100)

	assert.False(t, c.LowerTo(150), "raised value")
	assert.Equal(t, uint64(100), c.Uint64(), "value changed")

	assert.True(t, c.LowerTo(40), "did not lower")
	assert.Equal(t, uint64(40), c.Uint64(), "wrong lowered value")

	assert.False(t, c.LowerTo(40), "equal value reported as change")
}

func TestLowerToConcurrent(t *testing.T) {
	c := counter.Counter(^uint64(0))

	wg := new(sync.WaitGroup)
	for i := uint64(1); i <= 50; i += 1 {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			c.LowerTo(n * 7)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, uint64(7), c.Uint64(), "minimum not kept")
}
