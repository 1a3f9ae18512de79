// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"fmt"
	"math"
	"strings"

	"github.com/bitmark-inc/chainwork/fault"
	"github.com/bitmark-inc/chainwork/fingerprint"
)

// Default - leading zeros required when nothing is configured
const Default = 4

// Maximum - every character of the fingerprint would be zero
const Maximum = fingerprint.HexLength

// Difficulty - count of leading hex '0' characters a valid fingerprint must have
//
// the value is fixed once created so it can be shared freely
type Difficulty struct {
	zeros  int
	prefix string
}

// New - create a difficulty requiring n leading zeros
func New(n int) (Difficulty, error) {
	if n < 0 || n > Maximum {
		return Difficulty{}, fault.ErrDifficultyOutOfRange
	}
	return Difficulty{
		zeros:  n,
		prefix: strings.Repeat("0", n),
	}, nil
}

// MustNew - like New but panics on an out of range value
func MustNew(n int) Difficulty {
	d, err := New(n)
	if nil != err {
		fault.Panicf("difficulty.MustNew(%d): %s", n, err)
	}
	return d
}

// Zeros - the number of leading zeros required
func (difficulty Difficulty) Zeros() int {
	return difficulty.zeros
}

// Prefix - the text every valid fingerprint starts with
func (difficulty Difficulty) Prefix() string {
	return difficulty.prefix
}

// IsMetBy - true if the digest has at least the required leading zeros
func (difficulty Difficulty) IsMetBy(digest fingerprint.Digest) bool {
	return digest.LeadingZeros() >= difficulty.zeros
}

// ExpectedAttempts - mean number of digests computed to find one valid fingerprint
func (difficulty Difficulty) ExpectedAttempts() float64 {
	return math.Pow(16, float64(difficulty.zeros))
}

// String - decimal number of zeros
func (difficulty Difficulty) String() string {
	return fmt.Sprintf("%d", difficulty.zeros)
}

// GoString - for the %#v format show the required prefix
func (difficulty Difficulty) GoString() string {
	return fmt.Sprintf("<difficulty:%d:%q>", difficulty.zeros, difficulty.prefix)
}
