// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fingerprint

import (
	"crypto/sha256"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/chainwork/fault"
)

// Algorithm - hash function used to compute fingerprints
type Algorithm uint8

// supported algorithms, zero value is the default
const (
	SHA256 Algorithm = iota
	SHA3_256
)

var algorithmNames = map[Algorithm]string{
	SHA256:   "sha256",
	SHA3_256: "sha3-256",
}

// ParseAlgorithm - algorithm from its configuration name
// blank selects the default
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if "" == name {
		return SHA256, nil
	}
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return SHA256, fault.ErrInvalidAlgorithm
}

// Valid - true if the algorithm is supported
func (algorithm Algorithm) Valid() bool {
	_, ok := algorithmNames[algorithm]
	return ok
}

// String - configuration name of the algorithm
func (algorithm Algorithm) String() string {
	if n, ok := algorithmNames[algorithm]; ok {
		return n
	}
	return "unknown"
}

// Sum - digest of a byte slice
func (algorithm Algorithm) Sum(data []byte) Digest {
	switch algorithm {
	case SHA256:
		return Digest(sha256.Sum256(data))
	case SHA3_256:
		return Digest(sha3.Sum256(data))
	default:
		fault.Panicf("fingerprint.Sum: unsupported algorithm: %d", algorithm)
	}
	return Digest{}
}

// MarshalText - algorithm name for JSON
func (algorithm Algorithm) MarshalText() ([]byte, error) {
	if !algorithm.Valid() {
		return nil, fault.ErrInvalidAlgorithm
	}
	return []byte(algorithm.String()), nil
}

// UnmarshalText - convert a configuration name to an algorithm
func (algorithm *Algorithm) UnmarshalText(s []byte) error {
	a, err := ParseAlgorithm(string(s))
	if nil != err {
		return err
	}
	*algorithm = a
	return nil
}
