// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fingerprint

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/chainwork/fault"
)

// Length - number of bytes in the digest
const Length = 32

// HexLength - number of characters in the text form
const HexLength = 2 * Length

// Digest - type for a fingerprint
// stored in hash output order, so the text form is the usual hex digest
type Digest [Length]byte

// Sentinel - previous fingerprint of the origin record
var Sentinel = Digest{}

// IsSentinel - true for the all zero digest
func (digest Digest) IsSentinel() bool {
	return Sentinel == digest
}

// LeadingZeros - count of leading '0' characters in the hex form
func (digest Digest) LeadingZeros() int {
	n := 0
	for _, b := range digest {
		if 0 == b {
			n += 2
			continue
		}
		if 0 == b&0xf0 {
			n += 1
		}
		break
	}
	return n
}

// String - hex form for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - hex form for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<fingerprint:" + hex.EncodeToString(digest[:]) + ">"
}

// Scan - convert a hex representation to a digest for use by the fmt package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, HexLength)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if HexLength != len(s) {
		return fault.ErrInvalidFingerprintLength
	}
	buffer := make([]byte, Length)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(digest[:], buffer)
	return nil
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidFingerprintLength
	}
	copy(digest[:], buffer)
	return nil
}
