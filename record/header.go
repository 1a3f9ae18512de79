// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strconv"
	"time"

	"github.com/bitmark-inc/chainwork/fingerprint"
)

// Timestamp - creation time as nanoseconds since 1970-01-01T00:00 UTC
//
// captured once and hashed in its decimal form, so recomputation never
// depends on the current time
type Timestamp int64

// Now - the current time as a Timestamp
func Now() Timestamp {
	return Timestamp(time.Now().UnixNano())
}

// Time - convert to a time value
func (ts Timestamp) Time() time.Time {
	return time.Unix(0, int64(ts)).UTC()
}

// String - canonical decimal form
func (ts Timestamp) String() string {
	return strconv.FormatInt(int64(ts), 10)
}

// separator between packed fields
const separator = 0x00

// Header - the hashed fields of a record
type Header struct {
	Position            uint64
	CreatedAt           Timestamp
	Payload             []byte
	PreviousFingerprint fingerprint.Digest
	SearchCounter       uint64
}

// Pack - canonical byte form that the fingerprint is computed over
//
//   decimal(position) 00 decimal(createdAt) 00 payload 00 hex(previous) 00 decimal(counter)
func (header *Header) Pack() []byte {
	buffer := make([]byte, 0, 64+len(header.Payload)+fingerprint.HexLength)

	buffer = strconv.AppendUint(buffer, header.Position, 10)
	buffer = append(buffer, separator)
	buffer = strconv.AppendInt(buffer, int64(header.CreatedAt), 10)
	buffer = append(buffer, separator)
	buffer = append(buffer, header.Payload...)
	buffer = append(buffer, separator)
	previous, _ := header.PreviousFingerprint.MarshalText()
	buffer = append(buffer, previous...)
	buffer = append(buffer, separator)
	buffer = strconv.AppendUint(buffer, header.SearchCounter, 10)

	return buffer
}

// Fingerprint - digest of the packed header
func (header *Header) Fingerprint(algorithm fingerprint.Algorithm) fingerprint.Digest {
	return algorithm.Sum(header.Pack())
}

// clone with an independent payload
func (header *Header) clone() Header {
	h := *header
	h.Payload = append([]byte(nil), header.Payload...)
	return h
}
