// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/chainwork/fingerprint"
)

// Record - a sealed record
type Record struct {
	algorithm   fingerprint.Algorithm
	header      Header
	fingerprint fingerprint.Digest
}

// Restore - rebuild a record from previously stored fields
//
// nothing is checked here, use the validators before trusting the result
func Restore(algorithm fingerprint.Algorithm, header Header, digest fingerprint.Digest) *Record {
	return &Record{
		algorithm:   algorithm,
		header:      header.clone(),
		fingerprint: digest,
	}
}

// Position - index of this record in its chain
func (r *Record) Position() uint64 {
	return r.header.Position
}

// CreatedAt - creation time captured at construction
func (r *Record) CreatedAt() Timestamp {
	return r.header.CreatedAt
}

// Payload - copy of the opaque data
func (r *Record) Payload() []byte {
	return append([]byte(nil), r.header.Payload...)
}

// PreviousFingerprint - link to the preceding record
func (r *Record) PreviousFingerprint() fingerprint.Digest {
	return r.header.PreviousFingerprint
}

// SearchCounter - counter value that satisfied the proof
func (r *Record) SearchCounter() uint64 {
	return r.header.SearchCounter
}

// Fingerprint - the stored fingerprint
func (r *Record) Fingerprint() fingerprint.Digest {
	return r.fingerprint
}

// Algorithm - hash function used for the fingerprint
func (r *Record) Algorithm() fingerprint.Algorithm {
	return r.algorithm
}

// Header - copy of the hashed fields
func (r *Record) Header() Header {
	return r.header.clone()
}

// ComputeFingerprint - recompute from the stored fields
//
// a restored record with an unsupported algorithm gives the zero digest
func (r *Record) ComputeFingerprint() fingerprint.Digest {
	if !r.algorithm.Valid() {
		return fingerprint.Digest{}
	}
	return r.header.Fingerprint(r.algorithm)
}

// the JSON presentation of a record
type recordJSON struct {
	Position            uint64                `json:"position,string"`
	CreatedAt           string                `json:"createdAt"`
	Timestamp           Timestamp             `json:"timestamp,string"`
	Payload             string                `json:"payload"`
	PayloadHex          string                `json:"payloadHex"`
	PreviousFingerprint fingerprint.Digest    `json:"previousFingerprint"`
	SearchCounter       uint64                `json:"searchCounter,string"`
	Fingerprint         fingerprint.Digest    `json:"fingerprint"`
	Algorithm           fingerprint.Algorithm `json:"algorithm"`
}

// MarshalJSON - presentation form, payload shown as text
// with the exact bytes alongside in hex
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Position:            r.header.Position,
		CreatedAt:           r.header.CreatedAt.Time().Format(time.RFC3339Nano),
		Timestamp:           r.header.CreatedAt,
		Payload:             string(r.header.Payload),
		PayloadHex:          hex.EncodeToString(r.header.Payload),
		PreviousFingerprint: r.header.PreviousFingerprint,
		SearchCounter:       r.header.SearchCounter,
		Fingerprint:         r.fingerprint,
		Algorithm:           r.algorithm,
	})
}

// UnmarshalJSON - read the presentation form back
//
// createdAt is informational, the timestamp field is what is hashed;
// payloadHex takes priority over the text payload, which is lossy for
// bytes that are not UTF-8; like Restore nothing is verified
func (r *Record) UnmarshalJSON(data []byte) error {
	item := recordJSON{
		Algorithm: fingerprint.SHA256,
	}
	if err := json.Unmarshal(data, &item); nil != err {
		return err
	}

	payload := []byte(item.Payload)
	if "" != item.PayloadHex {
		b, err := hex.DecodeString(item.PayloadHex)
		if nil != err {
			return err
		}
		payload = b
	}

	r.algorithm = item.Algorithm
	r.header = Header{
		Position:            item.Position,
		CreatedAt:           item.Timestamp,
		Payload:             payload,
		PreviousFingerprint: item.PreviousFingerprint,
		SearchCounter:       item.SearchCounter,
	}
	r.fingerprint = item.Fingerprint
	return nil
}
