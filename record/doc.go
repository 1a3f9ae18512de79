// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - records of the chain
//
// a Candidate is the mutable form used while searching for a proof,
// sealing it produces a Record which cannot be changed afterwards
package record
