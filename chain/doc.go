// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - an append only sequence of proof-of-work records
//
// the chain is created with an origin record, every later record links
// to the fingerprint of the one before it and must meet the chain's
// difficulty; Verify re-derives all of this from the stored fields
package chain
