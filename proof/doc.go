// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - brute force proof-of-work search
//
// the search counter of a candidate is advanced until its fingerprint
// has the required leading zeros; with several workers the counter
// space is interleaved and the lowest valid counter is still the one
// returned
package proof
