// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// chainwork-cli - stateless record utilities
//
// compute a fingerprint from explicit fields, run a single
// proof-of-work search, describe a difficulty or verify a chain saved
// by "chainwork --verbose"; results are written as JSON
package main
