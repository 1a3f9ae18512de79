// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// chainwork - build and verify a proof-of-work record chain
//
// the Lua configuration file sets the difficulty, the fingerprint
// algorithm, the search workers and the payloads to append after the
// origin record; extra payloads may follow the run command
//
//   chainwork --config-file=chainwork.conf run "more data" "and more"
package main
