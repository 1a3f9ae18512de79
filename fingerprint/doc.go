// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fingerprint - record fingerprint digests
//
// a fingerprint is a 256 bit digest shown as 64 lowercase hex
// characters, computed by SHA-256 (default) or SHA3-256
package fingerprint
