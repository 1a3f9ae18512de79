// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised              = ExistsError("already initialised")
	ErrAlreadySealed                   = ExistsError("record is already sealed")
	ErrConfigurationNotTable           = ProcessError("configuration did not return a table")
	ErrDifficultyOutOfRange            = InvalidError("difficulty out of range")
	ErrEmptyChain                      = NotFoundError("chain has no records")
	ErrFingerprintDoesNotMatch         = RecordError("fingerprint does not match record contents")
	ErrFingerprintMissesDifficulty     = RecordError("fingerprint does not meet difficulty")
	ErrInvalidAlgorithm                = InvalidError("invalid fingerprint algorithm")
	ErrInvalidFingerprintLength        = LengthError("invalid fingerprint length")
	ErrInvalidLoggerChannel            = InvalidError("invalid logger channel")
	ErrInvalidStructPointer            = InvalidError("invalid struct pointer")
	ErrMissingDataDirectory            = InvalidError("data directory is not set")
	ErrMissingProver                   = InvalidError("proof of work search is not configured")
	ErrNilRecord                       = RecordError("record is nil")
	ErrPositionOutOfSequence           = RecordError("record position out of sequence")
	ErrPreviousFingerprintDoesNotMatch = RecordError("previous fingerprint does not match")
	ErrProofNotFound                   = NotFoundError("proof not found within search limit")
	ErrRecordNotFound                  = NotFoundError("record not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
