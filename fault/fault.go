// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// error base
type GenericError string

// to allow for different classes of errors
type DecodeError GenericError
type InvalidError GenericError

// RangeError - an integral count outside its field limits
//
// carries the rejected value so the message can show it; construction
// and decoding report identical errors for the same bad count
type RangeError struct {
	Field string // "sec", "nano" or "atto"
	Value uint64 // the rejected count
	Min   uint64 // lowest valid count
	Max   uint64 // highest valid count
}

// common errors - keep in alphabetic order
var (
	ErrHexTooShort        = DecodeError("hex text too short")
	ErrMalformedHex       = DecodeError("malformed hex text")
	ErrNotIntegral        = InvalidError("not an integral value")
	ErrTaiABufferTooShort = DecodeError("buffer too short for tai64na")
	ErrTaiBufferTooShort  = DecodeError("buffer too short for tai64")
	ErrTaiNBufferTooShort = DecodeError("buffer too short for tai64n")
	ErrWrongLengthHex     = DecodeError("hex text is the wrong length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e DecodeError) Error() string  { return string(e) }
func (e InvalidError) Error() string { return string(e) }

func (e RangeError) Error() string {
	return fmt.Sprintf("%s must be in %d..%d: %d", e.Field, e.Min, e.Max, e.Value)
}

// determine the class of an error
func IsErrDecode(e error) bool  { _, ok := e.(DecodeError); return ok }
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }
func IsErrRange(e error) bool   { _, ok := e.(RangeError); return ok }
