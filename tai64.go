// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tai64 - TAI64, TAI64N and TAI64NA time labels
//
// Fixed-width big endian encodings of a count of SI seconds on the
// TAI scale, optionally extended by a nanosecond and an attosecond
// count.  The seconds count is offset so that the epoch
// 1970-01-01 00:00:00 TAI packs as 2^62, which keeps every
// representable instant non-negative and makes the packed bytes sort
// in time order.
//
// The seconds count is capped at 2^63-1 so the top bit of the packed
// form is never set and a two's complement reader cannot mistake a
// label for a negative value.  Decoding applies the same field checks
// as construction, so an out of range label can neither be created
// nor smuggled in through a wire buffer.
package tai64

import (
	"encoding/hex"
	"strconv"

	"github.com/bitmark-inc/tai64/fault"
)

// limits and reference points for the seconds count
const (
	// MinSeconds - lowest valid seconds count
	MinSeconds uint64 = 0

	// MaxSeconds - highest valid seconds count; 2^63-1 keeps the top
	// bit of the packed form clear
	MaxSeconds uint64 = 1<<63 - 1

	// EpochSeconds - 1970-01-01 00:00:00 TAI
	EpochSeconds uint64 = 1 << 62

	// UnixEpochSeconds - 1970-01-01 00:00:10 TAI, the instant of
	// 1970-01-01 00:00:00 UTC
	UnixEpochSeconds uint64 = EpochSeconds + 10
)

// MaxFraction - highest valid nanosecond or attosecond count
const MaxFraction uint32 = 999999999

// byte counts of the packed forms
const (
	TaiLength  = 8
	TaiNLength = 12
	TaiALength = 16
)

// compare two unsigned counts, -1/0/+1 convention
func compareUint64(a uint64, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUint32(a uint32, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// range check a fractional count
func checkFraction(field string, value uint32) error {
	if value > MaxFraction {
		return fault.RangeError{
			Field: field,
			Value: uint64(value),
			Min:   0,
			Max:   uint64(MaxFraction),
		}
	}
	return nil
}

// decode the first size bytes from hex text
//
// only the leading 2*size characters are examined so a label can be
// read from the front of a longer hex stream
func hexWindow(s string, size int) ([]byte, error) {
	window := hex.EncodedLen(size)
	if len(s) < window {
		return nil, fault.ErrHexTooShort
	}
	buffer := make([]byte, size)
	_, err := hex.Decode(buffer, []byte(s[:window]))
	if nil != err {
		return nil, fault.ErrMalformedHex
	}
	return buffer, nil
}

func isDigits(s string) bool {
	if 0 == len(s) {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// convert unsigned decimal seconds text
//
// text with a sign, a fraction marker or any other stray character is
// rejected as non-integral; digits that overflow 64 bits are a range
// failure like any other over-large count
func parseSeconds(s string) (uint64, error) {
	if !isDigits(s) {
		return 0, fault.ErrNotIntegral
	}
	sec, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fault.RangeError{
			Field: "sec",
			Value: sec,
			Min:   MinSeconds,
			Max:   MaxSeconds,
		}
	}
	return sec, nil
}

// convert one fully padded 9 digit fraction field
func parseFraction(s string) (uint32, error) {
	if 9 != len(s) || !isDigits(s) {
		return 0, fault.ErrNotIntegral
	}
	f, err := strconv.ParseUint(s, 10, 32)
	if nil != err {
		return 0, fault.ErrNotIntegral
	}
	return uint32(f), nil
}
