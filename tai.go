// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tai64

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tai64/fault"
)

// Tai - a TAI64 label: a second count on the TAI scale
//
// stored as one unsigned 64 bit integer
// packed as 8 bytes big endian
// shown as 16 lowercase hex digits in text form
type Tai struct {
	sec uint64
}

// shared immutable reference labels
var (
	// EpochTai - 1970-01-01 00:00:00 TAI
	EpochTai = mustTai(NewTai(EpochSeconds))

	// MinTai - earliest representable label
	MinTai = mustTai(NewTai(MinSeconds))

	// MaxTai - latest representable label
	MaxTai = mustTai(NewTai(MaxSeconds))
)

// reference labels are built from literal in-range counts
func mustTai(tai Tai, err error) Tai {
	if nil != err {
		logger.Panicf("invalid tai64 reference label: %s", err)
	}
	return tai
}

// NewTai - create a label from a second count
func NewTai(sec uint64) (Tai, error) {
	if sec > MaxSeconds {
		return Tai{}, fault.RangeError{
			Field: "sec",
			Value: sec,
			Min:   MinSeconds,
			Max:   MaxSeconds,
		}
	}
	return Tai{sec: sec}, nil
}

// UnpackTai - decode the first TaiLength bytes of a buffer
//
// the count is checked exactly as NewTai checks it, so bytes with the
// top bit set are rejected even though they fit in 64 bits
func UnpackTai(buffer []byte) (Tai, error) {
	if len(buffer) < TaiLength {
		return Tai{}, fault.ErrTaiBufferTooShort
	}
	return NewTai(binary.BigEndian.Uint64(buffer))
}

// TaiFromHex - decode the first 2*TaiLength hex digits of a string
//
// trailing characters are ignored so a label can be taken from the
// front of a longer hex stream
func TaiFromHex(s string) (Tai, error) {
	buffer, err := hexWindow(s, TaiLength)
	if nil != err {
		return Tai{}, err
	}
	return UnpackTai(buffer)
}

// ParseTai - convert decimal seconds text back to a label
//
// inverse of String
func ParseTai(s string) (Tai, error) {
	sec, err := parseSeconds(s)
	if nil != err {
		return Tai{}, err
	}
	return NewTai(sec)
}

// Sec - the second count
func (tai Tai) Sec() uint64 {
	return tai.sec
}

// Size - number of bytes in the packed form
func (tai Tai) Size() int {
	return TaiLength
}

// Pack - encode as 8 bytes big endian
func (tai Tai) Pack() []byte {
	buffer := make([]byte, TaiLength)
	binary.BigEndian.PutUint64(buffer, tai.sec)
	return buffer
}

// Hex - lowercase hex of the packed form
func (tai Tai) Hex() string {
	return hex.EncodeToString(tai.Pack())
}

// WithSec - a copy with the second count replaced
//
// the new count is checked exactly as NewTai checks it
func (tai Tai) WithSec(sec uint64) (Tai, error) {
	return NewTai(sec)
}

// Compare - three way comparison with a label of the same precision
//
// returns -1 if tai is earlier, +1 if later, 0 if the same instant
func (tai Tai) Compare(rhs Tai) int {
	return compareUint64(tai.sec, rhs.sec)
}

// Before - strict order test
func (tai Tai) Before(rhs Tai) bool {
	return tai.Compare(rhs) < 0
}

// After - strict order test
func (tai Tai) After(rhs Tai) bool {
	return tai.Compare(rhs) > 0
}

// Float64 - the label as a 64 bit float
//
// counts above 2^53 lose precision
func (tai Tai) Float64() float64 {
	return float64(tai.sec)
}

// String - decimal second count, no fraction marker
func (tai Tai) String() string {
	return strconv.FormatUint(tai.sec, 10)
}

// GoString - hex tagged with the label type, for %#v
func (tai Tai) GoString() string {
	return "<TAI64:" + tai.Hex() + ">"
}

// Scan - read a label for the fmt scan routines
//
// the token must be exactly 2*TaiLength hex digits
func (tai *Tai) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if hex.EncodedLen(TaiLength) != len(token) {
		return fault.ErrWrongLengthHex
	}

	t, err := TaiFromHex(string(token))
	if nil != err {
		return err
	}
	*tai = t
	return nil
}

// MarshalText - convert to exactly 2*TaiLength hex digits
func (tai Tai) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(TaiLength)
	buffer := make([]byte, size)
	hex.Encode(buffer, tai.Pack())
	return buffer, nil
}

// UnmarshalText - convert from exactly 2*TaiLength hex digits
//
// unlike TaiFromHex no trailing characters are allowed
func (tai *Tai) UnmarshalText(s []byte) error {
	if hex.EncodedLen(TaiLength) != len(s) {
		return fault.ErrWrongLengthHex
	}
	buffer := make([]byte, TaiLength)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrMalformedHex
	}
	t, err := UnpackTai(buffer)
	if nil != err {
		return err
	}
	*tai = t
	return nil
}
