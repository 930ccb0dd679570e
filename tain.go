// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tai64

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tai64/fault"
)

// TaiN - a TAI64N label: a second count and a nanosecond count
//
// packed as 12 bytes big endian, seconds first
// shown as 24 lowercase hex digits in text form
type TaiN struct {
	sec  uint64
	nano uint32
}

// shared immutable reference labels
var (
	// EpochTaiN - 1970-01-01 00:00:00.000000000 TAI
	EpochTaiN = mustTaiN(NewTaiN(EpochSeconds, 0))

	// MinTaiN - earliest representable label
	MinTaiN = mustTaiN(NewTaiN(MinSeconds, 0))

	// MaxTaiN - latest representable label
	MaxTaiN = mustTaiN(NewTaiN(MaxSeconds, MaxFraction))
)

func mustTaiN(tain TaiN, err error) TaiN {
	if nil != err {
		logger.Panicf("invalid tai64n reference label: %s", err)
	}
	return tain
}

// NewTaiN - create a label from second and nanosecond counts
func NewTaiN(sec uint64, nano uint32) (TaiN, error) {
	if sec > MaxSeconds {
		return TaiN{}, fault.RangeError{
			Field: "sec",
			Value: sec,
			Min:   MinSeconds,
			Max:   MaxSeconds,
		}
	}
	if err := checkFraction("nano", nano); nil != err {
		return TaiN{}, err
	}
	return TaiN{sec: sec, nano: nano}, nil
}

// TaiNFromTai - widen a label by a zero nanosecond count
//
// the result names the same instant, so ordering against the original
// label is preserved
func TaiNFromTai(tai Tai) TaiN {
	return TaiN{sec: tai.sec, nano: 0}
}

// UnpackTaiN - decode the first TaiNLength bytes of a buffer
//
// both counts are checked exactly as NewTaiN checks them: a buffer
// carrying a nanosecond count above MaxFraction is rejected
func UnpackTaiN(buffer []byte) (TaiN, error) {
	if len(buffer) < TaiNLength {
		return TaiN{}, fault.ErrTaiNBufferTooShort
	}
	return NewTaiN(
		binary.BigEndian.Uint64(buffer),
		binary.BigEndian.Uint32(buffer[TaiLength:]),
	)
}

// TaiNFromHex - decode the first 2*TaiNLength hex digits of a string
//
// trailing characters are ignored so a label can be taken from the
// front of a longer hex stream
func TaiNFromHex(s string) (TaiN, error) {
	buffer, err := hexWindow(s, TaiNLength)
	if nil != err {
		return TaiN{}, err
	}
	return UnpackTaiN(buffer)
}

// ParseTaiN - convert decimal "sec.nanoseconds" text back to a label
//
// inverse of String: the fraction must be exactly 9 digits
func ParseTaiN(s string) (TaiN, error) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return TaiN{}, fault.ErrNotIntegral
	}
	sec, err := parseSeconds(s[:dot])
	if nil != err {
		return TaiN{}, err
	}
	nano, err := parseFraction(s[dot+1:])
	if nil != err {
		return TaiN{}, err
	}
	return NewTaiN(sec, nano)
}

// Sec - the second count
func (tain TaiN) Sec() uint64 {
	return tain.sec
}

// Nano - the nanosecond count
func (tain TaiN) Nano() uint32 {
	return tain.nano
}

// Size - number of bytes in the packed form
func (tain TaiN) Size() int {
	return TaiNLength
}

// Pack - encode as 12 bytes big endian, seconds first
func (tain TaiN) Pack() []byte {
	buffer := make([]byte, TaiNLength)
	binary.BigEndian.PutUint64(buffer, tain.sec)
	binary.BigEndian.PutUint32(buffer[TaiLength:], tain.nano)
	return buffer
}

// Hex - lowercase hex of the packed form
func (tain TaiN) Hex() string {
	return hex.EncodeToString(tain.Pack())
}

// WithSec - a copy with the second count replaced
func (tain TaiN) WithSec(sec uint64) (TaiN, error) {
	return NewTaiN(sec, tain.nano)
}

// WithNano - a copy with the nanosecond count replaced
func (tain TaiN) WithNano(nano uint32) (TaiN, error) {
	return NewTaiN(tain.sec, nano)
}

// Compare - three way comparison with a label of the same precision
//
// seconds count first, then nanoseconds
func (tain TaiN) Compare(rhs TaiN) int {
	if r := compareUint64(tain.sec, rhs.sec); 0 != r {
		return r
	}
	return compareUint32(tain.nano, rhs.nano)
}

// CompareTai - three way comparison with a coarser label
//
// the coarser label is taken to have a zero nanosecond count
func (tain TaiN) CompareTai(rhs Tai) int {
	return tain.Compare(TaiNFromTai(rhs))
}

// Before - strict order test
func (tain TaiN) Before(rhs TaiN) bool {
	return tain.Compare(rhs) < 0
}

// After - strict order test
func (tain TaiN) After(rhs TaiN) bool {
	return tain.Compare(rhs) > 0
}

// Frac - the fractional part as a 64 bit float in [0,1)
func (tain TaiN) Frac() float64 {
	return float64(tain.nano) * 1e-9
}

// Float64 - the whole label as a 64 bit float
//
// counts above 2^53 lose precision
func (tain TaiN) Float64() float64 {
	return float64(tain.sec) + tain.Frac()
}

// String - decimal "sec.nanoseconds", fraction always 9 digits
func (tain TaiN) String() string {
	return fmt.Sprintf("%d.%09d", tain.sec, tain.nano)
}

// GoString - hex tagged with the label type, for %#v
func (tain TaiN) GoString() string {
	return "<TAI64N:" + tain.Hex() + ">"
}

// Scan - read a label for the fmt scan routines
//
// the token must be exactly 2*TaiNLength hex digits
func (tain *TaiN) Scan(state fmt.ScanState, verb rune) error {
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
	if hex.EncodedLen(TaiNLength) != len(token) {
		return fault.ErrWrongLengthHex
	}

	t, err := TaiNFromHex(string(token))
	if nil != err {
		return err
	}
	*tain = t
	return nil
}

// MarshalText - convert to exactly 2*TaiNLength hex digits
func (tain TaiN) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(TaiNLength)
	buffer := make([]byte, size)
	hex.Encode(buffer, tain.Pack())
	return buffer, nil
}

// UnmarshalText - convert from exactly 2*TaiNLength hex digits
//
// unlike TaiNFromHex no trailing characters are allowed
func (tain *TaiN) UnmarshalText(s []byte) error {
	if hex.EncodedLen(TaiNLength) != len(s) {
		return fault.ErrWrongLengthHex
	}
	buffer := make([]byte, TaiNLength)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrMalformedHex
	}
	t, err := UnpackTaiN(buffer)
	if nil != err {
		return err
	}
	*tain = t
	return nil
}
