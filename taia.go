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

// TaiA - a TAI64NA label: second, nanosecond and attosecond counts
//
// packed as 16 bytes big endian, seconds first
// shown as 32 lowercase hex digits in text form
type TaiA struct {
	sec  uint64
	nano uint32
	atto uint32
}

// shared immutable reference labels
var (
	// EpochTaiA - 1970-01-01 00:00:00.000000000000000000 TAI
	EpochTaiA = mustTaiA(NewTaiA(EpochSeconds, 0, 0))

	// MinTaiA - earliest representable label
	MinTaiA = mustTaiA(NewTaiA(MinSeconds, 0, 0))

	// MaxTaiA - latest representable label
	MaxTaiA = mustTaiA(NewTaiA(MaxSeconds, MaxFraction, MaxFraction))
)

func mustTaiA(taia TaiA, err error) TaiA {
	if nil != err {
		logger.Panicf("invalid tai64na reference label: %s", err)
	}
	return taia
}

// NewTaiA - create a label from second, nanosecond and attosecond counts
func NewTaiA(sec uint64, nano uint32, atto uint32) (TaiA, error) {
	if sec > MaxSeconds {
		return TaiA{}, fault.RangeError{
			Field: "sec",
			Value: sec,
			Min:   MinSeconds,
			Max:   MaxSeconds,
		}
	}
	if err := checkFraction("nano", nano); nil != err {
		return TaiA{}, err
	}
	if err := checkFraction("atto", atto); nil != err {
		return TaiA{}, err
	}
	return TaiA{sec: sec, nano: nano, atto: atto}, nil
}

// TaiAFromTai - widen a label by zero nanosecond and attosecond counts
func TaiAFromTai(tai Tai) TaiA {
	return TaiA{sec: tai.sec, nano: 0, atto: 0}
}

// TaiAFromTaiN - widen a label by a zero attosecond count
func TaiAFromTaiN(tain TaiN) TaiA {
	return TaiA{sec: tain.sec, nano: tain.nano, atto: 0}
}

// UnpackTaiA - decode the first TaiALength bytes of a buffer
//
// all counts are checked exactly as NewTaiA checks them
func UnpackTaiA(buffer []byte) (TaiA, error) {
	if len(buffer) < TaiALength {
		return TaiA{}, fault.ErrTaiABufferTooShort
	}
	return NewTaiA(
		binary.BigEndian.Uint64(buffer),
		binary.BigEndian.Uint32(buffer[TaiLength:]),
		binary.BigEndian.Uint32(buffer[TaiNLength:]),
	)
}

// TaiAFromHex - decode the first 2*TaiALength hex digits of a string
//
// trailing characters are ignored so a label can be taken from the
// front of a longer hex stream
func TaiAFromHex(s string) (TaiA, error) {
	buffer, err := hexWindow(s, TaiALength)
	if nil != err {
		return TaiA{}, err
	}
	return UnpackTaiA(buffer)
}

// ParseTaiA - convert decimal "sec.nanoatto" text back to a label
//
// inverse of String: the fraction must be exactly 18 digits, the
// first 9 nanoseconds and the last 9 attoseconds
func ParseTaiA(s string) (TaiA, error) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return TaiA{}, fault.ErrNotIntegral
	}
	sec, err := parseSeconds(s[:dot])
	if nil != err {
		return TaiA{}, err
	}
	frac := s[dot+1:]
	if 18 != len(frac) {
		return TaiA{}, fault.ErrNotIntegral
	}
	nano, err := parseFraction(frac[:9])
	if nil != err {
		return TaiA{}, err
	}
	atto, err := parseFraction(frac[9:])
	if nil != err {
		return TaiA{}, err
	}
	return NewTaiA(sec, nano, atto)
}

// Sec - the second count
func (taia TaiA) Sec() uint64 {
	return taia.sec
}

// Nano - the nanosecond count
func (taia TaiA) Nano() uint32 {
	return taia.nano
}

// Atto - the attosecond count
func (taia TaiA) Atto() uint32 {
	return taia.atto
}

// Size - number of bytes in the packed form
func (taia TaiA) Size() int {
	return TaiALength
}

// Pack - encode as 16 bytes big endian, seconds first
func (taia TaiA) Pack() []byte {
	buffer := make([]byte, TaiALength)
	binary.BigEndian.PutUint64(buffer, taia.sec)
	binary.BigEndian.PutUint32(buffer[TaiLength:], taia.nano)
	binary.BigEndian.PutUint32(buffer[TaiNLength:], taia.atto)
	return buffer
}

// Hex - lowercase hex of the packed form
func (taia TaiA) Hex() string {
	return hex.EncodeToString(taia.Pack())
}

// WithSec - a copy with the second count replaced
func (taia TaiA) WithSec(sec uint64) (TaiA, error) {
	return NewTaiA(sec, taia.nano, taia.atto)
}

// WithNano - a copy with the nanosecond count replaced
func (taia TaiA) WithNano(nano uint32) (TaiA, error) {
	return NewTaiA(taia.sec, nano, taia.atto)
}

// WithAtto - a copy with the attosecond count replaced
func (taia TaiA) WithAtto(atto uint32) (TaiA, error) {
	return NewTaiA(taia.sec, taia.nano, atto)
}

// Compare - three way comparison with a label of the same precision
//
// seconds count first, then nanoseconds, then attoseconds
func (taia TaiA) Compare(rhs TaiA) int {
	if r := compareUint64(taia.sec, rhs.sec); 0 != r {
		return r
	}
	if r := compareUint32(taia.nano, rhs.nano); 0 != r {
		return r
	}
	return compareUint32(taia.atto, rhs.atto)
}

// CompareTaiN - three way comparison with a coarser label
//
// the coarser label is taken to have a zero attosecond count
func (taia TaiA) CompareTaiN(rhs TaiN) int {
	return taia.Compare(TaiAFromTaiN(rhs))
}

// CompareTai - three way comparison with the coarsest label
//
// the coarser label is taken to have zero fraction counts
func (taia TaiA) CompareTai(rhs Tai) int {
	return taia.Compare(TaiAFromTai(rhs))
}

// Before - strict order test
func (taia TaiA) Before(rhs TaiA) bool {
	return taia.Compare(rhs) < 0
}

// After - strict order test
func (taia TaiA) After(rhs TaiA) bool {
	return taia.Compare(rhs) > 0
}

// Frac - the fractional part as a 64 bit float in [0,1)
//
// attoseconds are folded into the nanosecond count before scaling to
// limit the rounding error
func (taia TaiA) Frac() float64 {
	return (float64(taia.atto)*1e-9 + float64(taia.nano)) * 1e-9
}

// Float64 - the whole label as a 64 bit float
//
// counts above 2^53 lose precision
func (taia TaiA) Float64() float64 {
	return float64(taia.sec) + taia.Frac()
}

// String - decimal "sec.nanoatto", fraction always 18 digits
func (taia TaiA) String() string {
	return fmt.Sprintf("%d.%09d%09d", taia.sec, taia.nano, taia.atto)
}

// GoString - hex tagged with the label type, for %#v
func (taia TaiA) GoString() string {
	return "<TAI64NA:" + taia.Hex() + ">"
}

// Scan - read a label for the fmt scan routines
//
// the token must be exactly 2*TaiALength hex digits
func (taia *TaiA) Scan(state fmt.ScanState, verb rune) error {
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
	if hex.EncodedLen(TaiALength) != len(token) {
		return fault.ErrWrongLengthHex
	}

	t, err := TaiAFromHex(string(token))
	if nil != err {
		return err
	}
	*taia = t
	return nil
}

// MarshalText - convert to exactly 2*TaiALength hex digits
func (taia TaiA) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(TaiALength)
	buffer := make([]byte, size)
	hex.Encode(buffer, taia.Pack())
	return buffer, nil
}

// UnmarshalText - convert from exactly 2*TaiALength hex digits
//
// unlike TaiAFromHex no trailing characters are allowed
func (taia *TaiA) UnmarshalText(s []byte) error {
	if hex.EncodedLen(TaiALength) != len(s) {
		return fault.ErrWrongLengthHex
	}
	buffer := make([]byte, TaiALength)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrMalformedHex
	}
	t, err := UnpackTaiA(buffer)
	if nil != err {
		return err
	}
	*taia = t
	return nil
}
