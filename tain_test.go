// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tai64_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tai64"
	"github.com/bitmark-inc/tai64/fault"
)

func TestReferenceLabelsN(t *testing.T) {
	assert.Equal(t, tai64.EpochSeconds, tai64.EpochTaiN.Sec(), "wrong epoch label")
	assert.Equal(t, uint32(0), tai64.EpochTaiN.Nano(), "wrong epoch nano")

	assert.Equal(t, tai64.MinSeconds, tai64.MinTaiN.Sec(), "wrong minimum label")
	assert.Equal(t, tai64.MaxSeconds, tai64.MaxTaiN.Sec(), "wrong maximum label")
	assert.Equal(t, tai64.MaxFraction, tai64.MaxTaiN.Nano(), "wrong maximum nano")

	assert.Equal(t, "400000000000000000000000", tai64.EpochTaiN.Hex(), "wrong epoch hex")
}

func TestNewTaiN(t *testing.T) {
	tain, err := tai64.NewTaiN(tai64.EpochSeconds, 999999999)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, tai64.EpochSeconds, tain.Sec(), "wrong seconds")
	assert.Equal(t, uint32(999999999), tain.Nano(), "wrong nano")

	_, err = tai64.NewTaiN(tai64.MaxSeconds+1, 0)
	assert.True(t, fault.IsErrRange(err), "wrong error class: %v", err)

	_, err = tai64.NewTaiN(0, 1000000000)
	assert.True(t, fault.IsErrRange(err), "wrong error class: %v", err)
	assert.Equal(t,
		"nano must be in 0..999999999: 1000000000",
		err.Error(),
		"wrong error message")

	_, err = tai64.NewTaiN(0, ^uint32(0))
	assert.True(t, fault.IsErrRange(err), "wrong error class: %v", err)
}

func TestTaiNHex(t *testing.T) {
	hexList := []struct {
		sec  uint64
		nano uint32
		hex  string
	}{
		{0, 0, "000000000000000000000000"},
		{0, 1, "000000000000000000000001"},
		{tai64.EpochSeconds, 999999999, "40000000000000003b9ac9ff"},
		{tai64.UnixEpochSeconds, 0, "400000000000000a00000000"},
		{4611686019134860333, 787492500, "400000002a2b2c2d2ef02e94"},
		{tai64.MaxSeconds, 999999999, "7fffffffffffffff3b9ac9ff"},
	}

	for i, item := range hexList {
		tain, err := tai64.NewTaiN(item.sec, item.nano)
		assert.Nil(t, err, "%d: unexpected error", i)
		assert.Equal(t, item.hex, tain.Hex(), "%d: wrong hex", i)

		back, err := tai64.TaiNFromHex(item.hex)
		assert.Nil(t, err, "%d: unexpected error", i)
		assert.Equal(t, tain, back, "%d: wrong label", i)
	}
}

func TestTaiNPack(t *testing.T) {
	tain, err := tai64.NewTaiN(tai64.EpochSeconds, 999999999)
	assert.Nil(t, err, "unexpected error")

	expected := []byte{0x40, 0, 0, 0, 0, 0, 0, 0, 0x3b, 0x9a, 0xc9, 0xff}
	assert.Equal(t, expected, tain.Pack(), "wrong packed bytes")
	assert.Equal(t, tai64.TaiNLength, tain.Size(), "wrong size")

	back, err := tai64.UnpackTaiN(expected)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, tain, back, "wrong unpacked label")
}

func TestUnpackTaiNErrors(t *testing.T) {
	_, err := tai64.UnpackTaiN([]byte{0x40, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, fault.ErrTaiNBufferTooShort, err, "wrong error")

	// a wire nano count of 1000000000 fails the same check as the
	// constructor, so bad bytes cannot sneak past validation
	bad := []byte{0x40, 0, 0, 0, 0, 0, 0, 0, 0x3b, 0x9a, 0xca, 0x00}
	_, err = tai64.UnpackTaiN(bad)
	assert.True(t, fault.IsErrRange(err), "wrong error class: %v", err)
	assert.Equal(t,
		"nano must be in 0..999999999: 1000000000",
		err.Error(),
		"wrong error message")

	bad = []byte{0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err = tai64.UnpackTaiN(bad)
	assert.True(t, fault.IsErrRange(err), "wrong error class: %v", err)
}

func TestTaiNFromHexErrors(t *testing.T) {
	_, err := tai64.TaiNFromHex("40000000000000003b9ac9")
	assert.Equal(t, fault.ErrHexTooShort, err, "wrong error")

	_, err = tai64.TaiNFromHex("40000000000000003b9aca00")
	assert.True(t, fault.IsErrRange(err), "wrong error class: %v", err)

	// only the leading twenty four digits are read
	tain, err := tai64.TaiNFromHex("40000000000000003b9ac9ff0000000000000001")
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, uint32(999999999), tain.Nano(), "wrong nano")
}

func TestTaiNWith(t *testing.T) {
	tain, err := tai64.NewTaiN(tai64.EpochSeconds, 123456789)
	assert.Nil(t, err, "unexpected error")

	s, err := tain.WithSec(0)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, uint64(0), s.Sec(), "wrong seconds")
	assert.Equal(t, uint32(123456789), s.Nano(), "wrong nano")

	n, err := tain.WithNano(0)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, tai64.EpochSeconds, n.Sec(), "wrong seconds")
	assert.Equal(t, uint32(0), n.Nano(), "wrong nano")

	// the original label is untouched
	assert.Equal(t, uint32(123456789), tain.Nano(), "original changed")
	assert.Equal(t, tai64.EpochSeconds, tain.Sec(), "original changed")

	same, err := tain.WithNano(tain.Nano())
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, tain, same, "wrong label")

	_, err = tain.WithNano(1000000000)
	assert.True(t, fault.IsErrRange(err), "wrong error class: %v", err)
}

func TestTaiNString(t *testing.T) {
	stringList := []struct {
		sec      uint64
		nano     uint32
		expected string
	}{
		{0, 0, "0.000000000"},
		{0, 1, "0.000000001"},
		{1, 20, "1.000000020"},
		{tai64.EpochSeconds, 999999999, "4611686018427387904.999999999"},
		{tai64.MaxSeconds, 999999999, "9223372036854775807.999999999"},
	}

	for i, item := range stringList {
		tain, err := tai64.NewTaiN(item.sec, item.nano)
		assert.Nil(t, err, "%d: unexpected error", i)
		assert.Equal(t, item.expected, tain.String(), "%d: wrong string", i)
	}

	assert.Equal(t,
		"<TAI64N:40000000000000003b9ac9ff>",
		fmt.Sprintf("%#v", mustNewTaiN(t, tai64.EpochSeconds, 999999999)),
		"wrong go string")
}

func TestParseTaiN(t *testing.T) {
	labelList := []tai64.TaiN{
		mustNewTaiN(t, 0, 0),
		mustNewTaiN(t, 0, 1),
		mustNewTaiN(t, tai64.EpochSeconds, 123456789),
		mustNewTaiN(t, tai64.MaxSeconds, 999999999),
	}
	for i, tain := range labelList {
		back, err := tai64.ParseTaiN(tain.String())
		assert.Nil(t, err, "%d: unexpected error", i)
		assert.Equal(t, tain, back, "%d: wrong label", i)
	}

	invalidList := []string{
		"",           // empty
		"1",          // missing fraction
		"1.5",        // fraction not 9 digits
		"1.12345678", // fraction too narrow
		"1.1234567890",
		"-1.000000001",
		"1.00000000x",
		"x.000000001",
	}
	for i, s := range invalidList {
		_, err := tai64.ParseTaiN(s)
		assert.True(t, fault.IsErrInvalid(err), "%d: wrong error class: %v", i, err)
	}

	_, err := tai64.ParseTaiN("9223372036854775808.000000000")
	assert.True(t, fault.IsErrRange(err), "wrong error class: %v", err)
}

func TestTaiNFrac(t *testing.T) {
	tain := mustNewTaiN(t, 2, 500000000)
	assert.Equal(t, 0.5, tain.Frac(), "wrong fraction")
	assert.Equal(t, 2.5, tain.Float64(), "wrong float")

	assert.Equal(t, float64(0), tai64.EpochTaiN.Frac(), "wrong fraction")
	assert.Equal(t, float64(tai64.EpochSeconds), tai64.EpochTaiN.Float64(), "wrong float")
}

func TestTaiNScanFmt(t *testing.T) {
	stringTaiN := "400000002a2b2c2d2ef02e94"

	var tain tai64.TaiN
	n, err := fmt.Sscan(stringTaiN, &tain)
	if nil != err {
		t.Fatalf("hex to tai64n error: %v", err)
	}

	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	if 4611686019134860333 != tain.Sec() || 787492500 != tain.Nano() {
		t.Errorf("label = %#v expected sec %d nano %d", tain, uint64(4611686019134860333), uint32(787492500))
	}

	// a bare tai64 token is too short for a tai64n
	var short tai64.TaiN
	_, err = fmt.Sscan("3fffffffffffffff", &short)
	if nil == err {
		t.Fatalf("scan accepted a short token")
	}
}

func TestTaiNMarshalText(t *testing.T) {
	tain := mustNewTaiN(t, tai64.UnixEpochSeconds, 1)

	marshaled, err := tain.MarshalText()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, []byte("400000000000000a00000001"), marshaled, "wrong content")

	var back tai64.TaiN
	err = back.UnmarshalText(marshaled)
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, tain, back, "wrong label")

	err = back.UnmarshalText([]byte("400000000000000a"))
	assert.Equal(t, fault.ErrWrongLengthHex, err, "wrong error")

	err = back.UnmarshalText([]byte("400000000000000a3b9aca00"))
	assert.True(t, fault.IsErrRange(err), "wrong error class: %v", err)
}

func mustNewTaiN(t *testing.T, sec uint64, nano uint32) tai64.TaiN {
	t.Helper()
	tain, err := tai64.NewTaiN(sec, nano)
	if nil != err {
		t.Fatalf("cannot create label: %v", err)
	}
	return tain
}
