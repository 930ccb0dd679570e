// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tai64"
	"github.com/bitmark-inc/tai64/fault"
)

// the argument count picks the label type: one count for tai64, two
// for tai64n, three for tai64na
func runEncode(c *cli.Context) error {

	args := c.Args()

	switch c.NArg() {
	case 0:
		return ErrNoArguments

	case 1:
		sec, err := argSeconds(args.Get(0))
		if nil != err {
			return err
		}
		t, err := tai64.NewTai(sec)
		if nil != err {
			return err
		}
		return printJson(c.App.Writer, taiResult(t))

	case 2:
		sec, err := argSeconds(args.Get(0))
		if nil != err {
			return err
		}
		nano, err := argFraction("nano", args.Get(1))
		if nil != err {
			return err
		}
		t, err := tai64.NewTaiN(sec, nano)
		if nil != err {
			return err
		}
		return printJson(c.App.Writer, tainResult(t))

	case 3:
		sec, err := argSeconds(args.Get(0))
		if nil != err {
			return err
		}
		nano, err := argFraction("nano", args.Get(1))
		if nil != err {
			return err
		}
		atto, err := argFraction("atto", args.Get(2))
		if nil != err {
			return err
		}
		t, err := tai64.NewTaiA(sec, nano, atto)
		if nil != err {
			return err
		}
		return printJson(c.App.Writer, taiaResult(t))

	default:
		return ErrTooManyArguments
	}
}

// convert a seconds argument
//
// decimal digits past 64 bits report the same range failure the
// constructor reports for an over-large count
func argSeconds(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		if ne, ok := err.(*strconv.NumError); ok && strconv.ErrRange == ne.Err {
			return 0, fault.RangeError{
				Field: "sec",
				Value: v,
				Min:   tai64.MinSeconds,
				Max:   tai64.MaxSeconds,
			}
		}
		return 0, ErrCountNotUnsigned
	}
	return v, nil
}

// convert a fraction argument, counts past 32 bits included in the
// range failure
func argFraction(field string, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		if ne, ok := err.(*strconv.NumError); ok && strconv.ErrRange == ne.Err {
			return 0, fault.RangeError{
				Field: field,
				Value: v,
				Min:   0,
				Max:   uint64(tai64.MaxFraction),
			}
		}
		return 0, ErrCountNotUnsigned
	}
	if v > uint64(^uint32(0)) {
		return 0, fault.RangeError{
			Field: field,
			Value: v,
			Min:   0,
			Max:   uint64(tai64.MaxFraction),
		}
	}
	return uint32(v), nil
}
