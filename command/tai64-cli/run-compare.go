// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tai64"
)

type compareResult struct {
	Left     labelResult `json:"left"`
	Right    labelResult `json:"right"`
	Result   int         `json:"result"`
	Relation string      `json:"relation"`
}

// order two labels, possibly of different precision
//
// the coarser label counts as having zero fraction counts, so a bare
// second and the same second with zero nanoseconds are the same
// instant
func runCompare(c *cli.Context) error {

	if 2 != c.NArg() {
		return ErrNeedTwoLabels
	}

	leftResult, left, err := widenHex(strings.TrimPrefix(c.Args().Get(0), "@"))
	if nil != err {
		return err
	}
	rightResult, right, err := widenHex(strings.TrimPrefix(c.Args().Get(1), "@"))
	if nil != err {
		return err
	}

	r := left.Compare(right)
	relation := "same instant"
	switch {
	case r < 0:
		relation = "before"
	case r > 0:
		relation = "after"
	}

	return printJson(c.App.Writer, compareResult{
		Left:     leftResult,
		Right:    rightResult,
		Result:   r,
		Relation: relation,
	})
}

// decode a label at its exact hex digit count and widen it to full
// precision for the order test
func widenHex(s string) (labelResult, tai64.TaiA, error) {

	switch len(s) {
	case 2 * tai64.TaiLength:
		t, err := tai64.TaiFromHex(s)
		if nil != err {
			return labelResult{}, tai64.TaiA{}, err
		}
		return taiResult(t), tai64.TaiAFromTai(t), nil

	case 2 * tai64.TaiNLength:
		t, err := tai64.TaiNFromHex(s)
		if nil != err {
			return labelResult{}, tai64.TaiA{}, err
		}
		return tainResult(t), tai64.TaiAFromTaiN(t), nil

	case 2 * tai64.TaiALength:
		t, err := tai64.TaiAFromHex(s)
		if nil != err {
			return labelResult{}, tai64.TaiA{}, err
		}
		return taiaResult(t), t, nil

	default:
		return labelResult{}, tai64.TaiA{}, ErrUnknownLabelLength
	}
}
