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

// convert decimal label text back to labels
func runParse(c *cli.Context) error {

	if 0 == c.NArg() {
		return ErrNoArguments
	}

	results := make([]labelResult, 0, c.NArg())
	for _, arg := range c.Args() {
		r, err := parseLabel(arg)
		if nil != err {
			return err
		}
		results = append(results, r)
	}

	if 1 == len(results) {
		return printJson(c.App.Writer, results[0])
	}
	return printJson(c.App.Writer, results)
}

// the fraction width picks the label type: no fraction for tai64,
// 9 digits for tai64n, 18 for tai64na
func parseLabel(s string) (labelResult, error) {

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		t, err := tai64.ParseTai(s)
		if nil != err {
			return labelResult{}, err
		}
		return taiResult(t), nil
	}

	switch len(s) - dot - 1 {
	case 9:
		t, err := tai64.ParseTaiN(s)
		if nil != err {
			return labelResult{}, err
		}
		return tainResult(t), nil

	case 18:
		t, err := tai64.ParseTaiA(s)
		if nil != err {
			return labelResult{}, err
		}
		return taiaResult(t), nil

	default:
		return labelResult{}, ErrFractionWidth
	}
}
