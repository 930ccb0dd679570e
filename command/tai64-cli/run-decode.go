// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tai64"
)

// one decoded label
//
// nano and atto are interface typed so the coarser label types omit
// them from the output instead of showing a false zero
type labelResult struct {
	Type string      `json:"type"`
	Hex  string      `json:"hex"`
	Sec  uint64      `json:"sec"`
	Nano interface{} `json:"nano,omitempty"`
	Atto interface{} `json:"atto,omitempty"`
	Text string      `json:"text"`
}

func taiResult(t tai64.Tai) labelResult {
	return labelResult{
		Type: "tai64",
		Hex:  t.Hex(),
		Sec:  t.Sec(),
		Text: t.String(),
	}
}

func tainResult(t tai64.TaiN) labelResult {
	return labelResult{
		Type: "tai64n",
		Hex:  t.Hex(),
		Sec:  t.Sec(),
		Nano: t.Nano(),
		Text: t.String(),
	}
}

func taiaResult(t tai64.TaiA) labelResult {
	return labelResult{
		Type: "tai64na",
		Hex:  t.Hex(),
		Sec:  t.Sec(),
		Nano: t.Nano(),
		Atto: t.Atto(),
		Text: t.String(),
	}
}

// decode each argument according to the type flag, or by its hex
// digit count when no type is given
func runDecode(c *cli.Context) error {

	if 0 == c.NArg() {
		return ErrNoArguments
	}

	labelType := c.String("type")
	verbose := c.GlobalBool("verbose")

	results := make([]labelResult, 0, c.NArg())
	for _, arg := range c.Args() {
		s := strings.TrimPrefix(arg, "@")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "decoding: %q\n", s)
		}
		r, err := decodeLabel(labelType, s)
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

// convert one hex argument
//
// an explicit type applies the front-of-stream rule, so hex after the
// label is allowed; automatic typing needs an exact digit count
func decodeLabel(labelType string, s string) (labelResult, error) {

	if "" == labelType {
		switch len(s) {
		case 2 * tai64.TaiLength:
			labelType = "tai64"
		case 2 * tai64.TaiNLength:
			labelType = "tai64n"
		case 2 * tai64.TaiALength:
			labelType = "tai64na"
		default:
			return labelResult{}, ErrUnknownLabelLength
		}
	}

	switch labelType {
	case "tai64":
		t, err := tai64.TaiFromHex(s)
		if nil != err {
			return labelResult{}, err
		}
		return taiResult(t), nil

	case "tai64n":
		t, err := tai64.TaiNFromHex(s)
		if nil != err {
			return labelResult{}, err
		}
		return tainResult(t), nil

	case "tai64na":
		t, err := tai64.TaiAFromHex(s)
		if nil != err {
			return labelResult{}, err
		}
		return taiaResult(t), nil

	default:
		return labelResult{}, ErrUnknownLabelType
	}
}
