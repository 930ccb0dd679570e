// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// tai64-decode - a log filter
//
// reads lines from standard input and rewrites any leading @hex label
// to its decimal text, passing everything else through unchanged; the
// label type is picked by the hex digit count
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/tai64"
	"github.com/bitmark-inc/tai64/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "keep", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: option parse error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) != 0 {
		exitwithstatus.Message("usage: %s [--help] [--keep] < logfile", program)
	}

	keep := len(options["keep"]) > 0

	out := bufio.NewWriter(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Fprintln(out, rewriteLine(scanner.Text(), keep))
	}
	out.Flush()

	if err := scanner.Err(); nil != err {
		exitwithstatus.Message("%s: read error: %s", program, err)
	}
}

// rewrite a leading @hex label to decimal text
//
// with keep the label is retained ahead of the decimal text; a line
// that does not start with a well formed label passes through intact
func rewriteLine(line string, keep bool) string {

	if 0 == len(line) || '@' != line[0] {
		return line
	}

	token := line[1:]
	trailer := ""
	if end := strings.IndexByte(line, ' '); end > 0 {
		token = line[1:end]
		trailer = line[end:]
	}

	text, err := decodeToken(token)
	if nil != err {
		return line
	}

	if keep {
		return "@" + token + " " + text + trailer
	}
	return text + trailer
}

// the hex digit count picks the label type
func decodeToken(token string) (string, error) {

	switch len(token) {
	case 2 * tai64.TaiLength:
		t, err := tai64.TaiFromHex(token)
		if nil != err {
			return "", err
		}
		return t.String(), nil

	case 2 * tai64.TaiNLength:
		t, err := tai64.TaiNFromHex(token)
		if nil != err {
			return "", err
		}
		return t.String(), nil

	case 2 * tai64.TaiALength:
		t, err := tai64.TaiAFromHex(token)
		if nil != err {
			return "", err
		}
		return t.String(), nil

	default:
		return "", fault.ErrWrongLengthHex
	}
}
