// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "tai64-cli"
	app.Usage = "convert TAI64, TAI64N and TAI64NA labels between hex, counts and decimal text"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode hex labels to their counts",
			ArgsUsage: "HEX...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: " label `TYPE` [tai64|tai64n|tai64na], default is by length",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "encode",
			Usage:     "encode counts to a hex label",
			ArgsUsage: "SEC [NANO [ATTO]]",
			Action:    runEncode,
		},
		{
			Name:      "parse",
			Usage:     "convert decimal label text to hex labels",
			ArgsUsage: "TEXT...",
			Action:    runParse,
		},
		{
			Name:      "compare",
			Usage:     "compare two hex labels of any precision",
			ArgsUsage: "HEX HEX",
			Action:    runCompare,
		},
		{
			Name:  "version",
			Usage: "display tai64-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
