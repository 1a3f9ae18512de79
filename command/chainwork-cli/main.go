// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chainwork/difficulty"
	"github.com/bitmark-inc/chainwork/fingerprint"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "chainwork-cli"
	app.Usage = "proof-of-work record utilities"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "fingerprint",
			Usage:     "compute the fingerprint of a record from its fields",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "position, p",
					Usage: " record `POSITION`",
				},
				cli.Int64Flag{
					Name:  "timestamp, t",
					Usage: "*creation time as Unix `NANOSECONDS`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: " payload `STRING`",
				},
				cli.StringFlag{
					Name:  "previous, r",
					Value: fingerprint.Sentinel.String(),
					Usage: " previous fingerprint `HEX`",
				},
				cli.Uint64Flag{
					Name:  "counter, n",
					Usage: " search `COUNTER`",
				},
				cli.StringFlag{
					Name:  "algorithm, a",
					Value: fingerprint.SHA256.String(),
					Usage: " hash `NAME` [sha256|sha3-256]",
				},
			},
			Action: runFingerprint,
		},
		{
			Name:      "mine",
			Usage:     "search for a counter that meets a difficulty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "difficulty, d",
					Value: difficulty.Default,
					Usage: " leading zero `COUNT`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: " payload `STRING`",
				},
				cli.Uint64Flag{
					Name:  "position, p",
					Usage: " record `POSITION`",
				},
				cli.StringFlag{
					Name:  "previous, r",
					Value: fingerprint.Sentinel.String(),
					Usage: " previous fingerprint `HEX`",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 1,
					Usage: " search `GOROUTINES`",
				},
				cli.Uint64Flag{
					Name:  "limit, l",
					Usage: " give up after `COUNT` counters, 0 = never",
				},
				cli.StringFlag{
					Name:  "algorithm, a",
					Value: fingerprint.SHA256.String(),
					Usage: " hash `NAME` [sha256|sha3-256]",
				},
			},
			Action: runMine,
		},
		{
			Name:      "difficulty",
			Usage:     "show the prefix and expected search cost of a difficulty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "difficulty, d",
					Value: difficulty.Default,
					Usage: " leading zero `COUNT`",
				},
			},
			Action: runDifficulty,
		},
		{
			Name:      "verify",
			Usage:     "verify a chain saved as JSON",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*chain JSON `FILE`, - for stdin",
				},
				cli.IntFlag{
					Name:  "difficulty, d",
					Value: -1,
					Usage: " leading zero `COUNT`, default from the file",
				},
			},
			Action: runVerify,
		},
		{
			Name:  "version",
			Usage: "display chainwork-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
