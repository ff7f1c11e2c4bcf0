// Copyright 2017 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// abicodec is a command line tool for the Ethereum contract ABI: it parses
// type strings, encodes and decodes values, computes function selectors and
// calls contracts on a JSON-RPC node.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ethjsonrpc/go-ethjsonrpc/log"
	"github.com/ethjsonrpc/go-ethjsonrpc/params"
	"github.com/urfave/cli/v2"
)

// Git commit, set by the linker.
var gitCommit = ""

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
	logJSONFlag = &cli.BoolFlag{
		Name:  "log.json",
		Usage: "Format logs with JSON",
	}
	rpcFlag = &cli.StringFlag{
		Name:  "rpc",
		Usage: "HTTP(S) endpoint of the JSON-RPC node",
		Value: defaultConfig.RPC,
	}

	typesFlag = &cli.StringFlag{
		Name:     "types",
		Usage:    "Comma separated list of ABI types, e.g. uint256,string",
		Required: true,
	}
	wordsFlag = &cli.BoolFlag{
		Name:  "words",
		Usage: "Print the encoding as one 32 byte word per line",
	}
	toFlag = &cli.StringFlag{
		Name:     "to",
		Usage:    "Address of the contract to call",
		Required: true,
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "Comma separated list of result types",
	}
)

func newApp() *cli.App {
	app := &cli.App{
		Name:    filepath.Base(os.Args[0]),
		Usage:   "the Ethereum contract ABI codec",
		Version: params.VersionWithCommit(gitCommit),
		Writer:  os.Stdout,
		Flags: []cli.Flag{
			configFileFlag,
			verbosityFlag,
			logJSONFlag,
			rpcFlag,
		},
		Commands: []*cli.Command{
			parseCommand,
			encodeCommand,
			decodeCommand,
			selectorCommand,
			calldataCommand,
			callCommand,
			dumpConfigCommand,
		},
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := makeConfig(ctx)
		if err != nil {
			return err
		}
		lvl := log.LvlFromVerbosity(cfg.Verbosity)
		if ctx.Bool(logJSONFlag.Name) {
			var w io.Writer = os.Stderr
			if ctx.App.ErrWriter != nil {
				w = ctx.App.ErrWriter
			}
			log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(w, log.JSONFormat())))
		} else {
			log.Root().SetHandler(log.TerminalHandler(os.Stderr, lvl))
		}
		return nil
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
