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

package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ethjsonrpc/go-ethjsonrpc/accounts/abi"
	"github.com/ethjsonrpc/go-ethjsonrpc/common"
	"github.com/ethjsonrpc/go-ethjsonrpc/common/hexutil"
	"github.com/ethjsonrpc/go-ethjsonrpc/ethclient"
	"github.com/ethjsonrpc/go-ethjsonrpc/log"
	"github.com/ethjsonrpc/go-ethjsonrpc/rpc"
	"github.com/urfave/cli/v2"
)

var callCommand = &cli.Command{
	Action:    callContract,
	Name:      "call",
	Usage:     "Call a contract function on the node without a transaction",
	ArgsUsage: "<signature> [<arg>...]",
	Flags:     []cli.Flag{toFlag, outFlag},
	Description: `
The call command encodes the function call, executes it with eth_call at the
latest block on the node given by --rpc and decodes the returned data
against the types given with --out.`,
}

func callContract(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	to := ctx.String(toFlag.Name)
	if !common.IsHexAddress(to) {
		return fmt.Errorf("invalid contract address %q", to)
	}
	sig, args, err := signatureArgs(ctx)
	if err != nil {
		return err
	}
	var outTypes []abi.Type
	if out := ctx.String(outFlag.Name); out != "" {
		if outTypes, err = abi.ParseTypes(abi.SplitTypeList(out)); err != nil {
			return err
		}
	}
	data, err := sig.Encode(args...)
	if err != nil {
		return err
	}

	headers := make(http.Header)
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}
	client, err := ethclient.DialContext(ctx.Context, cfg.RPC, rpc.WithHeaders(headers))
	if err != nil {
		return err
	}
	defer client.Close()

	msg := ethclient.CallMsg{To: new(common.Address), Data: data}
	*msg.To = common.HexToAddress(to)
	if cfg.From != "" {
		if !common.IsHexAddress(cfg.From) {
			return fmt.Errorf("invalid From address %q in config", cfg.From)
		}
		msg.From = common.HexToAddress(cfg.From)
	}
	log.Debug("Calling contract", "rpc", cfg.RPC, "to", msg.To, "sig", sig)
	result, err := client.CallContract(ctx.Context, msg, nil)
	if err != nil {
		return err
	}
	if len(outTypes) == 0 {
		fmt.Fprintln(ctx.App.Writer, hexutil.Encode(result))
		return nil
	}
	if len(result) == 0 {
		return errors.New("call returned no data, is the address a contract?")
	}
	values, err := abi.Decode(outTypes, result)
	if err != nil {
		return err
	}
	printValues(ctx.App.Writer, outTypes, values)
	return nil
}
