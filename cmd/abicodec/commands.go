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
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethjsonrpc/go-ethjsonrpc/accounts/abi"
	"github.com/ethjsonrpc/go-ethjsonrpc/common"
	"github.com/ethjsonrpc/go-ethjsonrpc/common/hexutil"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var (
	parseCommand = &cli.Command{
		Action:    parseTypes,
		Name:      "parse",
		Usage:     "Show the structure of ABI type strings",
		ArgsUsage: "<type> [<type>...]",
		Description: `
The parse command prints the parsed form of each type: its base, sub
and array dimensions, its static size in bytes and its subtype.`,
	}
	encodeCommand = &cli.Command{
		Action:    encodeValues,
		Name:      "encode",
		Usage:     "ABI-encode values",
		ArgsUsage: "<value> [<value>...]",
		Flags:     []cli.Flag{typesFlag, wordsFlag},
		Description: `
The encode command encodes one value per type given with --types.
Arrays are written as JSON literals, e.g. '[1,2,3]'.`,
	}
	decodeCommand = &cli.Command{
		Action:    decodeValues,
		Name:      "decode",
		Usage:     "Decode ABI-encoded data",
		ArgsUsage: "<hexdata>",
		Flags:     []cli.Flag{typesFlag},
	}
	selectorCommand = &cli.Command{
		Action:    printSelector,
		Name:      "selector",
		Usage:     "Compute the 4 byte selector of a function signature",
		ArgsUsage: "<signature>",
	}
	calldataCommand = &cli.Command{
		Action:    printCalldata,
		Name:      "calldata",
		Usage:     "Encode a function call",
		ArgsUsage: "<signature> [<arg>...]",
	}
)

var (
	staticColor  = color.New(color.FgGreen).SprintFunc()
	dynamicColor = color.New(color.FgYellow).SprintFunc()
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func parseTypes(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("need at least one type")
	}
	table := newTable(ctx.App.Writer, "Type", "Base", "Sub", "Dims", "Size", "Class", "Subtype")
	for _, arg := range ctx.Args().Slice() {
		t, err := abi.ParseType(arg)
		if err != nil {
			return err
		}
		size, class := "-", dynamicColor("dynamic")
		if n, ok := t.Size(); ok {
			size, class = strconv.Itoa(n), staticColor("static")
		}
		subtype := "-"
		if sub, err := t.Subtype(); err == nil {
			subtype = sub.String()
		}
		table.Append([]string{t.String(), t.BaseName(), t.Sub(), formatDims(t.Dims()), size, class, subtype})
	}
	table.Render()
	return nil
}

func formatDims(dims []int) string {
	if len(dims) == 0 {
		return "-"
	}
	var b strings.Builder
	for _, d := range dims {
		if d == 0 {
			b.WriteString("[]")
		} else {
			fmt.Fprintf(&b, "[%d]", d)
		}
	}
	return b.String()
}

// typesArg parses the comma separated --types flag.
func typesArg(ctx *cli.Context) ([]abi.Type, error) {
	list := abi.SplitTypeList(ctx.String(typesFlag.Name))
	if len(list) == 1 && list[0] == "" {
		return nil, nil
	}
	return abi.ParseTypes(list)
}

func encodeValues(ctx *cli.Context) error {
	types, err := typesArg(ctx)
	if err != nil {
		return err
	}
	values, err := abi.ParseValues(types, ctx.Args().Slice())
	if err != nil {
		return err
	}
	data, err := abi.Encode(types, values)
	if err != nil {
		return err
	}
	if !ctx.Bool(wordsFlag.Name) {
		fmt.Fprintln(ctx.App.Writer, hexutil.Encode(data))
		return nil
	}
	for i := 0; i < len(data); i += 32 {
		fmt.Fprintf(ctx.App.Writer, "%04x: %x\n", i, data[i:i+32])
	}
	return nil
}

func decodeValues(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("need hex data as single argument")
	}
	types, err := typesArg(ctx)
	if err != nil {
		return err
	}
	data, err := hexutil.Decode(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("invalid hex data: %v", err)
	}
	values, err := abi.Decode(types, data)
	if err != nil {
		return err
	}
	printValues(ctx.App.Writer, types, values)
	return nil
}

func printValues(w io.Writer, types []abi.Type, values []interface{}) {
	table := newTable(w, "#", "Type", "Value")
	for i, v := range values {
		table.Append([]string{strconv.Itoa(i), types[i].String(), formatValue(v)})
	}
	table.Render()
}

// formatValue renders a decoded value in the same notation encode accepts.
func formatValue(v interface{}) string {
	switch v := v.(type) {
	case *big.Int:
		return v.String()
	case *big.Rat:
		if v.IsInt() {
			return v.Num().String()
		}
		// Fixed point values have a power of two denominator, so k
		// decimals represent 1/2^k exactly.
		if d := v.Denom(); d.BitLen()-1 == int(d.TrailingZeroBits()) {
			return v.FloatString(d.BitLen() - 1)
		}
		return v.RatString()
	case bool:
		return strconv.FormatBool(v)
	case common.Address:
		return v.Hex()
	case []byte:
		return hexutil.Encode(v)
	case string:
		return strconv.Quote(v)
	case []interface{}:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = formatValue(item)
		}
		return "[" + strings.Join(items, ",") + "]"
	}
	return fmt.Sprint(v)
}

func printSelector(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("need function signature as single argument")
	}
	sig, err := abi.ParseSignature(ctx.Args().First())
	if err != nil {
		return err
	}
	sel := sig.Selector()
	fmt.Fprintf(ctx.App.Writer, "%s %s\n", hexutil.Encode(sel[:]), sig)
	return nil
}

// signatureArgs parses the signature and call arguments given on the command
// line.
func signatureArgs(ctx *cli.Context) (abi.Signature, []interface{}, error) {
	if ctx.NArg() < 1 {
		return abi.Signature{}, nil, errors.New("need function signature")
	}
	sig, err := abi.ParseSignature(ctx.Args().First())
	if err != nil {
		return abi.Signature{}, nil, err
	}
	args, err := abi.ParseValues(sig.Types, ctx.Args().Tail())
	if err != nil {
		return abi.Signature{}, nil, err
	}
	return sig, args, nil
}

func printCalldata(ctx *cli.Context) error {
	sig, args, err := signatureArgs(ctx)
	if err != nil {
		return err
	}
	data, err := sig.Encode(args...)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(data))
	return nil
}
