// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

/*
Package hexutil implements the 0x-prefixed hex notation used for binary data
and quantities in JSON-RPC payloads and for ABI data on the command line.

Data (byte strings) is written with two digits per byte, so "0x" is the empty
string and odd lengths are rejected. Quantities (integers) are written without
leading zero digits: zero is "0x0", and "0x01" is invalid.
*/
package hexutil

import (
	"encoding/hex"
	"errors"
	"math/big"
	"strconv"
)

// Errors reported for malformed hex input.
var (
	ErrEmptyString   = errors.New("empty hex string")
	ErrMissingPrefix = errors.New("missing 0x prefix for hex data")
	ErrSyntax        = errors.New("invalid hex")
	ErrEmptyNumber   = errors.New("hex number has no digits after 0x")
	ErrLeadingZero   = errors.New("hex number has leading zero digits after 0x")
	ErrOddLength     = errors.New("hex string has odd length")
	ErrUint64Range   = errors.New("hex number does not fit into 64 bits")
	ErrBig256Range   = errors.New("hex number does not fit into 256 bits")
)

// Encode returns the 0x-prefixed hex form of b.
func Encode(b []byte) string {
	enc := make([]byte, 2+hex.EncodedLen(len(b)))
	enc[0], enc[1] = '0', 'x'
	hex.Encode(enc[2:], b)
	return string(enc)
}

// Decode parses 0x-prefixed hex data.
func Decode(input string) ([]byte, error) {
	switch {
	case input == "":
		return nil, ErrEmptyString
	case !has0xPrefix(input):
		return nil, ErrMissingPrefix
	}
	b, err := hex.DecodeString(input[2:])
	if err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

// EncodeUint64 returns the quantity form of i.
func EncodeUint64(i uint64) string {
	return string(strconv.AppendUint([]byte("0x"), i, 16))
}

// DecodeUint64 parses a quantity that fits into 64 bits.
func DecodeUint64(input string) (uint64, error) {
	digits, err := quantityDigits(input)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

// EncodeBig returns the quantity form of the absolute value of n.
func EncodeBig(n *big.Int) string {
	if n.Sign() == 0 {
		return "0x0"
	}
	return "0x" + new(big.Int).Abs(n).Text(16)
}

// DecodeBig parses a quantity of at most 256 bits.
func DecodeBig(input string) (*big.Int, error) {
	digits, err := quantityDigits(input)
	if err != nil {
		return nil, err
	}
	if len(digits) > 64 {
		return nil, ErrBig256Range
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return nil, ErrSyntax
		}
	}
	n, _ := new(big.Int).SetString(digits, 16)
	return n, nil
}

func has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// quantityDigits strips the prefix of a quantity and validates its digits
// are minimal.
func quantityDigits(input string) (string, error) {
	switch {
	case input == "":
		return "", ErrEmptyString
	case !has0xPrefix(input):
		return "", ErrMissingPrefix
	}
	digits := input[2:]
	switch {
	case digits == "":
		return "", ErrEmptyNumber
	case len(digits) > 1 && digits[0] == '0':
		return "", ErrLeadingZero
	}
	return digits, nil
}

// mapError translates errors of the strconv and hex packages into the
// package errors.
func mapError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		switch numErr.Err {
		case strconv.ErrRange:
			return ErrUint64Range
		case strconv.ErrSyntax:
			return ErrSyntax
		}
	}
	var byteErr hex.InvalidByteError
	if errors.As(err, &byteErr) {
		return ErrSyntax
	}
	if errors.Is(err, hex.ErrLength) {
		return ErrOddLength
	}
	return err
}
