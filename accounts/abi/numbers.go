// Copyright 2015 The go-ethereum Authors
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

package abi

import (
	"math/big"
	"reflect"
	"strings"

	"github.com/ethjsonrpc/go-ethjsonrpc/common/math"
	"github.com/holiman/uint256"
)

var (
	bigT   = reflect.TypeOf(&big.Int{})
	ratT   = reflect.TypeOf(&big.Rat{})
	floatT = reflect.TypeOf(&big.Float{})
	u256T  = reflect.TypeOf(&uint256.Int{})
)

// packUint returns n as a 32 byte big-endian word.
func packUint(n uint64) []byte {
	word := uint256.NewInt(n).Bytes32()
	return word[:]
}

// packBig returns n as a 32 byte two's complement word. The caller has
// checked that n fits into 256 bits.
func packBig(n *big.Int) []byte {
	u, _ := uint256.FromBig(math.U256(new(big.Int).Set(n)))
	word := u.Bytes32()
	return word[:]
}

// unpackUint reads a word as an unsigned 256 bit integer.
func unpackUint(word []byte) *big.Int {
	return new(uint256.Int).SetBytes32(word).ToBig()
}

// toBig converts the supported Go representations of an integer into a
// big.Int. Strings are accepted in decimal or 0x-prefixed hex, optionally
// signed.
func toBig(v interface{}) (*big.Int, bool) {
	switch n := v.(type) {
	case *big.Int:
		return n, n != nil
	case big.Int:
		return &n, true
	case *uint256.Int:
		if n == nil {
			return nil, false
		}
		return n.ToBig(), true
	case uint256.Int:
		return n.ToBig(), true
	case string:
		return parseBigString(n)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), true
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, false
		}
		return toBig(rv.Elem().Interface())
	}
	return nil, false
}

// parseBigString parses an optionally signed decimal or hex integer.
func parseBigString(s string) (*big.Int, bool) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return nil, false
	}
	var (
		n  *big.Int
		ok bool
	)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		n, ok = new(big.Int).SetString(s[2:], 16)
	} else {
		n, ok = new(big.Int).SetString(s, 10)
	}
	if !ok {
		return nil, false
	}
	if neg {
		n.Neg(n)
	}
	return n, true
}

// toRat converts the supported Go representations of a real number into
// an exact rational.
func toRat(v interface{}) (*big.Rat, bool) {
	switch r := v.(type) {
	case *big.Rat:
		return r, r != nil
	case big.Rat:
		return &r, true
	case *big.Float:
		if r == nil || r.IsInf() {
			return nil, false
		}
		rat, _ := r.Rat(nil)
		return rat, true
	case float32:
		return ratFromFloat(float64(r))
	case float64:
		return ratFromFloat(r)
	case string:
		if rat, ok := new(big.Rat).SetString(r); ok {
			return rat, true
		}
		return nil, false
	}
	if n, ok := toBig(v); ok {
		return new(big.Rat).SetInt(n), true
	}
	return nil, false
}

func ratFromFloat(f float64) (*big.Rat, bool) {
	r := new(big.Rat).SetFloat64(f)
	return r, r != nil
}

// checkInteger reports why n does not fit the integer type t, or "" if it
// does.
func checkInteger(n *big.Int, signed bool, bits int) string {
	if signed {
		min, max := math.SignedRange(bits)
		if n.Cmp(min) < 0 || n.Cmp(max) > 0 {
			return "value out of signed range"
		}
		return ""
	}
	if n.Sign() < 0 {
		return "negative value for unsigned type"
	}
	if n.BitLen() > bits {
		return "value exceeds type width"
	}
	return ""
}

// scaleFixed converts r into the raw integer of a fixed point number with
// frac fractional bits, truncating toward zero.
func scaleFixed(r *big.Rat, frac int) *big.Int {
	num := new(big.Int).Lsh(r.Num(), uint(frac))
	return num.Quo(num, r.Denom())
}

// unscaleFixed converts the raw integer of a fixed point number back into
// an exact rational.
func unscaleFixed(raw *big.Int, frac int) *big.Rat {
	denom := new(big.Int).Lsh(big.NewInt(1), uint(frac))
	return new(big.Rat).SetFrac(raw, denom)
}
