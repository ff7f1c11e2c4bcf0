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
	"bytes"
	"math/big"
	"testing"

	"github.com/ethjsonrpc/go-ethjsonrpc/common"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		typ  string
		text string
		want interface{}
	}{
		{"uint256", "42", big.NewInt(42)},
		{"int8", "-0x10", big.NewInt(-16)},
		{"uint256", "115792089237316195423570985008687907853269984665640564039457584007913129639935", new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))},
		{"bool", "true", true},
		{"address", "0x00000000219ab540356cBB839Cbe05303d7705Fa", common.HexToAddress("0x00000000219ab540356cBB839Cbe05303d7705Fa")},
		{"bytes", "0xdead", []byte{0xde, 0xad}},
		{"string", "hello", "hello"},
		{"string", "  padded  ", "  padded  "},
		{"uint256", " 42\n", big.NewInt(42)},
		{"fixed128x128", "1.5", big.NewRat(3, 2)},
		{"uint256[]", `[1, "0x2", 18446744073709551617]`, []interface{}{big.NewInt(1), big.NewInt(2), new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))}},
		{"string[2]", `["a", "b"]`, []interface{}{"a", "b"}},
		{"string[]", `[" a ", ""]`, []interface{}{" a ", ""}},
		{"bool[][]", `[[true], []]`, []interface{}{[]interface{}{true}, []interface{}{}}},
	}
	for _, tt := range tests {
		have, err := ParseValue(MustParseType(tt.typ), tt.text)
		if err != nil {
			t.Errorf("%s %q: unexpected error: %v", tt.typ, tt.text, err)
			continue
		}
		if !valuesEqual(have, tt.want) {
			t.Errorf("%s %q: have %v, want %v", tt.typ, tt.text, have, tt.want)
		}
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		typ  string
		text string
	}{
		{"uint256", "abc"},
		{"bool", "yes"},
		{"address", "0x1234"},
		{"bytes", "dead"},
		{"fixed128x128", "x"},
		{"uint256[]", "[1,"},
		{"uint256[]", `{"a":1}`},
		{"uint256[]", `[null]`},
	}
	for _, tt := range tests {
		if _, err := ParseValue(MustParseType(tt.typ), tt.text); err == nil {
			t.Errorf("%s %q: expected error", tt.typ, tt.text)
		}
	}
}

func TestParseValuesEncode(t *testing.T) {
	types, err := ParseTypes([]string{"uint256", "string"})
	if err != nil {
		t.Fatal(err)
	}
	values, err := ParseValues(types, []string{"5", "hi"})
	if err != nil {
		t.Fatal(err)
	}
	packed, err := Encode(types, values)
	if err != nil {
		t.Fatal(err)
	}
	if want := common.Hex2Bytes(word("5") + word("40") + word("2") + rword("6869")); !bytes.Equal(packed, want) {
		t.Errorf("pack mismatch:\nhave %x\nwant %x", packed, want)
	}
	if _, err := ParseValues(types, []string{"5"}); err == nil {
		t.Error("expected arity error")
	}
}
