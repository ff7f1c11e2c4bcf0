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
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethjsonrpc/go-ethjsonrpc/common"
	"github.com/ethjsonrpc/go-ethjsonrpc/common/hexutil"
	jsoniter "github.com/json-iterator/go"
)

// literalJSON decodes array literals keeping numbers as text, so integers
// wider than 53 bits survive.
var literalJSON = jsoniter.Config{UseNumber: true}.Froze()

// ParseValue converts the textual form of a value into an input accepted
// by Encode. Scalars are written plainly ("42", "-0x10", "true",
// "0xdead...", "1.5"); arrays are JSON array literals whose elements are
// strings, numbers, booleans or nested arrays, e.g. `[1,2]` or
// `[["a","b"],[]]`.
func ParseValue(t Type, text string) (interface{}, error) {
	if t.IsArray() {
		var literal interface{}
		if err := literalJSON.UnmarshalFromString(text, &literal); err != nil {
			return nil, fmt.Errorf("abi: invalid %s literal: %v", t, err)
		}
		return fromLiteral(t, literal)
	}
	return parseScalar(t, text)
}

// ParseValues parses one text argument per type.
func ParseValues(types []Type, texts []string) ([]interface{}, error) {
	if len(types) != len(texts) {
		return nil, &ArityError{Want: len(types), Got: len(texts)}
	}
	values := make([]interface{}, len(types))
	for i, t := range types {
		v, err := ParseValue(t, texts[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// fromLiteral converts a decoded JSON literal into codec input.
func fromLiteral(t Type, literal interface{}) (interface{}, error) {
	if t.IsArray() {
		items, ok := literal.([]interface{})
		if !ok {
			return nil, fmt.Errorf("abi: expected array for %s, got %v", t, literal)
		}
		elem := *t.elem
		out := make([]interface{}, len(items))
		for i, item := range items {
			v, err := fromLiteral(elem, item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	switch v := literal.(type) {
	case string:
		return parseScalar(t, v)
	case json.Number:
		return parseScalar(t, string(v))
	case bool:
		return parseScalar(t, strconv.FormatBool(v))
	}
	return nil, fmt.Errorf("abi: unexpected %T in %s literal", literal, t)
}

// parseScalar parses a single value. Surrounding whitespace is ignored
// except for strings, which are taken verbatim.
func parseScalar(t Type, text string) (interface{}, error) {
	if t.t == StringTy {
		return text, nil
	}
	text = strings.TrimSpace(text)
	switch t.t {
	case UintTy, IntTy:
		n, ok := parseBigString(text)
		if !ok {
			return nil, fmt.Errorf("abi: invalid integer %q for %s", text, t)
		}
		return n, nil
	case BoolTy:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("abi: invalid boolean %q", text)
		}
		return b, nil
	case AddressTy:
		if !common.IsHexAddress(text) {
			return nil, fmt.Errorf("abi: invalid address %q", text)
		}
		return common.HexToAddress(text), nil
	case FixedBytesTy, BytesTy, HashTy:
		b, err := hexutil.Decode(text)
		if err != nil {
			return nil, fmt.Errorf("abi: invalid hex %q for %s: %v", text, t, err)
		}
		return b, nil
	case FixedPointTy, UfixedPointTy:
		r, ok := new(big.Rat).SetString(text)
		if !ok {
			return nil, fmt.Errorf("abi: invalid number %q for %s", text, t)
		}
		return r, nil
	}
	return nil, fmt.Errorf("abi: cannot parse values of type %s", t)
}
