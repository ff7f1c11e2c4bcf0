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
	"reflect"

	"github.com/ethjsonrpc/go-ethjsonrpc/common"
	"github.com/ethjsonrpc/go-ethjsonrpc/common/hexutil"
)

// indirect recursively dereferences the value until it either gets the value
// or finds a big number type.
func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface || (v.Kind() == reflect.Ptr && !v.IsNil() && !isBigType(v.Type())) {
		v = v.Elem()
	}
	return v
}

func isBigType(t reflect.Type) bool {
	return t == bigT || t == ratT || t == floatT || t == u256T
}

// toSequence returns the slice or array holding the elements of an array
// typed value.
func toSequence(v interface{}) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	}
	return reflect.Value{}, false
}

// toBytes returns the raw bytes of a byte string value. Strings carrying a
// 0x prefix are decoded as hex, any other string is taken verbatim.
func toBytes(v interface{}) ([]byte, bool) {
	switch b := v.(type) {
	case []byte:
		return b, true
	case string:
		if len(b) >= 2 && b[0] == '0' && (b[1] == 'x' || b[1] == 'X') {
			dec, err := hexutil.Decode(b)
			return dec, err == nil
		}
		return []byte(b), true
	case common.Hash:
		return b.Bytes(), true
	case common.Address:
		return b.Bytes(), true
	case nil:
		return nil, false
	}
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Bytes(), true
		}
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			out := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(out), rv)
			return out, true
		}
	case reflect.String:
		return toBytes(rv.String())
	}
	return nil, false
}

// toText returns the UTF-8 bytes of a string value.
func toText(v interface{}) ([]byte, bool) {
	switch s := v.(type) {
	case string:
		return []byte(s), true
	case []byte:
		return s, true
	case nil:
		return nil, false
	}
	rv := indirect(reflect.ValueOf(v))
	switch {
	case rv.Kind() == reflect.String:
		return []byte(rv.String()), true
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return rv.Bytes(), true
	}
	return nil, false
}

// toBool accepts Go booleans only.
func toBool(v interface{}) (bool, bool) {
	if v == nil {
		return false, false
	}
	rv := indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// toAddress accepts addresses, 20 byte slices and arrays, hex strings and
// integers below 2^160.
func toAddress(v interface{}) (common.Address, bool) {
	switch a := v.(type) {
	case common.Address:
		return a, true
	case *common.Address:
		if a == nil {
			return common.Address{}, false
		}
		return *a, true
	case string:
		if !common.IsHexAddress(a) {
			return common.Address{}, false
		}
		return common.HexToAddress(a), true
	}
	if n, ok := toBig(v); ok {
		if n.Sign() < 0 || n.BitLen() > 8*common.AddressLength {
			return common.Address{}, false
		}
		return common.BigToAddress(n), true
	}
	if b, ok := toBytes(v); ok && len(b) == common.AddressLength {
		return common.BytesToAddress(b), true
	}
	return common.Address{}, false
}
