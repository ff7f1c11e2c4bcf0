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
	"github.com/ethjsonrpc/go-ethjsonrpc/common"
)

// Encode packs values according to types using the contract ABI head/tail
// layout. Static values are stored inline in the head; dynamic values are
// appended to the tail and referenced from the head by their byte offset,
// measured from the start of the encoded sequence.
func Encode(types []Type, values []interface{}) ([]byte, error) {
	if len(types) != len(values) {
		return nil, &ArityError{Want: len(types), Got: len(values)}
	}
	return encodeSequence(len(types), func(i int) Type { return types[i] }, func(i int) interface{} { return values[i] })
}

// EncodeStrings is like Encode but parses the type declarations first.
func EncodeStrings(types []string, values []interface{}) ([]byte, error) {
	parsed, err := ParseTypes(types)
	if err != nil {
		return nil, err
	}
	return Encode(parsed, values)
}

// encodeSequence lays out n values as one head/tail block. It is shared by
// top level argument lists and array payloads.
func encodeSequence(n int, typeAt func(int) Type, valueAt func(int) interface{}) ([]byte, error) {
	headSize := 0
	for i := 0; i < n; i++ {
		headSize += typeAt(i).headSize()
	}
	var (
		head = make([]byte, 0, headSize)
		tail []byte
	)
	for i := 0; i < n; i++ {
		t := typeAt(i)
		packed, err := encodeValue(t, valueAt(i))
		if err != nil {
			return nil, err
		}
		if t.Dynamic() {
			head = append(head, packUint(uint64(headSize+len(tail)))...)
			tail = append(tail, packed...)
		} else {
			head = append(head, packed...)
		}
	}
	return append(head, tail...), nil
}

// encodeValue packs a single value. For dynamic types the result is the
// tail representation.
func encodeValue(t Type, v interface{}) ([]byte, error) {
	if t.IsArray() {
		return encodeArray(t, v)
	}
	switch t.t {
	case StringTy:
		b, ok := toText(v)
		if !ok {
			return nil, rangeErrorf(t, v, "unsupported value type")
		}
		return packBytesSlice(b), nil
	case BytesTy:
		b, ok := toBytes(v)
		if !ok {
			return nil, rangeErrorf(t, v, "unsupported value type")
		}
		return packBytesSlice(b), nil
	}
	return encodeScalar(t, v)
}

// encodeArray packs the elements of a slice or array. Dynamically sized
// arrays are prefixed with their element count.
func encodeArray(t Type, v interface{}) ([]byte, error) {
	seq, ok := toSequence(v)
	if !ok {
		return nil, rangeErrorf(t, v, "value is not a slice or array")
	}
	length := t.dims[len(t.dims)-1]
	n := seq.Len()
	if length != 0 && n != length {
		return nil, rangeErrorf(t, v, "array has %d elements, want %d", n, length)
	}
	elem := *t.elem
	packed, err := encodeSequence(n, func(int) Type { return elem }, func(i int) interface{} { return seq.Index(i).Interface() })
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return append(packUint(uint64(n)), packed...), nil
	}
	return packed, nil
}

// encodeScalar packs a fixed width scalar into a single word.
func encodeScalar(t Type, v interface{}) ([]byte, error) {
	switch t.t {
	case UintTy, IntTy:
		n, ok := toBig(v)
		if !ok {
			return nil, rangeErrorf(t, v, "unsupported value type")
		}
		if reason := checkInteger(n, t.t == IntTy, t.bits); reason != "" {
			return nil, rangeErrorf(t, v, "%s", reason)
		}
		return packBig(n), nil

	case BoolTy:
		b, ok := toBool(v)
		if !ok {
			return nil, rangeErrorf(t, v, "unsupported value type")
		}
		if b {
			return packUint(1), nil
		}
		return packUint(0), nil

	case AddressTy:
		addr, ok := toAddress(v)
		if !ok {
			return nil, rangeErrorf(t, v, "not a 20 byte address")
		}
		return common.LeftPadBytes(addr.Bytes(), 32), nil

	case FixedBytesTy:
		b, ok := toBytes(v)
		if !ok {
			return nil, rangeErrorf(t, v, "unsupported value type")
		}
		if len(b) > t.bits {
			return nil, rangeErrorf(t, v, "%d bytes exceed length %d", len(b), t.bits)
		}
		return common.RightPadBytes(b, 32), nil

	case HashTy:
		if t.bits < 1 || t.bits > 32 {
			return nil, rangeErrorf(t, v, "hash length must be between 1 and 32 bytes")
		}
		b, ok := toBytes(v)
		if !ok {
			if n, isInt := toBig(v); isInt && n.Sign() >= 0 && n.BitLen() <= 8*t.bits {
				return packBig(n), nil
			}
			return nil, rangeErrorf(t, v, "unsupported value type")
		}
		if len(b) != t.bits {
			return nil, rangeErrorf(t, v, "have %d bytes, want %d", len(b), t.bits)
		}
		return common.LeftPadBytes(b, 32), nil

	case FixedPointTy, UfixedPointTy:
		r, ok := toRat(v)
		if !ok {
			return nil, rangeErrorf(t, v, "unsupported value type")
		}
		raw := scaleFixed(r, t.frac)
		if reason := checkInteger(raw, t.t == FixedPointTy, t.bits+t.frac); reason != "" {
			return nil, rangeErrorf(t, v, "%s", reason)
		}
		return packBig(raw), nil
	}
	return nil, rangeErrorf(t, v, "unsupported type")
}

// packBytesSlice packs a byte string as its length word followed by the
// data, right padded to a multiple of 32 bytes.
func packBytesSlice(b []byte) []byte {
	padded := (len(b) + 31) / 32 * 32
	return append(packUint(uint64(len(b))), common.RightPadBytes(b, padded)...)
}
