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
	"github.com/ethjsonrpc/go-ethjsonrpc/common/math"
)

// Decode unpacks data into one Go value per type. Decoded values are
// *big.Int for integers, bool, common.Address, *big.Rat for fixed point
// numbers, []byte for bytes, bytesN and hashN, string, and []interface{}
// for arrays.
//
// Every offset and length read from data is bounds checked; malformed input
// yields a *DecodingError and never a panic.
func Decode(types []Type, data []byte) ([]interface{}, error) {
	d := &decoder{budget: uint64(len(data))}
	return d.sequence(len(types), func(i int) Type { return types[i] }, data, 0)
}

// DecodeStrings is like Decode but parses the type declarations first.
func DecodeStrings(types []string, data []byte) ([]interface{}, error) {
	parsed, err := ParseTypes(types)
	if err != nil {
		return nil, err
	}
	return Decode(parsed, data)
}

// decoder tracks how many input bytes are left to be consumed. Every word
// and payload byte read is charged against the budget. A canonical encoding
// never reads the same region twice, so it always fits; offsets aliasing
// shared child blocks run out of budget instead of multiplying work.
type decoder struct {
	budget uint64
}

func (d *decoder) charge(t Type, at int, n uint64) error {
	if n > d.budget {
		return decodeErrorf(t, at, "encoding reads more data than the input holds")
	}
	d.budget -= n
	return nil
}

// sequence reads n values laid out as one head/tail block starting at
// block[0]. base is the absolute position of block in the input and is only
// used for error reporting.
func (d *decoder) sequence(n int, typeAt func(int) Type, block []byte, base int) ([]interface{}, error) {
	var (
		out = make([]interface{}, n)
		pos = 0
	)
	for i := 0; i < n; i++ {
		t := typeAt(i)
		size := t.headSize()
		if len(block)-pos < size {
			return nil, decodeErrorf(t, base+pos, "need %d bytes, have %d", size, len(block)-pos)
		}
		var (
			v   interface{}
			err error
		)
		if t.Dynamic() {
			if err := d.charge(t, base+pos, 32); err != nil {
				return nil, err
			}
			offset, ok := math.WordToUint64(block[pos : pos+32])
			if !ok || offset > uint64(len(block)) {
				return nil, decodeErrorf(t, base+pos, "offset exceeds buffer of %d bytes", len(block))
			}
			v, err = d.value(t, block[offset:], base+int(offset))
		} else {
			v, err = d.value(t, block[pos:pos+size], base+pos)
		}
		if err != nil {
			return nil, err
		}
		out[i] = v
		pos += size
	}
	return out, nil
}

// value reads a single value whose encoding starts at b[0].
func (d *decoder) value(t Type, b []byte, at int) (interface{}, error) {
	if t.IsArray() {
		return d.array(t, b, at)
	}
	switch t.t {
	case StringTy:
		data, err := d.bytesSlice(t, b, at)
		if err != nil {
			return nil, err
		}
		return string(data), nil
	case BytesTy:
		return d.bytesSlice(t, b, at)
	}
	if len(b) < 32 {
		return nil, decodeErrorf(t, at, "need 32 bytes, have %d", len(b))
	}
	if err := d.charge(t, at, 32); err != nil {
		return nil, err
	}
	return decodeScalar(t, b[:32], at)
}

// array reads the elements of an array. Dynamic arrays start with their
// element count; the element block follows it.
func (d *decoder) array(t Type, b []byte, at int) (interface{}, error) {
	length := uint64(t.dims[len(t.dims)-1])
	if length == 0 {
		if len(b) < 32 {
			return nil, decodeErrorf(t, at, "missing array length")
		}
		if err := d.charge(t, at, 32); err != nil {
			return nil, err
		}
		n, ok := math.WordToUint64(b[:32])
		if !ok {
			return nil, decodeErrorf(t, at, "array length overflows")
		}
		length, b, at = n, b[32:], at+32
	}
	elem := *t.elem
	// Every element occupies at least its head size in the block, which
	// bounds the allocation below by the input length.
	need, overflow := math.SafeMul(length, uint64(elem.headSize()))
	if overflow || need > uint64(len(b)) {
		return nil, decodeErrorf(t, at, "%d elements exceed buffer of %d bytes", length, len(b))
	}
	if need > d.budget {
		return nil, decodeErrorf(t, at, "%d elements exceed the remaining input", length)
	}
	return d.sequence(int(length), func(int) Type { return elem }, b, at)
}

// bytesSlice reads a length prefixed byte string.
func (d *decoder) bytesSlice(t Type, b []byte, at int) ([]byte, error) {
	if len(b) < 32 {
		return nil, decodeErrorf(t, at, "missing length")
	}
	size, ok := math.WordToUint64(b[:32])
	if !ok {
		return nil, decodeErrorf(t, at, "length overflows")
	}
	end, overflow := math.SafeAdd(32, size)
	if overflow || end > uint64(len(b)) {
		return nil, decodeErrorf(t, at, "length %d exceeds buffer of %d bytes", size, len(b)-32)
	}
	if err := d.charge(t, at, end); err != nil {
		return nil, err
	}
	return common.CopyBytes(b[32:end]), nil
}

// decodeScalar reads a fixed width scalar from a single word, rejecting
// words that are not the canonical encoding of any value of the type.
func decodeScalar(t Type, word []byte, at int) (interface{}, error) {
	switch t.t {
	case UintTy:
		n := unpackUint(word)
		if n.BitLen() > t.bits {
			return nil, decodeErrorf(t, at, "value exceeds type width")
		}
		return n, nil

	case IntTy:
		n := math.S256(unpackUint(word))
		if reason := checkInteger(n, true, t.bits); reason != "" {
			return nil, decodeErrorf(t, at, "improperly sign extended value")
		}
		return n, nil

	case BoolTy:
		for _, c := range word[:31] {
			if c != 0 {
				return nil, decodeErrorf(t, at, "invalid boolean")
			}
		}
		switch word[31] {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return nil, decodeErrorf(t, at, "invalid boolean")

	case AddressTy:
		if !allZero(word[:32-common.AddressLength]) {
			return nil, decodeErrorf(t, at, "dirty address padding")
		}
		return common.BytesToAddress(word[32-common.AddressLength:]), nil

	case FixedBytesTy:
		if !allZero(word[t.bits:]) {
			return nil, decodeErrorf(t, at, "dirty bytes padding")
		}
		return common.CopyBytes(word[:t.bits]), nil

	case HashTy:
		if t.bits < 1 || t.bits > 32 {
			return nil, decodeErrorf(t, at, "hash length must be between 1 and 32 bytes")
		}
		if !allZero(word[:32-t.bits]) {
			return nil, decodeErrorf(t, at, "dirty hash padding")
		}
		return common.CopyBytes(word[32-t.bits:]), nil

	case FixedPointTy, UfixedPointTy:
		raw := unpackUint(word)
		if t.t == FixedPointTy {
			raw = math.S256(raw)
		}
		if reason := checkInteger(raw, t.t == FixedPointTy, t.bits+t.frac); reason != "" {
			return nil, decodeErrorf(t, at, "%s", reason)
		}
		return unscaleFixed(raw, t.frac), nil
	}
	return nil, decodeErrorf(t, at, "unsupported type")
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
