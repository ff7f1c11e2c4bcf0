// Copyright 2017 The go-ethereum Authors
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

package math

import (
	"math/bits"
)

// WordToUint64 interprets a big-endian word of at most 32 bytes as an
// unsigned integer. It reports false if the value does not fit into 64 bits.
// Offsets and lengths read from ABI data pass through here before they are
// used as indices.
func WordToUint64(word []byte) (uint64, bool) {
	if len(word) > 8 {
		for _, b := range word[:len(word)-8] {
			if b != 0 {
				return 0, false
			}
		}
		word = word[len(word)-8:]
	}
	var v uint64
	for _, b := range word {
		v = v<<8 | uint64(b)
	}
	return v, true
}

// SafeAdd returns x+y and reports whether the addition overflowed.
func SafeAdd(x, y uint64) (uint64, bool) {
	sum, carry := bits.Add64(x, y, 0)
	return sum, carry != 0
}

// SafeMul returns x*y and reports whether the multiplication overflowed.
func SafeMul(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi != 0
}
