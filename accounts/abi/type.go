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
	"errors"
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	AddressTy
	FixedBytesTy
	BytesTy
	HashTy
	FixedPointTy
	UfixedPointTy
)

// ErrNoSubtype is returned when the element type of a non-array type is
// requested.
var ErrNoSubtype = errors.New("abi: scalar type has no subtype")

// Type is the reflection of a supported ABI type. Types are immutable
// values: two types compare Equal whenever they were parsed from
// equivalent declarations.
type Type struct {
	t    byte
	base string // canonical base name
	bits int    // uint/int/hash width, bytesN length, fixed integral bits
	frac int    // fixed fractional bits
	dims []int  // array dimensions, innermost first; 0 denotes a dynamic length
	size int    // encoded size in bytes, -1 when dynamic

	elem *Type // element type of arrays, nil for scalars
	str  string
}

// T returns the base kind of the type, regardless of array dimensions.
func (t Type) T() byte { return t.t }

// BaseName returns the canonical base name: uint, int, address, bool,
// fixed, ufixed, bytes, string or hash.
func (t Type) BaseName() string { return t.base }

// Bits returns the width qualifier: bit width for uint/int, byte length for
// bytesN and hashN, integral bits for fixed point. Zero means unqualified.
func (t Type) Bits() int { return t.bits }

// Frac returns the fractional bits of a fixed point type.
func (t Type) Frac() int { return t.frac }

// Sub returns the textual width qualifier in canonical form.
func (t Type) Sub() string {
	switch t.t {
	case IntTy, UintTy, HashTy, FixedBytesTy:
		return strconv.Itoa(t.bits)
	case FixedPointTy, UfixedPointTy:
		return fmt.Sprintf("%dx%d", t.bits, t.frac)
	}
	return ""
}

// Dims returns a copy of the array dimensions, the outermost axis last.
// A zero entry denotes a dynamically sized axis.
func (t Type) Dims() []int {
	if len(t.dims) == 0 {
		return nil
	}
	return append([]int(nil), t.dims...)
}

// IsArray reports whether the type has at least one array dimension.
func (t Type) IsArray() bool { return len(t.dims) > 0 }

// Size returns the number of bytes the type occupies in the head of an
// encoding. The second return value is false for dynamic types.
func (t Type) Size() (int, bool) {
	if t.size < 0 {
		return 0, false
	}
	return t.size, true
}

// Dynamic reports whether the encoding of the type is length dependent and
// thus lives in the tail of an encoding.
func (t Type) Dynamic() bool { return t.size < 0 }

// headSize is the number of bytes the type takes in the head of an
// enclosing sequence: its static size, or one offset word.
func (t Type) headSize() int {
	if t.size < 0 {
		return 32
	}
	return t.size
}

// Subtype returns the element type of an array: the same base with the
// last dimension removed.
func (t Type) Subtype() (Type, error) {
	if t.elem == nil {
		return Type{}, ErrNoSubtype
	}
	return *t.elem, nil
}

// String implements Stringer, returning the canonical type declaration.
func (t Type) String() string { return t.str }

// Equal reports whether two types describe the same ABI type.
func (t Type) Equal(o Type) bool {
	if t.t != o.t || t.bits != o.bits || t.frac != o.frac || len(t.dims) != len(o.dims) {
		return false
	}
	for i := range t.dims {
		if t.dims[i] != o.dims[i] {
			return false
		}
	}
	return true
}

// SizeType is the descriptor used for length prefixes and offsets.
var SizeType = MustParseType("uint256")

// typeCacheSize bounds the number of interned descriptors.
const typeCacheSize = 1024

// typeCache interns parsed descriptors by their literal declaration.
// Descriptors are immutable, so cached values are shared freely.
var typeCache = newTypeCache()

func newTypeCache() *lru.Cache {
	cache, err := lru.New(typeCacheSize)
	if err != nil {
		panic(err)
	}
	return cache
}

// ParseType parses an ABI type declaration such as "uint256", "bytes",
// "fixed128x128" or "address[2][]". All rejections are reported as
// *TypeSyntaxError.
func ParseType(s string) (Type, error) {
	if cached, ok := typeCache.Get(s); ok {
		return cached.(Type), nil
	}
	typ, err := parseType(s)
	if err != nil {
		return Type{}, err
	}
	typeCache.Add(s, typ)
	return typ, nil
}

// MustParseType is like ParseType but panics on error. It is meant for
// package level declarations.
func MustParseType(s string) Type {
	typ, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return typ
}

// ParseTypes parses every declaration of the list.
func ParseTypes(list []string) ([]Type, error) {
	types := make([]Type, len(list))
	for i, s := range list {
		typ, err := ParseType(s)
		if err != nil {
			return nil, err
		}
		types[i] = typ
	}
	return types, nil
}

// SplitTypeList splits a comma separated declaration list ("uint256,bytes")
// into its trimmed elements. An empty or blank list yields no elements.
func SplitTypeList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseType tokenizes the declaration into its three runs: the lowercase
// base name, the width qualifier (digits with at most one 'x') and the
// bracketed dimensions, then validates the combination.
func parseType(s string) (Type, error) {
	sc := typeScanner{input: s}

	base := sc.scan(func(c byte) bool { return 'a' <= c && c <= 'z' })
	subStart := sc.pos
	sub := sc.scanSub()
	dims, err := sc.scanDims()
	if err != nil {
		return Type{}, err
	}
	if base == "" {
		return Type{}, sc.errorf(0, "missing base type")
	}
	if !baseNames[base] {
		return Type{}, sc.errorf(0, "unrecognized base type %q", base)
	}
	typ := Type{base: base}
	if err := typ.setBase(sub); err != nil {
		return Type{}, &TypeSyntaxError{Type: s, Pos: subStart, Reason: err.Error()}
	}
	if err := typ.setDims(dims); err != nil {
		return Type{}, &TypeSyntaxError{Type: s, Pos: len(base) + len(sub), Reason: err.Error()}
	}
	return typ, nil
}

var baseNames = map[string]bool{
	"uint": true, "int": true, "address": true, "bool": true, "string": true,
	"bytes": true, "hash": true, "fixed": true, "ufixed": true, "real": true, "ureal": true,
}

type typeScanner struct {
	input string
	pos   int
}

func (sc *typeScanner) errorf(pos int, format string, args ...interface{}) *TypeSyntaxError {
	return &TypeSyntaxError{Type: sc.input, Pos: pos, Reason: fmt.Sprintf(format, args...)}
}

func (sc *typeScanner) scan(accept func(c byte) bool) string {
	start := sc.pos
	for sc.pos < len(sc.input) && accept(sc.input[sc.pos]) {
		sc.pos++
	}
	return sc.input[start:sc.pos]
}

// scanSub consumes a digit run that may contain a single 'x' separator.
func (sc *typeScanner) scanSub() string {
	start := sc.pos
	sc.scan(isDigit)
	if sc.pos < len(sc.input) && sc.input[sc.pos] == 'x' {
		sc.pos++
		sc.scan(isDigit)
	}
	return sc.input[start:sc.pos]
}

// scanDims consumes "[k]" and "[]" groups until the input is exhausted.
// Anything else left over is a syntax error.
func (sc *typeScanner) scanDims() ([]int, error) {
	var dims []int
	for sc.pos < len(sc.input) {
		open := sc.pos
		if sc.input[sc.pos] != '[' {
			return nil, sc.errorf(sc.pos, "unexpected character %q", sc.input[sc.pos])
		}
		sc.pos++
		digits := sc.scan(isDigit)
		if sc.pos >= len(sc.input) {
			return nil, sc.errorf(open, "unterminated array dimension")
		}
		if sc.input[sc.pos] != ']' {
			return nil, sc.errorf(sc.pos, "unexpected character %q in array dimension", sc.input[sc.pos])
		}
		sc.pos++
		if digits == "" {
			dims = append(dims, 0)
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil, sc.errorf(open+1, "array length %s out of range", digits)
		}
		if n == 0 {
			return nil, sc.errorf(open+1, "zero length fixed array")
		}
		dims = append(dims, n)
	}
	return dims, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// setBase validates the base/qualifier combination and fills in the kind
// and the numeric qualifiers.
func (t *Type) setBase(sub string) error {
	switch t.base {
	case "string":
		if sub != "" {
			return errors.New("string type cannot have a suffix")
		}
		t.t = StringTy

	case "bytes":
		if sub == "" {
			t.t = BytesTy
			break
		}
		n, err := parseWidth(sub)
		if err != nil {
			return err
		}
		if n < 1 || n > 32 {
			return fmt.Errorf("bytes length %d must be between 1 and 32", n)
		}
		t.t, t.bits = FixedBytesTy, n

	case "uint", "int":
		n, err := parseWidth(sub)
		if err != nil {
			return fmt.Errorf("integer type must have a numeric size: %v", err)
		}
		if n < 8 || n > 256 {
			return fmt.Errorf("integer size %d out of bounds [8, 256]", n)
		}
		if n%8 != 0 {
			return fmt.Errorf("integer size %d must be a multiple of 8", n)
		}
		t.t, t.bits = IntTy, n
		if t.base == "uint" {
			t.t = UintTy
		}

	case "fixed", "ufixed", "real", "ureal":
		high, low, ok := strings.Cut(sub, "x")
		if !ok || high == "" || low == "" {
			return errors.New("fixed point type must have a <high>x<low> suffix")
		}
		h, err := parseWidth(high)
		if err != nil {
			return err
		}
		l, err := parseWidth(low)
		if err != nil {
			return err
		}
		if h+l < 8 || h+l > 256 {
			return fmt.Errorf("fixed point size %d out of bounds [8, 256]", h+l)
		}
		if h%8 != 0 || l%8 != 0 {
			return errors.New("fixed point high and low parts must be multiples of 8")
		}
		t.bits, t.frac = h, l
		if t.base == "fixed" || t.base == "real" {
			t.t, t.base = FixedPointTy, "fixed"
		} else {
			t.t, t.base = UfixedPointTy, "ufixed"
		}

	case "hash":
		n, err := parseWidth(sub)
		if err != nil {
			return fmt.Errorf("hash type must have a numeric size: %v", err)
		}
		t.t, t.bits = HashTy, n

	case "address":
		if sub != "" {
			return errors.New("address type cannot have a suffix")
		}
		t.t = AddressTy

	case "bool":
		if sub != "" {
			return errors.New("bool type cannot have a suffix")
		}
		t.t = BoolTy

	default:
		return fmt.Errorf("unrecognized base type %q", t.base)
	}
	return nil
}

// parseWidth parses a plain decimal qualifier.
func parseWidth(s string) (int, error) {
	if s == "" {
		return 0, errors.New("missing size")
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, fmt.Errorf("invalid size %q", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("size %s out of range", s)
	}
	return n, nil
}

// setDims attaches the dimension list, deriving the canonical string,
// encoded size and element type of every array level.
func (t *Type) setDims(dims []int) error {
	scalar := *t
	scalar.dims = nil
	scalar.elem = nil
	scalar.str = scalar.base
	if sub := scalar.Sub(); sub != "" {
		scalar.str += sub
	}
	scalar.size = 32
	if scalar.t == StringTy || scalar.t == BytesTy {
		scalar.size = -1
	}

	cur := scalar
	for i, d := range dims {
		elem := cur
		cur = Type{
			t:    scalar.t,
			base: scalar.base,
			bits: scalar.bits,
			frac: scalar.frac,
			dims: dims[: i+1 : i+1],
			elem: &elem,
		}
		switch {
		case d == 0:
			cur.size = -1
			cur.str = elem.str + "[]"
		default:
			cur.str = elem.str + "[" + strconv.Itoa(d) + "]"
			if elem.size < 0 {
				cur.size = -1
			} else {
				if elem.size > maxStaticSize/d {
					return fmt.Errorf("static array of %s too large", cur.str)
				}
				cur.size = d * elem.size
			}
		}
	}
	*t = cur
	return nil
}

// maxStaticSize caps the encoded size of static arrays so that offsets
// computed over them can never overflow an int.
const maxStaticSize = 1 << 30
