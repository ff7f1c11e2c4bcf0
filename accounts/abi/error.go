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
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// TypeSyntaxError is returned when a type declaration cannot be parsed.
// Pos is the byte offset in Type where the offending run starts.
type TypeSyntaxError struct {
	Type   string
	Pos    int
	Reason string
}

func (e *TypeSyntaxError) Error() string {
	return fmt.Sprintf("abi: invalid type %q at offset %d: %s", e.Type, e.Pos, e.Reason)
}

// ArityError is returned when the number of values differs from the number
// of types they are encoded as.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("abi: argument count mismatch: have %d values for %d types", e.Got, e.Want)
}

// EncodingRangeError is returned when a value cannot be represented in its
// declared type: out of range numbers, length mismatches of fixed size
// arrays and byte strings, or Go values of an unsupported kind.
type EncodingRangeError struct {
	Type   string
	Value  interface{}
	Reason string
}

func (e *EncodingRangeError) Error() string {
	return fmt.Sprintf("abi: cannot encode %s as %s: %s", describeValue(e.Value), e.Type, e.Reason)
}

// DecodingError is returned when the input buffer is not a valid encoding
// of the requested types. Offset is the absolute byte position in the
// buffer where decoding of the failing value started.
type DecodingError struct {
	Type   string
	Offset int
	Reason string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("abi: cannot decode %s at offset %d: %s", e.Type, e.Offset, e.Reason)
}

func rangeErrorf(t Type, value interface{}, format string, args ...interface{}) error {
	return &EncodingRangeError{Type: t.String(), Value: value, Reason: fmt.Sprintf(format, args...)}
}

func decodeErrorf(t Type, offset int, format string, args ...interface{}) error {
	return &DecodingError{Type: t.String(), Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

// maxValueText bounds the rendering of offending values in error messages.
const maxValueText = 80

// describeValue renders a value for error messages, eliding long inputs.
func describeValue(v interface{}) string {
	return fmt.Sprintf("%s (%T)", formatBounded(v), v)
}

// formatBounded is like fmt.Sprint, but stops rendering slices, arrays and
// strings once maxValueText bytes have been produced.
func formatBounded(v interface{}) string {
	switch v.(type) {
	case fmt.Formatter, fmt.Stringer:
		return truncateText(fmt.Sprint(v), maxValueText)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return truncateText(rv.String(), maxValueText)
	case reflect.Slice, reflect.Array:
		var b strings.Builder
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if b.Len() > maxValueText {
				fmt.Fprintf(&b, " ... %d more", rv.Len()-i)
				break
			}
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatBounded(rv.Index(i).Interface()))
		}
		b.WriteByte(']')
		return b.String()
	}
	return truncateText(fmt.Sprint(v), maxValueText)
}

// truncateText cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
