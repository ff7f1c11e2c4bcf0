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
	"errors"
	"fmt"
	"strings"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
type Argument struct {
	Name string
	Type Type
}

type Arguments []Argument

type ArgumentMarshaling struct {
	Name       string
	Type       string
	Components []ArgumentMarshaling
}

// errTupleUnsupported is returned for struct (tuple) arguments, which the
// codec does not support.
var errTupleUnsupported = errors.New("abi: tuple types are not supported")

// UnmarshalJSON implements json.Unmarshaler interface
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}
	if len(arg.Components) > 0 || strings.HasPrefix(arg.Type, "tuple") {
		return fmt.Errorf("%w: argument %q", errTupleUnsupported, arg.Name)
	}
	argument.Type, err = ParseType(arg.Type)
	if err != nil {
		return err
	}
	argument.Name = arg.Name

	return nil
}

// Types returns the types of the arguments in order.
func (arguments Arguments) Types() []Type {
	types := make([]Type, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type
	}
	return types
}

// Pack performs the operation Go format -> Hexdata
func (arguments Arguments) Pack(args ...interface{}) ([]byte, error) {
	return Encode(arguments.Types(), args)
}

// Unpack performs the operation hexdata -> Go format
func (arguments Arguments) Unpack(data []byte) ([]interface{}, error) {
	return Decode(arguments.Types(), data)
}

// UnpackIntoMap decodes data and stores every value under its argument
// name. Unnamed arguments are keyed by their position.
func (arguments Arguments) UnpackIntoMap(v map[string]interface{}, data []byte) error {
	values, err := arguments.Unpack(data)
	if err != nil {
		return err
	}
	for i, arg := range arguments {
		key := arg.Name
		if key == "" {
			key = fmt.Sprintf("%d", i)
		}
		v[key] = values[i]
	}
	return nil
}
