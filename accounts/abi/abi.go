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
	"encoding/json"
	"fmt"
	"io"
)

// The ABI holds information about a contract's context and available
// invokable methods. It will allow you to type check function calls and
// packs data accordingly.
type ABI struct {
	Constructor Method
	Methods     map[string]Method
}

// JSON returns a parsed ABI interface and error if it failed.
func JSON(reader io.Reader) (ABI, error) {
	dec := json.NewDecoder(reader)

	var abi ABI
	if err := dec.Decode(&abi); err != nil {
		return ABI{}, err
	}
	return abi, nil
}

// Pack the given method name to conform the ABI. Method call's data
// will consist of method_id, args0, arg1, ... argN. Method id consists
// of 4 bytes and arguments are all 32 bytes.
// Method ids are created from the first 4 bytes of the hash of the
// methods string signature. (signature = baz(uint32,string32))
//
// An empty name packs the constructor arguments, without a method id.
func (abi ABI) Pack(name string, args ...interface{}) ([]byte, error) {
	if name == "" {
		return abi.PackConstructor(args...)
	}
	method, exist := abi.Methods[name]
	if !exist {
		return nil, fmt.Errorf("abi: method '%s' not found", name)
	}
	arguments, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("abi: packing %s: %w", name, err)
	}
	// Pack up the method ID too if not a constructor and return
	return append(method.ID(), arguments...), nil
}

// PackConstructor packs the constructor arguments. The result is appended
// to the contract creation code.
func (abi ABI) PackConstructor(args ...interface{}) ([]byte, error) {
	arguments, err := abi.Constructor.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("abi: packing constructor: %w", err)
	}
	return arguments, nil
}

// Unpack decodes the output of the named method.
func (abi ABI) Unpack(name string, data []byte) ([]interface{}, error) {
	method, exist := abi.Methods[name]
	if !exist {
		return nil, fmt.Errorf("abi: could not locate named method %q", name)
	}
	return method.Outputs.Unpack(data)
}

// MethodByID looks up a method by the 4-byte id,
// returns nil if none found.
func (abi *ABI) MethodByID(sigdata []byte) (*Method, error) {
	if len(sigdata) < 4 {
		return nil, fmt.Errorf("abi: data too short (%d bytes) for abi method lookup", len(sigdata))
	}
	for _, method := range abi.Methods {
		if bytes.Equal(method.ID(), sigdata[:4]) {
			return &method, nil
		}
	}
	return nil, fmt.Errorf("abi: no method with id: %#x", sigdata[:4])
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (abi *ABI) UnmarshalJSON(data []byte) error {
	var fields []struct {
		Type            string
		Name            string
		Inputs          json.RawMessage
		Outputs         json.RawMessage
		Constant        bool
		Payable         bool
		StateMutability string
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	abi.Methods = make(map[string]Method)
	for _, field := range fields {
		if field.Type == "event" || field.Type == "fallback" || field.Type == "receive" || field.Type == "error" {
			// Not callable through the codec.
			continue
		}
		inputs, err := unmarshalArguments(field.Inputs)
		if err != nil {
			return fmt.Errorf("abi: inputs of %q: %w", field.Name, err)
		}
		outputs, err := unmarshalArguments(field.Outputs)
		if err != nil {
			return fmt.Errorf("abi: outputs of %q: %w", field.Name, err)
		}
		switch field.Type {
		case "constructor":
			abi.Constructor = Method{
				Inputs:  inputs,
				Payable: field.Payable || field.StateMutability == "payable",
			}
		// empty defaults to function according to the abi spec
		case "function", "":
			name := field.Name
			// Overloaded methods get a numeric suffix in declaration order.
			for idx := 0; ; idx++ {
				if _, ok := abi.Methods[name]; !ok {
					break
				}
				name = fmt.Sprintf("%s%d", field.Name, idx)
			}
			abi.Methods[name] = Method{
				Name:     field.Name,
				Constant: field.Constant || field.StateMutability == "view" || field.StateMutability == "pure",
				Payable:  field.Payable || field.StateMutability == "payable",
				Inputs:   inputs,
				Outputs:  outputs,
			}
		default:
			return fmt.Errorf("abi: could not recognize type %v of field %v", field.Type, field.Name)
		}
	}
	return nil
}

func unmarshalArguments(raw json.RawMessage) (Arguments, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var args Arguments
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return args, nil
}
