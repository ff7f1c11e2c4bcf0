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
	"strings"

	"github.com/ethjsonrpc/go-ethjsonrpc/crypto"
)

// Method represents a callable given a `Name` and whether the method is a constant.
// If the method is `Constant` no transaction needs to be created for this
// particular Method call. It can be answered by an eth_call against the
// node. A method such as `transfer` does require a transaction and thus
// will be flagged `false`.
// Inputs specifies the required input parameters for this given method.
type Method struct {
	Name     string
	Constant bool
	Payable  bool
	Inputs   Arguments
	Outputs  Arguments
}

// Sig returns the methods string signature according to the ABI spec.
//
// Example
//
//	function foo(uint32 a, int b)    =    "foo(uint32,int256)"
//
// Please note that "int" is substitute for its canonical representation "int256"
func (method Method) Sig() string {
	return method.Signature().String()
}

// Signature returns the parsed signature of the method.
func (method Method) Signature() Signature {
	return Signature{Name: method.Name, Types: method.Inputs.Types()}
}

func (method Method) String() string {
	inputs := make([]string, len(method.Inputs))
	for i, input := range method.Inputs {
		inputs[i] = strings.TrimSpace(fmt.Sprintf("%v %v", input.Type, input.Name))
	}
	outputs := make([]string, len(method.Outputs))
	for i, output := range method.Outputs {
		outputs[i] = output.Type.String()
		if len(output.Name) > 0 {
			outputs[i] += fmt.Sprintf(" %v", output.Name)
		}
	}
	var modifiers string
	if method.Constant {
		modifiers += "constant "
	}
	if method.Payable {
		modifiers += "payable "
	}
	return fmt.Sprintf("function %v(%v) %sreturns(%v)", method.Name, strings.Join(inputs, ", "), modifiers, strings.Join(outputs, ", "))
}

// ID returns the four byte selector of the method.
func (method Method) ID() []byte {
	return crypto.Keccak256([]byte(method.Sig()))[:4]
}
