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
	"strings"

	"github.com/ethjsonrpc/go-ethjsonrpc/common/hexutil"
	"github.com/ethjsonrpc/go-ethjsonrpc/crypto"
)

// ErrInvalidSignature is returned for function signatures that are not of
// the form name(type,...).
var ErrInvalidSignature = errors.New("abi: invalid function signature")

// Signature is a parsed function signature such as "transfer(address,uint256)".
type Signature struct {
	Name  string
	Types []Type
}

// ParseSignature parses a function signature. Whitespace around parameter
// types is ignored and aliases such as real128x128 are normalized.
func ParseSignature(sig string) (Signature, error) {
	sig = strings.TrimSpace(sig)
	open := strings.IndexByte(sig, '(')
	if open <= 0 || !strings.HasSuffix(sig, ")") || strings.Count(sig, "(") != 1 || strings.Count(sig, ")") != 1 {
		return Signature{}, fmt.Errorf("%w: %q", ErrInvalidSignature, sig)
	}
	name := strings.TrimSpace(sig[:open])
	if strings.ContainsAny(name, " \t,") {
		return Signature{}, fmt.Errorf("%w: %q", ErrInvalidSignature, sig)
	}
	params := sig[open+1 : len(sig)-1]
	var types []Type
	if strings.TrimSpace(params) != "" {
		list := SplitTypeList(params)
		for _, s := range list {
			if s == "" {
				return Signature{}, fmt.Errorf("%w: empty parameter in %q", ErrInvalidSignature, sig)
			}
		}
		var err error
		if types, err = ParseTypes(list); err != nil {
			return Signature{}, err
		}
	}
	return Signature{Name: name, Types: types}, nil
}

// String returns the canonical signature, the preimage of the selector.
func (s Signature) String() string {
	types := make([]string, len(s.Types))
	for i, t := range s.Types {
		types[i] = t.String()
	}
	return fmt.Sprintf("%v(%v)", s.Name, strings.Join(types, ","))
}

// Selector returns the first four bytes of the Keccak-256 hash of the
// canonical signature.
func (s Signature) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte(s.String())))
	return sel
}

// Encode returns the call data for invoking the function with args: the
// selector followed by the encoded arguments.
func (s Signature) Encode(args ...interface{}) ([]byte, error) {
	packed, err := Encode(s.Types, args)
	if err != nil {
		return nil, err
	}
	sel := s.Selector()
	return append(sel[:], packed...), nil
}

// EncodeFunction parses sig and returns the call data for invoking it with
// args.
func EncodeFunction(sig string, args ...interface{}) ([]byte, error) {
	s, err := ParseSignature(sig)
	if err != nil {
		return nil, err
	}
	return s.Encode(args...)
}

// EncodeFunctionHex is like EncodeFunction but returns 0x-prefixed hex, the
// form expected in the data field of JSON-RPC calls.
func EncodeFunctionHex(sig string, args ...interface{}) (string, error) {
	data, err := EncodeFunction(sig, args...)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(data), nil
}
