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

package rpc

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ethjsonrpc/go-ethjsonrpc/common/hexutil"
)

// BlockNumber identifies a block in the state-reading RPC methods. The
// negative values stand for the symbolic tags understood by every node.
type BlockNumber int64

const (
	PendingBlockNumber  = BlockNumber(-2)
	LatestBlockNumber   = BlockNumber(-1)
	EarliestBlockNumber = BlockNumber(0)
)

// Block tags accepted by eth_getBalance, eth_call and friends.
const (
	TagEarliest = "earliest"
	TagLatest   = "latest"
	TagPending  = "pending"
)

var errInvalidBlockTag = errors.New("rpc: invalid block tag")

// UnmarshalJSON parses the given JSON fragment into a BlockNumber. It supports:
// - "latest", "earliest" or "pending" as string arguments
// - the block number as a hex quantity
// Returned errors:
// - an invalid block number error when the given argument isn't a known string
// - an out of range error when the given block number is too large
func (bn *BlockNumber) UnmarshalJSON(data []byte) error {
	input := strings.TrimSpace(string(data))
	if len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"' {
		input = input[1 : len(input)-1]
	}
	return bn.UnmarshalText([]byte(input))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (bn *BlockNumber) UnmarshalText(text []byte) error {
	input := string(text)
	switch input {
	case TagEarliest:
		*bn = EarliestBlockNumber
		return nil
	case TagLatest, "":
		*bn = LatestBlockNumber
		return nil
	case TagPending:
		*bn = PendingBlockNumber
		return nil
	}
	n, err := hexutil.DecodeUint64(input)
	if err != nil {
		return fmt.Errorf("%w %q: %v", errInvalidBlockTag, input, err)
	}
	if n > math.MaxInt64 {
		return fmt.Errorf("block number larger than int64")
	}
	*bn = BlockNumber(n)
	return nil
}

// MarshalText implements encoding.TextMarshaler. It marshals:
// - "latest", "earliest" or "pending" as strings
// - other numbers as hex
func (bn BlockNumber) MarshalText() ([]byte, error) {
	return []byte(bn.String()), nil
}

func (bn BlockNumber) String() string {
	switch bn {
	case EarliestBlockNumber:
		return TagEarliest
	case LatestBlockNumber:
		return TagLatest
	case PendingBlockNumber:
		return TagPending
	}
	if bn < 0 {
		return fmt.Sprintf("<invalid %d>", bn)
	}
	return hexutil.EncodeUint64(uint64(bn))
}

func (bn BlockNumber) Int64() int64 {
	return (int64)(bn)
}

// ValidateBlockTag checks that tag is either one of the symbolic block tags
// or a 0x-prefixed hex quantity.
func ValidateBlockTag(tag string) error {
	var bn BlockNumber
	if tag == "" {
		return fmt.Errorf("%w: empty", errInvalidBlockTag)
	}
	return bn.UnmarshalText([]byte(tag))
}
