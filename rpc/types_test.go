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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockNumberJSONUnmarshal(t *testing.T) {
	tests := []struct {
		input    string
		mustFail bool
		expected BlockNumber
	}{
		{`"0x"`, true, BlockNumber(0)},
		{`"0x0"`, false, BlockNumber(0)},
		{`"0x00"`, true, BlockNumber(0)},
		{`"0x01"`, true, BlockNumber(0)},
		{`"0x1"`, false, BlockNumber(1)},
		{`"0x12"`, false, BlockNumber(18)},
		{`"0x7fffffffffffffff"`, false, BlockNumber(0x7fffffffffffffff)},
		{`"0x8000000000000000"`, true, BlockNumber(0)},
		{`"ff"`, true, BlockNumber(0)},
		{`"pending"`, false, PendingBlockNumber},
		{`"latest"`, false, LatestBlockNumber},
		{`"earliest"`, false, EarliestBlockNumber},
		{`"finalized"`, true, BlockNumber(0)},
		{`someString`, true, BlockNumber(0)},
		{`""`, false, LatestBlockNumber},
	}

	for i, test := range tests {
		var num BlockNumber
		err := json.Unmarshal([]byte(test.input), &num)
		if test.mustFail {
			require.Error(t, err, "test %d: %s", i, test.input)
			continue
		}
		require.NoError(t, err, "test %d: %s", i, test.input)
		require.Equal(t, test.expected, num, "test %d: %s", i, test.input)
	}
}

func TestBlockNumberMarshalText(t *testing.T) {
	tests := map[BlockNumber]string{
		LatestBlockNumber:   `"latest"`,
		PendingBlockNumber:  `"pending"`,
		EarliestBlockNumber: `"earliest"`,
		BlockNumber(1):      `"0x1"`,
		BlockNumber(255):    `"0xff"`,
	}
	for bn, want := range tests {
		enc, err := json.Marshal(bn)
		require.NoError(t, err)
		require.Equal(t, want, string(enc))

		var dec BlockNumber
		require.NoError(t, json.Unmarshal(enc, &dec))
		require.Equal(t, bn, dec)
	}
}

func TestValidateBlockTag(t *testing.T) {
	for _, tag := range []string{"latest", "earliest", "pending", "0x0", "0x10"} {
		require.NoError(t, ValidateBlockTag(tag), tag)
	}
	for _, tag := range []string{"", "Latest", "10", "0x", "0xzz", "safe"} {
		require.ErrorIs(t, ValidateBlockTag(tag), errInvalidBlockTag, tag)
	}
}
