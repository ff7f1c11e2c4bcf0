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

package params

import (
	"math/big"
)

// These are the multipliers for ether denominations.
// Example: To get the wei value of an amount in 'gwei', use
//
//	new(big.Int).Mul(value, big.NewInt(params.GWei))
const (
	Wei   = 1
	GWei  = 1e9
	Ether = 1e18
)

var (
	bigEther = new(big.Int).SetUint64(Ether)
	ratEther = new(big.Rat).SetInt(bigEther)
)

// WeiToEther converts an amount of wei into an exact amount of ether.
func WeiToEther(wei *big.Int) *big.Rat {
	return new(big.Rat).SetFrac(wei, bigEther)
}

// EtherToWei converts an amount of ether into wei. Fractions of a wei are
// truncated toward zero.
func EtherToWei(ether *big.Rat) *big.Int {
	wei := new(big.Rat).Mul(ether, ratEther)
	return new(big.Int).Quo(wei.Num(), wei.Denom())
}
