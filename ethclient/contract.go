// Copyright 2016 The go-ethereum Authors
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

package ethclient

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/ethjsonrpc/go-ethjsonrpc/accounts/abi"
	"github.com/ethjsonrpc/go-ethjsonrpc/common"
	"github.com/ethjsonrpc/go-ethjsonrpc/common/hexutil"
	"github.com/ethjsonrpc/go-ethjsonrpc/params"
)

// ErrNoContractAddress is returned by ContractAddress for transactions that
// did not create a contract.
var ErrNoContractAddress = errors.New("transaction did not create a contract")

// Transfer sends amount wei from one node account to another and returns the
// transaction hash.
func (ec *Client) Transfer(ctx context.Context, from, to common.Address, amount *big.Int) (common.Hash, error) {
	return ec.SendTransaction(ctx, SendTxArgs{
		From:  from,
		To:    &to,
		Value: (*hexutil.Big)(amount),
	})
}

// CreateContract deploys compiled EVM code and returns the transaction hash.
// If sig is non-empty, args are ABI-encoded against its parameter list and
// appended to the code as constructor arguments. The signature name is
// ignored, so both "(uint256)" and "constructor(uint256)" are accepted.
func (ec *Client) CreateContract(ctx context.Context, from common.Address, code []byte, gas uint64, sig string, args ...interface{}) (common.Hash, error) {
	data := common.CopyBytes(code)
	if sig != "" {
		if strings.HasPrefix(strings.TrimSpace(sig), "(") {
			sig = "constructor" + strings.TrimSpace(sig)
		}
		s, err := abi.ParseSignature(sig)
		if err != nil {
			return common.Hash{}, err
		}
		packed, err := abi.Encode(s.Types, args)
		if err != nil {
			return common.Hash{}, err
		}
		data = append(data, packed...)
	}
	tx := SendTxArgs{From: from, Data: data}
	if gas != 0 {
		tx.Gas = (*hexutil.Uint64)(&gas)
	}
	return ec.SendTransaction(ctx, tx)
}

// ContractAddress returns the address of the contract created by the given
// transaction. NotFound is returned while the transaction is pending.
func (ec *Client) ContractAddress(ctx context.Context, txHash common.Hash) (common.Address, error) {
	receipt, err := ec.TransactionReceipt(ctx, txHash)
	if err != nil {
		return common.Address{}, err
	}
	if receipt.ContractAddress == nil {
		return common.Address{}, ErrNoContractAddress
	}
	return *receipt.ContractAddress, nil
}

// Call invokes the contract function sig at the latest block without creating
// a transaction and decodes the returned data against resultTypes.
func (ec *Client) Call(ctx context.Context, to common.Address, sig string, args []interface{}, resultTypes []string) ([]interface{}, error) {
	data, err := abi.EncodeFunction(sig, args...)
	if err != nil {
		return nil, err
	}
	out, err := ec.CallContract(ctx, CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, err
	}
	ec.log.Trace("Contract call returned", "to", to, "sig", sig, "len", len(out))
	return abi.DecodeStrings(resultTypes, out)
}

// CallWithTransaction invokes the contract function sig by sending a
// transaction, for functions that modify state. A zero gas or nil gasPrice
// fall back to params.DefaultGasPerTx and params.DefaultGasPrice. A nil value
// sends no ether.
func (ec *Client) CallWithTransaction(ctx context.Context, from, to common.Address, sig string, args []interface{}, gas uint64, gasPrice, value *big.Int) (common.Hash, error) {
	data, err := abi.EncodeFunction(sig, args...)
	if err != nil {
		return common.Hash{}, err
	}
	if gas == 0 {
		gas = params.DefaultGasPerTx
	}
	if gasPrice == nil {
		gasPrice = params.DefaultGasPrice
	}
	return ec.SendTransaction(ctx, SendTxArgs{
		From:     from,
		To:       &to,
		Data:     data,
		Gas:      (*hexutil.Uint64)(&gas),
		GasPrice: (*hexutil.Big)(gasPrice),
		Value:    (*hexutil.Big)(value),
	})
}
