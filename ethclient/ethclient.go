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

// Package ethclient provides a client for the Ethereum RPC API.
package ethclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethjsonrpc/go-ethjsonrpc/common"
	"github.com/ethjsonrpc/go-ethjsonrpc/common/hexutil"
	"github.com/ethjsonrpc/go-ethjsonrpc/log"
	"github.com/ethjsonrpc/go-ethjsonrpc/rpc"
)

// NotFound is returned by API methods if the requested item does not exist.
var NotFound = errors.New("not found")

// Client defines typed wrappers for the Ethereum RPC API.
type Client struct {
	c   *rpc.Client
	log log.Logger
}

// Dial connects a client to the given URL.
func Dial(rawurl string) (*Client, error) {
	return DialContext(context.Background(), rawurl)
}

// DialContext connects a client to the given URL with context.
func DialContext(ctx context.Context, rawurl string, opts ...rpc.ClientOption) (*Client, error) {
	c, err := rpc.DialOptions(ctx, rawurl, opts...)
	if err != nil {
		return nil, err
	}
	return NewClient(c), nil
}

// NewClient creates a client that uses the given RPC client.
func NewClient(c *rpc.Client) *Client {
	return &Client{c: c, log: log.New("module", "ethclient")}
}

// Close closes the underlying RPC connection.
func (ec *Client) Close() {
	ec.c.Close()
}

// Client gets the underlying RPC client.
func (ec *Client) Client() *rpc.Client {
	return ec.c
}

// call forwards a single request and logs its outcome.
func (ec *Client) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	start := time.Now()
	err := ec.c.CallContext(ctx, result, method, args...)
	if err != nil {
		ec.log.Debug("Node call failed", "method", method, "elapsed", time.Since(start), "err", err)
		return err
	}
	ec.log.Debug("Node call", "method", method, "elapsed", time.Since(start))
	return nil
}

// Node info

// ClientVersion returns the version string of the node software.
func (ec *Client) ClientVersion(ctx context.Context) (string, error) {
	var version string
	err := ec.call(ctx, &version, "web3_clientVersion")
	return version, err
}

// Sha3 asks the node for the Keccak-256 hash of data.
func (ec *Client) Sha3(ctx context.Context, data []byte) (common.Hash, error) {
	var hash common.Hash
	err := ec.call(ctx, &hash, "web3_sha3", hexutil.Bytes(data))
	return hash, err
}

// NetworkID returns the network ID for this client.
func (ec *Client) NetworkID(ctx context.Context) (*big.Int, error) {
	version := new(big.Int)
	var ver string
	if err := ec.call(ctx, &ver, "net_version"); err != nil {
		return nil, err
	}
	if _, ok := version.SetString(ver, 10); !ok {
		return nil, fmt.Errorf("invalid net_version result %q", ver)
	}
	return version, nil
}

// NetListening reports whether the node is accepting network connections.
func (ec *Client) NetListening(ctx context.Context) (bool, error) {
	var listening bool
	err := ec.call(ctx, &listening, "net_listening")
	return listening, err
}

// PeerCount returns the number of peers connected to the node.
func (ec *Client) PeerCount(ctx context.Context) (uint64, error) {
	var count hexutil.Uint64
	err := ec.call(ctx, &count, "net_peerCount")
	return uint64(count), err
}

// ProtocolVersion returns the Ethereum protocol version as reported by the
// node. Nodes disagree on the format, so it is returned verbatim.
func (ec *Client) ProtocolVersion(ctx context.Context) (string, error) {
	var version string
	err := ec.call(ctx, &version, "eth_protocolVersion")
	return version, err
}

// Syncing returns the current sync progress of the node, or nil when the node
// is not syncing.
func (ec *Client) Syncing(ctx context.Context) (*SyncProgress, error) {
	var raw json.RawMessage
	if err := ec.call(ctx, &raw, "eth_syncing"); err != nil {
		return nil, err
	}
	// Handle the possible response types
	var syncing bool
	if err := json.Unmarshal(raw, &syncing); err == nil {
		return nil, nil // Not syncing (always false)
	}
	var p SyncProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Coinbase returns the address mining rewards are paid to.
func (ec *Client) Coinbase(ctx context.Context) (common.Address, error) {
	var coinbase common.Address
	err := ec.call(ctx, &coinbase, "eth_coinbase")
	return coinbase, err
}

// Mining reports whether the node is mining.
func (ec *Client) Mining(ctx context.Context) (bool, error) {
	var mining bool
	err := ec.call(ctx, &mining, "eth_mining")
	return mining, err
}

// Hashrate returns the number of hashes per second the node is mining with.
func (ec *Client) Hashrate(ctx context.Context) (uint64, error) {
	var rate hexutil.Uint64
	err := ec.call(ctx, &rate, "eth_hashrate")
	return uint64(rate), err
}

// SuggestGasPrice retrieves the currently suggested gas price to allow a timely
// execution of a transaction.
func (ec *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	var hex hexutil.Big
	if err := ec.call(ctx, &hex, "eth_gasPrice"); err != nil {
		return nil, err
	}
	return (*big.Int)(&hex), nil
}

// Accounts returns the addresses owned by the node.
func (ec *Client) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	err := ec.call(ctx, &accounts, "eth_accounts")
	return accounts, err
}

// Blockchain access

// BlockNumber returns the most recent block number.
func (ec *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var result hexutil.Uint64
	err := ec.call(ctx, &result, "eth_blockNumber")
	return uint64(result), err
}

// BlockByHash returns the given block. With fullTx the transactions are
// returned in full, otherwise only their hashes are set.
func (ec *Client) BlockByHash(ctx context.Context, hash common.Hash, fullTx bool) (*Block, error) {
	return ec.getBlock(ctx, "eth_getBlockByHash", hash, fullTx)
}

// BlockByNumber returns a block from the current canonical chain. If number is
// nil, the latest known block is returned.
func (ec *Client) BlockByNumber(ctx context.Context, number *big.Int, fullTx bool) (*Block, error) {
	return ec.getBlock(ctx, "eth_getBlockByNumber", toBlockNumArg(number), fullTx)
}

func (ec *Client) getBlock(ctx context.Context, method string, args ...interface{}) (*Block, error) {
	var block *Block
	if err := ec.call(ctx, &block, method, args...); err != nil {
		return nil, err
	}
	if block == nil {
		return nil, NotFound
	}
	return block, nil
}

// TransactionByHash returns the transaction with the given hash.
func (ec *Client) TransactionByHash(ctx context.Context, hash common.Hash) (*Transaction, error) {
	var tx *Transaction
	if err := ec.call(ctx, &tx, "eth_getTransactionByHash", hash); err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, NotFound
	}
	return tx, nil
}

// TransactionReceipt returns the receipt of a transaction by transaction hash.
// Note that the receipt is not available for pending transactions.
func (ec *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*Receipt, error) {
	var r *Receipt
	if err := ec.call(ctx, &r, "eth_getTransactionReceipt", txHash); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, NotFound
	}
	return r, nil
}

// State access

// BalanceAt returns the wei balance of the given account.
// The block number can be nil, in which case the balance is taken from the latest known block.
func (ec *Client) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	var result hexutil.Big
	err := ec.call(ctx, &result, "eth_getBalance", account, toBlockNumArg(blockNumber))
	return (*big.Int)(&result), err
}

// StorageAt returns the value of key in the contract storage of the given account.
// The block number can be nil, in which case the value is taken from the latest known block.
func (ec *Client) StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error) {
	var result hexutil.Bytes
	err := ec.call(ctx, &result, "eth_getStorageAt", account, key, toBlockNumArg(blockNumber))
	return result, err
}

// CodeAt returns the contract code of the given account.
// The block number can be nil, in which case the code is taken from the latest known block.
func (ec *Client) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	var result hexutil.Bytes
	err := ec.call(ctx, &result, "eth_getCode", account, toBlockNumArg(blockNumber))
	return result, err
}

// NonceAt returns the account nonce of the given account.
// The block number can be nil, in which case the nonce is taken from the latest known block.
func (ec *Client) NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error) {
	var result hexutil.Uint64
	err := ec.call(ctx, &result, "eth_getTransactionCount", account, toBlockNumArg(blockNumber))
	return uint64(result), err
}

// Transactions

// Sign asks the node to sign data with the key of account.
func (ec *Client) Sign(ctx context.Context, account common.Address, data []byte) ([]byte, error) {
	var sig hexutil.Bytes
	err := ec.call(ctx, &sig, "eth_sign", account, hexutil.Bytes(data))
	return sig, err
}

// SendTransaction asks the node to sign and submit a transaction from one of
// its accounts. An empty From is replaced by the node's coinbase.
func (ec *Client) SendTransaction(ctx context.Context, args SendTxArgs) (common.Hash, error) {
	if args.From == (common.Address{}) {
		coinbase, err := ec.Coinbase(ctx)
		if err != nil {
			return common.Hash{}, err
		}
		args.From = coinbase
	}
	var hash common.Hash
	err := ec.call(ctx, &hash, "eth_sendTransaction", args)
	return hash, err
}

// SendRawTransaction injects a signed, RLP encoded transaction into the pending
// pool for execution.
func (ec *Client) SendRawTransaction(ctx context.Context, rawTx []byte) (common.Hash, error) {
	var hash common.Hash
	err := ec.call(ctx, &hash, "eth_sendRawTransaction", hexutil.Bytes(rawTx))
	return hash, err
}

// Contract calling

// CallContract executes a message call transaction, which is directly executed in the VM
// of the node, but never mined into the blockchain.
//
// blockNumber selects the block height at which the call runs. It can be nil, in which
// case the code is taken from the latest known block. Note that state from very old
// blocks might not be available.
func (ec *Client) CallContract(ctx context.Context, msg CallMsg, blockNumber *big.Int) ([]byte, error) {
	var hex hexutil.Bytes
	err := ec.call(ctx, &hex, "eth_call", toCallArg(msg), toBlockNumArg(blockNumber))
	if err != nil {
		return nil, err
	}
	return hex, nil
}

// EstimateGas tries to estimate the gas needed to execute a specific transaction based on
// the current pending state of the backend blockchain. There is no guarantee that this is
// the true gas limit requirement as other transactions may be added or removed by miners,
// but it should provide a basis for setting a reasonable default.
func (ec *Client) EstimateGas(ctx context.Context, msg CallMsg) (uint64, error) {
	var hex hexutil.Uint64
	err := ec.call(ctx, &hex, "eth_estimateGas", toCallArg(msg))
	if err != nil {
		return 0, err
	}
	return uint64(hex), nil
}

// Filters

// NewFilter installs a log filter on the node and returns its identifier.
func (ec *Client) NewFilter(ctx context.Context, q FilterQuery) (string, error) {
	arg, err := toFilterArg(q)
	if err != nil {
		return "", err
	}
	var id string
	err = ec.call(ctx, &id, "eth_newFilter", arg)
	return id, err
}

// NewBlockFilter installs a filter notifying about new blocks.
func (ec *Client) NewBlockFilter(ctx context.Context) (string, error) {
	var id string
	err := ec.call(ctx, &id, "eth_newBlockFilter")
	return id, err
}

// UninstallFilter removes the filter with the given identifier.
func (ec *Client) UninstallFilter(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := ec.call(ctx, &ok, "eth_uninstallFilter", id)
	return ok, err
}

// FilterChanges polls a filter for the items that arrived since the last
// poll. Log filters yield log objects, block filters yield block hashes, so
// the entries are returned undecoded.
func (ec *Client) FilterChanges(ctx context.Context, id string) ([]json.RawMessage, error) {
	var changes []json.RawMessage
	err := ec.call(ctx, &changes, "eth_getFilterChanges", id)
	return changes, err
}

// FilterLogs returns all logs matching the log filter with the given identifier.
func (ec *Client) FilterLogs(ctx context.Context, id string) ([]Log, error) {
	var result []Log
	err := ec.call(ctx, &result, "eth_getFilterLogs", id)
	return result, err
}

// Logs executes a filter query.
func (ec *Client) Logs(ctx context.Context, q FilterQuery) ([]Log, error) {
	var result []Log
	arg, err := toFilterArg(q)
	if err != nil {
		return nil, err
	}
	err = ec.call(ctx, &result, "eth_getLogs", arg)
	return result, err
}
