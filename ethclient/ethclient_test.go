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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ethjsonrpc/go-ethjsonrpc/common"
	"github.com/ethjsonrpc/go-ethjsonrpc/common/hexutil"
	"github.com/ethjsonrpc/go-ethjsonrpc/params"
	"github.com/ethjsonrpc/go-ethjsonrpc/rpc"
	"github.com/stretchr/testify/require"
)

var (
	testAddr    = common.HexToAddress("0x71562b71999873DB5b286dF957af199Ec94617F7")
	testAddr2   = common.HexToAddress("0xD36722ADeC3EdCB29c8e7b5a47f352D701393462")
	testTxHash  = common.HexToHash("0xeb94bb7d78b73657a9d7a99792413f50c0a45c51fc62bdcb08a53f18e9a2b4eb")
	testBlkHash = common.HexToHash("0x88e96d4537bea4d9c05d12549907b32561d3bf31f45aae734cdc119f13406cb6")
)

type request struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	ID     json.RawMessage   `json:"id"`
}

// testNode is a fake JSON-RPC endpoint serving canned results keyed by
// method name. Methods without an entry answer with "method not found".
type testNode struct {
	mu       sync.Mutex
	results  map[string]string
	requests []request
}

func (n *testNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var req request
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n.mu.Lock()
	n.requests = append(n.requests, req)
	result, ok := n.results[req.Method]
	n.mu.Unlock()

	if !ok {
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32601,"message":"the method %s does not exist/is not available"}}`, req.ID, req.Method)
		return
	}
	fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, req.ID, result)
}

// lastParams returns the parameters of the most recent request for method.
func (n *testNode) lastParams(t *testing.T, method string) []json.RawMessage {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.requests) - 1; i >= 0; i-- {
		if n.requests[i].Method == method {
			return n.requests[i].Params
		}
	}
	t.Fatalf("no %s request recorded", method)
	return nil
}

func newTestClient(t *testing.T, results map[string]string) (*Client, *testNode) {
	t.Helper()
	node := &testNode{results: results}
	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)

	ec, err := Dial(srv.URL)
	require.NoError(t, err)
	t.Cleanup(ec.Close)
	return ec, node
}

func TestToFilterArg(t *testing.T) {
	blockHashErr := fmt.Errorf("cannot specify both BlockHash and FromBlock/ToBlock")
	addresses := []common.Address{testAddr2}

	for _, testCase := range []struct {
		name   string
		input  FilterQuery
		output interface{}
		err    error
	}{
		{
			"without BlockHash",
			FilterQuery{
				Addresses: addresses,
				FromBlock: big.NewInt(1),
				ToBlock:   big.NewInt(2),
				Topics:    [][]common.Hash{},
			},
			map[string]interface{}{
				"address":   addresses,
				"fromBlock": "0x1",
				"toBlock":   "0x2",
				"topics":    [][]common.Hash{},
			},
			nil,
		},
		{
			"with nil fromBlock and nil toBlock",
			FilterQuery{
				Addresses: addresses,
				Topics:    [][]common.Hash{},
			},
			map[string]interface{}{
				"address":   addresses,
				"fromBlock": "0x0",
				"toBlock":   "latest",
				"topics":    [][]common.Hash{},
			},
			nil,
		},
		{
			"with pending fromBlock and pending toBlock",
			FilterQuery{
				Addresses: addresses,
				FromBlock: big.NewInt(int64(rpc.PendingBlockNumber)),
				ToBlock:   big.NewInt(int64(rpc.PendingBlockNumber)),
				Topics:    [][]common.Hash{},
			},
			map[string]interface{}{
				"address":   addresses,
				"fromBlock": "pending",
				"toBlock":   "pending",
				"topics":    [][]common.Hash{},
			},
			nil,
		},
		{
			"with blockhash",
			FilterQuery{
				Addresses: addresses,
				BlockHash: &testBlkHash,
				Topics:    [][]common.Hash{},
			},
			map[string]interface{}{
				"address":   addresses,
				"blockHash": testBlkHash,
				"topics":    [][]common.Hash{},
			},
			nil,
		},
		{
			"with blockhash and from block",
			FilterQuery{
				Addresses: addresses,
				BlockHash: &testBlkHash,
				FromBlock: big.NewInt(1),
				Topics:    [][]common.Hash{},
			},
			nil,
			blockHashErr,
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			output, err := toFilterArg(testCase.input)
			if testCase.err != nil {
				require.EqualError(t, err, testCase.err.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, testCase.output, output)
		})
	}
}

func TestToBlockNumArg(t *testing.T) {
	tests := []struct {
		in   *big.Int
		want string
	}{
		{nil, "latest"},
		{big.NewInt(0), "0x0"},
		{big.NewInt(1000), "0x3e8"},
		{big.NewInt(-1), "latest"},
		{big.NewInt(-2), "pending"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, toBlockNumArg(tt.in), "%v", tt.in)
	}
}

func TestStatusFunctions(t *testing.T) {
	ec, _ := newTestClient(t, map[string]string{
		"web3_clientVersion":  `"Geth/v1.13.0-stable/linux-amd64/go1.21"`,
		"net_version":         `"1337"`,
		"net_listening":       `true`,
		"net_peerCount":       `"0x19"`,
		"eth_protocolVersion": `"0x41"`,
		"eth_coinbase":        `"0x71562b71999873db5b286df957af199ec94617f7"`,
		"eth_mining":          `false`,
		"eth_hashrate":        `"0x38a"`,
		"eth_gasPrice":        `"0xba43b7400"`,
		"eth_accounts":        `["0x71562b71999873db5b286df957af199ec94617f7","0xd36722adec3edcb29c8e7b5a47f352d701393462"]`,
		"eth_blockNumber":     `"0x4b7"`,
	})
	ctx := context.Background()

	version, err := ec.ClientVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, "Geth/v1.13.0-stable/linux-amd64/go1.21", version)

	id, err := ec.NetworkID(ctx)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1337), id)

	listening, err := ec.NetListening(ctx)
	require.NoError(t, err)
	require.True(t, listening)

	peers, err := ec.PeerCount(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(25), peers)

	proto, err := ec.ProtocolVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, "0x41", proto)

	coinbase, err := ec.Coinbase(ctx)
	require.NoError(t, err)
	require.Equal(t, testAddr, coinbase)

	mining, err := ec.Mining(ctx)
	require.NoError(t, err)
	require.False(t, mining)

	rate, err := ec.Hashrate(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(906), rate)

	price, err := ec.SuggestGasPrice(ctx)
	require.NoError(t, err)
	require.Equal(t, params.DefaultGasPrice, price)

	accounts, err := ec.Accounts(ctx)
	require.NoError(t, err)
	require.Equal(t, []common.Address{testAddr, testAddr2}, accounts)

	number, err := ec.BlockNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1207), number)
}

func TestSyncing(t *testing.T) {
	ec, _ := newTestClient(t, map[string]string{"eth_syncing": `false`})
	progress, err := ec.Syncing(context.Background())
	require.NoError(t, err)
	require.Nil(t, progress)

	ec, _ = newTestClient(t, map[string]string{
		"eth_syncing": `{"startingBlock":"0x384","currentBlock":"0x386","highestBlock":"0x454"}`,
	})
	progress, err = ec.Syncing(context.Background())
	require.NoError(t, err)
	require.Equal(t, &SyncProgress{StartingBlock: 900, CurrentBlock: 902, HighestBlock: 1108}, progress)
}

func TestStateFunctions(t *testing.T) {
	ec, node := newTestClient(t, map[string]string{
		"eth_getBalance":          `"0x0234c8a3397aab58"`,
		"eth_getStorageAt":        `"0x00000000000000000000000000000000000000000000000000000000000004d2"`,
		"eth_getTransactionCount": `"0x1"`,
		"eth_getCode":             `"0x600160008035811a818181146012578301005b601b6001356025565b8060005260206000f25b600060078202905091905056"`,
	})
	ctx := context.Background()

	balance, err := ec.BalanceAt(ctx, testAddr, nil)
	require.NoError(t, err)
	require.Equal(t, "158972490234375000", balance.String())
	require.JSONEq(t, `"latest"`, string(node.lastParams(t, "eth_getBalance")[1]))

	value, err := ec.StorageAt(ctx, testAddr, common.Hash{}, big.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1234), new(big.Int).SetBytes(value))
	require.JSONEq(t, `"0x2"`, string(node.lastParams(t, "eth_getStorageAt")[2]))

	nonce, err := ec.NonceAt(ctx, testAddr, big.NewInt(int64(rpc.PendingBlockNumber)))
	require.NoError(t, err)
	require.Equal(t, uint64(1), nonce)
	require.JSONEq(t, `"pending"`, string(node.lastParams(t, "eth_getTransactionCount")[1]))

	code, err := ec.CodeAt(ctx, testAddr, nil)
	require.NoError(t, err)
	require.Len(t, code, 50)
}

func TestGetBlock(t *testing.T) {
	const header = `"number":"0x1b4","hash":"0x88e96d4537bea4d9c05d12549907b32561d3bf31f45aae734cdc119f13406cb6",` +
		`"parentHash":"0x0000000000000000000000000000000000000000000000000000000000000000","nonce":"0x0000000000000042",` +
		`"miner":"0x71562b71999873db5b286df957af199ec94617f7","difficulty":"0x4ea3f27bc","extraData":"0x",` +
		`"size":"0x220","gasLimit":"0x1388","gasUsed":"0x0","timestamp":"0x55ba467c","uncles":[]`
	ec, node := newTestClient(t, map[string]string{
		"eth_getBlockByHash": `{` + header + `,"transactions":["0xeb94bb7d78b73657a9d7a99792413f50c0a45c51fc62bdcb08a53f18e9a2b4eb"]}`,
		"eth_getBlockByNumber": `{` + header + `,"transactions":[{"hash":"0xeb94bb7d78b73657a9d7a99792413f50c0a45c51fc62bdcb08a53f18e9a2b4eb",` +
			`"nonce":"0x0","blockHash":"0x88e96d4537bea4d9c05d12549907b32561d3bf31f45aae734cdc119f13406cb6","blockNumber":"0x1b4",` +
			`"transactionIndex":"0x0","from":"0x71562b71999873db5b286df957af199ec94617f7","to":null,"value":"0x0",` +
			`"gas":"0x15f90","gasPrice":"0xba43b7400","input":"0x6060"}]}`,
	})
	ctx := context.Background()

	block, err := ec.BlockByHash(ctx, testBlkHash, false)
	require.NoError(t, err)
	require.Equal(t, testBlkHash, *block.Hash)
	require.Equal(t, uint64(436), block.Number.ToInt().Uint64())
	require.Len(t, block.Transactions, 1)
	require.Equal(t, testTxHash, block.Transactions[0].Hash)
	require.Nil(t, block.Transactions[0].BlockNumber)
	require.JSONEq(t, `false`, string(node.lastParams(t, "eth_getBlockByHash")[1]))

	block, err = ec.BlockByNumber(ctx, big.NewInt(436), true)
	require.NoError(t, err)
	tx := block.Transactions[0]
	require.Equal(t, testTxHash, tx.Hash)
	require.False(t, tx.Pending())
	require.Nil(t, tx.To)
	require.Equal(t, hexutil.Bytes{0x60, 0x60}, tx.Input)
	args := node.lastParams(t, "eth_getBlockByNumber")
	require.JSONEq(t, `"0x1b4"`, string(args[0]))
	require.JSONEq(t, `true`, string(args[1]))
}

func TestNotFound(t *testing.T) {
	ec, _ := newTestClient(t, map[string]string{
		"eth_getBlockByNumber":      `null`,
		"eth_getTransactionByHash":  `null`,
		"eth_getTransactionReceipt": `null`,
	})
	ctx := context.Background()

	_, err := ec.BlockByNumber(ctx, big.NewInt(1<<40), false)
	require.ErrorIs(t, err, NotFound)
	_, err = ec.TransactionByHash(ctx, testTxHash)
	require.ErrorIs(t, err, NotFound)
	_, err = ec.TransactionReceipt(ctx, testTxHash)
	require.ErrorIs(t, err, NotFound)
	_, err = ec.ContractAddress(ctx, testTxHash)
	require.ErrorIs(t, err, NotFound)
}

func TestMethodNotFound(t *testing.T) {
	ec, _ := newTestClient(t, map[string]string{})
	_, err := ec.Mining(context.Background())
	require.True(t, rpc.IsMethodNotFound(err))

	var jerr *rpc.JSONError
	require.True(t, errors.As(err, &jerr))
	require.Equal(t, -32601, jerr.ErrorCode())
}

func TestSendTransactionDefaultsFrom(t *testing.T) {
	ec, node := newTestClient(t, map[string]string{
		"eth_coinbase":        `"0x71562b71999873db5b286df957af199ec94617f7"`,
		"eth_sendTransaction": `"0xeb94bb7d78b73657a9d7a99792413f50c0a45c51fc62bdcb08a53f18e9a2b4eb"`,
	})
	hash, err := ec.SendTransaction(context.Background(), SendTxArgs{To: &testAddr2})
	require.NoError(t, err)
	require.Equal(t, testTxHash, hash)
	require.JSONEq(t,
		`{"from":"0x71562b71999873db5b286df957af199ec94617f7","to":"0xd36722adec3edcb29c8e7b5a47f352d701393462"}`,
		string(node.lastParams(t, "eth_sendTransaction")[0]))
}

func TestSignAndRaw(t *testing.T) {
	ec, node := newTestClient(t, map[string]string{
		"eth_sign":               `"0xa3f20717"`,
		"eth_sendRawTransaction": `"0xeb94bb7d78b73657a9d7a99792413f50c0a45c51fc62bdcb08a53f18e9a2b4eb"`,
		"web3_sha3":              `"0x47173285a8d7341e5e972fc677286384f802f8ef42a5ec5f03bbfa254cb01fad"`,
	})
	ctx := context.Background()

	sig, err := ec.Sign(ctx, testAddr, []byte("hi"))
	require.NoError(t, err)
	require.Equal(t, []byte{0xa3, 0xf2, 0x07, 0x17}, sig)
	require.JSONEq(t, `"0x6869"`, string(node.lastParams(t, "eth_sign")[1]))

	hash, err := ec.SendRawTransaction(ctx, []byte{0xf8, 0x6b})
	require.NoError(t, err)
	require.Equal(t, testTxHash, hash)

	h, err := ec.Sha3(ctx, []byte("hello world"))
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0x47173285a8d7341e5e972fc677286384f802f8ef42a5ec5f03bbfa254cb01fad"), h)
	require.JSONEq(t, `"0x68656c6c6f20776f726c64"`, string(node.lastParams(t, "web3_sha3")[0]))
}

func TestEstimateGas(t *testing.T) {
	ec, node := newTestClient(t, map[string]string{"eth_estimateGas": `"0x5208"`})
	gas, err := ec.EstimateGas(context.Background(), CallMsg{From: testAddr, To: &testAddr2, Value: big.NewInt(1)})
	require.NoError(t, err)
	require.Equal(t, params.TxGas, gas)

	p := node.lastParams(t, "eth_estimateGas")
	require.Len(t, p, 1)
	require.JSONEq(t, `{"from":"0x71562b71999873db5b286df957af199ec94617f7","to":"0xd36722adec3edcb29c8e7b5a47f352d701393462","value":"0x1"}`, string(p[0]))
}

func TestFilters(t *testing.T) {
	const logJSON = `{"address":"0xd36722adec3edcb29c8e7b5a47f352d701393462",` +
		`"topics":["0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"],"data":"0x01",` +
		`"blockNumber":"0x1b4","transactionHash":"0xeb94bb7d78b73657a9d7a99792413f50c0a45c51fc62bdcb08a53f18e9a2b4eb",` +
		`"transactionIndex":"0x0","blockHash":"0x88e96d4537bea4d9c05d12549907b32561d3bf31f45aae734cdc119f13406cb6",` +
		`"logIndex":"0x1","removed":false}`
	ec, node := newTestClient(t, map[string]string{
		"eth_newFilter":        `"0x1"`,
		"eth_newBlockFilter":   `"0x2"`,
		"eth_uninstallFilter":  `true`,
		"eth_getFilterChanges": `["0x88e96d4537bea4d9c05d12549907b32561d3bf31f45aae734cdc119f13406cb6"]`,
		"eth_getFilterLogs":    `[` + logJSON + `]`,
		"eth_getLogs":          `[` + logJSON + `]`,
	})
	ctx := context.Background()
	q := FilterQuery{FromBlock: big.NewInt(1), Addresses: []common.Address{testAddr2}}

	id, err := ec.NewFilter(ctx, q)
	require.NoError(t, err)
	require.Equal(t, "0x1", id)
	require.JSONEq(t, `{"address":["0xd36722adec3edcb29c8e7b5a47f352d701393462"],"topics":null,"fromBlock":"0x1","toBlock":"latest"}`,
		string(node.lastParams(t, "eth_newFilter")[0]))

	bid, err := ec.NewBlockFilter(ctx)
	require.NoError(t, err)
	require.Equal(t, "0x2", bid)

	changes, err := ec.FilterChanges(ctx, bid)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	var blockHash common.Hash
	require.NoError(t, json.Unmarshal(changes[0], &blockHash))
	require.Equal(t, testBlkHash, blockHash)

	logs, err := ec.FilterLogs(ctx, id)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, testAddr2, logs[0].Address)
	require.Equal(t, uint64(436), uint64(logs[0].BlockNumber))
	require.Equal(t, uint64(1), uint64(logs[0].Index))

	logs, err = ec.Logs(ctx, q)
	require.NoError(t, err)
	require.Equal(t, hexutil.Bytes{0x01}, logs[0].Data)

	ok, err := ec.UninstallFilter(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `"0x1"`, string(node.lastParams(t, "eth_uninstallFilter")[0]))

	_, err = ec.Logs(ctx, FilterQuery{BlockHash: &testBlkHash, ToBlock: big.NewInt(1)})
	require.Error(t, err)
}
