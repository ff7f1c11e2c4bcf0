// Copyright 2017 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// runApp executes the command line tool with args and returns what it wrote
// to its output.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"abicodec", "--verbosity", "0"}, args...))
	return out.String(), err
}

func word(hex string) string {
	return strings.Repeat("0", 64-len(hex)) + hex
}

func TestParseCommand(t *testing.T) {
	out, err := runApp(t, "parse", "uint256", "string", "real128x128[2][]", "bytes32[3]")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	find := func(prefix string) string {
		for _, l := range lines {
			if strings.HasPrefix(strings.TrimSpace(strings.Trim(l, "|")), prefix+" ") {
				return l
			}
		}
		t.Fatalf("no row for %s in\n%s", prefix, out)
		return ""
	}
	row := find("uint256")
	require.Contains(t, row, "static")
	require.Contains(t, row, "32")

	row = find("string")
	require.Contains(t, row, "dynamic")

	row = find("fixed128x128[2][]")
	require.Contains(t, row, "[2][]")
	require.Contains(t, row, "dynamic")
	require.Contains(t, row, "fixed128x128[2]")

	row = find("bytes32[3]")
	require.Contains(t, row, "96")
	require.Contains(t, row, "static")
}

func TestParseCommandError(t *testing.T) {
	_, err := runApp(t, "parse", "uint7")
	require.Error(t, err)
	require.Contains(t, err.Error(), "uint7")

	_, err = runApp(t, "parse")
	require.Error(t, err)
}

func TestEncodeCommand(t *testing.T) {
	out, err := runApp(t, "encode", "--types", "uint256,string", "5", "hi")
	require.NoError(t, err)
	want := "0x" + word("5") + word("40") + word("2") + "6869" + strings.Repeat("0", 60)
	require.Equal(t, want+"\n", out)

	out, err = runApp(t, "encode", "--types", "uint8[2]", "--words", "[1,2]")
	require.NoError(t, err)
	require.Equal(t, "0000: "+word("1")+"\n0020: "+word("2")+"\n", out)

	_, err = runApp(t, "encode", "--types", "uint8", "256")
	require.Error(t, err)

	_, err = runApp(t, "encode", "--types", "uint8,bool", "1")
	require.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	data := "0x" + word("5") + word("40") + word("2") + "6869" + strings.Repeat("0", 60)
	out, err := runApp(t, "decode", "--types", "uint256,string", data)
	require.NoError(t, err)
	require.Contains(t, out, "uint256")
	require.Contains(t, out, `"hi"`)
	require.Regexp(t, `\|\s*0\s*\|\s*uint256\s*\|\s*5\s*\|`, out)

	out, err = runApp(t, "decode", "--types", "ufixed8x8,int8[]",
		"0x"+word("180")+word("40")+word("2")+word("1")+strings.Repeat("f", 64))
	require.NoError(t, err)
	require.Contains(t, out, "1.5")
	require.Contains(t, out, "[1,-1]")

	_, err = runApp(t, "decode", "--types", "uint256", "0x01")
	require.Error(t, err)
}

func TestSelectorCommand(t *testing.T) {
	out, err := runApp(t, "selector", "baz(uint32, bool)")
	require.NoError(t, err)
	require.Equal(t, "0xcdcd77c0 baz(uint32,bool)\n", out)

	out, err = runApp(t, "selector", "transfer(address,uint256)")
	require.NoError(t, err)
	require.Equal(t, "0xa9059cbb transfer(address,uint256)\n", out)

	_, err = runApp(t, "selector", "baz")
	require.Error(t, err)
}

func TestCalldataCommand(t *testing.T) {
	out, err := runApp(t, "calldata", "baz(uint32,bool)", "69", "true")
	require.NoError(t, err)
	require.Equal(t, "0xcdcd77c0"+word("45")+word("1")+"\n", out)

	_, err = runApp(t, "calldata", "baz(uint32,bool)", "69")
	require.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "abicodec.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))
	return file
}

func TestDumpConfig(t *testing.T) {
	out, err := runApp(t, "dumpconfig")
	require.NoError(t, err)
	require.Contains(t, out, `RPC = "http://localhost:8545"`)
	require.Contains(t, out, "Verbosity = 0")

	file := writeConfig(t, "RPC = \"https://node.example.org\"\nFrom = \"0x71562b71999873db5b286df957af199ec94617f7\"\n")
	out, err = runApp(t, "--config", file, "dumpconfig")
	require.NoError(t, err)
	require.Contains(t, out, `RPC = "https://node.example.org"`)
	require.Contains(t, out, `From = "0x71562b71999873db5b286df957af199ec94617f7"`)

	out, err = runApp(t, "--config", file, "--rpc", "http://127.0.0.1:8546", "dumpconfig")
	require.NoError(t, err)
	require.Contains(t, out, `RPC = "http://127.0.0.1:8546"`)
}

func TestConfigErrors(t *testing.T) {
	file := writeConfig(t, "Endpoint = \"http://localhost\"\n")
	_, err := runApp(t, "--config", file, "dumpconfig")
	require.Error(t, err)
	require.Contains(t, err.Error(), file)
	require.Contains(t, err.Error(), "Endpoint")

	_, err = runApp(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "dumpconfig")
	require.Error(t, err)
}

func TestCallCommand(t *testing.T) {
	var calls []json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage   `json:"id"`
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Method != "eth_call" || len(req.Params) != 2 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if r.Header.Get("X-Api-Key") != "secret" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		calls = append(calls, req.Params[0])
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":"0x%s"}`, req.ID, word("2a"))
	}))
	defer srv.Close()

	file := writeConfig(t, "[Headers]\nX-Api-Key = \"secret\"\n")
	to := "0xd36722adec3edcb29c8e7b5a47f352d701393462"
	out, err := runApp(t, "--config", file, "--rpc", srv.URL, "call", "--to", to, "--out", "uint256",
		"balanceOf(address)", "0x71562b71999873db5b286df957af199ec94617f7")
	require.NoError(t, err)
	require.Regexp(t, `\|\s*0\s*\|\s*uint256\s*\|\s*42\s*\|`, out)

	require.Len(t, calls, 1)
	require.JSONEq(t, `{"to":"`+to+`","data":"0x70a08231`+word("71562b71999873db5b286df957af199ec94617f7")+`"}`, string(calls[0]))

	out, err = runApp(t, "--config", file, "--rpc", srv.URL, "call", "--to", to, "totalSupply()")
	require.NoError(t, err)
	require.Equal(t, "0x"+word("2a")+"\n", out)

	_, err = runApp(t, "--rpc", srv.URL, "call", "--to", "0x1234", "totalSupply()")
	require.Error(t, err)
}

func TestLogJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID json.RawMessage `json:"id"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":"0x%s"}`, req.ID, word("2a"))
	}))
	defer srv.Close()

	app := newApp()
	var out, logs bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &logs
	err := app.Run([]string{"abicodec", "--verbosity", "5", "--log.json", "--rpc", srv.URL,
		"call", "--to", "0xd36722adec3edcb29c8e7b5a47f352d701393462", "totalSupply()"})
	require.NoError(t, err)
	require.Equal(t, "0x"+word("2a")+"\n", out.String())

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var record map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &record), line)
		require.Contains(t, record, "msg")
		require.Contains(t, record, "lvl")
	}
	require.Contains(t, logs.String(), "eth_call")
}
