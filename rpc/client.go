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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/ethjsonrpc/go-ethjsonrpc/log"
)

var errNoTransport = errors.New("rpc: no known transport for URL scheme")

// Client represents a connection to an RPC server.
type Client struct {
	idCounter uint32
	conn      *httpConn
	log       log.Logger
}

// DialHTTP creates a new RPC client that connects to an RPC server over HTTP.
func DialHTTP(endpoint string) (*Client, error) {
	return DialOptions(context.Background(), endpoint)
}

// DialHTTPWithClient creates a new RPC client that connects to an RPC server over HTTP
// using the provided HTTP Client.
func DialHTTPWithClient(endpoint string, client *http.Client) (*Client, error) {
	return DialOptions(context.Background(), endpoint, WithHTTPClient(client))
}

// DialOptions creates a new RPC client for the given URL. You can supply any of the
// pre-defined client options to configure the underlying transport. Only
// http and https endpoints are supported; TLS is selected by the scheme.
//
// HTTP is stateless, so no connection is made until the first call.
func DialOptions(ctx context.Context, rawurl string, options ...ClientOption) (*Client, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q", errNoTransport, u.Scheme)
	}
	cfg := &clientConfig{timeout: defaultHTTPTimeout}
	for _, opt := range options {
		opt.applyOption(cfg)
	}
	return &Client{
		conn: newHTTPConn(rawurl, cfg),
		log:  log.New("endpoint", u.Host),
	}, nil
}

// Close closes the client. Calls made after Close return ErrClientQuit.
func (c *Client) Close() {
	c.conn.close()
}

// SetHeader adds a custom HTTP header to the client's requests.
func (c *Client) SetHeader(key, value string) {
	c.conn.mu.Lock()
	c.conn.headers.Set(key, value)
	c.conn.mu.Unlock()
}

// Call performs a JSON-RPC call with the given arguments and unmarshals into
// result if no error occurred.
//
// The result must be a pointer so that package json can unmarshal into it. You
// can also pass nil, in which case the result is ignored.
func (c *Client) Call(result interface{}, method string, args ...interface{}) error {
	ctx := context.Background()
	return c.CallContext(ctx, result, method, args...)
}

// CallContext performs a JSON-RPC call with the given arguments. If the context is
// canceled before the call has successfully returned, CallContext returns immediately.
//
// The result must be a pointer so that package json can unmarshal into it. You
// can also pass nil, in which case the result is ignored.
//
// Failures map onto the package errors: unreachable nodes yield ErrConnection,
// non-2xx statuses HTTPError, undecodable bodies ErrBadJSON, error responses
// *JSONError and responses without result ErrNoResult.
func (c *Client) CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if result != nil && reflect.TypeOf(result).Kind() != reflect.Ptr {
		return fmt.Errorf("call result parameter must be pointer or nil interface: %v", result)
	}
	select {
	case <-c.conn.closed():
		return ErrClientQuit
	default:
	}
	msg, err := c.newMessage(method, args...)
	if err != nil {
		return err
	}
	start := time.Now()
	c.log.Trace("Sending RPC request", "method", method, "id", string(msg.ID))

	err = c.send(ctx, msg, result)
	if err != nil {
		c.log.Debug("RPC request failed", "method", method, "id", string(msg.ID), "elapsed", time.Since(start), "err", err)
		return err
	}
	c.log.Trace("Received RPC response", "method", method, "id", string(msg.ID), "elapsed", time.Since(start))
	return nil
}

func (c *Client) send(ctx context.Context, msg *jsonrpcMessage, result interface{}) error {
	respBody, err := c.conn.doRequest(ctx, msg)
	if err != nil {
		return err
	}
	var resp jsonrpcMessage
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if len(resp.ID) > 0 && !bytes.Equal(resp.ID, msg.ID) {
		return fmt.Errorf("%w: response id %s does not match request id %s", ErrBadJSON, resp.ID, msg.ID)
	}
	switch {
	case resp.Error != nil:
		return resp.Error
	case len(resp.Result) == 0:
		return ErrNoResult
	case result == nil:
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return fmt.Errorf("%w: result: %v", ErrBadJSON, err)
	}
	return nil
}

func (c *Client) nextID() json.RawMessage {
	id := atomic.AddUint32(&c.idCounter, 1)
	return strconv.AppendUint(nil, uint64(id), 10)
}

func (c *Client) newMessage(method string, paramsIn ...interface{}) (*jsonrpcMessage, error) {
	msg := &jsonrpcMessage{Version: vsn, ID: c.nextID(), Method: method}
	if paramsIn == nil {
		paramsIn = []interface{}{}
	}
	var err error
	if msg.Params, err = json.Marshal(paramsIn); err != nil {
		return nil, err
	}
	return msg, nil
}
