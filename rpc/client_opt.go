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
	"net/http"
	"time"
)

// ClientOption is a configuration option for the RPC client.
type ClientOption interface {
	applyOption(*clientConfig)
}

type clientConfig struct {
	httpClient  *http.Client
	httpHeaders http.Header
	timeout     time.Duration
}

func (cfg *clientConfig) setHeader(key, value string) {
	if cfg.httpHeaders == nil {
		cfg.httpHeaders = make(http.Header)
	}
	cfg.httpHeaders.Set(key, value)
}

type optionFunc func(*clientConfig)

func (fn optionFunc) applyOption(opt *clientConfig) {
	fn(opt)
}

// WithHTTPClient configures the http.Client used by the RPC client. Use it
// to customize TLS settings or the transport.
func WithHTTPClient(c *http.Client) ClientOption {
	return optionFunc(func(cfg *clientConfig) {
		cfg.httpClient = c
	})
}

// WithHeader configures HTTP headers set by the RPC client. Headers set using this
// option will be used for all HTTP requests.
func WithHeader(key, value string) ClientOption {
	return optionFunc(func(cfg *clientConfig) {
		cfg.setHeader(key, value)
	})
}

// WithHeaders configures HTTP headers set by the RPC client. Headers set using this
// option will be used for all HTTP requests.
func WithHeaders(headers http.Header) ClientOption {
	return optionFunc(func(cfg *clientConfig) {
		for k, vs := range headers {
			cfg.setHeader(k, vs[0])
		}
	})
}

// WithBasicAuth configures HTTP basic authentication for every request.
func WithBasicAuth(user, password string) ClientOption {
	return optionFunc(func(cfg *clientConfig) {
		req := http.Request{Header: make(http.Header)}
		req.SetBasicAuth(user, password)
		cfg.setHeader("Authorization", req.Header.Get("Authorization"))
	})
}

// WithTimeout bounds every request made by the default HTTP client. It has
// no effect when a client is supplied with WithHTTPClient.
func WithTimeout(d time.Duration) ClientOption {
	return optionFunc(func(cfg *clientConfig) {
		cfg.timeout = d
	})
}
