// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/authorisation"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/ledger"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    io.Closer
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a socialledgerd
func NewClient(connect string, plain bool, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error
	if plain {
		conn, err = net.Dial("tcp", connect)
	} else {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.Dial("tcp", connect, tlsConfig)
	}
	if err != nil {
		return nil, err
	}

	return NewClientFromConn(conn, verbose, handle), nil
}

// NewClientFromConn - wrap an established connection
func NewClientFromConn(conn io.ReadWriteCloser, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the socialledgerd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// sign the argument vector under a fresh random nonce
func sign(privateKey *account.PrivateKey, args field.Packed) (ledger.Call, error) {
	if nil == privateKey {
		return ledger.Call{}, fault.NotPrivateKey
	}

	nonce, err := authorisation.RandomNonce()
	if nil != err {
		return ledger.Call{}, err
	}

	signature, err := authorisation.Sign(field.Poseidon{}, privateKey, args, nonce)
	if nil != err {
		return ledger.Call{}, err
	}

	return ledger.Call{
		Signer:    privateKey.Account(),
		Nonce:     nonce,
		Signature: signature,
	}, nil
}
