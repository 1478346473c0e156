// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/counter"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/ledger/fixtures"
	"github.com/bitmark-inc/socialledgerd/rpc/certificate"
	"github.com/bitmark-inc/socialledgerd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func newServer(t *testing.T) *rpc.Server {
	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Fatalf("register with error: %s", err)
	}
	return s
}

func TestNewRPCInvalidConfiguration(t *testing.T) {
	log := logger.New(fixtures.LogCategory)
	count := counter.Counter(0)

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:0"},
	}, log, &count, newServer(t), nil)
	assert.Equal(t, fault.MissingParameters, err, "zero connections accepted")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
	}, log, &count, newServer(t), nil)
	assert.Equal(t, fault.MissingParameters, err, "missing listen accepted")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"nowhere:1234"},
	}, log, &count, newServer(t), nil)
	assert.Equal(t, fault.InvalidIpAddress, err, "invalid listen accepted")
}

func TestRpcListenerServe(t *testing.T) {
	count := counter.Counter(0)
	l, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}, logger.New(fixtures.LogCategory), &count, newServer(t), nil)
	assert.Nil(t, err, "new listener error")

	err = l.Serve()
	assert.Nil(t, err, "serve error")
	defer l.Stop()

	addresses := l.Addresses()
	assert.Equal(t, 1, len(addresses), "wrong address count")

	conn, err := net.Dial("tcp", addresses[0].String())
	assert.Nil(t, err, "dial error")

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 2, B: 3}, &reply)
	assert.Nil(t, err, "call error")
	assert.Equal(t, 5, reply, "wrong reply")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRpcListenerConnectionLimit(t *testing.T) {
	count := counter.Counter(0)
	l, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:0"},
	}, logger.New(fixtures.LogCategory), &count, newServer(t), nil)
	assert.Nil(t, err, "new listener error")
	assert.Nil(t, l.Serve(), "serve error")
	defer l.Stop()

	address := l.Addresses()[0].String()

	conn1, err := net.Dial("tcp", address)
	assert.Nil(t, err, "first dial error")
	client1 := jsonrpc.NewClient(conn1)
	defer client1.Close()

	var reply int
	assert.Nil(t, client1.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply), "first call error")

	conn2, err := net.Dial("tcp", address)
	assert.Nil(t, err, "second dial error")
	client2 := jsonrpc.NewClient(conn2)
	defer client2.Close()

	err = client2.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
	assert.NotNil(t, err, "connection over limit was served")
}

func TestRpcListenerTLS(t *testing.T) {
	dir := t.TempDir()
	certFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	assert.Nil(t, certificate.Generate(certFile, keyFile, nil), "generate error")

	cert, _ := os.ReadFile(certFile)
	key, _ := os.ReadFile(keyFile)

	log := logger.New(fixtures.LogCategory)
	tlsConfig, _, err := certificate.Get(log, "test", string(cert), string(key))
	assert.Nil(t, err, "certificate error")

	count := counter.Counter(0)
	l, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}, log, &count, newServer(t), tlsConfig)
	assert.Nil(t, err, "new listener error")
	assert.Nil(t, l.Serve(), "serve error")
	defer l.Stop()

	conn, err := tls.Dial("tcp", l.Addresses()[0].String(), &tls.Config{InsecureSkipVerify: true})
	assert.Nil(t, err, "tls dial error")

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply int
	assert.Nil(t, client.Call("Add.Add", &AddArg{A: 20, B: 22}, &reply), "call error")
	assert.Equal(t, 42, reply, "wrong reply")
}
