// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/counter"
	"github.com/bitmark-inc/socialledgerd/ledger/fixtures"
	"github.com/bitmark-inc/socialledgerd/rpc/contents"
	"github.com/bitmark-inc/socialledgerd/rpc/listeners"
	"github.com/bitmark-inc/socialledgerd/rpc/server"
	"github.com/bitmark-inc/socialledgerd/rpc/users"
)

const password = "12345678"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// run the cli and return its standard output
func run(t *testing.T, args ...string) (string, error) {
	app := newApp()
	var w bytes.Buffer
	var e bytes.Buffer
	app.Writer = &w
	app.ErrWriter = &e

	err := app.Run(append([]string{"socialledger-cli"}, args...))
	return w.String(), err
}

func startNode(t *testing.T, env *fixtures.Environment) (string, func()) {
	count := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "0.1", env.Ledger, &count)

	l, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 50,
		Listen:             []string{"127.0.0.1:0"},
	}, logger.New(fixtures.LogCategory), &count, s, nil)
	if nil != err {
		t.Fatalf("new listener error: %s", err)
	}
	if err := l.Serve(); nil != err {
		t.Fatalf("serve error: %s", err)
	}
	return l.Addresses()[0].String(), l.Stop
}

func TestCommandLine(t *testing.T) {
	env := fixtures.NewRegisteredEnvironment(t, false)
	defer env.Close()

	address, stop := startNode(t, env)
	defer stop()

	config := filepath.Join(t.TempDir(), "cli", "socialledger-cli.json")
	global := []string{"-c", config, "-i", "alice", "-p", password}

	_, err := run(t, append(global, "setup", "--connect", address, "--plain", "-d", "alice's key")...)
	assert.Nil(t, err, "setup error")

	_, err = run(t, append(global, "setup", "--connect", address, "--plain", "-d", "again")...)
	assert.NotNil(t, err, "setup overwrote configuration")

	out, err := run(t, append(global, "create-user", "-u", "alice", "-d", "writer")...)
	assert.Nil(t, err, "create-user error")
	var created users.IDReply
	assert.Nil(t, json.Unmarshal([]byte(out), &created), "create-user output")

	out, err = run(t, append(global, "user-id")...)
	assert.Nil(t, err, "user-id error")
	var found users.IDReply
	assert.Nil(t, json.Unmarshal([]byte(out), &found), "user-id output")
	assert.Equal(t, created.ID, found.ID, "wrong user id")

	_, err = run(t, append(global, "create-content", "-b", "hello world", "--public")...)
	assert.Nil(t, err, "create-content error")

	out, err = run(t, append(global, "list-contents", "--id", created.ID.String())...)
	assert.Nil(t, err, "list-contents error")
	var list contents.ListReply
	assert.Nil(t, json.Unmarshal([]byte(out), &list), "list-contents output")
	assert.Equal(t, 1, len(list.Contents), "wrong content count")
	assert.Equal(t, "hello world", list.Contents[0].Body, "wrong body")

	_, err = run(t, append(global, "flag-user", "--id", created.ID.String())...)
	assert.NotNil(t, err, "non-admin flagged a user")

	_, err = run(t, "-c", config, "-i", "alice", "-p", "wrong password", "like", "--id", list.Contents[0].ID.String())
	assert.NotNil(t, err, "wrong password accepted")

	_, err = run(t, append(global, "follow")...)
	assert.Equal(t, ErrRequiredID, err, "missing id accepted")

	out, err = run(t, "-c", config, "info")
	assert.Nil(t, err, "info error")
	var info infoReply
	assert.Nil(t, json.Unmarshal([]byte(out), &info), "info output")
	assert.Equal(t, "alice", info.DefaultIdentity, "wrong default identity")
	assert.Equal(t, 1, len(info.Identities), "wrong identity count")
	assert.True(t, info.Identities[0].Private, "identity missing private key")
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "generate", "--schnorr")
	assert.Nil(t, err, "generate error")

	var reply generateReply
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "generate output")

	key, err := checkPrivateKey(reply.PrivateKey, false)
	assert.Nil(t, err, "generated key does not parse")
	assert.Equal(t, reply.Account, key.Account().String(), "wrong account")
}

func TestCheckConnect(t *testing.T) {
	_, err := checkConnect(" ")
	assert.Equal(t, ErrRequiredConnect, err, "blank connect accepted")

	_, err = checkConnect("127.0.0.1:2130,")
	assert.Equal(t, ErrRequiredConnect, err, "empty entry accepted")

	c, err := checkConnect("127.0.0.1:2130,[::1]:2130")
	assert.Nil(t, err, "valid connect rejected")
	assert.Equal(t, "127.0.0.1:2130,[::1]:2130", c, "connect changed")
}
