// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/counter"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/ledger/fixtures"
	"github.com/bitmark-inc/socialledgerd/rpc/contents"
	"github.com/bitmark-inc/socialledgerd/rpc/node"
	"github.com/bitmark-inc/socialledgerd/rpc/server"
	"github.com/bitmark-inc/socialledgerd/rpc/users"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func connect(t *testing.T, env *fixtures.Environment) *rpc.Client {
	count := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "0.1", env.Ledger, &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return jsonrpc.NewClient(clientConn)
}

func TestJSONRoundTrip(t *testing.T) {
	env := fixtures.NewRegisteredEnvironment(t, false)
	defer env.Close()

	client := connect(t, env)
	defer client.Close()

	key := fixtures.NewKey(t)
	profile := ledger.Profile{Username: "alice", SocialLink: "https://example.com/alice"}

	var created users.IDReply
	err := client.Call("Users.Create", &users.CreateArguments{
		Call:    env.Sign(key, ledger.CreateUserArguments(profile)),
		Profile: profile,
	}, &created)
	assert.Nil(t, err, "create user error")

	var user users.GetReply
	err = client.Call("Users.Get", &users.GetArguments{ID: created.ID}, &user)
	assert.Nil(t, err, "get user error")
	assert.Equal(t, profile, user.User.Profile, "wrong profile")
	assert.True(t, key.Account().Equal(user.User.Owner), "wrong owner")

	var content contents.IDReply
	err = client.Call("Contents.Create", &contents.CreateArguments{
		Call:   env.Sign(key, ledger.CreateContentArguments("hello", "", "", true)),
		Body:   "hello",
		Public: true,
	}, &content)
	assert.Nil(t, err, "create content error")

	var info node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "info error")
	assert.Equal(t, uint64(1), info.Ledger.Users, "wrong user count")
	assert.Equal(t, uint64(1), info.Ledger.Contents, "wrong content count")
	assert.Equal(t, "0.1", info.Version, "wrong version")
}

func TestJSONErrorsReachClient(t *testing.T) {
	env := fixtures.NewRegisteredEnvironment(t, false)
	defer env.Close()

	client := connect(t, env)
	defer client.Close()

	key := fixtures.NewKey(t)
	profile := ledger.Profile{Username: "alice"}
	call := env.Sign(key, ledger.CreateUserArguments(profile))

	var created users.IDReply
	assert.Nil(t, client.Call("Users.Create", &users.CreateArguments{Call: call, Profile: profile}, &created), "create error")

	err := client.Call("Users.Create", &users.CreateArguments{Call: call, Profile: profile}, &created)
	assert.Equal(t, rpc.ServerError("nonce already used"), err, "wrong replay error")

	call = env.Sign(key, ledger.CreateUserArguments(profile))
	call.Signature[0] ^= 0xff
	err = client.Call("Users.Create", &users.CreateArguments{Call: call, Profile: profile}, &created)
	assert.Equal(t, rpc.ServerError("signature does not match challenge hash"), err, "wrong signature error")
}
