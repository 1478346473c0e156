// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/command/socialledger-cli/rpccalls"
	"github.com/bitmark-inc/socialledgerd/counter"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/ledger/fixtures"
	"github.com/bitmark-inc/socialledgerd/rpc/server"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func connect(env *fixtures.Environment, verbose bool, handle *bytes.Buffer) *rpccalls.Client {
	count := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "0.1", env.Ledger, &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return rpccalls.NewClientFromConn(clientConn, verbose, handle)
}

func TestUserCalls(t *testing.T) {
	env := fixtures.NewRegisteredEnvironment(t, false)
	defer env.Close()

	var verbose bytes.Buffer
	client := connect(env, true, &verbose)
	defer client.Close()

	alice := fixtures.NewKey(t)
	bob := fixtures.NewKey(t)

	a, err := client.CreateUser(alice, ledger.Profile{Username: "alice"})
	assert.Nil(t, err, "create alice error")
	b, err := client.CreateUser(bob, ledger.Profile{Username: "bob"})
	assert.Nil(t, err, "create bob error")
	assert.NotEqual(t, 0, verbose.Len(), "verbose output missing")

	id, err := client.GetUserTokenID(alice.Account())
	assert.Nil(t, err, "token id error")
	assert.Equal(t, a.ID, id.ID, "wrong token id")

	err = client.UpdateUser(alice, a.ID, ledger.Profile{Username: "alice", Description: "writer"})
	assert.Nil(t, err, "update error")

	err = client.Follow(bob, a.ID)
	assert.Nil(t, err, "follow error")

	err = client.Rate(bob, a.ID, 4)
	assert.Nil(t, err, "rate error")

	user, err := client.GetUser(a.ID)
	assert.Nil(t, err, "get error")
	assert.Equal(t, "writer", user.User.Profile.Description, "profile not updated")
	assert.True(t, user.User.Followers.Contains(b.ID), "follower missing")
	assert.Equal(t, uint64(1), user.User.RatingCount, "wrong rating count")
	assert.Equal(t, uint64(4), user.User.RatingSum, "wrong rating sum")

	err = client.Unfollow(bob, a.ID)
	assert.Nil(t, err, "unfollow error")

	list, err := client.ListUsers(field.Zero, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 2, len(list.Users), "wrong user count")

	_, err = client.CreateUser(nil, ledger.Profile{Username: "nobody"})
	assert.NotNil(t, err, "unsigned call accepted")
}

func TestContentCalls(t *testing.T) {
	env := fixtures.NewRegisteredEnvironment(t, false)
	defer env.Close()

	client := connect(env, false, nil)
	defer client.Close()

	alice := fixtures.NewKey(t)
	a, err := client.CreateUser(alice, ledger.Profile{Username: "alice"})
	assert.Nil(t, err, "create user error")

	c, err := client.CreateContent(alice, &rpccalls.ContentData{Body: "hello", Public: false})
	assert.Nil(t, err, "create content error")

	err = client.UpdateContent(alice, c.ID, true)
	assert.Nil(t, err, "update content error")

	err = client.Like(alice, c.ID)
	assert.Nil(t, err, "like error")

	viewed, err := client.ViewContent(c.ID)
	assert.Nil(t, err, "view error")

	got, err := client.GetContent(c.ID)
	assert.Nil(t, err, "get error")
	assert.Equal(t, viewed.Content.Views, got.Content.Views, "get counted a view")
	assert.True(t, got.Content.Public, "visibility not updated")
	assert.Equal(t, uint64(1), got.Content.Likes, "wrong likes")

	err = client.Dislike(alice, c.ID)
	assert.Nil(t, err, "dislike error")

	list, err := client.ListContents(a.ID)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, len(list.Contents), "wrong content count")
	assert.Equal(t, uint64(0), list.Contents[0].Likes, "dislike not applied")
}

func TestAdminCalls(t *testing.T) {
	env := fixtures.NewEnvironment(t, true)
	defer env.Close()

	client := connect(env, false, nil)
	defer client.Close()

	alice := fixtures.NewKey(t)

	err := client.SetUserTokenContract(alice, env.Users.Address())
	assert.NotNil(t, err, "non-admin registered contract")

	err = client.SetUserTokenContract(env.Admin, env.Users.Address())
	assert.Nil(t, err, "user contract error")
	err = client.SetContentTokenContract(env.Admin, env.Contents.Address())
	assert.Nil(t, err, "content contract error")

	a, err := client.CreateUser(alice, ledger.Profile{Username: "alice"})
	assert.Nil(t, err, "create user error")

	err = client.FlagUser(env.Admin, a.ID, true)
	assert.Nil(t, err, "flag error")

	_, err = client.CreateContent(alice, &rpccalls.ContentData{Body: "blocked"})
	assert.NotNil(t, err, "flagged user created content")

	info, err := client.GetInfo()
	assert.Nil(t, err, "info error")
	assert.Equal(t, uint64(1), info.Ledger.Users, "wrong user count")
	assert.Equal(t, uint64(0), info.Ledger.Contents, "wrong content count")
	assert.True(t, info.Ledger.EnforceFlags, "flags not enforced")
}
