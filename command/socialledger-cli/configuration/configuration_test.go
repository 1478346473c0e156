// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/command/socialledger-cli/configuration"
	"github.com/bitmark-inc/socialledgerd/fault"
)

const password = "correct horse battery staple"

func TestIdentityRoundTrip(t *testing.T) {
	for _, algorithm := range []int{account.ED25519, account.Schnorr} {
		privateKey, err := account.NewPrivateKey(algorithm)
		assert.Nil(t, err, "new key error")

		config := &configuration.Configuration{}
		err = config.AddIdentity("alice", "alice's key", privateKey, password)
		assert.Nil(t, err, "add identity error")

		err = config.AddIdentity("alice", "again", privateKey, password)
		assert.Equal(t, fault.IdentityNameAlreadyExists, err, "duplicate identity accepted")

		a, err := config.Account("alice")
		assert.Nil(t, err, "account error")
		assert.True(t, privateKey.Account().Equal(a), "wrong account")

		private, err := config.Private(password, "alice")
		assert.Nil(t, err, "private error")
		assert.Equal(t, privateKey.Bytes(), private.PrivateKey.Bytes(), "wrong private key")
		assert.Equal(t, "alice's key", private.Description, "wrong description")

		_, err = config.Private("wrong password", "alice")
		assert.Equal(t, fault.InvalidPassword, err, "wrong password accepted")

		_, err = config.Private(password, "bob")
		assert.Equal(t, fault.IdentityNameNotFound, err, "missing identity found")
	}
}

func TestReceiveOnlyIdentity(t *testing.T) {
	privateKey, _ := account.NewPrivateKey(account.ED25519)

	config := &configuration.Configuration{}
	err := config.AddReceiveOnlyIdentity("bob", "bob", privateKey.Account().String())
	assert.Nil(t, err, "add error")

	_, err = config.Private(password, "bob")
	assert.Equal(t, fault.NotPrivateKey, err, "receive only identity decrypted")

	err = config.AddReceiveOnlyIdentity("carol", "carol", "not an account")
	assert.NotNil(t, err, "invalid account accepted")
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "socialledger-cli.json")

	privateKey, _ := account.NewPrivateKey(account.ED25519)
	config := &configuration.Configuration{
		DefaultIdentity: "alice",
		Connections:     []string{"127.0.0.1:2130"},
	}
	assert.Nil(t, config.AddIdentity("alice", "first", privateKey, password), "add error")

	assert.Nil(t, configuration.Save(file, config), "first save error")
	assert.Nil(t, configuration.Save(file, config), "second save error")

	_, err := os.Stat(file + ".bk")
	assert.Nil(t, err, "no backup kept")

	loaded, err := configuration.Load(file)
	assert.Nil(t, err, "load error")
	assert.Equal(t, config, loaded, "configuration changed by save")

	private, err := loaded.Private(password, "alice")
	assert.Nil(t, err, "private error")
	assert.True(t, privateKey.Account().Equal(private.PrivateKey.Account()), "wrong key after load")
}

func TestSalt(t *testing.T) {
	salt, err := configuration.MakeSalt()
	assert.Nil(t, err, "salt error")

	text, err := salt.MarshalText()
	assert.Nil(t, err, "marshal error")

	var decoded configuration.Salt
	assert.Nil(t, decoded.UnmarshalText(text), "unmarshal error")
	assert.Equal(t, *salt, decoded, "wrong salt")

	assert.Equal(t, fault.UnmarshalTextFailed, decoded.UnmarshalText([]byte("abcd")), "short salt accepted")
}
