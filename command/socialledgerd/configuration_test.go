// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialledgerd/account"
)

func writeConfiguration(t *testing.T, dir string, text string) string {
	name := filepath.Join(dir, "socialledgerd.conf")
	if err := os.WriteFile(name, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return name
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir := t.TempDir()
	name := writeConfiguration(t, dir, `
return {
    data_directory = ".",
    admin = "someone",
    client_rpc = { listen = { "127.0.0.1:2130" } },
}
`)

	c, err := getConfiguration(name)
	assert.Nil(t, err, "configuration error")

	base, _ := filepath.Abs(dir)
	assert.Equal(t, filepath.Join(base, "data"), c.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(base, "data", defaultDatabase), c.Database.Name, "wrong database name")
	assert.Equal(t, filepath.Join(base, "log"), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, filepath.Join(base, defaultCertificateFile), c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, uint64(defaultRPCClients), c.ClientRPC.MaximumConnections, "wrong connection default")
	assert.Equal(t, defaultUserToken, c.Tokens.User, "wrong user token default")
	assert.False(t, c.EnforceFlags, "flags enforced by default")

	info, err := os.Stat(c.Database.Directory)
	assert.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database directory is not a directory")
}

func TestGetConfigurationSample(t *testing.T) {
	dir := t.TempDir()

	sample, err := os.ReadFile("socialledgerd.conf.sample")
	assert.Nil(t, err, "read sample error")
	name := writeConfiguration(t, dir, string(sample))

	a, err := makeAdminKey(account.ED25519, filepath.Join(dir, adminPrivateKeyFilename), filepath.Join(dir, adminAccountFilename))
	assert.Nil(t, err, "admin key error")

	c, err := getConfiguration(name)
	assert.Nil(t, err, "configuration error")
	assert.Equal(t, a.String(), c.Admin, "admin account not read")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "wrong maximum connections")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir := t.TempDir()

	name := writeConfiguration(t, dir, `return { data_directory = "." }`)
	_, err := getConfiguration(name)
	assert.NotNil(t, err, "missing admin accepted")

	name = writeConfiguration(t, dir, `return { data_directory = "", admin = "x" }`)
	_, err = getConfiguration(name)
	assert.NotNil(t, err, "blank data directory accepted")

	name = writeConfiguration(t, dir, `return { data_directory = ".", admin = "x", database = { name = "a/b" } }`)
	_, err = getConfiguration(name)
	assert.NotNil(t, err, "database path accepted")

	name = writeConfiguration(t, dir, `return { data_directory = ".", admin = "x", tokens = { user = "t", content = "t" } }`)
	_, err = getConfiguration(name)
	assert.NotNil(t, err, "identical token names accepted")
}

func TestMakeAdminKey(t *testing.T) {
	dir := t.TempDir()
	privateFile := filepath.Join(dir, adminPrivateKeyFilename)
	accountFile := filepath.Join(dir, adminAccountFilename)

	a, err := makeAdminKey(account.Schnorr, privateFile, accountFile)
	assert.Nil(t, err, "admin key error")
	assert.Equal(t, account.Schnorr, a.KeyType(), "wrong algorithm")

	text, err := os.ReadFile(privateFile)
	assert.Nil(t, err, "read private key error")
	privateKey, err := account.PrivateKeyFromBase58(string(text[:len(text)-1]))
	assert.Nil(t, err, "decode private key error")
	assert.True(t, a.Equal(privateKey.Account()), "account does not match private key")

	_, err = makeAdminKey(account.ED25519, privateFile, accountFile)
	assert.NotNil(t, err, "existing key overwritten")
}
