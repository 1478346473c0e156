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

	"github.com/bitmark-inc/socialledgerd/configuration"
	"github.com/bitmark-inc/socialledgerd/fault"
)

type rpcSection struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type sample struct {
	DataDirectory string     `gluamapper:"data_directory"`
	EnforceFlags  bool       `gluamapper:"enforce_flags"`
	ClientRPC     rpcSection `gluamapper:"client_rpc"`
	ConfigFile    string     `gluamapper:"config_file"`
	Home          string     `gluamapper:"home"`
}

const sampleLua = `
local M = {}
M.data_directory = "."
M.enforce_flags = true
M.client_rpc = {
    maximum_connections = 25,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
}
M.config_file = arg[0]
M.home = os.getenv("SOCIALLEDGERD_TEST_HOME")
return M
`

func write(t *testing.T, text string) string {
	name := filepath.Join(t.TempDir(), "test.conf")
	err := os.WriteFile(name, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return name
}

func TestParseConfigurationFile(t *testing.T) {
	_ = os.Setenv("SOCIALLEDGERD_TEST_HOME", "/home/alice")
	defer os.Unsetenv("SOCIALLEDGERD_TEST_HOME")

	name := write(t, sampleLua)

	var c sample
	err := configuration.ParseConfigurationFile(name, &c)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, ".", c.DataDirectory, "wrong data directory")
	assert.True(t, c.EnforceFlags, "wrong enforce flags")
	assert.Equal(t, uint64(25), c.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, name, c.ConfigFile, "wrong arg[0]")
	assert.Equal(t, "/home/alice", c.Home, "wrong getenv")
}

func TestParseConfigurationFileKeepsDefaults(t *testing.T) {
	name := write(t, `return { enforce_flags = true }`)

	c := sample{DataDirectory: "/var/lib/socialledgerd"}
	err := configuration.ParseConfigurationFile(name, &c)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "/var/lib/socialledgerd", c.DataDirectory, "default overwritten")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	name := write(t, `return {}`)

	var c sample
	assert.Equal(t, fault.InvalidStructPointer, configuration.ParseConfigurationFile(name, c), "non pointer accepted")

	n := 3
	assert.Equal(t, fault.InvalidStructPointer, configuration.ParseConfigurationFile(name, &n), "non struct accepted")

	bad := write(t, `return {`)
	assert.NotNil(t, configuration.ParseConfigurationFile(bad, &c), "syntax error accepted")

	notTable := write(t, `return 42`)
	assert.Equal(t, fault.MissingParameters, configuration.ParseConfigurationFile(notTable, &c), "non table accepted")

	assert.NotNil(t, configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &c), "missing file accepted")
}
