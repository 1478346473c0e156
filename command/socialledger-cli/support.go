// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/command/socialledger-cli/configuration"
	"github.com/bitmark-inc/socialledgerd/command/socialledger-cli/rpccalls"
)

// connect to the first configured socialledgerd
func connect(m *metadata) (*rpccalls.Client, error) {
	if 0 == len(m.config.Connections) {
		return nil, ErrNoConnections
	}
	host := m.config.Connections[0]

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s plain: %t\n", host, m.config.Plain)
	}

	return rpccalls.NewClient(host, m.config.Plain, m.verbose, m.e)
}

// decrypt the signing key of the selected identity
func signingKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return nil, err
	}

	password, err := existingPassword(c.GlobalString("password"))
	if nil != err {
		return nil, err
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s account: %s\n", name, private.PrivateKey.Account())
	}
	return private.PrivateKey, nil
}

// sign and submit with the selected identity
func withKey(c *cli.Context, action func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return action(m, client, key)
}

// queries that need no key
func withClient(c *cli.Context, action func(m *metadata, client *rpccalls.Client) error) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return action(m, client)
}

func sortedNames(config *configuration.Configuration) []string {
	names := make([]string, 0, len(config.Identities))
	for name := range config.Identities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type okReply struct {
	Ok bool `json:"ok"`
}
