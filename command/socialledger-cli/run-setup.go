// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialledgerd/command/socialledger-cli/configuration"
	"github.com/bitmark-inc/socialledgerd/fault"
)

type generateReply struct {
	PrivateKey string `json:"privateKey"`
	Account    string `json:"account"`
}

func runGenerate(c *cli.Context) error {

	privateKey, err := checkPrivateKey("", c.Bool("schnorr"))
	if nil != err {
		return err
	}

	printJson(c.App.Writer, generateReply{
		PrivateKey: privateKey.String(),
		Account:    privateKey.Account().String(),
	})
	return nil
}

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	privateKey, err := checkPrivateKey(c.String("privateKey"), c.Bool("schnorr"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// Create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		Connections:     strings.Split(connect, ","),
		Plain:           c.Bool("plain"),
		Identities:      make(map[string]configuration.Identity),
	}

	password, err := newPassword(c.GlobalString("password"))
	if nil != err {
		return err
	}

	err = config.AddIdentity(name, description, privateKey, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return nil
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	key := c.String("privateKey")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
	}

	if "" == acc {
		privateKey, err := checkPrivateKey(key, c.Bool("schnorr"))
		if nil != err {
			return err
		}

		password, err := newPassword(c.GlobalString("password"))
		if nil != err {
			return err
		}

		err = m.config.AddIdentity(name, description, privateKey, password)
		if nil != err {
			return err
		}

	} else if "" == key {
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
		if nil != err {
			return err
		}

	} else {
		return fault.IncompatibleOptions
	}

	// require configuration update
	m.save = true
	return nil
}

type identityInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	Private     bool   `json:"private"`
}

type infoReply struct {
	DefaultIdentity string         `json:"defaultIdentity"`
	Connections     []string       `json:"connections"`
	Plain           bool           `json:"plain"`
	Identities      []identityInfo `json:"identities"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	reply := infoReply{
		DefaultIdentity: m.config.DefaultIdentity,
		Connections:     m.config.Connections,
		Plain:           m.config.Plain,
		Identities:      make([]identityInfo, 0, len(m.config.Identities)),
	}
	for _, name := range sortedNames(m.config) {
		id := m.config.Identities[name]
		reply.Identities = append(reply.Identities, identityInfo{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			Private:     "" != id.Data,
		})
	}

	printJson(m.w, reply)
	return nil
}
