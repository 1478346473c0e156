// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/command/socialledger-cli/rpccalls"
)

func runFlagUser(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}
	flag := !c.Bool("clear")

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		err := client.FlagUser(key, id, flag)
		if nil != err {
			return err
		}
		printJson(m.w, okReply{Ok: true})
		return nil
	})
}

func runSetUserToken(c *cli.Context) error {
	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		err := client.SetUserTokenContract(key, address)
		if nil != err {
			return err
		}
		printJson(m.w, okReply{Ok: true})
		return nil
	})
}

func runSetContentToken(c *cli.Context) error {
	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		err := client.SetContentTokenContract(key, address)
		if nil != err {
			return err
		}
		printJson(m.w, okReply{Ok: true})
		return nil
	})
}

func runNodeInfo(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		reply, err := client.GetInfo()
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	})
}
