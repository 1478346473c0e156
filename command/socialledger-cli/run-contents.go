// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/command/socialledger-cli/rpccalls"
	"github.com/bitmark-inc/socialledgerd/field"
)

func runCreateContent(c *cli.Context) error {
	body, err := checkBody(c.String("body"))
	if nil != err {
		return err
	}

	data := &rpccalls.ContentData{
		Body:    body,
		Tags:    c.String("tags"),
		Authors: c.String("authors"),
		Public:  c.Bool("public"),
	}

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		reply, err := client.CreateContent(key, data)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	})
}

func runUpdateContent(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}
	public := c.Bool("public")

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		err := client.UpdateContent(key, id, public)
		if nil != err {
			return err
		}
		printJson(m.w, okReply{Ok: true})
		return nil
	})
}

func runLike(c *cli.Context) error {
	return likeOrDislike(c, (*rpccalls.Client).Like)
}

func runDislike(c *cli.Context) error {
	return likeOrDislike(c, (*rpccalls.Client).Dislike)
}

func likeOrDislike(c *cli.Context, call func(*rpccalls.Client, *account.PrivateKey, field.Element) error) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		err := call(client, key, id)
		if nil != err {
			return err
		}
		printJson(m.w, okReply{Ok: true})
		return nil
	})
}

func runGetContent(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		reply, err := client.GetContent(id)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	})
}

func runViewContent(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		reply, err := client.ViewContent(id)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	})
}

func runListContents(c *cli.Context) error {
	user, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		reply, err := client.ListContents(user)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	})
}
