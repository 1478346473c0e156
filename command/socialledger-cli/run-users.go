// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/command/socialledger-cli/rpccalls"
	"github.com/bitmark-inc/socialledgerd/ledger"
)

func profileFromFlags(c *cli.Context) (ledger.Profile, error) {
	username, err := checkUsername(c.String("username"))
	if nil != err {
		return ledger.Profile{}, err
	}
	return ledger.Profile{
		Username:        username,
		Image:           c.String("image"),
		BackgroundImage: c.String("background-image"),
		Description:     c.String("description"),
		SocialLink:      c.String("social-link"),
	}, nil
}

func runCreateUser(c *cli.Context) error {
	profile, err := profileFromFlags(c)
	if nil != err {
		return err
	}

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		reply, err := client.CreateUser(key, profile)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	})
}

func runUpdateUser(c *cli.Context) error {
	profile, err := profileFromFlags(c)
	if nil != err {
		return err
	}

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		id, err := client.GetUserTokenID(key.Account())
		if nil != err {
			return err
		}
		err = client.UpdateUser(key, id.ID, profile)
		if nil != err {
			return err
		}
		printJson(m.w, id)
		return nil
	})
}

func runFollow(c *cli.Context) error {
	creator, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		err := client.Follow(key, creator)
		if nil != err {
			return err
		}
		printJson(m.w, okReply{Ok: true})
		return nil
	})
}

func runUnfollow(c *cli.Context) error {
	creator, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		err := client.Unfollow(key, creator)
		if nil != err {
			return err
		}
		printJson(m.w, okReply{Ok: true})
		return nil
	})
}

func runRate(c *cli.Context) error {
	creator, err := checkID(c.String("id"))
	if nil != err {
		return err
	}
	rating := c.Uint64("rating")

	return withKey(c, func(m *metadata, client *rpccalls.Client, key *account.PrivateKey) error {
		err := client.Rate(key, creator, rating)
		if nil != err {
			return err
		}
		printJson(m.w, okReply{Ok: true})
		return nil
	})
}

func runGetUser(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		reply, err := client.GetUser(id)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	})
}

func runUserID(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c.String("owner"), m.config)
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		reply, err := client.GetUserTokenID(owner)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	})
}

func runListUsers(c *cli.Context) error {
	start, err := checkOptionalID(c.String("start"))
	if nil != err {
		return err
	}
	count := c.Int("count")

	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		reply, err := client.ListUsers(start, count)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	})
}
