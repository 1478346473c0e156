// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/rpc/users"
)

// CreateUser - mint a user token for the key's account
func (client *Client) CreateUser(privateKey *account.PrivateKey, profile ledger.Profile) (*users.IDReply, error) {
	call, err := sign(privateKey, ledger.CreateUserArguments(profile))
	if nil != err {
		return nil, err
	}

	arguments := users.CreateArguments{
		Call:    call,
		Profile: profile,
	}
	client.printJson("Create User Request", arguments)

	var reply users.IDReply
	if err := client.client.Call("Users.Create", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Create User Reply", reply)
	return &reply, nil
}

// UpdateUser - replace the profile of an owned user token
func (client *Client) UpdateUser(privateKey *account.PrivateKey, id field.Element, profile ledger.Profile) error {
	call, err := sign(privateKey, ledger.UpdateUserArguments(profile))
	if nil != err {
		return err
	}

	arguments := users.UpdateArguments{
		Call:    call,
		ID:      id,
		Profile: profile,
	}
	client.printJson("Update User Request", arguments)

	var reply users.EmptyReply
	return client.client.Call("Users.Update", &arguments, &reply)
}

// Follow - follow a creator
func (client *Client) Follow(privateKey *account.PrivateKey, creator field.Element) error {
	return client.creatorCall("Users.Follow", privateKey, creator, ledger.FollowArguments())
}

// Unfollow - stop following a creator
func (client *Client) Unfollow(privateKey *account.PrivateKey, creator field.Element) error {
	return client.creatorCall("Users.Unfollow", privateKey, creator, ledger.UnfollowArguments())
}

func (client *Client) creatorCall(method string, privateKey *account.PrivateKey, creator field.Element, args field.Packed) error {
	call, err := sign(privateKey, args)
	if nil != err {
		return err
	}

	arguments := users.CreatorArguments{
		Call:    call,
		Creator: creator,
	}
	client.printJson(method+" Request", arguments)

	var reply users.EmptyReply
	return client.client.Call(method, &arguments, &reply)
}

// Rate - add a rating to a creator
func (client *Client) Rate(privateKey *account.PrivateKey, creator field.Element, rating uint64) error {
	call, err := sign(privateKey, ledger.RateArguments(rating))
	if nil != err {
		return err
	}

	arguments := users.RateArguments{
		Call:    call,
		Creator: creator,
		Rating:  rating,
	}
	client.printJson("Rate Request", arguments)

	var reply users.EmptyReply
	return client.client.Call("Users.Rate", &arguments, &reply)
}

// GetUser - fetch a user record
func (client *Client) GetUser(id field.Element) (*users.GetReply, error) {
	var reply users.GetReply
	if err := client.client.Call("Users.Get", &users.GetArguments{ID: id}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetUserTokenID - the user token owned by an account
func (client *Client) GetUserTokenID(owner *account.Account) (*users.IDReply, error) {
	var reply users.IDReply
	if err := client.client.Call("Users.TokenId", &users.TokenIdArguments{Owner: owner}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ListUsers - page through the user registry
func (client *Client) ListUsers(start field.Element, count int) (*users.ListReply, error) {
	arguments := users.ListArguments{
		Start: start,
		Count: count,
	}

	var reply users.ListReply
	if err := client.client.Call("Users.List", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
