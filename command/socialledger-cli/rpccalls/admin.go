// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/rpc/admin"
)

// FlagUser - admin only: set or clear a user's flag
func (client *Client) FlagUser(privateKey *account.PrivateKey, id field.Element, flag bool) error {
	call, err := sign(privateKey, ledger.FlagUserArguments(flag))
	if nil != err {
		return err
	}

	arguments := admin.FlagUserArguments{
		Call: call,
		ID:   id,
		Flag: flag,
	}
	client.printJson("Flag User Request", arguments)

	var reply admin.EmptyReply
	return client.client.Call("Admin.FlagUser", &arguments, &reply)
}

// SetUserTokenContract - admin only: register the user token registry
func (client *Client) SetUserTokenContract(privateKey *account.PrivateKey, address field.Element) error {
	return client.contractCall("Admin.SetUserTokenContract", privateKey, address)
}

// SetContentTokenContract - admin only: register the content token registry
func (client *Client) SetContentTokenContract(privateKey *account.PrivateKey, address field.Element) error {
	return client.contractCall("Admin.SetContentTokenContract", privateKey, address)
}

func (client *Client) contractCall(method string, privateKey *account.PrivateKey, address field.Element) error {
	call, err := sign(privateKey, ledger.SetTokenContractArguments(address))
	if nil != err {
		return err
	}

	arguments := admin.ContractArguments{
		Call:    call,
		Address: address,
	}
	client.printJson(method+" Request", arguments)

	var reply admin.EmptyReply
	return client.client.Call(method, &arguments, &reply)
}
