// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/rpc/ratelimit"
)

const (
	rateLimitAdmin = 10
	rateBurstAdmin = 10
)

// Ledger - the administrator operations served
type Ledger interface {
	FlagUser(call ledger.Call, id field.Element, flag bool) error
	SetUserTokenContract(call ledger.Call, address field.Element) error
	SetContentTokenContract(call ledger.Call, address field.Element) error
}

// Admin - type for RPC calls
type Admin struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create the administrator service
func New(log *logger.L, l Ledger) *Admin {
	return &Admin{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Ledger:  l,
	}
}

// EmptyReply - reply for calls with no result
type EmptyReply struct{}

// FlagUserArguments - arguments for Admin.FlagUser
type FlagUserArguments struct {
	ledger.Call
	ID   field.Element `json:"id"`
	Flag bool          `json:"flag"`
}

// FlagUser - set or clear the flag on a user
func (a *Admin) FlagUser(arguments *FlagUserArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	a.Log.Infof("Admin.FlagUser: id: %s  flag: %t", arguments.ID, arguments.Flag)

	return a.Ledger.FlagUser(arguments.Call, arguments.ID, arguments.Flag)
}

// ContractArguments - arguments for setting a token contract
type ContractArguments struct {
	ledger.Call
	Address field.Element `json:"address"`
}

// SetUserTokenContract - register the user token contract
func (a *Admin) SetUserTokenContract(arguments *ContractArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	a.Log.Infof("Admin.SetUserTokenContract: address: %s", arguments.Address)

	return a.Ledger.SetUserTokenContract(arguments.Call, arguments.Address)
}

// SetContentTokenContract - register the content token contract
func (a *Admin) SetContentTokenContract(arguments *ContractArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	a.Log.Infof("Admin.SetContentTokenContract: address: %s", arguments.Address)

	return a.Ledger.SetContentTokenContract(arguments.Call, arguments.Address)
}
