// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package users

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/socialledgerd/token"
)

const (
	rateLimitUsers = 200
	rateBurstUsers = 100
	maximumList    = 100
)

// Ledger - the user operations served
type Ledger interface {
	CreateUser(call ledger.Call, profile ledger.Profile) (field.Element, error)
	UpdateUser(call ledger.Call, id field.Element, profile ledger.Profile) error
	Follow(call ledger.Call, creatorID field.Element) error
	Unfollow(call ledger.Call, creatorID field.Element) error
	Rate(call ledger.Call, creatorID field.Element, rating uint64) error
	GetUser(id field.Element) (*ledger.User, error)
	GetUserTokenID(owner *account.Account) (field.Element, error)
	ListUsers(start field.Element, count int) ([]token.Token, error)
}

// Users - type for RPC calls
type Users struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create the users service
func New(log *logger.L, l Ledger) *Users {
	return &Users{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitUsers, rateBurstUsers),
		Ledger:  l,
	}
}

// IDReply - the token id of a user
type IDReply struct {
	ID field.Element `json:"id"`
}

// EmptyReply - reply for calls with no result
type EmptyReply struct{}

// ---

// CreateArguments - arguments for Users.Create
type CreateArguments struct {
	ledger.Call
	Profile ledger.Profile `json:"profile"`
}

// Create - mint a user token to the signer
func (u *Users) Create(arguments *CreateArguments, reply *IDReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	u.Log.Infof("Users.Create: signer: %s", arguments.Signer)

	id, err := u.Ledger.CreateUser(arguments.Call, arguments.Profile)
	if nil != err {
		return err
	}
	reply.ID = id
	return nil
}

// ---

// UpdateArguments - arguments for Users.Update
type UpdateArguments struct {
	ledger.Call
	ID      field.Element  `json:"id"`
	Profile ledger.Profile `json:"profile"`
}

// Update - replace the profile of a user owned by the signer
func (u *Users) Update(arguments *UpdateArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	u.Log.Infof("Users.Update: id: %s", arguments.ID)

	return u.Ledger.UpdateUser(arguments.Call, arguments.ID, arguments.Profile)
}

// ---

// CreatorArguments - arguments for calls about another user
type CreatorArguments struct {
	ledger.Call
	Creator field.Element `json:"creator"`
}

// Follow - the signer's user follows a creator
func (u *Users) Follow(arguments *CreatorArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	u.Log.Infof("Users.Follow: creator: %s", arguments.Creator)

	return u.Ledger.Follow(arguments.Call, arguments.Creator)
}

// Unfollow - the signer's user stops following a creator
func (u *Users) Unfollow(arguments *CreatorArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	u.Log.Infof("Users.Unfollow: creator: %s", arguments.Creator)

	return u.Ledger.Unfollow(arguments.Call, arguments.Creator)
}

// ---

// RateArguments - arguments for Users.Rate
type RateArguments struct {
	ledger.Call
	Creator field.Element `json:"creator"`
	Rating  uint64        `json:"rating,string"`
}

// Rate - add a rating to a creator
func (u *Users) Rate(arguments *RateArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	u.Log.Infof("Users.Rate: creator: %s  rating: %d", arguments.Creator, arguments.Rating)

	return u.Ledger.Rate(arguments.Call, arguments.Creator, arguments.Rating)
}

// ---

// GetArguments - arguments for Users.Get
type GetArguments struct {
	ID field.Element `json:"id"`
}

// GetReply - result of Users.Get
type GetReply struct {
	User *ledger.User `json:"user"`
}

// Get - read a user record
func (u *Users) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	user, err := u.Ledger.GetUser(arguments.ID)
	if nil != err {
		return err
	}
	reply.User = user
	return nil
}

// ---

// TokenIdArguments - arguments for Users.TokenId
type TokenIdArguments struct {
	Owner *account.Account `json:"owner"`
}

// TokenId - the user token held by an account
func (u *Users) TokenId(arguments *TokenIdArguments, reply *IDReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	id, err := u.Ledger.GetUserTokenID(arguments.Owner)
	if nil != err {
		return err
	}
	reply.ID = id
	return nil
}

// ---

// ListArguments - arguments for Users.List
type ListArguments struct {
	Start field.Element `json:"start"`
	Count int           `json:"count"`
}

// ListReply - result of Users.List
type ListReply struct {
	Users []token.Token `json:"users"`
}

// List - page through user tokens
func (u *Users) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(u.Limiter, arguments.Count, maximumList); nil != err {
		return err
	}

	tokens, err := u.Ledger.ListUsers(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Users = tokens
	return nil
}
