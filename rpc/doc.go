// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring socialledgerd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//   Users.Create  Users.Update  Users.Follow  Users.Unfollow  Users.Rate
//   Users.Get  Users.TokenId  Users.List
//   Contents.Create  Contents.Update  Contents.Like  Contents.Dislike
//   Contents.Get  Contents.View  Contents.List
//   Admin.FlagUser  Admin.SetUserTokenContract  Admin.SetContentTokenContract
//   Node.Info
//
// state changing calls carry the signer account (base58), the nonce
// (hex field element) and the signature over the challenge hash (hex)
package rpc
