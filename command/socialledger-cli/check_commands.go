// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/command/socialledger-cli/configuration"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
)

var (
	ErrRequiredAddress     = fault.InvalidError("address is required")
	ErrRequiredBody        = fault.InvalidError("content body is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredID          = fault.InvalidError("id is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredUsername    = fault.InvalidError("user name is required")
	ErrNoConnections       = fault.InvalidError("no connections configured")
)

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// blank name selects the default identity
func checkIdentity(name string, config *configuration.Configuration) (string, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkName(name)
}

// connect is required.
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	for _, c := range strings.Split(connect, ",") {
		if "" == strings.TrimSpace(c) {
			return "", ErrRequiredConnect
		}
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// a user, content or registry id
func checkID(id string) (field.Element, error) {
	if "" == id {
		return field.Zero, ErrRequiredID
	}
	return field.FromHex(id)
}

// an optional id, blank is zero
func checkOptionalID(id string) (field.Element, error) {
	if "" == id {
		return field.Zero, nil
	}
	return field.FromHex(id)
}

func checkAddress(address string) (field.Element, error) {
	if "" == address {
		return field.Zero, ErrRequiredAddress
	}
	return field.FromHex(address)
}

func checkUsername(username string) (string, error) {
	if "" == username {
		return "", ErrRequiredUsername
	}
	return username, nil
}

func checkBody(body string) (string, error) {
	if "" == body {
		return "", ErrRequiredBody
	}
	return body, nil
}

// blank creates a new key of the selected algorithm
func checkPrivateKey(privateKey string, schnorr bool) (*account.PrivateKey, error) {
	if "" != privateKey {
		return account.PrivateKeyFromBase58(privateKey)
	}
	if schnorr {
		return account.NewPrivateKey(account.Schnorr)
	}
	return account.NewPrivateKey(account.ED25519)
}

// an identity name from the configuration or a base58 account
func checkAccount(name string, config *configuration.Configuration) (*account.Account, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	if a, err := config.Account(name); nil == err {
		return a, nil
	}
	return account.AccountFromBase58(name)
}

// check if file exists, returns true for a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
