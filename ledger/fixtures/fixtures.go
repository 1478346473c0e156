// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/authorisation"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/storage"
	"github.com/bitmark-inc/socialledgerd/token"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// FixedClock - a settable clock
type FixedClock struct {
	Time uint64
}

// Now - the set time
func (c *FixedClock) Now() uint64 {
	return c.Time
}

// Environment - a ledger on an in memory database
type Environment struct {
	DB       *storage.Database
	Ledger   *ledger.Ledger
	Users    *token.Contract
	Contents *token.Contract
	Admin    *account.PrivateKey
	Clock    *FixedClock
	nonce    uint64
}

// NewKey - a random ed25519 key
func NewKey(t *testing.T) *account.PrivateKey {
	key, err := account.NewPrivateKey(account.ED25519)
	if nil != err {
		t.Fatalf("new key error: %s", err)
	}
	return key
}

// NewEnvironment - ledger with both registries deployed but not registered
func NewEnvironment(t *testing.T, enforceFlags bool) *Environment {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	users, err := token.New("user token", db.Pool.UserTokens)
	if nil != err {
		t.Fatalf("user token error: %s", err)
	}
	contents, err := token.New("content token", db.Pool.ContentTokens)
	if nil != err {
		t.Fatalf("content token error: %s", err)
	}

	admin := NewKey(t)
	for _, r := range []token.Registry{users, contents} {
		if err := ledger.Deploy(db, r, admin.Account()); nil != err {
			t.Fatalf("deploy error: %s", err)
		}
	}

	clock := &FixedClock{Time: 1}
	l, err := ledger.New(db, ledger.Options{
		Admin:        admin.Account(),
		Users:        users,
		Contents:     contents,
		Clock:        clock,
		EnforceFlags: enforceFlags,
	})
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}

	return &Environment{
		DB:       db,
		Ledger:   l,
		Users:    users,
		Contents: contents,
		Admin:    admin,
		Clock:    clock,
	}
}

// NewRegisteredEnvironment - ledger with both registries registered
func NewRegisteredEnvironment(t *testing.T, enforceFlags bool) *Environment {
	e := NewEnvironment(t, enforceFlags)

	address := e.Users.Address()
	err := e.Ledger.SetUserTokenContract(e.Sign(e.Admin, ledger.SetTokenContractArguments(address)), address)
	if nil != err {
		t.Fatalf("set user token contract error: %s", err)
	}

	address = e.Contents.Address()
	err = e.Ledger.SetContentTokenContract(e.Sign(e.Admin, ledger.SetTokenContractArguments(address)), address)
	if nil != err {
		t.Fatalf("set content token contract error: %s", err)
	}
	return e
}

// NextNonce - a nonce not used before in this environment
func (e *Environment) NextNonce() field.Element {
	e.nonce += 1
	return field.FromUint64(e.nonce)
}

// Sign - a call signed with a fresh nonce
func (e *Environment) Sign(key *account.PrivateKey, args field.Packed) ledger.Call {
	return e.SignWithNonce(key, args, e.NextNonce())
}

// SignWithNonce - a call signed with a chosen nonce
func (e *Environment) SignWithNonce(key *account.PrivateKey, args field.Packed, nonce field.Element) ledger.Call {
	signature, err := authorisation.Sign(e.Ledger.Hasher(), key, args, nonce)
	if nil != err {
		panic(err)
	}
	return ledger.Call{
		Signer:    key.Account(),
		Nonce:     nonce,
		Signature: signature,
	}
}

// CreateUser - create a user for a key and return its id
func (e *Environment) CreateUser(t *testing.T, key *account.PrivateKey, profile ledger.Profile) field.Element {
	id, err := e.Ledger.CreateUser(e.Sign(key, ledger.CreateUserArguments(profile)), profile)
	if nil != err {
		t.Fatalf("create user error: %s", err)
	}
	return id
}

// Close - release the database
func (e *Environment) Close() {
	e.DB.Close()
}
