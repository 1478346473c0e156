// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialledgerd/authorisation"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/ledger/fixtures"
	"github.com/bitmark-inc/socialledgerd/ledger/mocks"
	"github.com/bitmark-inc/socialledgerd/storage"
)

func newMockedLedger(t *testing.T, users *mocks.MockRegistry, clock ledger.Clock) (*storage.Database, *ledger.Ledger, *fixtures.Environment) {
	e := fixtures.NewEnvironment(t, false)
	l, err := ledger.New(e.DB, ledger.Options{
		Admin:    e.Admin.Account(),
		Users:    users,
		Contents: e.Contents,
		Clock:    clock,
	})
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}
	return e.DB, l, e
}

func TestRegistryWithoutMintAuthority(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	address := field.FromUint64(0x1234)
	users := mocks.NewMockRegistry(ctl)
	users.EXPECT().Address().Return(address).AnyTimes()
	users.EXPECT().Authority(gomock.Any()).Return(fixtures.NewKey(t).Account(), true).Times(1)

	db, l, e := newMockedLedger(t, users, nil)
	defer db.Close()

	call := e.SignWithNonce(e.Admin, ledger.SetTokenContractArguments(address), field.FromUint64(1))
	err := l.SetUserTokenContract(call, address)
	assert.Equal(t, fault.NoMintAuthority, err, "registry kept its authority")
}

func TestMintFailureAbortsCall(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	address := field.FromUint64(0x5678)
	users := mocks.NewMockRegistry(ctl)
	users.EXPECT().Address().Return(address).AnyTimes()
	users.EXPECT().Name().Return("mock users").AnyTimes()
	users.EXPECT().Authority(gomock.Any()).Return(ledger.MintAuthority(), true).Times(1)
	users.EXPECT().TokenOf(gomock.Any(), gomock.Any()).Return(field.Zero, false).Times(1)
	users.EXPECT().Mint(gomock.Any(), gomock.Any(), gomock.Any()).Return(field.Zero, fault.NotOwner).Times(1)

	db, l, e := newMockedLedger(t, users, nil)
	defer db.Close()

	err := l.SetUserTokenContract(e.Sign(e.Admin, ledger.SetTokenContractArguments(address)), address)
	assert.Nil(t, err, "register mock registry")

	key := fixtures.NewKey(t)
	call := e.Sign(key, ledger.CreateUserArguments(alice))
	_, err = l.CreateUser(call, alice)
	assert.Equal(t, fault.NotOwner, err, "mint failure is returned")

	a := authorisation.New(db.Pool.Nonces, field.Poseidon{})
	assert.False(t, a.IsConsumed(nil, key.Account(), call.Nonce), "nonce not consumed")
}

func TestCreatedAtFromClock(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	clock := mocks.NewMockClock(ctl)
	clock.EXPECT().Now().Return(uint64(1600000000)).Times(1)

	e := fixtures.NewEnvironment(t, false)
	defer e.Close()

	l, err := ledger.New(e.DB, ledger.Options{
		Admin:    e.Admin.Account(),
		Users:    e.Users,
		Contents: e.Contents,
		Clock:    clock,
	})
	assert.Nil(t, err, "ledger")

	address := e.Users.Address()
	err = l.SetUserTokenContract(e.Sign(e.Admin, ledger.SetTokenContractArguments(address)), address)
	assert.Nil(t, err, "register")

	key := fixtures.NewKey(t)
	id, err := l.CreateUser(e.Sign(key, ledger.CreateUserArguments(alice)), alice)
	assert.Nil(t, err, "create user")

	user, err := l.GetUser(id)
	assert.Nil(t, err, "get user")
	assert.Equal(t, uint64(1600000000), user.CreatedAt, "created at")
}
