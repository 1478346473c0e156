// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/storage"
	"github.com/bitmark-inc/socialledgerd/token"
)

// Info - summary of the ledger
type Info struct {
	Admin           string         `json:"admin"`
	UserContract    *field.Element `json:"userContract"`
	ContentContract *field.Element `json:"contentContract"`
	Users           uint64         `json:"users"`
	Contents        uint64         `json:"contents"`
	EnforceFlags    bool           `json:"enforceFlags"`
}

func (l *Ledger) isAdmin(call Call) error {
	if !l.admin.Equal(call.Signer) {
		return fault.NotAdmin
	}
	return nil
}

// FlagUser - set or clear the moderation flag of a user
func (l *Ledger) FlagUser(call Call, id field.Element, flag bool) error {
	return l.execute("flagUser", call, FlagUserArguments(flag), func(trx storage.Transaction) error {
		err := l.isAdmin(call)
		if nil != err {
			return err
		}
		users, err := l.userRegistry(trx)
		if nil != err {
			return err
		}
		if _, err := userOwner(trx, users, id); nil != err {
			return err
		}
		l.userStore.SetScalar(trx, userFlagged, id, field.FromBool(flag))
		return nil
	})
}

// SetUserTokenContract - register the user token registry once
func (l *Ledger) SetUserTokenContract(call Call, address field.Element) error {
	return l.execute("setUserTokenContract", call, SetTokenContractArguments(address), func(trx storage.Transaction) error {
		return l.setContract(trx, call, userContractKey, l.users, address)
	})
}

// SetContentTokenContract - register the content token registry once
func (l *Ledger) SetContentTokenContract(call Call, address field.Element) error {
	return l.execute("setContentTokenContract", call, SetTokenContractArguments(address), func(trx storage.Transaction) error {
		return l.setContract(trx, call, contentContractKey, l.contents, address)
	})
}

func (l *Ledger) setContract(trx storage.Transaction, call Call, key []byte, r token.Registry, address field.Element) error {
	err := l.isAdmin(call)
	if nil != err {
		return err
	}
	if trx.Has(l.db.Pool.Settings, key) {
		return fault.TokenContractAlreadySet
	}
	if r.Address() != address {
		return fault.UnknownTokenContract
	}
	authority, ok := r.Authority(trx)
	if !ok || !authority.Equal(MintAuthority()) {
		return fault.NoMintAuthority
	}
	trx.Put(l.db.Pool.Settings, key, address[:])
	l.log.Infof("%s registry: %s", r.Name(), address)
	return nil
}

// Info - administrator, registered contracts and token counts
func (l *Ledger) Info() Info {
	l.Lock()
	defer l.Unlock()

	info := Info{
		Admin:        l.admin.String(),
		EnforceFlags: l.enforceFlags,
	}
	if users, err := l.userRegistry(nil); nil == err {
		address := users.Address()
		info.UserContract = &address
		info.Users = users.Count(nil)
	}
	if contents, err := l.contentRegistry(nil); nil == err {
		address := contents.Address()
		info.ContentContract = &address
		info.Contents = contents.Count(nil)
	}
	return info
}
