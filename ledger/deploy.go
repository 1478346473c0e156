// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/storage"
	"github.com/bitmark-inc/socialledgerd/token"
)

// Deploy - set up a registry and hand its mint authority to the ledger
//
// a registry that was already deployed is left untouched
func Deploy(db *storage.Database, r token.Registry, deployer *account.Account) error {
	trx, err := db.Begin()
	if nil != err {
		return err
	}

	err = r.Setup(trx, deployer)
	if fault.AlreadyInitialised == err {
		trx.Abort()
		return nil
	}
	if nil == err {
		err = r.TransferOwnership(trx, deployer, MintAuthority())
	}
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}
