// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/storage"
)

// Call - the authentication part of a mutating call
type Call struct {
	Signer    *account.Account  `json:"signer"`    // base58
	Nonce     field.Element     `json:"nonce"`     // hex
	Signature account.Signature `json:"signature"` // hex
}

// run a signed action in one transaction
//
// authorisation happens first; any error aborts everything including
// the nonce consumption
func (l *Ledger) execute(operation string, call Call, args field.Packed, action func(trx storage.Transaction) error) error {
	l.Lock()
	defer l.Unlock()

	trx, err := l.db.Begin()
	if nil != err {
		return err
	}

	err = l.authoriser.Authorise(trx, call.Signer, args, call.Nonce, call.Signature)
	if nil == err {
		err = action(trx)
	}
	if nil != err {
		trx.Abort()
		l.log.Warnf("%s: signer: %s  rejected: %s", operation, call.Signer, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		l.log.Errorf("%s: commit error: %s", operation, err)
		return err
	}

	l.log.Infof("%s: signer: %s  nonce: %s", operation, call.Signer, call.Nonce)
	return nil
}

// run an unsigned action that writes
func (l *Ledger) update(operation string, action func(trx storage.Transaction) error) error {
	l.Lock()
	defer l.Unlock()

	trx, err := l.db.Begin()
	if nil != err {
		return err
	}

	err = action(trx)
	if nil != err {
		trx.Abort()
		l.log.Debugf("%s: rejected: %s", operation, err)
		return err
	}
	return trx.Commit()
}
