// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/authorisation"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/property"
	"github.com/bitmark-inc/socialledgerd/storage"
	"github.com/bitmark-inc/socialledgerd/token"
)

// settings keys
var (
	adminKey           = []byte("admin")
	userContractKey    = []byte("user-token")
	contentContractKey = []byte("content-token")
	mintAuthorityTag   = []byte("socialledgerd mint authority")
)

// Clock - source of timestamps
type Clock interface {
	Now() uint64
}

// SystemClock - unix seconds
type SystemClock struct{}

// Now - current time in seconds
func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

// Options - collaborators of a ledger
type Options struct {
	Admin        *account.Account
	Users        token.Registry
	Contents     token.Registry
	Hasher       field.Hasher
	Clock        Clock
	EnforceFlags bool
}

// Ledger - the state machine
//
// calls are fully serialised
type Ledger struct {
	deadlock.Mutex

	log          *logger.L
	db           *storage.Database
	admin        *account.Account
	users        token.Registry
	contents     token.Registry
	userStore    *property.Store
	contentStore *property.Store
	authoriser   *authorisation.Authoriser
	hasher       field.Hasher
	clock        Clock
	enforceFlags bool
}

// MintAuthority - the account the registries must hand mint authority to
func MintAuthority() *account.Account {
	h := sha3.Sum256(mintAuthorityTag)
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			PublicKey: h[:],
		},
	}
}

// New - open a ledger on a database
//
// the administrator is recorded on first use and must match afterwards
func New(db *storage.Database, options Options) (*Ledger, error) {
	if nil == db {
		return nil, fault.DatabaseIsNotSet
	}
	if nil == options.Admin || nil == options.Users || nil == options.Contents {
		return nil, fault.MissingParameters
	}

	hasher := options.Hasher
	if nil == hasher {
		hasher = field.Poseidon{}
	}
	clock := options.Clock
	if nil == clock {
		clock = SystemClock{}
	}

	l := &Ledger{
		log:          logger.New("ledger"),
		db:           db,
		admin:        options.Admin,
		users:        options.Users,
		contents:     options.Contents,
		userStore:    property.New(db.Pool.UserProperties),
		contentStore: property.New(db.Pool.ContentProperties),
		authoriser:   authorisation.New(db.Pool.Nonces, hasher),
		hasher:       hasher,
		clock:        clock,
		enforceFlags: options.EnforceFlags,
	}

	stored := db.Pool.Settings.Get(adminKey)
	if nil != stored {
		a, err := account.AccountFromBytes(stored)
		if nil != err {
			return nil, err
		}
		if !a.Equal(options.Admin) {
			l.log.Criticalf("admin: %s does not match stored: %s", options.Admin, a)
			return nil, fault.AdminMismatch
		}
	} else {
		trx, err := db.Begin()
		if nil != err {
			return nil, err
		}
		trx.Put(db.Pool.Settings, adminKey, options.Admin.Bytes())
		err = trx.Commit()
		if nil != err {
			return nil, err
		}
	}

	l.log.Infof("admin: %s  enforce flags: %t", options.Admin, options.EnforceFlags)
	return l, nil
}

// Admin - the administrator account
func (l *Ledger) Admin() *account.Account {
	return l.admin
}

// Hasher - the fold used for challenge hashes
func (l *Ledger) Hasher() field.Hasher {
	return l.hasher
}

// the registry once its address has been set
func (l *Ledger) registry(trx storage.Transaction, key []byte, r token.Registry) (token.Registry, error) {
	var stored []byte
	if nil == trx {
		stored = l.db.Pool.Settings.Get(key)
	} else {
		stored = trx.Get(l.db.Pool.Settings, key)
	}
	if nil == stored {
		return nil, fault.TokenContractNotSet
	}
	return r, nil
}

func (l *Ledger) userRegistry(trx storage.Transaction) (token.Registry, error) {
	return l.registry(trx, userContractKey, l.users)
}

func (l *Ledger) contentRegistry(trx storage.Transaction) (token.Registry, error) {
	return l.registry(trx, contentContractKey, l.contents)
}
