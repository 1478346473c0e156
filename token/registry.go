// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/storage"
)

// sub-keys
var (
	authorityKey = []byte{'A'}
	nextKey      = []byte{'N'}
	ownerPrefix  = byte('O')
	firstPrefix  = byte('F')
)

// Token - a minted token and its owner
type Token struct {
	ID    field.Element    `json:"id"`
	Owner *account.Account `json:"owner"`
}

// Registry - the token ownership operations the ledger relies on
type Registry interface {
	Address() field.Element
	Name() string
	Setup(trx storage.Transaction, deployer *account.Account) error
	Authority(trx storage.Transaction) (*account.Account, bool)
	TransferOwnership(trx storage.Transaction, current *account.Account, next *account.Account) error
	Mint(trx storage.Transaction, authority *account.Account, owner *account.Account) (field.Element, error)
	OwnerOf(trx storage.Transaction, tokenID field.Element) (*account.Account, error)
	TokenOf(trx storage.Transaction, owner *account.Account) (field.Element, bool)
	Count(trx storage.Transaction) uint64
	List(start field.Element, count int) ([]Token, error)
}

// Contract - registry kept in a storage pool
type Contract struct {
	log     *logger.L
	name    string
	address field.Element
	pool    *storage.PoolHandle
}

// New - create a registry over a pool
//
// the address is derived from the name so it is stable across restarts
func New(name string, pool *storage.PoolHandle) (*Contract, error) {
	address, err := AddressOf(field.Poseidon{}, name)
	if nil != err {
		return nil, err
	}
	return &Contract{
		log:     logger.New("token"),
		name:    name,
		address: address,
		pool:    pool,
	}, nil
}

// AddressOf - fold the packed name into a single element
func AddressOf(hasher field.Hasher, name string) (field.Element, error) {
	p, err := field.Encode(name)
	if nil != err {
		return field.Zero, err
	}
	address := field.Zero
	for i := len(p) - 1; i >= 0; i -= 1 {
		address = hasher.Fold(p[i], address)
	}
	return address, nil
}

// Address - registry address
func (c *Contract) Address() field.Element {
	return c.address
}

// Name - registry name
func (c *Contract) Name() string {
	return c.name
}

func (c *Contract) get(trx storage.Transaction, key []byte) []byte {
	if nil == trx {
		return c.pool.Get(key)
	}
	return trx.Get(c.pool, key)
}

func (c *Contract) getAccount(trx storage.Transaction, key []byte) (*account.Account, bool) {
	buffer := c.get(trx, key)
	if nil == buffer {
		return nil, false
	}
	a, err := account.AccountFromBytes(buffer)
	logger.PanicIfError("token.getAccount", err)
	return a, true
}

// Setup - make the deployer the first mint authority
func (c *Contract) Setup(trx storage.Transaction, deployer *account.Account) error {
	if _, ok := c.Authority(trx); ok {
		return fault.AlreadyInitialised
	}
	trx.Put(c.pool, authorityKey, deployer.Bytes())
	c.log.Infof("%s: authority: %s", c.name, deployer)
	return nil
}

// Authority - current mint authority
func (c *Contract) Authority(trx storage.Transaction) (*account.Account, bool) {
	return c.getAccount(trx, authorityKey)
}

func (c *Contract) isAuthority(trx storage.Transaction, a *account.Account) bool {
	authority, ok := c.Authority(trx)
	return ok && authority.Equal(a)
}

// TransferOwnership - hand mint authority to another account
func (c *Contract) TransferOwnership(trx storage.Transaction, current *account.Account, next *account.Account) error {
	if !c.isAuthority(trx, current) {
		return fault.NotOwner
	}
	trx.Put(c.pool, authorityKey, next.Bytes())
	c.log.Infof("%s: authority: %s -> %s", c.name, current, next)
	return nil
}

func ownerKey(tokenID field.Element) []byte {
	return append([]byte{ownerPrefix}, tokenID[:]...)
}

func firstKey(owner *account.Account) []byte {
	return append([]byte{firstPrefix}, owner.Bytes()...)
}

// Mint - issue the next token id to an owner
func (c *Contract) Mint(trx storage.Transaction, authority *account.Account, owner *account.Account) (field.Element, error) {
	if !c.isAuthority(trx, authority) {
		return field.Zero, fault.NotOwner
	}

	n, ok := trx.GetN(c.pool, nextKey)
	if !ok {
		n = 1
	}
	tokenID := field.FromUint64(n)
	trx.PutN(c.pool, nextKey, n+1)

	trx.Put(c.pool, ownerKey(tokenID), owner.Bytes())
	if !trx.Has(c.pool, firstKey(owner)) {
		trx.Put(c.pool, firstKey(owner), tokenID[:])
	}

	c.log.Debugf("%s: mint: %s to: %s", c.name, tokenID, owner)
	return tokenID, nil
}

// OwnerOf - owner of a token
func (c *Contract) OwnerOf(trx storage.Transaction, tokenID field.Element) (*account.Account, error) {
	owner, ok := c.getAccount(trx, ownerKey(tokenID))
	if !ok {
		return nil, fault.TokenNotFound
	}
	return owner, nil
}

// TokenOf - first token minted to an owner
func (c *Contract) TokenOf(trx storage.Transaction, owner *account.Account) (field.Element, bool) {
	buffer := c.get(trx, firstKey(owner))
	if nil == buffer {
		return field.Zero, false
	}
	tokenID, err := field.FromBytes(buffer)
	logger.PanicIfError("token.TokenOf", err)
	return tokenID, true
}

// Count - number of tokens minted
func (c *Contract) Count(trx storage.Transaction) uint64 {
	var n uint64
	var ok bool
	if nil == trx {
		n, ok = c.pool.GetN(nextKey)
	} else {
		n, ok = trx.GetN(c.pool, nextKey)
	}
	if !ok {
		return 0
	}
	return n - 1
}

// List - committed tokens in id order starting from start
func (c *Contract) List(start field.Element, count int) ([]Token, error) {
	cursor := c.pool.NewFetchCursor().
		Seek(ownerKey(start)).
		Limit([]byte{ownerPrefix + 1})

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	tokens := make([]Token, 0, len(elements))
	for _, e := range elements {
		tokenID, err := field.FromBytes(e.Key[1:])
		logger.PanicIfError("token.List id", err)
		owner, err := account.AccountFromBytes(e.Value)
		logger.PanicIfError("token.List owner", err)
		tokens = append(tokens, Token{
			ID:    tokenID,
			Owner: owner,
		})
	}
	return tokens, nil
}
