// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authorisation - signed call verification with single use nonces
package authorisation

import (
	"crypto/rand"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/storage"
)

var consumed = []byte{0x01}

// ChallengeHash - the value a caller signs
//
// right fold from a zero seed over args ++ [nonce]:
//   h(args[0], h(args[1], ... h(nonce, 0)))
func ChallengeHash(hasher field.Hasher, args field.Packed, nonce field.Element) field.Element {
	accumulator := field.Zero
	accumulator = hasher.Fold(nonce, accumulator)
	for i := len(args) - 1; i >= 0; i -= 1 {
		accumulator = hasher.Fold(args[i], accumulator)
	}
	return accumulator
}

// Authoriser - checks signatures and records consumed nonces
type Authoriser struct {
	log    *logger.L
	pool   *storage.PoolHandle
	hasher field.Hasher
}

// New - create an authoriser that stores nonces in a pool
func New(pool *storage.PoolHandle, hasher field.Hasher) *Authoriser {
	return &Authoriser{
		log:    logger.New("authorisation"),
		pool:   pool,
		hasher: hasher,
	}
}

func nonceKey(signer *account.Account, nonce field.Element) []byte {
	key := signer.Bytes()
	return append(key, nonce[:]...)
}

// Authorise - verify a signed call and stage its nonce as consumed
//
// the nonce is only consumed when trx is committed
func (a *Authoriser) Authorise(trx storage.Transaction, signer *account.Account, args field.Packed, nonce field.Element, signature account.Signature) error {
	if nil == signer || nil == signer.AccountInterface {
		return fault.MissingParameters
	}

	hash := ChallengeHash(a.hasher, args, nonce)

	key := nonceKey(signer, nonce)
	if trx.Has(a.pool, key) {
		a.log.Warnf("replayed nonce: %s from: %s", nonce, signer)
		return fault.NonceAlreadyUsed
	}

	err := signer.CheckSignature(hash[:], signature)
	if nil != err {
		// malformed signatures and keys are verification failures too
		a.log.Warnf("signature failed: %s for hash: %s from: %s", err, hash, signer)
		return fault.SignatureMismatch
	}

	trx.Put(a.pool, key, consumed)
	return nil
}

// IsConsumed - check if a nonce has been used by a signer
func (a *Authoriser) IsConsumed(trx storage.Transaction, signer *account.Account, nonce field.Element) bool {
	key := nonceKey(signer, nonce)
	if nil == trx {
		return a.pool.Has(key)
	}
	return trx.Has(a.pool, key)
}

// Sign - produce the signature for a call
func Sign(hasher field.Hasher, privateKey *account.PrivateKey, args field.Packed, nonce field.Element) (account.Signature, error) {
	hash := ChallengeHash(hasher, args, nonce)
	return privateKey.Sign(hash[:])
}

// RandomNonce - a fresh nonce for a client call
//
// 31 random bytes are always below the field modulus
func RandomNonce() (field.Element, error) {
	buffer := make([]byte, field.ElementLength-1)
	if _, err := rand.Read(buffer); nil != err {
		return field.Zero, err
	}
	return field.FromBytes(buffer)
}
