// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/bitmark-inc/socialledgerd/fault"
)

// BIP-340 sizes
const (
	schnorrPublicKeySize  = 32 // x-only
	schnorrPrivateKeySize = 32
	schnorrSignatureSize  = 64
	schnorrMessageSize    = 32
)

// SchnorrAccount - for BIP-340 signatures over secp256k1
type SchnorrAccount struct {
	PublicKey []byte
}

// KeyType - key type code (see enumeration above)
func (account *SchnorrAccount) KeyType() int {
	return Schnorr
}

// PublicKeyBytes - fetch the x-only public key as byte slice
func (account *SchnorrAccount) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a 32 byte message
func (account *SchnorrAccount) CheckSignature(message []byte, signature Signature) error {

	if schnorrSignatureSize != len(signature) || schnorrMessageSize != len(message) {
		return fault.InvalidSignature
	}

	publicKey, err := schnorr.ParsePubKey(account.PublicKey)
	if nil != err {
		return fault.InvalidKeyLength
	}

	sig, err := schnorr.ParseSignature(signature)
	if nil != err {
		return fault.InvalidSignature
	}

	if !sig.Verify(message, publicKey) {
		return fault.SignatureMismatch
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *SchnorrAccount) Bytes() []byte {
	return append([]byte{keyVariant(Schnorr, true)}, account.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (account *SchnorrAccount) String() string {
	return toBase58(account.Bytes())
}

// MarshalText - convert an account to its Base58 JSON form
func (account SchnorrAccount) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// SchnorrPrivateKey - secp256k1 scalar
type SchnorrPrivateKey struct {
	PrivateKey []byte
}

// NewSchnorrPrivateKey - generate a random key
func NewSchnorrPrivateKey() (*PrivateKey, error) {
	key, err := btcec.NewPrivateKey()
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		PrivateKeyInterface: &SchnorrPrivateKey{
			PrivateKey: key.Serialize(),
		},
	}, nil
}

// KeyType - key type code (see enumeration in account.go)
func (privateKey *SchnorrPrivateKey) KeyType() int {
	return Schnorr
}

// Account - return the corresponding account
func (privateKey *SchnorrPrivateKey) Account() *Account {
	_, publicKey := btcec.PrivKeyFromBytes(privateKey.PrivateKey)
	return &Account{
		AccountInterface: &SchnorrAccount{
			PublicKey: schnorr.SerializePubKey(publicKey),
		},
	}
}

// Sign - sign a 32 byte message
func (privateKey *SchnorrPrivateKey) Sign(message []byte) (Signature, error) {
	if schnorrMessageSize != len(message) {
		return nil, fault.InvalidSignature
	}
	key, _ := btcec.PrivKeyFromBytes(privateKey.PrivateKey)
	sig, err := schnorr.Sign(key, message)
	if nil != err {
		return nil, err
	}
	return sig.Serialize(), nil
}

// Bytes - byte slice for encoded key
func (privateKey *SchnorrPrivateKey) Bytes() []byte {
	return append([]byte{keyVariant(Schnorr, false)}, privateKey.PrivateKey[:]...)
}

// String - base58 encoding of encoded key
func (privateKey *SchnorrPrivateKey) String() string {
	return toBase58(privateKey.Bytes())
}

// MarshalText - convert a private key to its Base58 JSON form
func (privateKey SchnorrPrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}
