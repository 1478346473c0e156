// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/socialledgerd/fault"
)

// PrivateKey - base type for PrivateKey
type PrivateKey struct {
	PrivateKeyInterface
}

// PrivateKeyInterface - methods every key algorithm provides
type PrivateKeyInterface interface {
	Account() *Account
	KeyType() int
	Sign(message []byte) (Signature, error)
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
}

// NewPrivateKey - generate a random key for an algorithm
func NewPrivateKey(algorithm int) (*PrivateKey, error) {
	switch algorithm {
	case ED25519:
		return NewED25519PrivateKey()
	case Schnorr:
		return NewSchnorrPrivateKey()
	default:
		return nil, fault.InvalidKeyType
	}
}

// PrivateKeyFromBase58 - this converts a Base58 encoded string and returns an private key
//
// one of the specific private key types are returned using the base "PrivateKeyInterface"
// interface type to allow individual methods to be called.
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	privateKeyDecoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || len(privateKeyDecoded) <= checksumLength {
		return nil, fault.CannotDecodePrivateKey
	}

	checksumStart := len(privateKeyDecoded) - checksumLength
	checksum := sha3.Sum256(privateKeyDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], privateKeyDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return PrivateKeyFromBytes(privateKeyDecoded[:checksumStart])
}

// PrivateKeyFromBytes - this converts a byte encoded buffer and returns an private key
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {
	if 0 == len(privateKeyBytes) {
		return nil, fault.CannotDecodePrivateKey
	}

	keyVariant := privateKeyBytes[0]
	if keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPrivateKey
	}

	priv := make([]byte, len(privateKeyBytes)-1)
	copy(priv, privateKeyBytes[1:])

	switch int(keyVariant >> algorithmShift) {
	case ED25519:
		if ed25519PrivateKeySize != len(priv) {
			return nil, fault.InvalidKeyLength
		}
		return &PrivateKey{
			PrivateKeyInterface: &ED25519PrivateKey{
				PrivateKey: priv,
			},
		}, nil
	case Schnorr:
		if schnorrPrivateKeySize != len(priv) {
			return nil, fault.InvalidKeyLength
		}
		return &PrivateKey{
			PrivateKeyInterface: &SchnorrPrivateKey{
				PrivateKey: priv,
			},
		}, nil
	default:
		return nil, fault.InvalidKeyType
	}
}

// UnmarshalText - convert from base58 text
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	a, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	privateKey.PrivateKeyInterface = a.PrivateKeyInterface
	return nil
}
