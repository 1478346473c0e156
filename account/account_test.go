// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/fault"
)

var algorithms = []int{account.ED25519, account.Schnorr}

var message = bytes.Repeat([]byte{0x5a}, 32)

func TestAccountRoundTrip(t *testing.T) {
	for _, algorithm := range algorithms {
		privateKey, err := account.NewPrivateKey(algorithm)
		assert.Nil(t, err, "new private key")

		acc := privateKey.Account()
		assert.Equal(t, algorithm, acc.KeyType(), "key type")

		decoded, err := account.AccountFromBase58(acc.String())
		assert.Nil(t, err, "decode base58")
		assert.True(t, acc.Equal(decoded), "decoded account")
		assert.Equal(t, acc.PublicKeyBytes(), decoded.PublicKeyBytes(), "public key")

		fromBytes, err := account.AccountFromBytes(acc.Bytes())
		assert.Nil(t, err, "decode bytes")
		assert.True(t, acc.Equal(fromBytes), "bytes account")
	}
}

func TestAccountJSON(t *testing.T) {
	privateKey, _ := account.NewPrivateKey(account.Schnorr)
	acc := privateKey.Account()

	type item struct {
		Owner *account.Account `json:"owner"`
	}

	b, err := json.Marshal(item{Owner: acc})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"owner":"`+acc.String()+`"}`, string(b), "json text")

	var out item
	err = json.Unmarshal(b, &out)
	assert.Nil(t, err, "unmarshal")
	assert.True(t, acc.Equal(out.Owner), "unmarshalled account")
}

func TestAccountChecksum(t *testing.T) {
	privateKey, _ := account.NewPrivateKey(account.ED25519)
	raw, _ := base58.Decode(privateKey.Account().String())
	raw[len(raw)-1] ^= 0xff

	_, err := account.AccountFromBase58(base58.Encode(raw))
	assert.Equal(t, fault.ChecksumMismatch, err, "corrupted checksum")

	_, err = account.AccountFromBase58("0OIl")
	assert.Equal(t, fault.CannotDecodeAccount, err, "not base58")
}

func TestAccountRejectsPrivateKey(t *testing.T) {
	privateKey, _ := account.NewPrivateKey(account.ED25519)

	_, err := account.AccountFromBase58(privateKey.String())
	assert.Equal(t, fault.NotPublicKey, err, "private key as account")

	_, err = account.PrivateKeyFromBase58(privateKey.Account().String())
	assert.Equal(t, fault.NotPrivateKey, err, "account as private key")
}

func TestAccountBadLength(t *testing.T) {
	privateKey, _ := account.NewPrivateKey(account.Schnorr)
	b := privateKey.Account().Bytes()

	_, err := account.AccountFromBytes(b[:len(b)-1])
	assert.Equal(t, fault.InvalidKeyLength, err, "short key")

	_, err = account.AccountFromBytes([]byte{0x71, 0x01})
	assert.Equal(t, fault.InvalidKeyType, err, "unknown algorithm")
}

func TestSignAndVerify(t *testing.T) {
	for _, algorithm := range algorithms {
		privateKey, _ := account.NewPrivateKey(algorithm)
		acc := privateKey.Account()

		signature, err := privateKey.Sign(message)
		assert.Nil(t, err, "sign")
		assert.Nil(t, acc.CheckSignature(message, signature), "verify")

		other := append([]byte{}, message...)
		other[0] ^= 0x01
		assert.Equal(t, fault.SignatureMismatch, acc.CheckSignature(other, signature), "altered message")

		assert.Equal(t, fault.InvalidSignature, acc.CheckSignature(message, signature[:10]), "short signature")

		stranger, _ := account.NewPrivateKey(algorithm)
		assert.Equal(t, fault.SignatureMismatch, stranger.Account().CheckSignature(message, signature), "wrong signer")
	}
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	for _, algorithm := range algorithms {
		privateKey, _ := account.NewPrivateKey(algorithm)

		decoded, err := account.PrivateKeyFromBase58(privateKey.String())
		assert.Nil(t, err, "decode private key")
		assert.Equal(t, privateKey.Bytes(), decoded.Bytes(), "private key bytes")
		assert.True(t, privateKey.Account().Equal(decoded.Account()), "same account")
	}

	_, err := account.NewPrivateKey(account.Invalid)
	assert.Equal(t, fault.InvalidKeyType, err, "invalid algorithm")
}

func TestSignatureText(t *testing.T) {
	sig, err := account.SignatureFromHex("00ff10")
	assert.Nil(t, err, "from hex")
	assert.Equal(t, account.Signature{0x00, 0xff, 0x10}, sig, "signature")
	assert.Equal(t, "00ff10", sig.String(), "string")

	_, err = account.SignatureFromHex("xyz")
	assert.Equal(t, fault.InvalidSignature, err, "bad hex")
}
