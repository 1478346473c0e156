// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/bitmark-inc/socialledgerd/fault"
)

// Signature - raw signature bytes, hex in text form
//
// ed25519 signatures are 64 bytes, BIP-340 schnorr signatures are 64
// bytes; the length is checked by the account type
type Signature []byte

// SignatureFromHex - decode a hex signature
func SignatureFromHex(s string) (Signature, error) {
	sig, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.InvalidSignature
	}
	return sig, nil
}

// String - hex form for %s
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - tagged hex form for %#v
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - hex text for JSON
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - parse hex text from JSON
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := SignatureFromHex(string(s))
	if nil != err {
		return err
	}
	*signature = sig
	return nil
}
