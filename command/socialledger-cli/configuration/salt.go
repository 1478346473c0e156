// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/socialledgerd/fault"
)

const (
	saltSize = 16
)

// Salt - random bytes for password hashing
type Salt [saltSize]byte

// MakeSalt - a new random salt
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return salt, err
	}
	return salt, nil
}

// Bytes - convert a binary salt to byte slice
func (salt Salt) Bytes() []byte {
	return salt[:]
}

// String - hex form
func (salt Salt) String() string {
	return hex.EncodeToString(salt.Bytes())
}

// MarshalText - hex text for JSON
func (salt Salt) MarshalText() ([]byte, error) {
	return []byte(salt.String()), nil
}

// UnmarshalText - parse exactly saltSize bytes of hex
func (salt *Salt) UnmarshalText(s []byte) error {
	buffer, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	if saltSize != len(buffer) {
		return fault.UnmarshalTextFailed
	}
	copy(salt[:], buffer)
	return nil
}
