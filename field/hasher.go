// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"math/big"

	"github.com/bitmark-inc/logger"
	"github.com/iden3/go-iden3-crypto/poseidon"
)

// Hasher - the binary fold primitive
type Hasher interface {
	Fold(a Element, b Element) Element
}

// Poseidon - fold with the two input poseidon permutation
type Poseidon struct{}

// Fold - hash two elements into one
func (Poseidon) Fold(a Element, b Element) Element {
	h, err := poseidon.Hash([]*big.Int{a.Big(), b.Big()})
	if nil != err {
		// inputs are always reduced so this is an internal error
		logger.Panicf("poseidon fold: %s", err)
	}
	e, err := FromBig(h)
	if nil != err {
		logger.Panicf("poseidon fold result: %s", err)
	}
	return e
}
