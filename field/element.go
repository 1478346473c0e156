// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/fault"
)

// ElementLength - number of bytes in a stored element
const ElementLength = 32

// Modulus - order of the scalar field of BN254, the field of the
// poseidon fold primitive
var Modulus = mustParseModulus("21888242871839275222246405745257275088548364400416034343698204186575808495617")

func mustParseModulus(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		logger.Panicf("invalid field modulus: %q", s)
	}
	return n
}

// Element - one field element as big endian bytes
type Element [ElementLength]byte

// Packed - ordered sequence of field elements
type Packed []Element

// Zero - the zero element
var Zero = Element{}

// FromUint64 - convert an integer to an element
func FromUint64(n uint64) Element {
	e := Element{}
	binary.BigEndian.PutUint64(e[ElementLength-8:], n)
	return e
}

// FromBool - 1 for true, 0 for false
func FromBool(b bool) Element {
	if b {
		return FromUint64(1)
	}
	return Zero
}

// FromBig - convert a big integer, must be in [0, Modulus)
func FromBig(n *big.Int) (Element, error) {
	e := Element{}
	if nil == n || n.Sign() < 0 {
		return e, fault.InvalidFieldElement
	}
	if n.Cmp(Modulus) >= 0 {
		return e, fault.ValueTooLarge
	}
	n.FillBytes(e[:])
	return e, nil
}

// FromBytes - interpret up to 32 big endian bytes as an element
func FromBytes(buffer []byte) (Element, error) {
	if len(buffer) > ElementLength {
		return Element{}, fault.ValueTooLarge
	}
	return FromBig(new(big.Int).SetBytes(buffer))
}

// FromHex - parse a hex string of up to 64 digits, optional 0x prefix
func FromHex(s string) (Element, error) {
	if len(s) >= 2 && '0' == s[0] && ('x' == s[1] || 'X' == s[1]) {
		s = s[2:]
	}
	if 1 == len(s)%2 {
		s = "0" + s
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return Element{}, fault.InvalidFieldElement
	}
	return FromBytes(buffer)
}

// Big - the element as a big integer
func (e Element) Big() *big.Int {
	return new(big.Int).SetBytes(e[:])
}

// Uint64 - the element as an integer
//
// second parameter is false if the value does not fit in 64 bits
func (e Element) Uint64() (uint64, bool) {
	for _, b := range e[:ElementLength-8] {
		if 0 != b {
			return 0, false
		}
	}
	return binary.BigEndian.Uint64(e[ElementLength-8:]), true
}

// Bool - any non-zero element is true
func (e Element) Bool() bool {
	return !e.IsZero()
}

// IsZero - check for the zero element
func (e Element) IsZero() bool {
	return e == Zero
}

// Minimal - big endian bytes without leading zeros
func (e Element) Minimal() []byte {
	for i, b := range e {
		if 0 != b {
			return e[i:]
		}
	}
	return []byte{}
}

// String - hex form with 0x prefix and no leading zeros
func (e Element) String() string {
	if e.IsZero() {
		return "0x0"
	}
	s := hex.EncodeToString(e.Minimal())
	if '0' == s[0] {
		s = s[1:]
	}
	return "0x" + s
}

// MarshalText - hex text for JSON
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText - parse hex text from JSON
func (e *Element) UnmarshalText(s []byte) error {
	element, err := FromHex(string(s))
	if nil != err {
		return err
	}
	*e = element
	return nil
}

// Bytes - concatenation of the 32 byte elements
func (p Packed) Bytes() []byte {
	buffer := make([]byte, 0, len(p)*ElementLength)
	for _, e := range p {
		buffer = append(buffer, e[:]...)
	}
	return buffer
}

// PackedFromBytes - split a buffer of concatenated 32 byte elements
func PackedFromBytes(buffer []byte) (Packed, error) {
	if 0 != len(buffer)%ElementLength {
		return nil, fault.InvalidFieldElement
	}
	p := make(Packed, len(buffer)/ElementLength)
	for i := range p {
		copy(p[i][:], buffer[i*ElementLength:])
	}
	return p, nil
}

// Index - position of an element or -1
func (p Packed) Index(e Element) int {
	for i, item := range p {
		if item == e {
			return i
		}
	}
	return -1
}

// Contains - check for membership
func (p Packed) Contains(e Element) bool {
	return p.Index(e) >= 0
}

// Uint64s - convert a list of integers
func Uint64s(values ...uint64) Packed {
	p := make(Packed, len(values))
	for i, n := range values {
		p[i] = FromUint64(n)
	}
	return p
}
