// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"unicode/utf8"

	"github.com/bitmark-inc/socialledgerd/fault"
)

// MaximumChunkBytes - bytes of text carried by one element
//
// 15 bytes is 120 bits, well below the 253 bits of the modulus
const MaximumChunkBytes = 15

// ChunkCount - number of elements Encode produces for a string
func ChunkCount(text string) int {
	return (len(text) + MaximumChunkBytes - 1) / MaximumChunkBytes
}

// Encode - pack a string into field elements
//
// a chunk may not start with a NUL byte
func Encode(text string) (Packed, error) {
	buffer := []byte(text)
	p := make(Packed, 0, ChunkCount(text))
	for start := 0; start < len(buffer); start += MaximumChunkBytes {
		finish := start + MaximumChunkBytes
		if finish > len(buffer) {
			finish = len(buffer)
		}
		// a leading zero byte would be dropped by Decode
		if 0 == buffer[start] {
			return nil, fault.InvalidEncoding
		}
		e, err := FromBytes(buffer[start:finish])
		if nil != err {
			return nil, err
		}
		p = append(p, e)
	}
	return p, nil
}

// Decode - unpack field elements to a string
func Decode(p Packed) (string, error) {
	buffer := make([]byte, 0, len(p)*MaximumChunkBytes)
	for _, e := range p {
		buffer = append(buffer, e.Minimal()...)
	}
	if !utf8.Valid(buffer) {
		return "", fault.InvalidEncoding
	}
	return string(buffer), nil
}
