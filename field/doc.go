// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package field - field elements and the packed text codec
//
// A field element is an integer in the range [0, Modulus) held as a
// 32 byte big endian value.  Text is stored as a packed value: the
// UTF-8 bytes are split into chunks of at most MaximumChunkBytes and
// each chunk is read as one big endian integer.
//
//   "hello world, this is long" (25 bytes)
//
//   element 0: 00 .. 00 68 65 6c 6c 6f 20 77 6f 72 6c 64 2c 20 74 68   (15 bytes)
//   element 1: 00 .. 00 69 73 20 69 73 20 6c 6f 6e 67                  (10 bytes)
//
// Decoding concatenates the minimal big endian bytes of each element,
// so a chunk that starts with a zero byte does not survive the round
// trip.
package field
