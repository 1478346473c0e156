// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package property - named variable length values attached to entities
//
// every value is a packed sequence of field elements stored under
//
//   entity(32 bytes) ++ name
//
// in a single storage pool; an empty value removes the record so a
// missing record and an empty value read back identically.
//
// batched calls describe a concatenation of values by a table of
// exclusive end offsets: property i spans values[offsets[i-1]:offsets[i]]
// with an implicit offsets[-1] = 0.
package property
