// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. entity       = user or content id as a 32 byte field element
// 4. account      = key variant ++ public key (see account.Bytes)
// 5. element      = 32 byte big endian field element
// 6. id           = big endian uint64 (8 bytes)
//
// Settings:
//
//   S ++ name                  - ledger wide settings (administrator, token contracts)
//                                data: raw bytes
//
// Properties:
//
//   U ++ entity ++ name        - user property
//                                data: element ++ element ++ ...
//   C ++ entity ++ name        - content property
//                                data: element ++ element ++ ...
//
// Replay protection:
//
//   R ++ account ++ nonce      - consumed nonce
//                                data: 0x01
//
// Token registries:
//
//   u ++ sub-key               - user token registry (see token package)
//   c ++ sub-key               - content token registry (see token package)
//
// Testing:
//   Z ++ key                   - testing data
package storage
