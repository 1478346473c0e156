// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - uniquely owned identity tokens
//
// a registry mints sequential token ids to owners; only the current
// mint authority may mint and the authority can be handed over once
// it is set up.
//
// layout inside the registry's pool:
//
//   A                          - mint authority
//                                data: account bytes
//   N                          - next token id
//                                data: big endian uint64
//   O ++ token id              - owner of a token
//                                data: account bytes
//   F ++ account bytes         - first token minted to an owner
//                                data: token id
package token
