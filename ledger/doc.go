// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the social ledger state machine
//
// users and contents are tokens minted by two registries; everything
// else about them lives in packed properties keyed by token id.
//
// every mutating call is signed over a fixed argument list (see
// arguments.go) and a nonce; the nonce, the token mints and all
// property writes of one call are committed in a single storage
// transaction or not at all.
//
// user properties:
//
//   username, image, background_image, description, social_link
//                                - packed text
//   following, followers         - sets of user token ids
//   contents                     - list of content token ids in creation order
//   rated                        - set of user token ids
//   rating_count, rating_sum     - scalars
//   flagged                      - scalar boolean
//   created_at                   - scalar timestamp
//
// content properties:
//
//   creator                      - user token id
//   body, tags, authors          - packed text
//   public                       - scalar boolean
//   liked_by                     - set of user token ids
//   likes                        - scalar, always the size of liked_by
//   views                        - scalar, 1 at creation
//   created_at                   - scalar timestamp
package ledger
