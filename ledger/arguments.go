// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/socialledgerd/field"
)

// the argument lists signed by each call, the nonce is appended by
// the challenge hash
//
// profile and content calls authenticate the chunk counts of their
// text fields rather than the text itself

// CreateUserArguments - [username, image, backgroundImage, description, socialLink] chunk counts
func CreateUserArguments(profile Profile) field.Packed {
	return field.Uint64s(
		uint64(field.ChunkCount(profile.Username)),
		uint64(field.ChunkCount(profile.Image)),
		uint64(field.ChunkCount(profile.BackgroundImage)),
		uint64(field.ChunkCount(profile.Description)),
		uint64(field.ChunkCount(profile.SocialLink)),
	)
}

// UpdateUserArguments - same shape as create
func UpdateUserArguments(profile Profile) field.Packed {
	return CreateUserArguments(profile)
}

// FollowArguments - nonce only
func FollowArguments() field.Packed {
	return field.Packed{}
}

// UnfollowArguments - nonce only
func UnfollowArguments() field.Packed {
	return field.Packed{}
}

// RateArguments - [rating]
func RateArguments(rating uint64) field.Packed {
	return field.Uint64s(rating)
}

// CreateContentArguments - [body, tags, authors] chunk counts and [public]
func CreateContentArguments(body string, tags string, authors string, public bool) field.Packed {
	return field.Packed{
		field.FromUint64(uint64(field.ChunkCount(body))),
		field.FromUint64(uint64(field.ChunkCount(tags))),
		field.FromUint64(uint64(field.ChunkCount(authors))),
		field.FromBool(public),
	}
}

// UpdateContentArguments - [public]
func UpdateContentArguments(public bool) field.Packed {
	return field.Packed{field.FromBool(public)}
}

// LikeArguments - nonce only
func LikeArguments() field.Packed {
	return field.Packed{}
}

// DislikeArguments - nonce only
func DislikeArguments() field.Packed {
	return field.Packed{}
}

// FlagUserArguments - [flag]
func FlagUserArguments(flag bool) field.Packed {
	return field.Packed{field.FromBool(flag)}
}

// SetTokenContractArguments - [address]
func SetTokenContractArguments(address field.Element) field.Packed {
	return field.Packed{address}
}
