// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/property"
	"github.com/bitmark-inc/socialledgerd/storage"
)

// user property names
const (
	userUsername        = "username"
	userImage           = "image"
	userBackgroundImage = "background_image"
	userDescription     = "description"
	userSocialLink      = "social_link"
	userFollowing       = "following"
	userFollowers       = "followers"
	userContents        = "contents"
	userRated           = "rated"
	userRatingCount     = "rating_count"
	userRatingSum       = "rating_sum"
	userFlagged         = "flagged"
	userCreatedAt       = "created_at"
)

// content property names
const (
	contentCreator   = "creator"
	contentBody      = "body"
	contentTags      = "tags"
	contentAuthors   = "authors"
	contentPublic    = "public"
	contentLikedBy   = "liked_by"
	contentLikes     = "likes"
	contentViews     = "views"
	contentCreatedAt = "created_at"
)

// in the same order as the Profile fields
var profileNames = []string{
	userUsername,
	userImage,
	userBackgroundImage,
	userDescription,
	userSocialLink,
}

var contentTextNames = []string{
	contentBody,
	contentTags,
	contentAuthors,
}

// pack several strings into one value and its offset table
func packTexts(texts ...string) ([]int, field.Packed, error) {
	offsets := make([]int, 0, len(texts))
	values := field.Packed{}
	for _, s := range texts {
		p, err := field.Encode(s)
		if nil != err {
			return nil, nil, err
		}
		values = append(values, p...)
		offsets = append(offsets, len(values))
	}
	return offsets, values, nil
}

// reverse of packTexts
func unpackTexts(offsets []int, values field.Packed) ([]string, error) {
	spans, err := property.Split(offsets, values)
	if nil != err {
		return nil, err
	}
	texts := make([]string, len(spans))
	for i, span := range spans {
		texts[i], err = field.Decode(span)
		if nil != err {
			return nil, err
		}
	}
	return texts, nil
}

// scalar that must hold an integer
func getUint64(store *property.Store, trx storage.Transaction, name string, entity field.Element) uint64 {
	e := store.GetScalar(trx, name, entity)
	n, ok := e.Uint64()
	if !ok {
		logger.Panicf("ledger: property: %s of: %s is not an integer: %s", name, entity, e)
	}
	return n
}

func setUint64(store *property.Store, trx storage.Transaction, name string, entity field.Element, n uint64) {
	store.SetScalar(trx, name, entity, field.FromUint64(n))
}

// add a member to a set property, false if already present
func addMember(store *property.Store, trx storage.Transaction, name string, entity field.Element, member field.Element) bool {
	set := store.GetProperty(trx, name, entity)
	if set.Contains(member) {
		return false
	}
	store.SetProperty(trx, name, entity, append(set, member))
	return true
}

// remove a member from a set property, false if absent
func removeMember(store *property.Store, trx storage.Transaction, name string, entity field.Element, member field.Element) bool {
	set := store.GetProperty(trx, name, entity)
	i := set.Index(member)
	if i < 0 {
		return false
	}
	updated := make(field.Packed, 0, len(set)-1)
	updated = append(updated, set[:i]...)
	updated = append(updated, set[i+1:]...)
	store.SetProperty(trx, name, entity, updated)
	return true
}
