// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"

	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/storage"
	"github.com/bitmark-inc/socialledgerd/token"
)

// Profile - the editable text of a user
type Profile struct {
	Username        string `json:"username"`
	Image           string `json:"image"`
	BackgroundImage string `json:"backgroundImage"`
	Description     string `json:"description"`
	SocialLink      string `json:"socialLink"`
}

func (p Profile) texts() []string {
	return []string{p.Username, p.Image, p.BackgroundImage, p.Description, p.SocialLink}
}

// User - everything recorded about a user
type User struct {
	ID          field.Element    `json:"id"`
	Owner       *account.Account `json:"owner"`
	Profile     Profile          `json:"profile"`
	Following   field.Packed     `json:"following"`
	Followers   field.Packed     `json:"followers"`
	Contents    field.Packed     `json:"contents"`
	Rated       field.Packed     `json:"rated"`
	RatingCount uint64           `json:"ratingCount"`
	RatingSum   uint64           `json:"ratingSum"`
	Flagged     bool             `json:"flagged"`
	CreatedAt   uint64           `json:"createdAt"`
}

// the user token of the signer, subject to flag enforcement
func (l *Ledger) signerUser(trx storage.Transaction, signer *account.Account) (token.Registry, field.Element, error) {
	users, err := l.userRegistry(trx)
	if nil != err {
		return nil, field.Zero, err
	}
	id, ok := users.TokenOf(trx, signer)
	if !ok {
		return nil, field.Zero, fault.UserNotFound
	}
	err = l.checkFlag(trx, id)
	if nil != err {
		return nil, field.Zero, err
	}
	return users, id, nil
}

func (l *Ledger) checkFlag(trx storage.Transaction, id field.Element) error {
	if l.enforceFlags && l.userStore.GetScalar(trx, userFlagged, id).Bool() {
		return fault.UserFlagged
	}
	return nil
}

func userOwner(trx storage.Transaction, users token.Registry, id field.Element) (*account.Account, error) {
	owner, err := users.OwnerOf(trx, id)
	if fault.TokenNotFound == err {
		return nil, fault.UserNotFound
	}
	return owner, err
}

func (l *Ledger) setProfile(trx storage.Transaction, id field.Element, profile Profile) error {
	offsets, values, err := packTexts(profile.texts()...)
	if nil != err {
		return err
	}
	return l.userStore.SetProperties(trx, profileNames, id, offsets, values)
}

// CreateUser - mint a user token to the signer and record the profile
func (l *Ledger) CreateUser(call Call, profile Profile) (field.Element, error) {
	var id field.Element

	err := l.execute("createUser", call, CreateUserArguments(profile), func(trx storage.Transaction) error {
		users, err := l.userRegistry(trx)
		if nil != err {
			return err
		}
		if _, ok := users.TokenOf(trx, call.Signer); ok {
			return fault.UserAlreadyExists
		}

		id, err = users.Mint(trx, MintAuthority(), call.Signer)
		if nil != err {
			return err
		}

		err = l.setProfile(trx, id, profile)
		if nil != err {
			return err
		}
		setUint64(l.userStore, trx, userCreatedAt, id, l.clock.Now())
		return nil
	})
	if nil != err {
		return field.Zero, err
	}
	return id, nil
}

// UpdateUser - replace the profile of a user owned by the signer
func (l *Ledger) UpdateUser(call Call, id field.Element, profile Profile) error {
	return l.execute("updateUser", call, UpdateUserArguments(profile), func(trx storage.Transaction) error {
		users, err := l.userRegistry(trx)
		if nil != err {
			return err
		}
		owner, err := userOwner(trx, users, id)
		if nil != err {
			return err
		}
		if !owner.Equal(call.Signer) {
			return fault.NotOwner
		}
		err = l.checkFlag(trx, id)
		if nil != err {
			return err
		}
		return l.setProfile(trx, id, profile)
	})
}

// Follow - add the reciprocal following/followers edge
//
// following an already followed creator changes nothing
func (l *Ledger) Follow(call Call, creatorID field.Element) error {
	return l.execute("follow", call, FollowArguments(), func(trx storage.Transaction) error {
		users, id, err := l.signerUser(trx, call.Signer)
		if nil != err {
			return err
		}
		if id == creatorID {
			return fault.SelfFollow
		}
		if _, err := userOwner(trx, users, creatorID); nil != err {
			return err
		}

		if addMember(l.userStore, trx, userFollowing, id, creatorID) {
			addMember(l.userStore, trx, userFollowers, creatorID, id)
		}
		return nil
	})
}

// Unfollow - remove the reciprocal edge if present
func (l *Ledger) Unfollow(call Call, creatorID field.Element) error {
	return l.execute("unfollow", call, UnfollowArguments(), func(trx storage.Transaction) error {
		_, id, err := l.signerUser(trx, call.Signer)
		if nil != err {
			return err
		}
		removeMember(l.userStore, trx, userFollowing, id, creatorID)
		removeMember(l.userStore, trx, userFollowers, creatorID, id)
		return nil
	})
}

// Rate - add a rating to a creator
func (l *Ledger) Rate(call Call, creatorID field.Element, rating uint64) error {
	return l.execute("rate", call, RateArguments(rating), func(trx storage.Transaction) error {
		users, id, err := l.signerUser(trx, call.Signer)
		if nil != err {
			return err
		}
		if _, err := userOwner(trx, users, creatorID); nil != err {
			return err
		}

		sum := getUint64(l.userStore, trx, userRatingSum, creatorID)
		if sum > math.MaxUint64-rating {
			return fault.RatingOverflow
		}
		count := getUint64(l.userStore, trx, userRatingCount, creatorID)

		setUint64(l.userStore, trx, userRatingSum, creatorID, sum+rating)
		setUint64(l.userStore, trx, userRatingCount, creatorID, count+1)
		addMember(l.userStore, trx, userRated, id, creatorID)
		return nil
	})
}

// GetUser - read a user
func (l *Ledger) GetUser(id field.Element) (*User, error) {
	l.Lock()
	defer l.Unlock()

	users, err := l.userRegistry(nil)
	if nil != err {
		return nil, err
	}
	owner, err := userOwner(nil, users, id)
	if nil != err {
		return nil, err
	}

	offsets, values := l.userStore.GetProperties(nil, profileNames, id)
	texts, err := unpackTexts(offsets, values)
	if nil != err {
		return nil, err
	}

	return &User{
		ID:    id,
		Owner: owner,
		Profile: Profile{
			Username:        texts[0],
			Image:           texts[1],
			BackgroundImage: texts[2],
			Description:     texts[3],
			SocialLink:      texts[4],
		},
		Following:   l.userStore.GetProperty(nil, userFollowing, id),
		Followers:   l.userStore.GetProperty(nil, userFollowers, id),
		Contents:    l.userStore.GetProperty(nil, userContents, id),
		Rated:       l.userStore.GetProperty(nil, userRated, id),
		RatingCount: getUint64(l.userStore, nil, userRatingCount, id),
		RatingSum:   getUint64(l.userStore, nil, userRatingSum, id),
		Flagged:     l.userStore.GetScalar(nil, userFlagged, id).Bool(),
		CreatedAt:   getUint64(l.userStore, nil, userCreatedAt, id),
	}, nil
}

// GetUserTokenID - the user token of an account
func (l *Ledger) GetUserTokenID(owner *account.Account) (field.Element, error) {
	l.Lock()
	defer l.Unlock()

	users, err := l.userRegistry(nil)
	if nil != err {
		return field.Zero, err
	}
	id, ok := users.TokenOf(nil, owner)
	if !ok {
		return field.Zero, fault.UserNotFound
	}
	return id, nil
}

// ListUsers - page through minted user tokens
func (l *Ledger) ListUsers(start field.Element, count int) ([]token.Token, error) {
	l.Lock()
	defer l.Unlock()

	users, err := l.userRegistry(nil)
	if nil != err {
		return nil, err
	}
	return users.List(start, count)
}
