// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/storage"
	"github.com/bitmark-inc/socialledgerd/token"
)

// Content - everything recorded about a content token
type Content struct {
	ID        field.Element `json:"id"`
	Creator   field.Element `json:"creator"`
	Body      string        `json:"body"`
	Tags      string        `json:"tags"`
	Authors   string        `json:"authors"`
	Public    bool          `json:"public"`
	LikedBy   field.Packed  `json:"likedBy"`
	Likes     uint64        `json:"likes"`
	Views     uint64        `json:"views"`
	CreatedAt uint64        `json:"createdAt"`
}

func contentExists(trx storage.Transaction, contents token.Registry, id field.Element) error {
	_, err := contents.OwnerOf(trx, id)
	if fault.TokenNotFound == err {
		return fault.ContentNotFound
	}
	return err
}

// CreateContent - mint a content token for the signer's user
func (l *Ledger) CreateContent(call Call, body string, tags string, authors string, public bool) (field.Element, error) {
	var id field.Element

	args := CreateContentArguments(body, tags, authors, public)
	err := l.execute("createContent", call, args, func(trx storage.Transaction) error {
		_, creator, err := l.signerUser(trx, call.Signer)
		if nil != err {
			return err
		}
		contents, err := l.contentRegistry(trx)
		if nil != err {
			return err
		}

		offsets, values, err := packTexts(body, tags, authors)
		if nil != err {
			return err
		}

		id, err = contents.Mint(trx, MintAuthority(), call.Signer)
		if nil != err {
			return err
		}

		err = l.contentStore.SetProperties(trx, contentTextNames, id, offsets, values)
		if nil != err {
			return err
		}
		l.contentStore.SetScalar(trx, contentCreator, id, creator)
		l.contentStore.SetScalar(trx, contentPublic, id, field.FromBool(public))
		setUint64(l.contentStore, trx, contentViews, id, 1)
		setUint64(l.contentStore, trx, contentCreatedAt, id, l.clock.Now())

		list := l.userStore.GetProperty(trx, userContents, creator)
		l.userStore.SetProperty(trx, userContents, creator, append(list, id))
		return nil
	})
	if nil != err {
		return field.Zero, err
	}
	return id, nil
}

// UpdateContent - change the public flag of the signer's content
func (l *Ledger) UpdateContent(call Call, id field.Element, public bool) error {
	return l.execute("updateContent", call, UpdateContentArguments(public), func(trx storage.Transaction) error {
		users, err := l.userRegistry(trx)
		if nil != err {
			return err
		}
		contents, err := l.contentRegistry(trx)
		if nil != err {
			return err
		}
		err = contentExists(trx, contents, id)
		if nil != err {
			return err
		}

		creator := l.contentStore.GetScalar(trx, contentCreator, id)
		owner, err := userOwner(trx, users, creator)
		if nil != err {
			return err
		}
		if !owner.Equal(call.Signer) {
			return fault.NotOwner
		}
		err = l.checkFlag(trx, creator)
		if nil != err {
			return err
		}

		l.contentStore.SetScalar(trx, contentPublic, id, field.FromBool(public))
		return nil
	})
}

// Like - add the signer's user to a content's likes
func (l *Ledger) Like(call Call, id field.Element) error {
	return l.execute("like", call, LikeArguments(), func(trx storage.Transaction) error {
		return l.setLike(trx, call, id, true)
	})
}

// Dislike - remove the signer's user from a content's likes
func (l *Ledger) Dislike(call Call, id field.Element) error {
	return l.execute("dislike", call, DislikeArguments(), func(trx storage.Transaction) error {
		return l.setLike(trx, call, id, false)
	})
}

func (l *Ledger) setLike(trx storage.Transaction, call Call, id field.Element, like bool) error {
	_, user, err := l.signerUser(trx, call.Signer)
	if nil != err {
		return err
	}
	contents, err := l.contentRegistry(trx)
	if nil != err {
		return err
	}
	err = contentExists(trx, contents, id)
	if nil != err {
		return err
	}

	var changed bool
	if like {
		changed = addMember(l.contentStore, trx, contentLikedBy, id, user)
	} else {
		changed = removeMember(l.contentStore, trx, contentLikedBy, id, user)
	}
	if changed {
		likedBy := l.contentStore.GetProperty(trx, contentLikedBy, id)
		setUint64(l.contentStore, trx, contentLikes, id, uint64(len(likedBy)))
	}
	return nil
}

func (l *Ledger) readContent(trx storage.Transaction, id field.Element) (*Content, error) {
	contents, err := l.contentRegistry(trx)
	if nil != err {
		return nil, err
	}
	err = contentExists(trx, contents, id)
	if nil != err {
		return nil, err
	}

	offsets, values := l.contentStore.GetProperties(trx, contentTextNames, id)
	texts, err := unpackTexts(offsets, values)
	if nil != err {
		return nil, err
	}

	return &Content{
		ID:        id,
		Creator:   l.contentStore.GetScalar(trx, contentCreator, id),
		Body:      texts[0],
		Tags:      texts[1],
		Authors:   texts[2],
		Public:    l.contentStore.GetScalar(trx, contentPublic, id).Bool(),
		LikedBy:   l.contentStore.GetProperty(trx, contentLikedBy, id),
		Likes:     getUint64(l.contentStore, trx, contentLikes, id),
		Views:     getUint64(l.contentStore, trx, contentViews, id),
		CreatedAt: getUint64(l.contentStore, trx, contentCreatedAt, id),
	}, nil
}

// GetContent - read a content without counting a view
func (l *Ledger) GetContent(id field.Element) (*Content, error) {
	l.Lock()
	defer l.Unlock()

	return l.readContent(nil, id)
}

// ViewContent - read a content and count one view
func (l *Ledger) ViewContent(id field.Element) (*Content, error) {
	var content *Content
	err := l.update("viewContent", func(trx storage.Transaction) error {
		contents, err := l.contentRegistry(trx)
		if nil != err {
			return err
		}
		err = contentExists(trx, contents, id)
		if nil != err {
			return err
		}
		views := getUint64(l.contentStore, trx, contentViews, id)
		setUint64(l.contentStore, trx, contentViews, id, views+1)

		content, err = l.readContent(trx, id)
		return err
	})
	if nil != err {
		return nil, err
	}
	return content, nil
}

// ListContents - contents of a user in creation order
func (l *Ledger) ListContents(userID field.Element) ([]*Content, error) {
	l.Lock()
	defer l.Unlock()

	users, err := l.userRegistry(nil)
	if nil != err {
		return nil, err
	}
	if _, err := userOwner(nil, users, userID); nil != err {
		return nil, err
	}

	ids := l.userStore.GetProperty(nil, userContents, userID)
	list := make([]*Content, 0, len(ids))
	for _, id := range ids {
		content, err := l.readContent(nil, id)
		if nil != err {
			return nil, err
		}
		list = append(list, content)
	}
	return list, nil
}
