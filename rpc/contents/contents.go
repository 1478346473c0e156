// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contents

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/rpc/ratelimit"
)

const (
	rateLimitContents = 200
	rateBurstContents = 100
)

// Ledger - the content operations served
type Ledger interface {
	CreateContent(call ledger.Call, body string, tags string, authors string, public bool) (field.Element, error)
	UpdateContent(call ledger.Call, id field.Element, public bool) error
	Like(call ledger.Call, id field.Element) error
	Dislike(call ledger.Call, id field.Element) error
	GetContent(id field.Element) (*ledger.Content, error)
	ViewContent(id field.Element) (*ledger.Content, error)
	ListContents(userID field.Element) ([]*ledger.Content, error)
}

// Contents - type for RPC calls
type Contents struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create the contents service
func New(log *logger.L, l Ledger) *Contents {
	return &Contents{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitContents, rateBurstContents),
		Ledger:  l,
	}
}

// IDReply - the token id of a content item
type IDReply struct {
	ID field.Element `json:"id"`
}

// EmptyReply - reply for calls with no result
type EmptyReply struct{}

// ContentReply - a single content record
type ContentReply struct {
	Content *ledger.Content `json:"content"`
}

// ---

// CreateArguments - arguments for Contents.Create
type CreateArguments struct {
	ledger.Call
	Body    string `json:"body"`
	Tags    string `json:"tags"`
	Authors string `json:"authors"`
	Public  bool   `json:"public"`
}

// Create - publish content from the signer's user
func (c *Contents) Create(arguments *CreateArguments, reply *IDReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	c.Log.Infof("Contents.Create: signer: %s  public: %t", arguments.Signer, arguments.Public)

	id, err := c.Ledger.CreateContent(arguments.Call, arguments.Body, arguments.Tags, arguments.Authors, arguments.Public)
	if nil != err {
		return err
	}
	reply.ID = id
	return nil
}

// ---

// UpdateArguments - arguments for Contents.Update
type UpdateArguments struct {
	ledger.Call
	ID     field.Element `json:"id"`
	Public bool          `json:"public"`
}

// Update - change the visibility of content
func (c *Contents) Update(arguments *UpdateArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	c.Log.Infof("Contents.Update: id: %s  public: %t", arguments.ID, arguments.Public)

	return c.Ledger.UpdateContent(arguments.Call, arguments.ID, arguments.Public)
}

// ---

// LikeArguments - arguments for Contents.Like and Contents.Dislike
type LikeArguments struct {
	ledger.Call
	ID field.Element `json:"id"`
}

// Like - the signer's user likes content
func (c *Contents) Like(arguments *LikeArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	c.Log.Debugf("Contents.Like: id: %s", arguments.ID)

	return c.Ledger.Like(arguments.Call, arguments.ID)
}

// Dislike - the signer's user withdraws a like
func (c *Contents) Dislike(arguments *LikeArguments, reply *EmptyReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	c.Log.Debugf("Contents.Dislike: id: %s", arguments.ID)

	return c.Ledger.Dislike(arguments.Call, arguments.ID)
}

// ---

// GetArguments - arguments for Contents.Get and Contents.View
type GetArguments struct {
	ID field.Element `json:"id"`
}

// Get - read content without counting a view
func (c *Contents) Get(arguments *GetArguments, reply *ContentReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	content, err := c.Ledger.GetContent(arguments.ID)
	if nil != err {
		return err
	}
	reply.Content = content
	return nil
}

// View - read content and count the view
func (c *Contents) View(arguments *GetArguments, reply *ContentReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	content, err := c.Ledger.ViewContent(arguments.ID)
	if nil != err {
		return err
	}
	reply.Content = content
	return nil
}

// ---

// ListArguments - arguments for Contents.List
type ListArguments struct {
	User field.Element `json:"user"`
}

// ListReply - result of Contents.List
type ListReply struct {
	Contents []*ledger.Content `json:"contents"`
}

// List - all content created by a user
func (c *Contents) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	contents, err := c.Ledger.ListContents(arguments.User)
	if nil != err {
		return err
	}
	reply.Contents = contents
	return nil
}
