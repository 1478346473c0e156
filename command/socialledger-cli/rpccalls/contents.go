// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/rpc/contents"
)

// ContentData - fields of a new content item
type ContentData struct {
	Body    string
	Tags    string
	Authors string
	Public  bool
}

// CreateContent - mint a content token for the signer's user
func (client *Client) CreateContent(privateKey *account.PrivateKey, data *ContentData) (*contents.IDReply, error) {
	call, err := sign(privateKey, ledger.CreateContentArguments(data.Body, data.Tags, data.Authors, data.Public))
	if nil != err {
		return nil, err
	}

	arguments := contents.CreateArguments{
		Call:    call,
		Body:    data.Body,
		Tags:    data.Tags,
		Authors: data.Authors,
		Public:  data.Public,
	}
	client.printJson("Create Content Request", arguments)

	var reply contents.IDReply
	if err := client.client.Call("Contents.Create", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Create Content Reply", reply)
	return &reply, nil
}

// UpdateContent - change the visibility of owned content
func (client *Client) UpdateContent(privateKey *account.PrivateKey, id field.Element, public bool) error {
	call, err := sign(privateKey, ledger.UpdateContentArguments(public))
	if nil != err {
		return err
	}

	arguments := contents.UpdateArguments{
		Call:   call,
		ID:     id,
		Public: public,
	}
	client.printJson("Update Content Request", arguments)

	var reply contents.EmptyReply
	return client.client.Call("Contents.Update", &arguments, &reply)
}

// Like - like a content item
func (client *Client) Like(privateKey *account.PrivateKey, id field.Element) error {
	return client.likeCall("Contents.Like", privateKey, id, ledger.LikeArguments())
}

// Dislike - dislike a content item
func (client *Client) Dislike(privateKey *account.PrivateKey, id field.Element) error {
	return client.likeCall("Contents.Dislike", privateKey, id, ledger.DislikeArguments())
}

func (client *Client) likeCall(method string, privateKey *account.PrivateKey, id field.Element, args field.Packed) error {
	call, err := sign(privateKey, args)
	if nil != err {
		return err
	}

	arguments := contents.LikeArguments{
		Call: call,
		ID:   id,
	}
	client.printJson(method+" Request", arguments)

	var reply contents.EmptyReply
	return client.client.Call(method, &arguments, &reply)
}

// GetContent - read content without counting a view
func (client *Client) GetContent(id field.Element) (*contents.ContentReply, error) {
	return client.contentCall("Contents.Get", id)
}

// ViewContent - read content and count a view
func (client *Client) ViewContent(id field.Element) (*contents.ContentReply, error) {
	return client.contentCall("Contents.View", id)
}

func (client *Client) contentCall(method string, id field.Element) (*contents.ContentReply, error) {
	var reply contents.ContentReply
	if err := client.client.Call(method, &contents.GetArguments{ID: id}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ListContents - content created by a user
func (client *Client) ListContents(user field.Element) (*contents.ListReply, error) {
	var reply contents.ListReply
	if err := client.client.Call("Contents.List", &contents.ListArguments{User: user}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
