// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialledgerd/storage"
)

func TestOpenFileAndReopen(t *testing.T) {
	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "open")

	trx, err := db.Begin()
	assert.Nil(t, err, "begin")
	trx.Put(db.Pool.Settings, []byte("admin"), []byte{0x01, 0x02})
	assert.Nil(t, trx.Commit(), "commit")
	db.Close()

	db, err = storage.Open(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "reopen read only")
	defer db.Close()

	assert.Equal(t, []byte{0x01, 0x02}, db.Pool.Settings.Get([]byte("admin")), "persisted value")
}

func TestOpenMissingReadOnly(t *testing.T) {
	_, err := storage.Open(dir+"/missing.leveldb", storage.ReadOnly)
	assert.NotNil(t, err, "read only open of missing database")
}

func TestPoolsAreSeparate(t *testing.T) {
	db := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	trx.Put(db.Pool.UserProperties, []byte("k"), []byte("user"))
	trx.Put(db.Pool.ContentProperties, []byte("k"), []byte("content"))
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []byte("user"), db.Pool.UserProperties.Get([]byte("k")), "user pool")
	assert.Equal(t, []byte("content"), db.Pool.ContentProperties.Get([]byte("k")), "content pool")
	assert.False(t, db.Pool.Nonces.Has([]byte("k")), "nonce pool")
}

func TestGetN(t *testing.T) {
	db := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	trx.PutN(db.Pool.UserTokens, []byte("N"), 0x0102030405060708)
	assert.Nil(t, trx.Commit(), "commit")

	n, found := db.Pool.UserTokens.GetN([]byte("N"))
	assert.True(t, found, "found")
	assert.Equal(t, uint64(0x0102030405060708), n, "value")

	_, found = db.Pool.UserTokens.GetN([]byte("X"))
	assert.False(t, found, "missing")
}

func TestClosedDatabase(t *testing.T) {
	db := setup(t)
	populate(t, db)
	db.Close()

	assert.Nil(t, db.Pool.TestData.Get(expectedElements[0].Key), "get after close")
	assert.False(t, db.Pool.TestData.Has(expectedElements[0].Key), "has after close")
}
