// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/socialledgerd/fault"
)

// Transaction - staged writes applied atomically on Commit
//
// reads through the transaction observe its own staged writes
type Transaction interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse    bool
	database *Database
	batch    *leveldb.Batch
	cache    *writeCache
}

func newTransaction(database *Database) *transaction {
	return &transaction{
		database: database,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyStarted
	}
	t.inUse = true
	t.batch.Reset()
	t.cache.clear()

	return nil
}

// Put - stage a key/value pair
func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	prefixed := handle.prefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)

	t.batch.Put(prefixed, stored)
	t.cache.set(dbPut, prefixed, stored)
}

// PutN - stage a big endian uint64
func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

// Delete - stage a key removal
func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	prefixed := handle.prefixKey(key)
	t.batch.Delete(prefixed)
	t.cache.set(dbDelete, prefixed, nil)
}

// Get - staged value if any, otherwise the committed value
func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	if data, found := t.cache.get(handle.prefixKey(key)); found {
		if dbDelete == data.op {
			return nil
		}
		return data.value
	}
	return handle.Get(key)
}

// GetN - decode the first 8 bytes as big endian uint64
func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

// Has - check staged then committed data
func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	if data, found := t.cache.get(handle.prefixKey(key)); found {
		return dbPut == data.op
	}
	return handle.Has(key)
}

// Commit - write all staged operations as one batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotStarted
	}
	t.inUse = false

	defer func() {
		t.batch.Reset()
		t.cache.clear()
	}()

	if 0 == t.batch.Len() {
		return nil
	}

	t.database.RLock()
	defer t.database.RUnlock()

	if nil == t.database.db {
		return fault.DatabaseIsNotSet
	}

	return t.database.db.Write(t.batch, nil)
}

// Abort - discard all staged operations
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.inUse = false
	t.batch.Reset()
	t.cache.clear()
}
