// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// staged operations
const (
	dbPut = iota
	dbDelete
)

// holds writes staged by the open transaction so later reads in the
// same transaction see them
type writeCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

func newCache() *writeCache {
	return &writeCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// returns the staged operation, if any
func (c *writeCache) get(key []byte) (cacheData, bool) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return cacheData{}, false
	}
	return obj.(cacheData), true
}

func (c *writeCache) set(op int, key []byte, value []byte) {
	c.cache.Set(string(key), cacheData{
		op:    op,
		value: value,
	}, cache.NoExpiration)
}

func (c *writeCache) clear() {
	c.cache.Flush()
}
