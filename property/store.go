// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/field"
	"github.com/bitmark-inc/socialledgerd/storage"
)

// Store - packed property store over one pool
type Store struct {
	pool *storage.PoolHandle
}

// New - create a store on a pool
func New(pool *storage.PoolHandle) *Store {
	return &Store{
		pool: pool,
	}
}

func makeKey(name string, entity field.Element) []byte {
	key := make([]byte, 0, field.ElementLength+len(name))
	key = append(key, entity[:]...)
	return append(key, name...)
}

// SetProperty - replace the whole value of a property
func (s *Store) SetProperty(trx storage.Transaction, name string, entity field.Element, value field.Packed) {
	key := makeKey(name, entity)
	if 0 == len(value) {
		trx.Delete(s.pool, key)
		return
	}
	trx.Put(s.pool, key, value.Bytes())
}

// GetProperty - value of a property, empty if never set
//
// a nil transaction reads committed data only
func (s *Store) GetProperty(trx storage.Transaction, name string, entity field.Element) field.Packed {
	key := makeKey(name, entity)

	var buffer []byte
	if nil == trx {
		buffer = s.pool.Get(key)
	} else {
		buffer = trx.Get(s.pool, key)
	}
	if 0 == len(buffer) {
		return field.Packed{}
	}

	value, err := field.PackedFromBytes(buffer)
	logger.PanicIfError("property.GetProperty", err)
	return value
}

// GetScalar - first element of a property or zero
func (s *Store) GetScalar(trx storage.Transaction, name string, entity field.Element) field.Element {
	value := s.GetProperty(trx, name, entity)
	if 0 == len(value) {
		return field.Zero
	}
	return value[0]
}

// SetScalar - store a single element property
func (s *Store) SetScalar(trx storage.Transaction, name string, entity field.Element, value field.Element) {
	s.SetProperty(trx, name, entity, field.Packed{value})
}

// SetProperties - write several properties from one concatenated value
//
// nothing is staged unless the offsets are valid
func (s *Store) SetProperties(trx storage.Transaction, names []string, entity field.Element, offsets []int, values field.Packed) error {
	err := CheckOffsets(len(names), offsets, len(values))
	if nil != err {
		return err
	}

	start := 0
	for i, name := range names {
		s.SetProperty(trx, name, entity, values[start:offsets[i]])
		start = offsets[i]
	}
	return nil
}

// GetProperties - read several properties as one concatenated value
func (s *Store) GetProperties(trx storage.Transaction, names []string, entity field.Element) ([]int, field.Packed) {
	offsets := make([]int, len(names))
	values := field.Packed{}

	for i, name := range names {
		values = append(values, s.GetProperty(trx, name, entity)...)
		offsets[i] = len(values)
	}
	return offsets, values
}

// CheckOffsets - validate an exclusive end offset table
func CheckOffsets(count int, offsets []int, total int) error {
	if count != len(offsets) {
		return fault.InvalidOffsets
	}
	previous := 0
	for _, offset := range offsets {
		if offset < previous || offset > total {
			return fault.InvalidOffsets
		}
		previous = offset
	}
	if previous != total {
		return fault.InvalidOffsets
	}
	return nil
}

// Split - cut a concatenated value into its spans
func Split(offsets []int, values field.Packed) ([]field.Packed, error) {
	err := CheckOffsets(len(offsets), offsets, len(values))
	if nil != err {
		return nil, err
	}
	spans := make([]field.Packed, len(offsets))
	start := 0
	for i, offset := range offsets {
		spans[i] = values[start:offset]
		start = offset
	}
	return spans, nil
}
