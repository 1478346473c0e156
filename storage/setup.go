// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"
)

// Pools - exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Settings          *PoolHandle `prefix:"S"`
	UserProperties    *PoolHandle `prefix:"U"`
	ContentProperties *PoolHandle `prefix:"C"`
	Nonces            *PoolHandle `prefix:"R"`
	UserTokens        *PoolHandle `prefix:"u"`
	ContentTokens     *PoolHandle `prefix:"c"`
	TestData          *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open leveldb and its pools
type Database struct {
	sync.RWMutex
	db    *leveldb.DB
	trx   *transaction
	Pool  Pools
	log   *logger.L
	label string
}

// Open - open up the database file
//
// a new database is tagged with the current version
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, name, readOnly)
}

// OpenMemory - a fresh database that is discarded on close
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, "memory", ReadWrite)
}

func setup(db *leveldb.DB, label string, readOnly bool) (*Database, error) {

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	log := logger.New("storage")

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			db.Close()
			return nil, fmt.Errorf("database: %q is not initialised", label)
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	d := &Database{
		db:    db,
		log:   log,
		label: label,
	}
	d.trx = newTransaction(d)

	err = d.makePools()
	if nil != err {
		db.Close()
		return nil, err
	}

	log.Infof("opened database: %q  version: 0x%x", label, currentDBVersion)
	return d, nil
}

// scan the pools struct and assign a handle to each field
func (d *Database) makePools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	seen := make(map[byte]struct{})

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		if _, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %v has duplicate prefix: %q", fieldInfo, prefixTag)
		}
		seen[prefix] = struct{}{}

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: d,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
		d.log.Infof("closed database: %q", d.label)
	}
}

// Begin - start the single write transaction
//
// only one transaction may be open at a time, the caller must Commit
// or Abort before the next Begin
func (d *Database) Begin() (Transaction, error) {
	err := d.trx.begin()
	if nil != err {
		return nil, err
	}
	return d.trx, nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
