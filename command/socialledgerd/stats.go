// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/ledger"
)

const (
	statsDelay  = 60 * time.Second
	statusDelay = 5 * time.Minute
	mega        = 1048576
)

// memory use logger
type memstats struct {
	delay time.Duration
}

func (state *memstats) Run(args interface{}, shutdown <-chan struct{}) {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		text, err := json.Marshal(m)
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Debugf("stats: %s", text)
		}
		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", m.Alloc/mega, m.TotalAlloc/mega, m.Sys/mega)

		select {
		case <-shutdown:
			return
		case <-time.After(state.delay):
		}
	}
}

// periodic ledger counts, args is the *ledger.Ledger
type status struct {
	delay time.Duration
}

func (state *status) Run(args interface{}, shutdown <-chan struct{}) {

	log := logger.New("status")
	l := args.(*ledger.Ledger)

	for {
		select {
		case <-shutdown:
			return
		case <-time.After(state.delay):
		}

		info := l.Info()
		log.Infof("users: %d  contents: %d  registries set: %t/%t",
			info.Users, info.Contents, nil != info.UserContract, nil != info.ContentContract)
	}
}
