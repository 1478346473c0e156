// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialledgerd/background"
)

type ticker struct {
	ticks   int64
	stopped bool
	args    interface{}
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	state.args = args
	for {
		select {
		case <-shutdown:
			state.stopped = true
			return
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&state.ticks, 1)
		}
	}
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, "arguments")
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	// Stop waits for completion so the fields are safe to read
	for i, proc := range []*ticker{proc1, proc2} {
		assert.True(t, proc.stopped, "process %d not stopped", i)
		assert.NotEqual(t, int64(0), proc.ticks, "process %d did not run", i)
		assert.Equal(t, "arguments", proc.args, "process %d wrong arguments", i)
	}
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()

	empty := background.Start(background.Processes{}, nil)
	empty.Stop()
}
