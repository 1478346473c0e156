// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/counter"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/rpc/admin"
	"github.com/bitmark-inc/socialledgerd/rpc/contents"
	"github.com/bitmark-inc/socialledgerd/rpc/node"
	"github.com/bitmark-inc/socialledgerd/rpc/users"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, l *ledger.Ledger, rpcCount *counter.Counter) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(users.New(log, l))
	_ = server.Register(contents.New(log, l))
	_ = server.Register(admin.New(log, l))
	_ = server.Register(node.New(log, start, version, rpcCount, l))

	return server
}
