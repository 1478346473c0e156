// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/ledger/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestParseListenAddress(t *testing.T) {
	log := logger.New(fixtures.LogCategory)

	addrs := []string{"*:2130", "[::1]:2131", "127.0.0.1:2132"}
	parsed, err := parseListenAddress(addrs, log)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, []string{"tcp", "tcp6", "tcp4"}, parsed, "wrong network types")
	assert.Equal(t, "[::]:2130", addrs[0], "wildcard not rewritten")

	for _, bad := range []string{"", "*", "localhost:2130", "[fe80::zz]:1"} {
		_, err := parseListenAddress([]string{bad}, log)
		assert.Equal(t, fault.InvalidIpAddress, err, "accepted: %q", bad)
	}
}
