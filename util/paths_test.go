// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialledgerd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/rpc.crt", util.EnsureAbsolute("/data", "rpc.crt"), "relative not joined")
	assert.Equal(t, "/etc/rpc.crt", util.EnsureAbsolute("/data", "/etc/rpc.crt"), "absolute changed")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data/", "./log/"), "not cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present")

	assert.False(t, util.EnsureFileExists(name), "missing file found")
	assert.Nil(t, os.WriteFile(name, []byte("x"), 0600), "write error")
	assert.True(t, util.EnsureFileExists(name), "file not found")
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("socialledgerd.leveldb"), "plain name rejected")
	assert.False(t, util.IsPlainName("data/socialledgerd.leveldb"), "path accepted")
	assert.False(t, util.IsPlainName(""), "empty accepted")
}
