// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"os"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialledgerd/counter"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/rpc/certificate"
	"github.com/bitmark-inc/socialledgerd/rpc/listeners"
	"github.com/bitmark-inc/socialledgerd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, l *ledger.Ledger, version string) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, err := loadTLS(log, configuration)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		server.Create(log, version, l, &connectionCountRPC),
		tlsConfig,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		rpcListener.Stop()
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// no certificate and key means plain TCP
func loadTLS(log *logger.L, configuration *listeners.RPCConfiguration) (*tls.Config, error) {
	if "" == configuration.Certificate && "" == configuration.PrivateKey {
		log.Warn("TLS disabled: no certificate configured")
		return nil, nil
	}

	cert, err := os.ReadFile(configuration.Certificate)
	if nil != err {
		log.Errorf("read certificate: %q  error: %s", configuration.Certificate, err)
		return nil, err
	}
	key, err := os.ReadFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key: %q  error: %s", configuration.PrivateKey, err)
		return nil, err
	}

	tlsConfig, fingerprint, err := certificate.Get(log, tlsName, string(cert), string(key))
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)

	return tlsConfig, nil
}
