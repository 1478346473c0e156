// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/socialledgerd/account"
	"github.com/bitmark-inc/socialledgerd/fault"
	"github.com/bitmark-inc/socialledgerd/ledger"
	"github.com/bitmark-inc/socialledgerd/rpc/certificate"
	"github.com/bitmark-inc/socialledgerd/util"
)

const (
	adminPrivateKeyFilename = "admin.private"
	adminAccountFilename    = "admin.account"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-admin-key", "admin":
		privateKeyFilename := getFilenameWithDirectory(arguments, adminPrivateKeyFilename)
		accountFilename := getFilenameWithDirectory(arguments, adminAccountFilename)
		algorithm := account.ED25519
		if len(arguments) > 1 && "schnorr" == arguments[1] {
			algorithm = account.Schnorr
		}

		a, err := makeAdminKey(algorithm, privateKeyFilename, accountFilename)
		if nil != err {
			fmt.Printf("generate admin key: %q error: %s\n", privateKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated admin key: %q and account: %q\n", privateKeyFilename, accountFilename)
		fmt.Printf("admin account: %s\n", a)

	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)
		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}
		err := certificate.Generate(certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "info", "i":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-admin-key [DIR [ALG]]  (admin)  - create private key in: %q\n", "DIR/"+adminPrivateKeyFilename)
		fmt.Printf("                                        and the account in:   %q\n", "DIR/"+adminAccountFilename)
		fmt.Printf("                                        ALG is ed25519 (default) or schnorr\n")
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  info                       (i)      - display the ledger summary as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger is open so these commands can read its state
func processDataCommand(arguments []string, l *ledger.Ledger) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "info", "i":
		printJSON(l.Info())

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// create a new admin key pair, never overwriting an existing one
func makeAdminKey(algorithm int, privateKeyFilename string, accountFilename string) (*account.Account, error) {
	if util.EnsureFileExists(privateKeyFilename) || util.EnsureFileExists(accountFilename) {
		return nil, fault.KeyFileAlreadyExists
	}

	privateKey, err := account.NewPrivateKey(algorithm)
	if nil != err {
		return nil, err
	}
	a := privateKey.Account()

	if err := os.WriteFile(privateKeyFilename, []byte(privateKey.String()+"\n"), 0600); nil != err {
		return nil, err
	}
	if err := os.WriteFile(accountFilename, []byte(a.String()), 0644); nil != err {
		_ = os.Remove(privateKeyFilename)
		return nil, err
	}
	return a, nil
}

// get the working directory; if not set in the arguments
// it's set to the current working directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	directory, err := filepath.Abs(filepath.Clean(dir))
	if nil != err {
		exitwithstatus.Message("path expansion failed: %s", err)
	}

	if err := os.MkdirAll(directory, 0700); nil != err {
		exitwithstatus.Message("path creation failed: %s", err)
	}

	return filepath.Join(directory, name)
}

func printJSON(item interface{}) {
	b, err := json.Marshal(item)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}

	var out bytes.Buffer
	_ = json.Indent(&out, b, "", "  ")
	_, _ = out.WriteTo(os.Stdout)
	_, _ = os.Stdout.WriteString("\n")
}
