// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/bitmark-inc/socialledgerd/fault"
)

const (
	minimumPasswordLength = 8
)

func readPassword(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if nil != err {
		return "", err
	}
	defer tty.Close()

	fmt.Fprint(tty, prompt)
	password, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(tty)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// a new password entered twice
func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password (length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < minimumPasswordLength {
		return "", fault.InvalidPasswordLength
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verifyPassword {
		return "", fault.PasswordMismatch
	}

	return password, nil
}

func promptPassword() (string, error) {
	return readPassword("password: ")
}

// password from the global flag or the terminal
func newPassword(password string) (string, error) {
	if "" == password {
		return promptNewPassword()
	}
	if len(password) < minimumPasswordLength {
		return "", fault.InvalidPasswordLength
	}
	return password, nil
}

func existingPassword(password string) (string, error) {
	if "" == password {
		return promptPassword()
	}
	return password, nil
}
