// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - every error value returned by socialledgerd
//
// errors are package level values of a small set of string types so
// callers compare by identity and test the class with the IsErrX
// functions
package fault
