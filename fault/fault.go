// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError
type ReplayError GenericError

// common errors - keep in alphabetic order
var (
	AdminMismatch                = RecordError("administrator does not match stored administrator")
	AlreadyInitialised           = ProcessError("already initialised")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CannotDecodePrivateKey       = InvalidError("cannot decode private key")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	ContentNotFound              = NotFoundError("content not found")
	CryptoFailed                 = ProcessError("cryptographic operation failed")
	DatabaseIsNotSet             = ProcessError("database is not set")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	IncompatibleOptions          = InvalidError("incompatible options")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidEncoding              = InvalidError("packed value is not valid UTF-8")
	InvalidFieldElement          = InvalidError("invalid field element")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidOffsets               = InvalidError("invalid offsets")
	InvalidPassword              = AuthError("invalid password")
	InvalidPasswordLength        = InvalidError("invalid password length")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NoMintAuthority              = PermissionError("ledger does not hold mint authority")
	NonceAlreadyUsed             = ReplayError("nonce already used")
	NotAdmin                     = PermissionError("caller is not the administrator")
	NotInitialised               = ProcessError("not initialised")
	NotOwner                     = PermissionError("caller does not own the token")
	NotPrivateKey                = InvalidError("not private key")
	NotPublicKey                 = InvalidError("not public key")
	PasswordMismatch             = InvalidError("password mismatch")
	RateLimiting                 = InvalidError("rate limiting")
	RatingOverflow               = LengthError("rating sum overflow")
	SelfFollow                   = InvalidError("cannot follow own user")
	SignatureMismatch            = AuthError("signature does not match challenge hash")
	TokenContractAlreadySet      = ExistsError("token contract already set")
	TokenContractNotSet          = NotFoundError("token contract not set")
	TokenNotFound                = NotFoundError("token not found")
	TransactionAlreadyStarted    = ProcessError("transaction already started")
	TransactionNotStarted        = ProcessError("transaction not started")
	UnknownTokenContract         = InvalidError("unknown token contract address")
	UnmarshalTextFailed          = InvalidError("unmarshal text failed")
	UserAlreadyExists            = ExistsError("user already exists")
	UserFlagged                  = PermissionError("user is flagged")
	UserNotFound                 = NotFoundError("user not found")
	ValueTooLarge                = LengthError("value too large for a field element")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthError) Error() string       { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }
func (e ReplayError) Error() string     { return string(e) }

// determine the class of an error
func IsErrAuth(e error) bool       { _, ok := e.(AuthError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
func IsErrReplay(e error) bool     { _, ok := e.(ReplayError); return ok }
