// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "fmt"

// ErrorKind identifies a kind of error. It has full support for
// errors.Is and errors.As, so the caller can directly check against
// an error kind when determining the action to take in response to an
// error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrPubKeyInvalidLen is returned when a serialized public key is
	// not one of the allowed lengths.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat is returned when a serialized public key
	// does not have a valid format prefix.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig is returned when a serialized public key's x
	// coordinate is greater than or equal to the field prime.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig is returned when a serialized public key's y
	// coordinate is greater than or equal to the field prime.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve is returned when a serialized public key does
	// not describe a point that lies on the curve.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPubKeyMismatchedOddness is returned when a serialized
	// compressed public key does not have an oddness bit that matches
	// the actual oddness of the decompressed y coordinate.
	ErrPubKeyMismatchedOddness = ErrorKind("ErrPubKeyMismatchedOddness")

	// ErrPrivKeyIsZero is returned when a private key is the zero
	// scalar, which has no corresponding public key.
	ErrPrivKeyIsZero = ErrorKind("ErrPrivKeyIsZero")

	// ErrWIFTooShort is returned when a WIF-encoded key is shorter than
	// the minimum valid length.
	ErrWIFTooShort = ErrorKind("ErrWIFTooShort")

	// ErrWIFInvalidLen is returned when a WIF-encoded key's decoded
	// length doesn't match the expected length for its version byte.
	ErrWIFInvalidLen = ErrorKind("ErrWIFInvalidLen")

	// ErrWIFBadChecksum is returned when a WIF-encoded key's trailing
	// checksum does not match the double-SHA-256 of its payload.
	ErrWIFBadChecksum = ErrorKind("ErrWIFBadChecksum")

	// ErrWIFInvalidVersion is returned when a WIF-encoded key's version
	// byte is not one this package recognizes.
	ErrWIFInvalidVersion = ErrorKind("ErrWIFInvalidVersion")

	// ErrInvalidBase58 is returned when a string expected to be
	// Base58Check-encoded fails to decode.
	ErrInvalidBase58 = ErrorKind("ErrInvalidBase58")
)

// Error satisfies the error interface and prints human-readable
// errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 key or point
// handling. It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking
// the underlying error.
type Error struct {
	Err         ErrorKind
	Description string
}

// Error satisfies the error interface and prints human-readable
// errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// makeErrorf is a convenience wrapper around makeError that builds the
// description with fmt.Sprintf.
func makeErrorf(kind ErrorKind, format string, args ...any) Error {
	return makeError(kind, fmt.Sprintf(format, args...))
}
