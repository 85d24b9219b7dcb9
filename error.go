// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
//
// Every specific kind also belongs to one of the broad categories ErrDomain,
// ErrInvalidNonce or ErrMalformedInput, and errors.Is reports a match against
// its category as well as against the kind itself.
type ErrorKind string

// These constants are the broad categories of errors.
const (
	// ErrDomain is the category of errors caused by an operand that lies
	// outside the domain of an operation, such as the inverse of zero or a
	// point that is not on the curve.
	ErrDomain = ErrorKind("ErrDomain")

	// ErrInvalidNonce is the category of errors caused by a signing nonce that
	// cannot produce a valid signature.  The caller is expected to retry with
	// a different nonce.
	ErrInvalidNonce = ErrorKind("ErrInvalidNonce")

	// ErrMalformedInput is the category of errors caused by input that could
	// not be decoded.
	ErrMalformedInput = ErrorKind("ErrMalformedInput")
)

// These constants are used to identify a specific Error.
const (
	// ErrFieldInverseOfZero is returned when attempting to take the
	// multiplicative inverse of zero modulo the field prime.
	ErrFieldInverseOfZero = ErrorKind("ErrFieldInverseOfZero")

	// ErrScalarInverseOfZero is returned when attempting to take the
	// multiplicative inverse of zero modulo the group order.
	ErrScalarInverseOfZero = ErrorKind("ErrScalarInverseOfZero")

	// ErrPointNotOnCurve is returned when a point does not satisfy the curve
	// equation y^2 = x^3 + 7.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrInvalidPrivateKey is returned when a private key is congruent to
	// zero modulo the group order.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrNonceIsZero is returned when a signing nonce is congruent to zero
	// modulo the group order.
	ErrNonceIsZero = ErrorKind("ErrNonceIsZero")

	// ErrSigRIsZero is returned when the x coordinate of the nonce point is
	// congruent to zero modulo the group order.
	ErrSigRIsZero = ErrorKind("ErrSigRIsZero")

	// ErrSigSIsZero is returned when the computed S value of a signature is
	// zero.
	ErrSigSIsZero = ErrorKind("ErrSigSIsZero")

	// ErrMalformedHex is returned when a value that should be a big-endian
	// hex string is empty or contains non-hex characters.
	ErrMalformedHex = ErrorKind("ErrMalformedHex")
)

// kindCategories maps each specific kind to its category.
var kindCategories = map[ErrorKind]ErrorKind{
	ErrFieldInverseOfZero:  ErrDomain,
	ErrScalarInverseOfZero: ErrDomain,
	ErrPointNotOnCurve:     ErrDomain,
	ErrInvalidPrivateKey:   ErrDomain,
	ErrNonceIsZero:         ErrInvalidNonce,
	ErrSigRIsZero:          ErrInvalidNonce,
	ErrSigSIsZero:          ErrInvalidNonce,
	ErrMalformedHex:        ErrMalformedInput,
}

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Is reports whether target is the category e belongs to.  It is called by
// errors.Is after the direct comparison fails.
func (e ErrorKind) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	if !ok {
		return false
	}
	category, ok := kindCategories[e]
	return ok && category == kind
}

// Category returns the broad category of the kind.  Categories are their own
// category.
func (e ErrorKind) Category() ErrorKind {
	if category, ok := kindCategories[e]; ok {
		return category
	}
	return e
}

// Error identifies an error related to secp256k1 arithmetic or signing.  It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
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
