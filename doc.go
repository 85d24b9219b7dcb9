// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements elliptic curve arithmetic and deterministic ECDSA
signing over the secp256k1 curve in pure Go.

The curve is y^2 = x^3 + 7 over the integers modulo the prime P, with a
cyclic group of prime order N generated by the base point G and cofactor 1.
See https://www.secg.org/sec2-v2.pdf for details on the standard.

Every operation is a pure function of its inputs: there is no shared mutable
state besides a lazily computed, read-only table of base point doublings, so
all of the functions are safe for concurrent use.

An overview of the features provided by this package are as follows:

  - FieldVal type for working modulo the secp256k1 field prime
  - ModNScalar type for working modulo the secp256k1 group order
  - AffinePoint, a tagged finite-or-infinity point that is always on the curve
  - JacobianPoint, points in Jacobian projective coordinates where Z = 0 is
    the point at infinity
  - Conversion from Jacobian to affine coordinates with a single inversion
  - Point negation
  - Point doubling ("dbl-2009-l")
  - Point addition with explicit handling of infinity, equal points and
    opposite points ("add-1998-cmo-2" for the general case)
  - Scalar multiplication with an arbitrary point and an unreduced scalar
  - Scalar multiplication with the base point using precomputed doublings
  - Recovery of both y coordinates for a given x coordinate
  - ECDSA signing with a caller supplied nonce and optional low-S
    canonicalization, and ECDSA verification
  - ECDH shared secrets (RFC 5903)

It also provides an implementation of the Go standard library crypto/elliptic
Curve interface via the S256 function so that it may be used with other
packages in the standard library.

# Errors

Errors returned by this package are of type Error and wrap an ErrorKind.  The
specific kinds are grouped in three categories which can be tested with
errors.Is: ErrDomain (inverse of zero, points off the curve, zero private
keys), ErrInvalidNonce (nonces that cannot produce a signature) and
ErrMalformedInput (undecodable hex).  Nothing is silently clamped or retried.
*/
package secp256k1
