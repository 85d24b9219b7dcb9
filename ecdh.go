// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// GenerateSharedSecret generates a shared secret based on a private scalar
// and a public point using Diffie-Hellman key exchange (ECDH) (RFC 5903).
// RFC5903 Section 9 states we should only return x.
//
// An error of kind ErrInvalidPrivateKey is returned when the private scalar
// is zero modulo the group order, and ErrPointNotOnCurve when the public point
// is infinity.
//
// It is recommended to securely hash the result before using as a cryptographic
// key.
func GenerateSharedSecret(privKey *big.Int, pubKey AffinePoint) ([]byte, error) {
	var d ModNScalar
	d.SetBig(privKey)
	if d.IsZero() {
		return nil, makeError(ErrInvalidPrivateKey, "private key is zero "+
			"modulo the group order")
	}
	if pubKey.IsInfinity() {
		return nil, makeError(ErrPointNotOnCurve, "public key is the point "+
			"at infinity")
	}

	// The group has prime order, so d*Pub is finite for every d in [1, N-1].
	result := ScalarMult(pubKey, d.Big())
	x := result.X()
	xBytes := x.Bytes()
	return xBytes[:], nil
}
