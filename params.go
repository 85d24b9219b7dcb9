// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// hexToBig converts the passed hex string into a big integer and panics if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func hexToBig(hexStr string) *big.Int {
	val, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic(fmt.Sprintf("failed to parse hard-coded hex constant %q", hexStr))
	}
	return val
}

var (
	// curveP is the secp256k1 field prime.
	curveP = hexToBig("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// curveN is the order of the group generated by the base point.
	curveN = hexToBig("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// halfOrder is floor(N/2).  Canonical signatures have S <= halfOrder.
	halfOrder = new(big.Int).Rsh(curveN, 1)

	// curveB is the constant term of the curve equation y^2 = x^3 + 7.
	curveB = big.NewInt(7)

	// curveGX and curveGY are the affine coordinates of the base point.
	curveGX = hexToBig("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	curveGY = hexToBig("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

	// sqrtExp is (P+1)/4.  Raising a quadratic residue to it modulo P yields
	// a square root since P = 3 mod 4.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(curveP, big.NewInt(1)), 2)

	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)
)

// P returns a copy of the secp256k1 field prime.
func P() *big.Int {
	return new(big.Int).Set(curveP)
}

// N returns a copy of the order of the secp256k1 group.
func N() *big.Int {
	return new(big.Int).Set(curveN)
}

// HalfOrder returns a copy of floor(N/2).
func HalfOrder() *big.Int {
	return new(big.Int).Set(halfOrder)
}

// Generator returns the secp256k1 base point G.
func Generator() AffinePoint {
	var x, y FieldVal
	x.SetBig(curveGX)
	y.SetBig(curveGY)
	return AffinePoint{x: x, y: y, finite: true}
}
