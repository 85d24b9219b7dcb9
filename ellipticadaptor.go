// Copyright 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// This file implements the crypto/elliptic.Curve interface on top of the
// arithmetic in this package so it can be handed to code written against the
// standard library.  crypto/elliptic encodes the point at infinity as (0, 0).

import (
	"crypto/elliptic"
	"math/big"
)

// KoblitzCurve provides an implementation for secp256k1 that fits the ECC
// Curve interface from crypto/elliptic.
type KoblitzCurve struct {
	*elliptic.CurveParams
}

// bigAffineToPoint converts crypto/elliptic coordinates to an AffinePoint,
// treating (0, 0) as infinity.  ok is false for coordinates that are not on
// the curve.
func bigAffineToPoint(x, y *big.Int) (p AffinePoint, ok bool) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return AffinePoint{}, true
	}
	p, err := NewAffinePointFromBig(x, y)
	return p, err == nil
}

// Params returns the parameters for the curve.
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) Params() *elliptic.CurveParams {
	return curve.CurveParams
}

// IsOnCurve returns whether or not the affine point (x,y) is on the curve.
// The point at infinity, (0, 0), is not on the curve as crypto/elliptic
// requires.
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) IsOnCurve(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return false
	}
	_, err := NewAffinePointFromBig(x, y)
	return err == nil
}

// Add returns the sum of (x1,y1) and (x2,y2).  Coordinates that are not on
// the curve are treated as infinity.
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p1, _ := bigAffineToPoint(x1, y1)
	p2, _ := bigAffineToPoint(x2, y2)
	return AddAffine(p1, p2).Coordinates()
}

// Double returns 2*(x1,y1).
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	p, _ := bigAffineToPoint(x1, y1)
	return DoubleAffine(p).Coordinates()
}

// ScalarMult returns k*(Bx, By) where k is a big endian integer.
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) ScalarMult(Bx, By *big.Int, k []byte) (*big.Int, *big.Int) {
	p, _ := bigAffineToPoint(Bx, By)
	return ScalarMult(p, new(big.Int).SetBytes(k)).Coordinates()
}

// ScalarBaseMult returns k*G where G is the base point of the group and k is
// a big endian integer.
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return ScalarBaseMult(new(big.Int).SetBytes(k)).Coordinates()
}

// secp256k1 is the shared elliptic.Curve adaptor returned by S256.
var secp256k1 = &KoblitzCurve{
	CurveParams: &elliptic.CurveParams{
		P:       curveP,
		N:       curveN,
		B:       curveB,
		Gx:      curveGX,
		Gy:      curveGY,
		BitSize: 256,
		Name:    "secp256k1",
	},
}

// S256 returns an elliptic.Curve which implements secp256k1.
func S256() *KoblitzCurve {
	return secp256k1
}
