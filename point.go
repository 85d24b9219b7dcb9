// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// AffinePoint is an element of the secp256k1 group in affine coordinates.  It
// is either a finite point (x, y) satisfying y^2 = x^3 + 7 (mod P) or the point
// at infinity.  The zero value is the point at infinity.
//
// Finite points can only be constructed through NewAffinePoint (or the
// package's own arithmetic), so every finite AffinePoint is on the curve.
type AffinePoint struct {
	x, y   FieldVal
	finite bool
}

// Infinity returns the point at infinity, the identity of the group.
func Infinity() AffinePoint {
	return AffinePoint{}
}

// NewAffinePoint returns the finite point (x, y).  It returns an error of
// kind ErrPointNotOnCurve when the coordinates do not satisfy the curve
// equation.
func NewAffinePoint(x, y *FieldVal) (AffinePoint, error) {
	if !isOnCurveAffine(x, y) {
		str := fmt.Sprintf("point (%v, %v) is not on the secp256k1 curve", x, y)
		return AffinePoint{}, makeError(ErrPointNotOnCurve, str)
	}
	return AffinePoint{x: *x, y: *y, finite: true}, nil
}

// NewAffinePointFromBig is like NewAffinePoint for big integer coordinates.
// Coordinates outside of [0, P) are rejected rather than reduced.
func NewAffinePointFromBig(x, y *big.Int) (AffinePoint, error) {
	if x.Sign() < 0 || x.Cmp(curveP) >= 0 || y.Sign() < 0 || y.Cmp(curveP) >= 0 {
		str := fmt.Sprintf("point (%x, %x) has a coordinate outside of the "+
			"field", x, y)
		return AffinePoint{}, makeError(ErrPointNotOnCurve, str)
	}
	var fx, fy FieldVal
	fx.SetBig(x)
	fy.SetBig(y)
	return NewAffinePoint(&fx, &fy)
}

// isOnCurveAffine checks y^2 = x^3 + 7.
func isOnCurveAffine(x, y *FieldVal) bool {
	var lhs, rhs, seven FieldVal
	lhs.SquareVal(y)
	rhs.SquareVal(x).Mul(x).Add(seven.SetInt(7))
	return lhs.Equals(&rhs)
}

// IsInfinity returns whether or not the point is the point at infinity.
func (p AffinePoint) IsInfinity() bool {
	return !p.finite
}

// X returns the x coordinate of a finite point.  It is zero for the point at
// infinity.
func (p AffinePoint) X() FieldVal {
	return p.x
}

// Y returns the y coordinate of a finite point.  It is zero for the point at
// infinity.
func (p AffinePoint) Y() FieldVal {
	return p.y
}

// Coordinates returns the coordinates as big integers, using (0, 0) for the
// point at infinity.  This is the encoding used by the test vectors and by
// crypto/elliptic.
func (p AffinePoint) Coordinates() (x, y *big.Int) {
	if !p.finite {
		return new(big.Int), new(big.Int)
	}
	return p.x.Big(), p.y.Big()
}

// Equal returns whether the two points are the same group element: both
// infinite, or both finite with equal coordinates.
func (p AffinePoint) Equal(other AffinePoint) bool {
	if !p.finite || !other.finite {
		return p.finite == other.finite
	}
	return p.x.Equals(&other.x) && p.y.Equals(&other.y)
}

// IsOnCurve returns whether or not the point satisfies the curve equation.
// The point at infinity is considered on the curve.
func (p AffinePoint) IsOnCurve() bool {
	return !p.finite || isOnCurveAffine(&p.x, &p.y)
}

// Negate returns the additive inverse (x, P - y).  The negation of infinity is
// infinity.
func (p AffinePoint) Negate() AffinePoint {
	if !p.finite {
		return p
	}
	result := p
	result.y.NegateVal(&p.y)
	return result
}

// AsJacobian converts the point into Jacobian projective coordinates with
// Z = 1, or Z = 0 for the point at infinity, and stores the result in the
// provided point.
func (p AffinePoint) AsJacobian(result *JacobianPoint) {
	if !p.finite {
		result.X.Zero()
		result.Y.Zero()
		result.Z.Zero()
		return
	}
	result.X.Set(&p.x)
	result.Y.Set(&p.y)
	result.Z.SetInt(1)
}

// String returns the point as "(x, y)" in hex, or "infinity".
func (p AffinePoint) String() string {
	if !p.finite {
		return "infinity"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// DecompressY returns the two y coordinates of the curve points with the
// given x coordinate, the even one first.  The two are negations of each
// other.  It returns an error of kind ErrPointNotOnCurve when x^3 + 7 is not a
// quadratic residue, meaning no curve point has that x coordinate.
func DecompressY(x *FieldVal) (evenY, oddY FieldVal, err error) {
	var rhs, seven FieldVal
	rhs.SquareVal(x).Mul(x).Add(seven.SetInt(7))
	if !evenY.SquareRootVal(&rhs) {
		str := fmt.Sprintf("x coordinate %v is not on the secp256k1 curve", x)
		return FieldVal{}, FieldVal{}, makeError(ErrPointNotOnCurve, str)
	}
	oddY.NegateVal(&evenY)
	if evenY.IsOdd() {
		evenY, oddY = oddY, evenY
	}
	return evenY, oddY, nil
}

// JacobianPoint is an element of the secp256k1 group in Jacobian projective
// coordinates.  A point (X, Y, Z) with Z != 0 represents the affine point
// (X/Z^2, Y/Z^3), and any point with Z = 0 is the point at infinity.
//
// The representation is not unique: (X*c^2, Y*c^3, Z*c) denotes the same
// point for every non-zero c, so two Jacobian points must be compared with
// EquivalentNonConst or after ToAffine rather than field by field.
type JacobianPoint struct {
	// X is the x coordinate in Jacobian projective coordinates.
	X FieldVal

	// Y is the y coordinate in Jacobian projective coordinates.
	Y FieldVal

	// Z is the z coordinate in Jacobian projective coordinates.
	Z FieldVal
}

// MakeJacobianPoint returns a Jacobian point with the provided coordinates
// without checking that it is on the curve.
func MakeJacobianPoint(x, y, z *FieldVal) JacobianPoint {
	var p JacobianPoint
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.Set(z)
	return p
}

// NewJacobianPoint is like MakeJacobianPoint but returns an error of kind
// ErrPointNotOnCurve when the point does not satisfy the curve equation.
// Every triple with z = 0 is accepted as the point at infinity.
func NewJacobianPoint(x, y, z *FieldVal) (JacobianPoint, error) {
	p := MakeJacobianPoint(x, y, z)
	if !p.IsOnCurve() {
		str := fmt.Sprintf("jacobian point %v is not on the secp256k1 curve", &p)
		return JacobianPoint{}, makeError(ErrPointNotOnCurve, str)
	}
	return p, nil
}

// Set sets the Jacobian point to the provided point.
func (p *JacobianPoint) Set(other *JacobianPoint) {
	p.X.Set(&other.X)
	p.Y.Set(&other.Y)
	p.Z.Set(&other.Z)
}

// SetInfinity sets the point to the point at infinity, encoded as (0, 0, 0).
func (p *JacobianPoint) SetInfinity() {
	p.X.Zero()
	p.Y.Zero()
	p.Z.Zero()
}

// IsInfinity returns whether or not the point is the point at infinity.
func (p *JacobianPoint) IsInfinity() bool {
	return p.Z.IsZero()
}

// IsOnCurve returns whether or not the point satisfies the curve equation
// without converting it to affine coordinates.  Substituting x = X/Z^2 and
// y = Y/Z^3 into y^2 = x^3 + 7 and clearing denominators gives
//
//	Y^2 = X^3 + 7*Z^6
//
// The point at infinity is considered on the curve.
func (p *JacobianPoint) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	var y2, z2, x3, result FieldVal
	y2.SquareVal(&p.Y)
	z2.SquareVal(&p.Z)
	x3.SquareVal(&p.X).Mul(&p.X)
	result.SquareVal(&z2).Mul(&z2).MulInt(7).Add(&x3)
	return y2.Equals(&result)
}

// ToAffine returns the affine point represented by p.  It performs a single
// modular inversion of Z and derives Z^-2 and Z^-3 from it.  Any point with
// Z = 0 maps to the point at infinity regardless of X and Y.
func (p *JacobianPoint) ToAffine() AffinePoint {
	if p.IsInfinity() {
		return AffinePoint{}
	}

	var zInv, zInv2, zInv3 FieldVal
	if err := zInv.InverseVal(&p.Z); err != nil {
		return AffinePoint{}
	}
	zInv2.SquareVal(&zInv)
	zInv3.Mul2(&zInv2, &zInv)

	var result AffinePoint
	result.x.Mul2(&p.X, &zInv2)
	result.y.Mul2(&p.Y, &zInv3)
	result.finite = true
	return result
}

// EquivalentNonConst returns whether or not the two Jacobian points represent
// the same affine point, without inverting either Z.  Affine x coordinates
// agree iff X1*Z2^2 = X2*Z1^2 and y coordinates agree iff Y1*Z2^3 = Y2*Z1^3.
func (p *JacobianPoint) EquivalentNonConst(other *JacobianPoint) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() == other.IsInfinity()
	}

	var z1z1, z2z2, u1, u2 FieldVal
	z1z1.SquareVal(&p.Z)
	z2z2.SquareVal(&other.Z)
	u1.Mul2(&p.X, &z2z2)
	u2.Mul2(&other.X, &z1z1)
	if !u1.Equals(&u2) {
		return false
	}

	var s1, s2 FieldVal
	s1.Mul2(&p.Y, &z2z2).Mul(&other.Z)
	s2.Mul2(&other.Y, &z1z1).Mul(&p.Z)
	return s1.Equals(&s2)
}

// String returns the point as "(X, Y, Z)" in hex.
func (p *JacobianPoint) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
}
