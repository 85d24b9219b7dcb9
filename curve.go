// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// NegateJacobian stores the additive inverse (X, -Y, Z) of the passed point in
// result.  The negation of infinity is infinity.
func NegateJacobian(p, result *JacobianPoint) {
	if p.IsInfinity() {
		result.SetInfinity()
		return
	}
	result.X.Set(&p.X)
	result.Y.NegateVal(&p.Y)
	result.Z.Set(&p.Z)
}

// DoubleJacobian doubles the passed Jacobian point and stores the result in
// result.  The point at infinity, and any point with Y = 0, doubles to
// infinity.  The latter cannot happen for a valid point since the group has
// prime order and therefore no point of order two.
//
// The formulas are "dbl-2009-l" specialised to a = 0:
//
//	A = X1^2, B = Y1^2, C = B^2
//	D = 2*((X1+B)^2-A-C) = 4*X1*B
//	E = 3*A, F = E^2
//	X3 = F-2*D
//	Y3 = E*(D-X3)-8*C
//	Z3 = 2*Y1*Z1
//
// The operand is not checked against the curve equation.  Points are
// validated where they enter, by NewJacobianPoint, NewAffinePoint and
// ScalarMultNonConst; an off-curve point built with MakeJacobianPoint or a
// struct literal yields an off-curve result.
//
// It is safe for p and result to be the same point.
func DoubleJacobian(p, result *JacobianPoint) {
	if p.IsInfinity() || p.Y.IsZero() {
		result.SetInfinity()
		return
	}

	var a, b, c, d, e, f FieldVal
	a.SquareVal(&p.X)
	b.SquareVal(&p.Y)
	c.SquareVal(&b)
	d.Mul2(&p.X, &b).MulInt(4)
	e.Set(&a).MulInt(3)
	f.SquareVal(&e)

	// Z3 is computed first since it needs the original Y1 and Z1 and p may
	// alias result.
	var x3, y3, z3, tmp FieldVal
	z3.Mul2(&p.Y, &p.Z).MulInt(2)
	x3.Sub2(&f, tmp.Set(&d).MulInt(2))
	y3.Sub2(&d, &x3).Mul(&e).Sub(tmp.Set(&c).MulInt(8))

	result.X.Set(&x3)
	result.Y.Set(&y3)
	result.Z.Set(&z3)
}

// AddJacobian adds the passed Jacobian points together and stores the result
// in result.  The cases are evaluated in this order:
//
//  1. p1 is infinity: the result is p2.
//
//  2. p2 is infinity: the result is p1.
//
//  3. p1 and p2 are the same affine point: the result is the doubling of p1,
//     since the general formulas divide by zero in that case.
//
//  4. p1 and p2 share an affine x coordinate but not y, so p2 = -p1: the
//     result is infinity.
//
//  5. Otherwise the general "add-1998-cmo-2" formulas apply:
//
//     U1 = X1*Z2^2, U2 = X2*Z1^2
//     S1 = Y1*Z2^3, S2 = Y2*Z1^3
//     H = U2-U1, r = S2-S1
//     X3 = r^2-H^3-2*U1*H^2
//     Y3 = r*(U1*H^2-X3)-S1*H^3
//     Z3 = Z1*Z2*H
//
// Cases 3 and 4 are detected on the cross-multiplied coordinates (H = 0, then
// r = 0 or not), so no inversion is needed.  It is safe for result to alias
// either input.
//
// As with DoubleJacobian, the operands are not checked against the curve
// equation; validation happens in NewJacobianPoint, NewAffinePoint and
// ScalarMultNonConst.
func AddJacobian(p1, p2, result *JacobianPoint) {
	if p1.IsInfinity() {
		result.Set(p2)
		return
	}
	if p2.IsInfinity() {
		result.Set(p1)
		return
	}

	var z1z1, z2z2, u1, u2, s1, s2 FieldVal
	z1z1.SquareVal(&p1.Z)
	z2z2.SquareVal(&p2.Z)
	u1.Mul2(&p1.X, &z2z2)
	u2.Mul2(&p2.X, &z1z1)
	s1.Mul2(&p1.Y, &z2z2).Mul(&p2.Z)
	s2.Mul2(&p2.Y, &z1z1).Mul(&p1.Z)

	var h, r FieldVal
	h.Sub2(&u2, &u1)
	r.Sub2(&s2, &s1)
	if h.IsZero() {
		if r.IsZero() {
			DoubleJacobian(p1, result)
			return
		}
		result.SetInfinity()
		return
	}

	var hh, hhh, v FieldVal
	hh.SquareVal(&h)
	hhh.Mul2(&hh, &h)
	v.Mul2(&u1, &hh)

	var x3, y3, z3, tmp FieldVal
	x3.SquareVal(&r).Sub(&hhh).Sub(tmp.Set(&v).MulInt(2))
	y3.Sub2(&v, &x3).Mul(&r).Sub(tmp.Mul2(&s1, &hhh))
	z3.Mul2(&p1.Z, &p2.Z).Mul(&h)

	result.X.Set(&x3)
	result.Y.Set(&y3)
	result.Z.Set(&z3)
}

// SubJacobian stores p1 - p2 in result.
func SubJacobian(p1, p2, result *JacobianPoint) {
	var neg JacobianPoint
	NegateJacobian(p2, &neg)
	AddJacobian(p1, &neg, result)
}

// AddAffine returns p1 + p2.
func AddAffine(p1, p2 AffinePoint) AffinePoint {
	var j1, j2, sum JacobianPoint
	p1.AsJacobian(&j1)
	p2.AsJacobian(&j2)
	AddJacobian(&j1, &j2, &sum)
	return sum.ToAffine()
}

// DoubleAffine returns 2*p.
func DoubleAffine(p AffinePoint) AffinePoint {
	var j JacobianPoint
	p.AsJacobian(&j)
	DoubleJacobian(&j, &j)
	return j.ToAffine()
}

// SubAffine returns p1 - p2.
func SubAffine(p1, p2 AffinePoint) AffinePoint {
	return AddAffine(p1, p2.Negate())
}

// ScalarMultNonConst multiplies the passed Jacobian point by the scalar k and
// stores the result in result.  k is used as is: it is not reduced modulo the
// group order, so multiples of the order of the point yield infinity and k = 0
// yields infinity.  A negative k multiplies the negation of the point by |k|.
//
// The multiplication is the left-to-right binary method: the bits of k are
// scanned from the most significant one down, doubling at every step and
// adding the point when the bit is set.  Its running time depends on k, hence
// the NonConst suffix.
//
// An error of kind ErrPointNotOnCurve is returned, and result is left
// unchanged, when the point does not satisfy the curve equation.
func ScalarMultNonConst(k *big.Int, point, result *JacobianPoint) error {
	if !point.IsOnCurve() {
		str := fmt.Sprintf("refusing to multiply point %v which is not on "+
			"the secp256k1 curve", point)
		return makeError(ErrPointNotOnCurve, str)
	}

	var base JacobianPoint
	base.Set(point)
	if k.Sign() < 0 {
		NegateJacobian(&base, &base)
	}
	abs := new(big.Int).Abs(k)

	var acc JacobianPoint
	for i := abs.BitLen() - 1; i >= 0; i-- {
		DoubleJacobian(&acc, &acc)
		if abs.Bit(i) == 1 {
			AddJacobian(&acc, &base, &acc)
		}
	}
	result.Set(&acc)
	return nil
}

// ScalarMult returns k*p for an affine point.  Since finite AffinePoints are
// always on the curve the multiplication cannot fail.
func ScalarMult(p AffinePoint, k *big.Int) AffinePoint {
	var j, result JacobianPoint
	p.AsJacobian(&j)
	if err := ScalarMultNonConst(k, &j, &result); err != nil {
		// Unreachable for points built by this package.
		panic(err)
	}
	return result.ToAffine()
}
