// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// Signature is an ECDSA signature over secp256k1.  Both R and S are in
// [1, N-1] for every signature produced by this package.
type Signature struct {
	r ModNScalar
	s ModNScalar
}

// NewSignature instantiates a new signature given some r and s values.
func NewSignature(r, s *ModNScalar) *Signature {
	return &Signature{*r, *s}
}

// R returns the r value of the signature.
func (sig *Signature) R() ModNScalar {
	return sig.r
}

// S returns the s value of the signature.
func (sig *Signature) S() ModNScalar {
	return sig.s
}

// IsCanonical returns whether S is in the lower half of the group order, the
// form that prevents malleating a signature into (R, N-S).
func (sig *Signature) IsCanonical() bool {
	return !sig.s.IsOverHalfOrder()
}

// IsEqual compares this signature to the passed one.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.r.Equals(&other.r) && sig.s.Equals(&other.s)
}

// String returns the signature as "(r, s)" in hex.
func (sig *Signature) String() string {
	return fmt.Sprintf("(%v, %v)", sig.r, sig.s)
}

// hashToScalar interprets the message digest as a big-endian integer of any
// width and reduces it modulo the group order.
func hashToScalar(hash []byte) ModNScalar {
	var e ModNScalar
	e.SetByteSlice(hash)
	return e
}

// SignWithNonce produces an ECDSA signature of the message digest hash with
// the private key privKey and the caller supplied nonce.  It is a pure
// function of its inputs; generating a secure nonce (for example per RFC6979)
// is the caller's responsibility.
//
// The digest is read as a big-endian integer e reduced modulo N, and the
// private key and nonce are reduced modulo N as well.  The signature is
//
//	R = nonce*G
//	r = R.x mod N
//	s = nonce^-1 * (e + r*privKey) mod N
//
// and when canonical is set and s > N/2, s is replaced by N - s.
//
// A private key congruent to zero yields an error of kind
// ErrInvalidPrivateKey.  A nonce congruent to zero, or one that leads to
// r = 0 or s = 0, yields an error with kind ErrNonceIsZero, ErrSigRIsZero or
// ErrSigSIsZero, all of which match ErrInvalidNonce under errors.Is.  Nothing
// is retried.
func SignWithNonce(hash []byte, privKey, nonce *big.Int, canonical bool) (*Signature, error) {
	var d, k ModNScalar
	d.SetBig(privKey)
	k.SetBig(nonce)
	if d.IsZero() {
		return nil, makeError(ErrInvalidPrivateKey, "private key is zero "+
			"modulo the group order")
	}
	if k.IsZero() {
		return nil, makeError(ErrNonceIsZero, "nonce is zero modulo the "+
			"group order")
	}

	// r = (k*G).x mod N
	R := ScalarBaseMult(k.Big())
	rx := R.X()
	var r ModNScalar
	r.SetBig(rx.Big())
	if r.IsZero() {
		return nil, makeError(ErrSigRIsZero, "calculated R is zero")
	}

	// s = k^-1 * (e + r*d) mod N
	e := hashToScalar(hash)
	var kInv, s ModNScalar
	if err := kInv.InverseVal(&k); err != nil {
		return nil, err
	}
	s.Mul2(&r, &d).Add(&e).Mul(&kInv)
	if s.IsZero() {
		return nil, makeError(ErrSigSIsZero, "calculated S is zero")
	}

	if canonical && s.IsOverHalfOrder() {
		s.Negate()
	}
	return &Signature{r: r, s: s}, nil
}

// Verify returns whether or not the signature is valid for the provided
// message digest and public key.  Both canonical and non-canonical S values
// are accepted.
func (sig *Signature) Verify(hash []byte, pubKey AffinePoint) bool {
	if pubKey.IsInfinity() || sig.r.IsZero() || sig.s.IsZero() {
		return false
	}

	// u1 = e*s^-1, u2 = r*s^-1
	e := hashToScalar(hash)
	var w, u1, u2 ModNScalar
	if err := w.InverseVal(&sig.s); err != nil {
		return false
	}
	u1.Mul2(&e, &w)
	u2.Mul2(&sig.r, &w)

	// X = u1*G + u2*Q
	var u1G, pub, u2Q, sum JacobianPoint
	ScalarBaseMultNonConst(u1.Big(), &u1G)
	pubKey.AsJacobian(&pub)
	if err := ScalarMultNonConst(u2.Big(), &pub, &u2Q); err != nil {
		return false
	}
	AddJacobian(&u1G, &u2Q, &sum)
	if sum.IsInfinity() {
		return false
	}

	// Valid when X.x mod N == r.
	x := sum.ToAffine().X()
	var v ModNScalar
	v.SetBig(x.Big())
	return v.Equals(&sig.r)
}
