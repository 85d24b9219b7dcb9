package check

import (
	"math/big"

	secp256k1 "github.com/ModChain/secp256k1math"
	"github.com/ModChain/secp256k1math/testvectors"
)

// checkNegatedPoint negates (x, evenY) and (x, oddY) into each other, checks
// the parities, the involution and the y recovery from x.
func checkNegatedPoint(c *collector, i int, v testvectors.NegatedPoint) {
	even, err := secp256k1.NewAffinePointFromBig(v.X, v.EvenY)
	if err != nil {
		c.failf(i, "even point: %v", err)
		return
	}
	odd, err := secp256k1.NewAffinePointFromBig(v.X, v.OddY)
	if err != nil {
		c.failf(i, "odd point: %v", err)
		return
	}

	evenY, oddY := even.Y(), odd.Y()
	if evenY.IsOdd() || !oddY.IsOdd() {
		c.failf(i, "unexpected parity: evenY odd=%v, oddY odd=%v",
			evenY.IsOdd(), oddY.IsOdd())
	}
	if got := even.Negate(); !got.Equal(odd) {
		c.failf(i, "negate even: got %v, want %v", got, odd)
	}
	if got := odd.Negate(); !got.Equal(even) {
		c.failf(i, "negate odd: got %v, want %v", got, even)
	}
	if got := even.Negate().Negate(); !got.Equal(even) {
		c.failf(i, "double negation: got %v, want %v", got, even)
	}

	x := even.X()
	gotEven, gotOdd, err := secp256k1.DecompressY(&x)
	if err != nil {
		c.failf(i, "decompress: %v", err)
		return
	}
	if !gotEven.Equals(&evenY) || !gotOdd.Equals(&oddY) {
		c.failf(i, "decompress: got (%v, %v), want (%v, %v)", gotEven,
			gotOdd, evenY, oddY)
	}
}

// checkJacobiPoint converts the Jacobian representation back to affine.
func checkJacobiPoint(c *collector, i int, v testvectors.JacobiPoint) {
	want, err := secp256k1.NewAffinePointFromBig(v.X, v.Y)
	if err != nil {
		c.failf(i, "affine point: %v", err)
		return
	}
	j, err := secp256k1.NewJacobianPoint(field(v.JacobiX), field(v.JacobiY),
		field(v.JacobiZ))
	if err != nil {
		c.failf(i, "jacobian point: %v", err)
		return
	}
	if got := j.ToAffine(); !got.Equal(want) {
		c.failf(i, "to affine: got %v, want %v", got, want)
	}

	var fromAffine secp256k1.JacobianPoint
	want.AsJacobian(&fromAffine)
	if !fromAffine.EquivalentNonConst(&j) {
		c.failf(i, "%v is not equivalent to %v", &fromAffine, &j)
	}
}

// checkJacobiDoubling doubles P1 and compares with P3 in affine space, both
// directly and through the addition case for equal points.
func checkJacobiDoubling(c *collector, i int, v testvectors.JacobiDoubling) {
	p1, err := secp256k1.NewJacobianPoint(field(v.X1), field(v.Y1), field(v.Z1))
	if err != nil {
		c.failf(i, "p1: %v", err)
		return
	}
	want := jacobian(v.X3, v.Y3, v.Z3)
	wantAffine := want.ToAffine()

	var doubled secp256k1.JacobianPoint
	secp256k1.DoubleJacobian(&p1, &doubled)
	if got := doubled.ToAffine(); !got.Equal(wantAffine) {
		c.failf(i, "double: got %v, want %v", got, wantAffine)
	}

	var sum secp256k1.JacobianPoint
	secp256k1.AddJacobian(&p1, &p1, &sum)
	if got := sum.ToAffine(); !got.Equal(wantAffine) {
		c.failf(i, "add to itself: got %v, want %v", got, wantAffine)
	}
}

// checkJacobiAddition adds P1 and P2 and compares with P3 in affine space.
func checkJacobiAddition(c *collector, i int, v testvectors.JacobiAddition) {
	p1, err := secp256k1.NewJacobianPoint(field(v.X1), field(v.Y1), field(v.Z1))
	if err != nil {
		c.failf(i, "p1: %v", err)
		return
	}
	p2, err := secp256k1.NewJacobianPoint(field(v.X2), field(v.Y2), field(v.Z2))
	if err != nil {
		c.failf(i, "p2: %v", err)
		return
	}
	want := jacobian(v.X3, v.Y3, v.Z3)
	wantAffine := want.ToAffine()

	var sum secp256k1.JacobianPoint
	secp256k1.AddJacobian(&p1, &p2, &sum)
	if got := sum.ToAffine(); !got.Equal(wantAffine) {
		c.failf(i, "add: got %v, want %v", got, wantAffine)
	}

	// Addition commutes.
	secp256k1.AddJacobian(&p2, &p1, &sum)
	if got := sum.ToAffine(); !got.Equal(wantAffine) {
		c.failf(i, "add reversed: got %v, want %v", got, wantAffine)
	}
}

// checkJacobiMultiplication multiplies P1 by k, where an expected (0, 0)
// means infinity.
func checkJacobiMultiplication(c *collector, i int, v testvectors.JacobiMultiplication) {
	p, err := secp256k1.NewAffinePointFromBig(v.X1, v.Y1)
	if err != nil {
		c.failf(i, "p1: %v", err)
		return
	}

	got := secp256k1.ScalarMult(p, v.K)
	gotX, gotY := got.Coordinates()
	if gotX.Cmp(v.X2) != 0 || gotY.Cmp(v.Y2) != 0 {
		c.failf(i, "%x * %v: got %s, want %s", v.K, p,
			affineString(gotX, gotY), affineString(v.X2, v.Y2))
	}

	if p.Equal(secp256k1.Generator()) {
		base := secp256k1.ScalarBaseMult(v.K)
		if !base.Equal(got) {
			c.failf(i, "base mult: got %v, want %v", base, got)
		}
	}
}

// checkECDSA signs the vector's digest with the vector's key and nonce,
// expects r and s bit for bit, and verifies the signature.
func checkECDSA(c *collector, i int, v testvectors.ECDSA) {
	sig, err := secp256k1.SignWithNonce(v.Hash, v.D, v.Nonce, true)
	if err != nil {
		c.failf(i, "sign: %v", err)
		return
	}
	r, s := sig.R(), sig.S()
	if r.Big().Cmp(v.R) != 0 || s.Big().Cmp(v.S) != 0 {
		c.failf(i, "signature: got %v, want (%064x, %064x)", sig, v.R, v.S)
	}
	if !sig.IsCanonical() {
		c.failf(i, "canonical signature has s > n/2: %v", sig)
	}

	pub := secp256k1.ScalarBaseMult(v.D)
	if !sig.Verify(v.Hash, pub) {
		c.failf(i, "signature %v does not verify", sig)
	}

	// The non-canonical signature shares r and has s or n - s.
	raw, err := secp256k1.SignWithNonce(v.Hash, v.D, v.Nonce, false)
	if err != nil {
		c.failf(i, "sign non-canonical: %v", err)
		return
	}
	rawR, rawS := raw.R(), raw.S()
	negS := new(big.Int).Sub(secp256k1.N(), rawS.Big())
	if !rawR.Equals(&r) || (!rawS.Equals(&s) && negS.Cmp(v.S) != 0) {
		c.failf(i, "non-canonical signature %v does not match %v", raw, sig)
	}
	if !raw.Verify(v.Hash, pub) {
		c.failf(i, "non-canonical signature %v does not verify", raw)
	}
}
