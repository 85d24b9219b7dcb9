// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"sync"
)

// PrecomputedDoubles holds the affine points 2^i * P for i in [0, 256) for
// some point P.  Multiplying P by a scalar then only requires adding the
// entries selected by the set bits of the scalar reduced modulo N.
type PrecomputedDoubles [256]AffinePoint

// ComputePointDoubles returns the table of doublings of the passed point.
func ComputePointDoubles(p AffinePoint) *PrecomputedDoubles {
	var table PrecomputedDoubles
	var j JacobianPoint
	p.AsJacobian(&j)
	for i := range table {
		table[i] = j.ToAffine()
		DoubleJacobian(&j, &j)
	}
	return &table
}

// MultiplyNonConst stores k*P in result where P is the point the table was
// computed for.  k is first reduced modulo the group order, which does not
// change the product since every finite point has order N, so any k,
// including a negative one, is accepted.
func (t *PrecomputedDoubles) MultiplyNonConst(k *big.Int, result *JacobianPoint) {
	reduced := new(big.Int).Mod(k, curveN)
	var acc, addend JacobianPoint
	for i := 0; i < reduced.BitLen(); i++ {
		if reduced.Bit(i) == 0 {
			continue
		}
		t[i].AsJacobian(&addend)
		AddJacobian(&acc, &addend, &acc)
	}
	result.Set(&acc)
}

var (
	basePointDoubles     *PrecomputedDoubles
	basePointDoublesOnce sync.Once
)

// baseDoubles returns the doubles of the base point, computing them on first
// use.
func baseDoubles() *PrecomputedDoubles {
	basePointDoublesOnce.Do(func() {
		basePointDoubles = ComputePointDoubles(Generator())
	})
	return basePointDoubles
}

// ScalarBaseMultNonConst multiplies the base point G by k and stores the
// result in result.  k is reduced modulo the group order and the precomputed
// doubles of G are summed.
func ScalarBaseMultNonConst(k *big.Int, result *JacobianPoint) {
	baseDoubles().MultiplyNonConst(k, result)
}

// ScalarBaseMult returns k*G in affine coordinates.
func ScalarBaseMult(k *big.Int) AffinePoint {
	var result JacobianPoint
	ScalarBaseMultNonConst(k, &result)
	return result.ToAffine()
}
