// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"io"
	"math/big"
)

// ModNScalar implements arithmetic over the integers modulo the secp256k1
// group order N.  The zero value is the scalar 0.
//
// As with FieldVal, the stored value is always reduced to [0, N) and never
// modified in place, so values may be copied freely and receivers may alias
// arguments.
type ModNScalar struct {
	n *big.Int
}

// modN reduces v modulo the group order in place and returns it.
func modN(v *big.Int) *big.Int {
	return v.Mod(v, curveN)
}

func (s *ModNScalar) val() *big.Int {
	if s.n == nil {
		return bigZero
	}
	return s.n
}

// Zero sets the scalar to zero and returns it.
func (s *ModNScalar) Zero() *ModNScalar {
	s.n = nil
	return s
}

// Set sets the scalar equal to a copy of the passed one and returns it.
func (s *ModNScalar) Set(val *ModNScalar) *ModNScalar {
	s.n = val.n
	return s
}

// SetInt sets the scalar to the passed integer and returns it.
func (s *ModNScalar) SetInt(ui uint64) *ModNScalar {
	s.n = modN(new(big.Int).SetUint64(ui))
	return s
}

// SetBig sets the scalar to v reduced modulo the group order.  Values of any
// width, including negative ones, are accepted.
func (s *ModNScalar) SetBig(v *big.Int) *ModNScalar {
	s.n = modN(new(big.Int).Set(v))
	return s
}

// SetByteSlice interprets the provided slice as a big-endian unsigned integer
// of any length, reduces it modulo the group order and returns whether or not
// the value was greater than or equal to the group order before reduction.
func (s *ModNScalar) SetByteSlice(b []byte) bool {
	v := new(big.Int).SetBytes(b)
	overflow := v.Cmp(curveN) >= 0
	s.n = modN(v)
	return overflow
}

// SetHex decodes a big-endian hex string, without a 0x prefix, modulo the
// group order.
func (s *ModNScalar) SetHex(hexString string) (*ModNScalar, error) {
	v, err := ParseHex(hexString)
	if err != nil {
		return s, err
	}
	s.n = modN(v)
	return s, nil
}

// IsZero returns whether or not the scalar is equal to zero.
func (s *ModNScalar) IsZero() bool {
	return s.val().Sign() == 0
}

// Equals returns whether or not the two scalars are the same.
func (s *ModNScalar) Equals(val *ModNScalar) bool {
	return s.val().Cmp(val.val()) == 0
}

// IsOverHalfOrder returns whether or not the scalar exceeds the group order
// divided by 2.
func (s *ModNScalar) IsOverHalfOrder() bool {
	return s.val().Cmp(halfOrder) > 0
}

// Add adds the passed scalar to the existing one modulo the group order.
func (s *ModNScalar) Add(val *ModNScalar) *ModNScalar {
	return s.Add2(s, val)
}

// Add2 adds the passed two scalars together modulo the group order and
// stores the result in s.
func (s *ModNScalar) Add2(val1, val2 *ModNScalar) *ModNScalar {
	s.n = modN(new(big.Int).Add(val1.val(), val2.val()))
	return s
}

// Mul multiplies the passed scalar with the existing one modulo the group
// order.
func (s *ModNScalar) Mul(val *ModNScalar) *ModNScalar {
	return s.Mul2(s, val)
}

// Mul2 multiplies the passed two scalars together modulo the group order and
// stores the result in s.
func (s *ModNScalar) Mul2(val, val2 *ModNScalar) *ModNScalar {
	s.n = modN(new(big.Int).Mul(val.val(), val2.val()))
	return s
}

// Negate sets the scalar to its additive inverse N - s.
func (s *ModNScalar) Negate() *ModNScalar {
	return s.NegateVal(s)
}

// NegateVal sets s to the additive inverse of the passed scalar.
func (s *ModNScalar) NegateVal(val *ModNScalar) *ModNScalar {
	s.n = modN(new(big.Int).Neg(val.val()))
	return s
}

// Inverse sets the scalar to its multiplicative inverse modulo the group
// order.  Zero has no inverse; s is left unchanged and an error of kind
// ErrScalarInverseOfZero is returned.
func (s *ModNScalar) Inverse() error {
	return s.InverseVal(s)
}

// InverseVal sets s to the multiplicative inverse of the passed scalar.
func (s *ModNScalar) InverseVal(val *ModNScalar) error {
	if val.IsZero() {
		return makeError(ErrScalarInverseOfZero, "scalar zero has no "+
			"multiplicative inverse")
	}
	s.n = new(big.Int).ModInverse(val.val(), curveN)
	return nil
}

// Bytes returns the scalar as a 32-byte big-endian array.
func (s *ModNScalar) Bytes() [32]byte {
	var b [32]byte
	s.val().FillBytes(b[:])
	return b
}

// Big returns a copy of the scalar as a big integer.
func (s *ModNScalar) Big() *big.Int {
	return new(big.Int).Set(s.val())
}

// String returns the scalar as a 64 character lowercase hex string.
func (s ModNScalar) String() string {
	return hexString64(s.val())
}

// RandomScalar returns a scalar drawn uniformly from [1, N-1] using the given
// source of randomness.  It is meant for callers producing private keys or
// nonces; nothing in this package draws randomness on its own.
func RandomScalar(random io.Reader) (*ModNScalar, error) {
	v, err := rand.Int(random, new(big.Int).Sub(curveN, bigOne))
	if err != nil {
		return nil, err
	}
	var s ModNScalar
	s.n = v.Add(v, bigOne)
	return &s, nil
}
