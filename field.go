// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"strings"
)

// FieldVal implements arithmetic over the secp256k1 finite field, that is the
// integers modulo the prime P.  The zero value is the element 0.
//
// The stored value is always fully reduced to the range [0, P).  Every
// operation replaces the internal integer rather than modifying it in place,
// so a FieldVal may be freely copied by value, and the receiver of an
// operation may alias any of its arguments.
//
// The methods follow the same conventions as the rest of the package: they
// operate on the receiver and return it so calls can be chained, for example
// f.Mul2(a, b).Add(c) computes a*b + c.
type FieldVal struct {
	n *big.Int
}

// modP reduces v modulo the field prime in place and returns it.  big.Int's
// Mod is Euclidean, so negative intermediates are mapped into [0, P).
func modP(v *big.Int) *big.Int {
	return v.Mod(v, curveP)
}

// val returns the internal integer, treating the zero value as 0.  The result
// must not be modified.
func (f *FieldVal) val() *big.Int {
	if f.n == nil {
		return bigZero
	}
	return f.n
}

// Zero sets the field value to zero and returns it.
func (f *FieldVal) Zero() *FieldVal {
	f.n = nil
	return f
}

// Set sets the field value equal to the passed value and returns it.
func (f *FieldVal) Set(val *FieldVal) *FieldVal {
	f.n = val.n
	return f
}

// SetInt sets the field value to the passed integer and returns it.
func (f *FieldVal) SetInt(ui uint64) *FieldVal {
	f.n = modP(new(big.Int).SetUint64(ui))
	return f
}

// SetBig sets the field value to v reduced modulo the field prime and returns
// it.  Negative values are reduced to their non-negative representative.
func (f *FieldVal) SetBig(v *big.Int) *FieldVal {
	f.n = modP(new(big.Int).Set(v))
	return f
}

// SetByteSlice interprets the provided slice as a big-endian unsigned integer,
// reduces it modulo the field prime, sets the field value to the result and
// returns whether or not the value was greater than or equal to the prime
// before reduction.
func (f *FieldVal) SetByteSlice(b []byte) bool {
	v := new(big.Int).SetBytes(b)
	overflow := v.Cmp(curveP) >= 0
	f.n = modP(v)
	return overflow
}

// SetHex decodes the passed big-endian hex string, without a 0x prefix, into
// the field value modulo the field prime.  It returns an error of kind
// ErrMalformedHex when the string is empty or not valid hex.
func (f *FieldVal) SetHex(hexString string) (*FieldVal, error) {
	v, err := ParseHex(hexString)
	if err != nil {
		return f, err
	}
	f.n = modP(v)
	return f, nil
}

// ParseHex decodes a big-endian unsigned hex string without prefix, as used
// by SetHex, the fixture files and the command line.  Only the digits 0-9,
// a-f and A-F are accepted; anything else, including an empty string, a sign
// or a 0x prefix, is an error of kind ErrMalformedHex.
func ParseHex(hexString string) (*big.Int, error) {
	if hexString == "" || strings.IndexFunc(hexString, notHexDigit) >= 0 {
		return nil, makeError(ErrMalformedHex, "malformed hex value: "+
			"'"+hexString+"'")
	}
	v, _ := new(big.Int).SetString(hexString, 16)
	return v, nil
}

func notHexDigit(c rune) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return false
	}
	return true
}

// IsZero returns whether or not the field value is equal to zero.
func (f *FieldVal) IsZero() bool {
	return f.val().Sign() == 0
}

// IsOne returns whether or not the field value is equal to one.
func (f *FieldVal) IsOne() bool {
	return f.val().Cmp(bigOne) == 0
}

// IsOdd returns whether or not the field value is an odd number.
func (f *FieldVal) IsOdd() bool {
	return f.val().Bit(0) == 1
}

// Equals returns whether or not the two field values are the same.
func (f *FieldVal) Equals(val *FieldVal) bool {
	return f.val().Cmp(val.val()) == 0
}

// Add adds the passed value to the existing field value and stores the result
// in f.
func (f *FieldVal) Add(val *FieldVal) *FieldVal {
	return f.Add2(f, val)
}

// Add2 adds the passed two field values together and stores the result in f.
func (f *FieldVal) Add2(val, val2 *FieldVal) *FieldVal {
	f.n = modP(new(big.Int).Add(val.val(), val2.val()))
	return f
}

// Sub subtracts the passed value from the existing field value and stores the
// result in f.
func (f *FieldVal) Sub(val *FieldVal) *FieldVal {
	return f.Sub2(f, val)
}

// Sub2 computes val - val2 and stores the result in f.
func (f *FieldVal) Sub2(val, val2 *FieldVal) *FieldVal {
	f.n = modP(new(big.Int).Sub(val.val(), val2.val()))
	return f
}

// Mul multiplies the passed value and the existing field value and stores the
// result in f.
func (f *FieldVal) Mul(val *FieldVal) *FieldVal {
	return f.Mul2(f, val)
}

// Mul2 multiplies the passed two field values together and stores the result
// in f.
func (f *FieldVal) Mul2(val, val2 *FieldVal) *FieldVal {
	f.n = modP(new(big.Int).Mul(val.val(), val2.val()))
	return f
}

// MulInt multiplies the field value by the passed small integer.
func (f *FieldVal) MulInt(val uint64) *FieldVal {
	f.n = modP(new(big.Int).Mul(f.val(), new(big.Int).SetUint64(val)))
	return f
}

// Square squares the field value.
func (f *FieldVal) Square() *FieldVal {
	return f.Mul2(f, f)
}

// SquareVal squares the passed value and stores the result in f.
func (f *FieldVal) SquareVal(val *FieldVal) *FieldVal {
	return f.Mul2(val, val)
}

// Negate sets f to its additive inverse P - f.  Zero stays zero.
func (f *FieldVal) Negate() *FieldVal {
	return f.NegateVal(f)
}

// NegateVal sets f to the additive inverse of the passed value.
func (f *FieldVal) NegateVal(val *FieldVal) *FieldVal {
	f.n = modP(new(big.Int).Neg(val.val()))
	return f
}

// Inverse sets f to its multiplicative inverse modulo the field prime.  The
// inverse of zero is undefined, in which case f is left unchanged and an
// error of kind ErrFieldInverseOfZero is returned.
func (f *FieldVal) Inverse() error {
	return f.InverseVal(f)
}

// InverseVal sets f to the multiplicative inverse of the passed value.
func (f *FieldVal) InverseVal(val *FieldVal) error {
	if val.IsZero() {
		return makeError(ErrFieldInverseOfZero, "field element zero has no "+
			"multiplicative inverse")
	}
	f.n = new(big.Int).ModInverse(val.val(), curveP)
	return nil
}

// SquareRootVal sets f to a square root of val when one exists and reports
// whether it does.  f is left unchanged when val is not a quadratic residue.
func (f *FieldVal) SquareRootVal(val *FieldVal) bool {
	root := new(big.Int).Exp(val.val(), sqrtExp, curveP)
	check := modP(new(big.Int).Mul(root, root))
	if check.Cmp(val.val()) != 0 {
		return false
	}
	f.n = root
	return true
}

// Bytes returns the field value as a 32-byte big-endian array.
func (f *FieldVal) Bytes() *[32]byte {
	var b [32]byte
	f.val().FillBytes(b[:])
	return &b
}

// Big returns a copy of the field value as a big integer.
func (f *FieldVal) Big() *big.Int {
	return new(big.Int).Set(f.val())
}

// String returns the field value as a 64 character lowercase hex string.
func (f FieldVal) String() string {
	return hexString64(f.val())
}

// hexString64 formats v as zero-padded lowercase hex.
func hexString64(v *big.Int) string {
	const digits = 64
	s := v.Text(16)
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}
	return s
}
