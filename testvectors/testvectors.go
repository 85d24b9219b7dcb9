// Package testvectors defines the JSON fixture format used to exercise the
// secp256k1 arithmetic and signer, and loads and writes fixture sets.
//
// A fixture set is six files, one per category, each holding a JSON array of
// records whose values are big-endian hex strings without a 0x prefix.  The
// only exception is the ecdsa hash field, which holds the raw digest bytes in
// hex.
package testvectors

import (
	"embed"
	"io/fs"
	"math/big"
)

// File names of the six fixture categories.
const (
	FileNegatedPoint         = "negated_point.json"
	FileJacobiPoint          = "jacobi_point.json"
	FileJacobiMultiplication = "jacobi_multiplication.json"
	FileJacobiDoubling       = "jacobi_doubling.json"
	FileJacobiAddition       = "jacobi_addition.json"
	FileECDSA                = "ecdsa.json"
)

// NegatedPoint is an affine x coordinate with the two y coordinates of the
// curve points above it, one even and one odd.
type NegatedPoint struct {
	X, EvenY, OddY *big.Int
}

// JacobiPoint is an affine point together with one of its Jacobian
// representations.
type JacobiPoint struct {
	X, Y                      *big.Int
	JacobiX, JacobiY, JacobiZ *big.Int
}

// JacobiMultiplication is P1 * K = P2 for an affine P1.  X2 = Y2 = 0 encodes
// the point at infinity.
type JacobiMultiplication struct {
	X1, Y1 *big.Int
	K      *big.Int
	X2, Y2 *big.Int
}

// JacobiDoubling is 2 * P1 = P3 in Jacobian coordinates.
type JacobiDoubling struct {
	X1, Y1, Z1 *big.Int
	X3, Y3, Z3 *big.Int
}

// JacobiAddition is P1 + P2 = P3 in Jacobian coordinates.  Z = 0 encodes the
// point at infinity.
type JacobiAddition struct {
	X1, Y1, Z1 *big.Int
	X2, Y2, Z2 *big.Int
	X3, Y3, Z3 *big.Int
}

// ECDSA is a canonical signature (R, S) of Hash by private key D with Nonce.
type ECDSA struct {
	D     *big.Int
	Hash  []byte
	Nonce *big.Int
	R, S  *big.Int
}

// Set is a complete fixture set.
type Set struct {
	NegatedPoints         []NegatedPoint
	JacobiPoints          []JacobiPoint
	JacobiMultiplications []JacobiMultiplication
	JacobiDoublings       []JacobiDoubling
	JacobiAdditions       []JacobiAddition
	ECDSA                 []ECDSA
}

// Len returns the total number of vectors in the set.
func (s *Set) Len() int {
	return len(s.NegatedPoints) + len(s.JacobiPoints) +
		len(s.JacobiMultiplications) + len(s.JacobiDoublings) +
		len(s.JacobiAdditions) + len(s.ECDSA)
}

//go:embed testdata/*.json
var embedded embed.FS

// Embedded returns the fixture set shipped with the package.
func Embedded() (*Set, error) {
	return LoadDir(embedded, "testdata")
}

// EmbeddedFS returns the file system holding the shipped fixtures under
// "testdata".
func EmbeddedFS() fs.FS {
	return embedded
}
