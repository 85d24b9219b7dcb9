// Package refgen generates fixture sets from an independent secp256k1
// implementation, decred's dcrec/secp256k1, so the vectors exercise this
// module's arithmetic against results it did not compute itself.
package refgen

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ModChain/secp256k1math/testvectors"
)

// Config controls fixture generation.
type Config struct {
	// Count is the number of random vectors per category.  Special cases
	// (the generator, infinity operands, k = 0, k = N and so on) are added on
	// top of them.
	Count int

	// Seed seeds the deterministic source the inputs are drawn from.
	Seed int64
}

// DefaultConfig is used by the CLI when no flags are given.
var DefaultConfig = Config{Count: 8, Seed: 1}

// generator draws inputs and computes the expected outputs with dcrec.
type generator struct {
	rng *rand.Rand
}

// Generate returns a complete fixture set.
func Generate(cfg Config) (*testvectors.Set, error) {
	if cfg.Count < 1 {
		return nil, fmt.Errorf("vector count must be positive, got %d", cfg.Count)
	}
	g := &generator{rng: rand.New(rand.NewSource(cfg.Seed))}

	set := &testvectors.Set{}
	g.negatedPoints(set, cfg.Count)
	g.jacobiPoints(set, cfg.Count)
	g.doublings(set, cfg.Count)
	g.additions(set, cfg.Count)
	g.multiplications(set, cfg.Count)
	if err := g.signatures(set, cfg.Count); err != nil {
		return nil, err
	}
	return set, nil
}

// curveN is the group order as reported by dcrec.
var curveN = secp256k1.S256().N

func fieldBig(f *secp256k1.FieldVal) *big.Int {
	f.Normalize()
	b := f.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func scalarBig(s *secp256k1.ModNScalar) *big.Int {
	b := s.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// bigScalar reduces an integer of any size into a dcrec scalar.
func bigScalar(k *big.Int) *secp256k1.ModNScalar {
	var b [32]byte
	new(big.Int).Mod(k, curveN).FillBytes(b[:])
	var s secp256k1.ModNScalar
	s.SetBytes(&b)
	return &s
}

// scalar draws a uniformly random non-zero scalar.
func (g *generator) scalar() *secp256k1.ModNScalar {
	for {
		var b [32]byte
		g.rng.Read(b[:])
		var s secp256k1.ModNScalar
		s.SetByteSlice(b[:])
		if !s.IsZero() {
			return &s
		}
	}
}

// fieldVal draws a random non-zero field element, used as a Z coordinate.
func (g *generator) fieldVal() *secp256k1.FieldVal {
	for {
		var b [32]byte
		g.rng.Read(b[:])
		var f secp256k1.FieldVal
		f.SetByteSlice(b[:])
		f.Normalize()
		if !f.IsZero() {
			return &f
		}
	}
}

// point returns a random affine point as a Jacobian point with Z = 1.
func (g *generator) point() secp256k1.JacobianPoint {
	var p secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(g.scalar(), &p)
	p.ToAffine()
	return p
}

// generatorPoint returns G with Z = 1.
func generatorPoint() secp256k1.JacobianPoint {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	var p secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&one, &p)
	p.ToAffine()
	return p
}

// rescale returns the representation (X*z^2, Y*z^3, z) of an affine point.
func rescale(p *secp256k1.JacobianPoint, z *secp256k1.FieldVal) secp256k1.JacobianPoint {
	var z2, z3, x, y secp256k1.FieldVal
	z2.SquareVal(z)
	z3.Mul2(&z2, z)
	x.Mul2(&p.X, &z2).Normalize()
	y.Mul2(&p.Y, &z3).Normalize()
	return secp256k1.MakeJacobianPoint(&x, &y, z)
}

// affine returns the affine coordinates of p, with (0, 0) for infinity.
func affine(p secp256k1.JacobianPoint) (x, y *big.Int) {
	if p.Z.Normalize().IsZero() {
		return new(big.Int), new(big.Int)
	}
	p.ToAffine()
	return fieldBig(&p.X), fieldBig(&p.Y)
}

// jacobianBig returns the raw coordinates of p.
func jacobianBig(p *secp256k1.JacobianPoint) (x, y, z *big.Int) {
	return fieldBig(&p.X), fieldBig(&p.Y), fieldBig(&p.Z)
}

func (g *generator) negatedPoints(set *testvectors.Set, count int) {
	points := []secp256k1.JacobianPoint{generatorPoint()}
	for i := 0; i < count; i++ {
		points = append(points, g.point())
	}
	for _, p := range points {
		var evenY, oddY secp256k1.FieldVal
		secp256k1.DecompressY(&p.X, false, &evenY)
		evenY.Normalize()
		oddY.Set(&evenY).Negate(1).Normalize()
		set.NegatedPoints = append(set.NegatedPoints, testvectors.NegatedPoint{
			X:     fieldBig(&p.X),
			EvenY: fieldBig(&evenY),
			OddY:  fieldBig(&oddY),
		})
	}
}

func (g *generator) jacobiPoints(set *testvectors.Set, count int) {
	for i := 0; i < count; i++ {
		p := g.point()
		j := rescale(&p, g.fieldVal())
		jx, jy, jz := jacobianBig(&j)
		x, y := affine(p)
		set.JacobiPoints = append(set.JacobiPoints, testvectors.JacobiPoint{
			X: x, Y: y,
			JacobiX: jx, JacobiY: jy, JacobiZ: jz,
		})
	}
}

func (g *generator) doublings(set *testvectors.Set, count int) {
	inputs := []secp256k1.JacobianPoint{generatorPoint()}
	for i := 0; i < count; i++ {
		p := g.point()
		inputs = append(inputs, rescale(&p, g.fieldVal()))
	}
	for _, p := range inputs {
		var result secp256k1.JacobianPoint
		secp256k1.DoubleNonConst(&p, &result)
		x1, y1, z1 := jacobianBig(&p)
		x3, y3, z3 := jacobianBig(&result)
		set.JacobiDoublings = append(set.JacobiDoublings, testvectors.JacobiDoubling{
			X1: x1, Y1: y1, Z1: z1,
			X3: x3, Y3: y3, Z3: z3,
		})
	}
}

func (g *generator) additions(set *testvectors.Set, count int) {
	type pair struct{ p1, p2 secp256k1.JacobianPoint }
	var pairs []pair
	for i := 0; i < count; i++ {
		p1, p2 := g.point(), g.point()
		pairs = append(pairs, pair{rescale(&p1, g.fieldVal()), rescale(&p2, g.fieldVal())})
	}

	// Same point under two scalings, opposite points, and infinity on
	// either side.
	p := g.point()
	pairs = append(pairs, pair{rescale(&p, g.fieldVal()), rescale(&p, g.fieldVal())})
	p = g.point()
	neg := p
	neg.Y.Negate(1).Normalize()
	pairs = append(pairs, pair{rescale(&p, g.fieldVal()), rescale(&neg, g.fieldVal())})
	p = g.point()
	var inf secp256k1.JacobianPoint
	pairs = append(pairs, pair{inf, rescale(&p, g.fieldVal())})
	pairs = append(pairs, pair{rescale(&p, g.fieldVal()), inf})

	for _, pr := range pairs {
		var result secp256k1.JacobianPoint
		secp256k1.AddNonConst(&pr.p1, &pr.p2, &result)
		x1, y1, z1 := jacobianBig(&pr.p1)
		x2, y2, z2 := jacobianBig(&pr.p2)
		x3, y3, z3 := jacobianBig(&result)
		set.JacobiAdditions = append(set.JacobiAdditions, testvectors.JacobiAddition{
			X1: x1, Y1: y1, Z1: z1,
			X2: x2, Y2: y2, Z2: z2,
			X3: x3, Y3: y3, Z3: z3,
		})
	}
}

func (g *generator) multiplications(set *testvectors.Set, count int) {
	ks := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2),
		new(big.Int).Sub(curveN, big.NewInt(1)),
		new(big.Int).Set(curveN),
		new(big.Int).Add(curveN, big.NewInt(1)),
		new(big.Int).Lsh(curveN, 1),
	}
	for i := 0; i < count; i++ {
		ks = append(ks, scalarBig(g.scalar()))
	}
	// Scalars wider than the group order.
	wide := new(big.Int).Lsh(scalarBig(g.scalar()), 64)
	ks = append(ks, wide.Add(wide, big.NewInt(g.rng.Int63())))

	for i, k := range ks {
		p := generatorPoint()
		if i%2 == 1 {
			p = g.point()
		}
		var result secp256k1.JacobianPoint
		secp256k1.ScalarMultNonConst(bigScalar(k), &p, &result)
		x1, y1 := affine(p)
		x2, y2 := affine(result)
		set.JacobiMultiplications = append(set.JacobiMultiplications, testvectors.JacobiMultiplication{
			X1: x1, Y1: y1,
			K:  k,
			X2: x2, Y2: y2,
		})
	}
}

func (g *generator) signatures(set *testvectors.Set, count int) error {
	for i := 0; i < count; i++ {
		d, k := g.scalar(), g.scalar()
		hash := sha256.Sum256([]byte(fmt.Sprintf("refgen vector %d", i)))

		var R secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(k, &R)
		R.ToAffine()
		var r secp256k1.ModNScalar
		rBytes := R.X.Bytes()
		r.SetByteSlice(rBytes[:])
		if r.IsZero() {
			return fmt.Errorf("vector %d: nonce produced r = 0", i)
		}

		var e, kInv, s secp256k1.ModNScalar
		e.SetByteSlice(hash[:])
		kInv.InverseValNonConst(k)
		s.Mul2(&r, d).Add(&e).Mul(&kInv)
		if s.IsZero() {
			return fmt.Errorf("vector %d: nonce produced s = 0", i)
		}
		if s.IsOverHalfOrder() {
			s.Negate()
		}

		set.ECDSA = append(set.ECDSA, testvectors.ECDSA{
			D:     scalarBig(d),
			Hash:  hash[:],
			Nonce: scalarBig(k),
			R:     scalarBig(&r),
			S:     scalarBig(&s),
		})
	}
	return nil
}
