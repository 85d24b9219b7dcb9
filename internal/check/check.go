// Package check evaluates fixture sets against the secp256k1 package and
// reports every vector whose output differs from the expected literal.
package check

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	secp256k1 "github.com/ModChain/secp256k1math"
	"github.com/ModChain/secp256k1math/testvectors"
)

// Category names a fixture category.
type Category string

// Fixture categories, named after their files.
const (
	NegatedPoint         Category = "negated_point"
	JacobiPoint          Category = "jacobi_point"
	JacobiMultiplication Category = "jacobi_multiplication"
	JacobiDoubling       Category = "jacobi_doubling"
	JacobiAddition       Category = "jacobi_addition"
	ECDSA                Category = "ecdsa"
)

// Failure describes one vector that did not reproduce.
type Failure struct {
	Category Category
	Index    int
	Detail   string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s[%d]: %s", f.Category, f.Index, f.Detail)
}

// Report is the outcome of running a fixture set.
type Report struct {
	// Counts is the number of vectors evaluated per category.
	Counts map[Category]int

	// Failures holds every failing vector ordered by category and index.
	Failures []Failure
}

// OK returns whether every vector reproduced.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Total returns the number of vectors evaluated.
func (r *Report) Total() int {
	var n int
	for _, c := range r.Counts {
		n += c
	}
	return n
}

// FailuresIn returns the failures of one category.
func (r *Report) FailuresIn(c Category) []Failure {
	var out []Failure
	for _, f := range r.Failures {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

// collector accumulates the failures of one category.
type collector struct {
	category Category
	failures []Failure
}

func (c *collector) failf(index int, format string, args ...interface{}) {
	c.failures = append(c.failures, Failure{
		Category: c.category,
		Index:    index,
		Detail:   fmt.Sprintf(format, args...),
	})
}

// Run evaluates every vector of set.  Categories are evaluated concurrently;
// the vectors are independent and the arithmetic is pure.  The only error
// returned is the context's.
func Run(ctx context.Context, set *testvectors.Set) (*Report, error) {
	type job struct {
		category Category
		count    int
		run      func(ctx context.Context, c *collector) error
	}
	jobs := []job{
		{NegatedPoint, len(set.NegatedPoints), func(ctx context.Context, c *collector) error {
			return each(ctx, set.NegatedPoints, c, checkNegatedPoint)
		}},
		{JacobiPoint, len(set.JacobiPoints), func(ctx context.Context, c *collector) error {
			return each(ctx, set.JacobiPoints, c, checkJacobiPoint)
		}},
		{JacobiMultiplication, len(set.JacobiMultiplications), func(ctx context.Context, c *collector) error {
			return each(ctx, set.JacobiMultiplications, c, checkJacobiMultiplication)
		}},
		{JacobiDoubling, len(set.JacobiDoublings), func(ctx context.Context, c *collector) error {
			return each(ctx, set.JacobiDoublings, c, checkJacobiDoubling)
		}},
		{JacobiAddition, len(set.JacobiAdditions), func(ctx context.Context, c *collector) error {
			return each(ctx, set.JacobiAdditions, c, checkJacobiAddition)
		}},
		{ECDSA, len(set.ECDSA), func(ctx context.Context, c *collector) error {
			return each(ctx, set.ECDSA, c, checkECDSA)
		}},
	}

	report := &Report{Counts: make(map[Category]int, len(jobs))}
	var mtx sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			c := &collector{category: j.category}
			if err := j.run(gctx, c); err != nil {
				return err
			}
			mtx.Lock()
			report.Counts[j.category] = j.count
			report.Failures = append(report.Failures, c.failures...)
			mtx.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(report.Failures, func(i, k int) bool {
		a, b := report.Failures[i], report.Failures[k]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Index < b.Index
	})
	return report, nil
}

// each applies fn to every vector, stopping early when ctx is done.
func each[T any](ctx context.Context, vectors []T, c *collector, fn func(c *collector, i int, v T)) error {
	for i, v := range vectors {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(c, i, v)
	}
	return nil
}

// field converts a decoded integer to a field value.
func field(v *big.Int) *secp256k1.FieldVal {
	return new(secp256k1.FieldVal).SetBig(v)
}

// jacobian builds an unchecked Jacobian point from decoded integers.
func jacobian(x, y, z *big.Int) secp256k1.JacobianPoint {
	return secp256k1.MakeJacobianPoint(field(x), field(y), field(z))
}

// affineString renders decoded coordinates, where (0, 0) is infinity.
func affineString(x, y *big.Int) string {
	if x.Sign() == 0 && y.Sign() == 0 {
		return "infinity"
	}
	return fmt.Sprintf("(%064x, %064x)", x, y)
}
