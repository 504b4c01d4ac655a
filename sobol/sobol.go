// SPDX-License-Identifier: MIT

package sobol

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"time"
)

// Source is the capability shared by plain and rescaled Sobol
// sequences: a stateful, infinite, non-restartable point stream.
// Both *Sequence and *Scaled implement it; code that only consumes
// points should accept a Source.
type Source interface {
	// Dimension reports the fixed dimension count N of every point.
	Dimension() int
	// Next returns the next point as a freshly allocated length-N slice.
	Next() []float64
	// NextAt writes the next point into dst. Returns
	// ErrDimensionMismatch (leaving the stream unadvanced) when
	// len(dst) != Dimension().
	NextAt(dst []float64) error
}

var (
	_ Source = (*Sequence)(nil)
	_ Source = (*Scaled)(nil)
)

// Sequence is a Sobol low-discrepancy sequence over [0,1)^N.
//
// It owns its direction table and per-dimension integer state; every
// Next/NextAt/Skip call mutates the instance in place. Not safe for
// concurrent use; distinct Sequences share nothing.
type Sequence struct {
	dim int
	m   [][]uint32 // direction numbers, dim rows × numBits columns
	x   []uint32   // accumulated integer state per dimension
	b   []uint32   // scale marker: fractional-bit position of x[i]
	n   uint32     // points emitted so far

	// Exhaustion fallback; constructed lazily on the first call after
	// the counter saturates.
	fallback     *rand.Rand
	fallbackSeed int64
}

// New constructs a Sobol sequence of the given dimension.
//
// dim must lie in [0, MaxDimension]; otherwise ErrInvalidDimension is
// returned and no generator is produced. dim == 0 is legal and yields
// empty points; dimension 1 uses the trivial all-ones direction row.
//
// Example:
//
//	seq, err := sobol.New(5, sobol.WithBurnIn(64))
func New(dim int, opts ...Option) (*Sequence, error) {
	table, err := newDirectionTable(dim)
	if err != nil {
		return nil, err
	}

	o := gatherOptions(opts)
	s := &Sequence{
		dim:          dim,
		m:            table,
		x:            make([]uint32, dim),
		b:            make([]uint32, dim),
		fallbackSeed: o.fallbackSeed,
	}
	if o.burnIn > 0 {
		s.Skip(o.burnIn)
	}

	return s, nil
}

// Dimension reports the fixed dimension count N.
func (s *Sequence) Dimension() int { return s.dim }

// Next returns the next point as a freshly allocated slice of length
// Dimension(), each coordinate in [0,1).
func (s *Sequence) Next() []float64 {
	p := make([]float64, s.dim)
	_ = s.NextAt(p) // length matches by construction

	return p
}

// NextAt writes the next point into dst, each coordinate in [0,1).
//
// The update is the Gray-code recurrence: successive counter values
// differ in exactly one bit (position c = trailing zeros of n), so one
// direction number is XOR-ed into each dimension's state. The scale
// marker b[i] tracks the implicit binary point, and the float
// conversion scales by an exact power of two (Ldexp), so no precision
// is lost however many significant bits x[i] carries.
//
// Once the 32-bit counter saturates, the instance permanently switches
// to independent uniform pseudorandom output in [0,1) — still valid
// samples, no longer low-discrepancy. See WithFallbackSeed.
//
// Returns ErrDimensionMismatch, with all state unmutated, when
// len(dst) != Dimension().
func (s *Sequence) NextAt(dst []float64) error {
	if len(dst) != s.dim {
		return fmt.Errorf("%w: len(dst)=%d, dimension=%d", ErrDimensionMismatch, len(dst), s.dim)
	}
	if s.n == math.MaxUint32 {
		s.fillFallback(dst)

		return nil
	}

	s.n++
	c := uint32(bits.TrailingZeros32(s.n))
	for i := 0; i < s.dim; i++ {
		if s.b[i] >= c {
			s.x[i] ^= s.m[i][c] << (s.b[i] - c)
		} else {
			s.x[i] = s.x[i]<<(c-s.b[i]) ^ s.m[i][c]
			s.b[i] = c
		}
		// x[i] is a fixed-point fraction with b[i]+1 fractional bits.
		dst[i] = math.Ldexp(float64(s.x[i]), -int(s.b[i])-1)
	}

	return nil
}

// fillFallback emits one uniform pseudorandom point. Seed policy: the
// injected seed when set, otherwise wall-clock nanoseconds (matching
// ambient-randomness behavior; inject a seed for reproducible tails).
func (s *Sequence) fillFallback(dst []float64) {
	if s.fallback == nil {
		seed := s.fallbackSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.fallback = rand.New(rand.NewSource(seed))
	}
	for i := range dst {
		dst[i] = s.fallback.Float64()
	}
}
