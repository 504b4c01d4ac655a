// SPDX-License-Identifier: MIT

package sobol

import "fmt"

// Scaled rescales a Sobol sequence from [0,1)^N onto the box
// [lb[0],ub[0]) × … × [lb[N-1],ub[N-1]) by the affine map
// out[i] = lb[i] + (ub[i]−lb[i])·raw[i].
//
// It owns its inner Sequence and private copies of both bound vectors;
// like Sequence it is mutable single-owner state, not safe for
// concurrent use.
type Scaled struct {
	seq *Sequence
	lb  []float64
	ub  []float64
}

// NewScaled constructs a Sobol sequence over the box described by the
// bound vectors; the dimension is len(lb). Returns ErrDimensionMismatch
// when the bound vectors disagree in length, ErrInvalidDimension when
// that length exceeds MaxDimension. Bounds are copied; the caller's
// slices are not retained.
//
// Bounds are not required to be ordered: lb[i] > ub[i] simply flips the
// interval's orientation.
func NewScaled(lb, ub []float64, opts ...Option) (*Scaled, error) {
	if len(lb) != len(ub) {
		return nil, fmt.Errorf("%w: len(lb)=%d, len(ub)=%d", ErrDimensionMismatch, len(lb), len(ub))
	}

	seq, err := New(len(lb), opts...)
	if err != nil {
		return nil, err
	}

	return &Scaled{
		seq: seq,
		lb:  append([]float64(nil), lb...),
		ub:  append([]float64(nil), ub...),
	}, nil
}

// Dimension reports the fixed dimension count N.
func (sc *Scaled) Dimension() int { return sc.seq.dim }

// Next returns the next rescaled point as a freshly allocated slice.
func (sc *Scaled) Next() []float64 {
	p := make([]float64, sc.seq.dim)
	_ = sc.NextAt(p) // length matches by construction

	return p
}

// NextAt writes the next rescaled point into dst. Returns
// ErrDimensionMismatch (stream unadvanced) when len(dst) differs from
// Dimension().
func (sc *Scaled) NextAt(dst []float64) error {
	if err := sc.seq.NextAt(dst); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = sc.lb[i] + (sc.ub[i]-sc.lb[i])*dst[i]
	}

	return nil
}

// Skip delegates to the underlying sequence's heuristic Skip and
// returns the count consumed.
func (sc *Scaled) Skip(n int64) int64 { return sc.seq.Skip(n) }

// SkipExact delegates to the underlying sequence's SkipExact and
// returns the count consumed.
func (sc *Scaled) SkipExact(n int64) int64 { return sc.seq.SkipExact(n) }
