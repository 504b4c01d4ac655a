// SPDX-License-Identifier: MIT

package sobol

import "math/bits"

// Skip advances the sequence past an initial run of points without
// returning them, using the burn-in heuristic from the QMC literature:
// the count actually consumed is the largest value of the form 2^m−1
// not exceeding n. Power-of-two-aligned prefixes leave the remaining
// points better distributed than an arbitrary offset would.
//
// n ≤ 0 is a no-op. Returns the count actually consumed (so Skip(5)
// returns 3). Use SkipExact to discard precisely n points.
func (s *Sequence) Skip(n int64) int64 {
	if n <= 0 {
		return 0
	}

	k := int64(1)<<(bits.Len64(uint64(n+1))-1) - 1

	return s.SkipExact(k)
}

// SkipExact advances the sequence by exactly n points, discarding each
// one. State advances identically to n ordinary NextAt calls. n ≤ 0 is
// a no-op. Returns the count consumed.
func (s *Sequence) SkipExact(n int64) int64 {
	if n <= 0 {
		return 0
	}

	buf := make([]float64, s.dim)
	for i := int64(0); i < n; i++ {
		_ = s.NextAt(buf) // length matches by construction
	}

	return n
}
