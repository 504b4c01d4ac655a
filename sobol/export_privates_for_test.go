// SPDX-License-Identifier: MIT

package sobol

import "math"

// Test-Bridge (White-Box) for Generator Internals
//
// Purpose:
//   - Expose counter/scale-marker state and the exhaustion transition to
//     sobol_test ONLY, without widening the prod API.
//   - The counter cannot be saturated through the public API in test
//     time (2^32−1 calls), so the bridge sets it directly.

// Exhaust_TestOnly saturates the point counter so that the next call
// exercises the pseudorandom fallback path.
func (s *Sequence) Exhaust_TestOnly() { s.n = math.MaxUint32 }

// Counter_TestOnly reports the number of points emitted so far.
func (s *Sequence) Counter_TestOnly() uint32 { return s.n }

// ScaleMarkers_TestOnly returns a copy of the per-dimension scale
// markers b[i].
func (s *Sequence) ScaleMarkers_TestOnly() []uint32 {
	return append([]uint32(nil), s.b...)
}

// DirectionRow_TestOnly returns a copy of dimension i's direction row
// (i is 1-based, matching the mathematical convention).
func (s *Sequence) DirectionRow_TestOnly(i int) []uint32 {
	return append([]uint32(nil), s.m[i-1]...)
}

// ExpandRow_TestOnly runs the direction-number recurrence on an
// arbitrary polynomial/seed pair.
func ExpandRow_TestOnly(a uint32, seeds []uint32) []uint32 {
	return expandRow(polyEntry{a: a, m: seeds})
}

// Inner_TestOnly returns the sequence wrapped by a Scaled adapter.
func (sc *Scaled) Inner_TestOnly() *Sequence { return sc.seq }
