// SPDX-License-Identifier: MIT

// Package sobol: functional configuration for sequence construction.
//
// Design goals:
//   - Deterministic behavior: no global state; randomness only in the
//     documented exhaustion fallback, and injectable there.
//   - Options fields are unexported; public APIs consume ...Option.
package sobol

// DefaultFallbackSeed is the zero value meaning "seed the exhaustion
// fallback from the wall clock". Any non-zero seed makes the fallback
// stream deterministic.
const DefaultFallbackSeed int64 = 0

// options is the internal settings aggregate gathered from ...Option.
type options struct {
	fallbackSeed int64
	burnIn       int64
}

// Option mutates construction-time settings of New / NewScaled.
type Option func(*options)

// WithFallbackSeed fixes the seed of the pseudorandom source used after
// the 32-bit point counter saturates. seed == DefaultFallbackSeed keeps
// the default wall-clock seeding. Deterministic seeds exist chiefly so
// tests can observe the degraded mode reproducibly.
func WithFallbackSeed(seed int64) Option {
	return func(o *options) { o.fallbackSeed = seed }
}

// WithBurnIn discards an initial run of points at construction using
// the heuristic Skip policy (the largest 2^m−1 not exceeding n).
// Values ≤ 0 are a no-op. For an exact burn-in length call SkipExact
// on the constructed sequence instead.
func WithBurnIn(n int64) Option {
	return func(o *options) { o.burnIn = n }
}

// gatherOptions applies opts over defaults.
func gatherOptions(opts []Option) options {
	o := options{fallbackSeed: DefaultFallbackSeed}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
