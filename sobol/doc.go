// Package sobol generates Sobol low-discrepancy sequences: deterministic
// points in [0,1)^N whose prefixes cover the unit hypercube far more
// uniformly than independent pseudorandom draws.
//
// 🚀 What is a Sobol sequence?
//
//	A digital (t,s)-sequence in base 2. Each dimension carries a table of
//	32 “direction numbers” derived from a primitive polynomial over GF(2);
//	successive points are produced by XOR-ing a single direction number
//	into per-dimension integer state, following the Gray-code ordering of
//	the point counter. It is widely used in:
//	  • Quasi-Monte-Carlo integration (error ~ (log n)^N / n, not n^-1/2)
//	  • Global optimization (space-filling start points)
//	  • Sensitivity analysis & experimental design
//
// ✨ Key features:
//   - Gray-code recurrence: one XOR per dimension per point
//   - Exact integer→float conversion via power-of-two scaling (Ldexp);
//     the per-dimension scale marker keeps every emitted bit significant
//   - Skip / SkipExact burn-in; Skip uses the 2^m−1 heuristic
//   - Scaled variant mapping [0,1)^N onto an arbitrary [lb,ub] box
//   - Up to MaxDimension (32) dimensions from the embedded Joe–Kuo table
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quasirand/sobol"
//
//	seq, err := sobol.New(2)
//	if err != nil { ... }
//	seq.Skip(1024)            // burn-in: consumes 1023 points (2^10−1)
//	p := seq.Next()           // p[0], p[1] ∈ [0,1)
//
// Lifecycle & concurrency:
//
//	A Sequence is mutable single-owner state; every Next/NextAt/Skip call
//	advances it in place, and the stream is infinite and not restartable
//	(construct a fresh Sequence to replay it). Do not share one instance
//	across goroutines without external synchronization; distinct
//	instances share nothing and may run fully in parallel.
//
// Exhaustion:
//
//	The point counter is 32-bit. After 2^32−1 points the instance
//	permanently degrades to independent uniform pseudorandom output
//	(still in [0,1), no longer low-discrepancy). See WithFallbackSeed
//	for making that tail deterministic.
//
// Performance:
//
//   - Next:  O(N) time, zero allocations with NextAt
//   - New:   O(N·32) table construction, done once
//
// See examples in example_test.go.
package sobol
