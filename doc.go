// Package quasirand is a small, deterministic quasi-random (low-discrepancy)
// sequence library for numerical integration, optimization and sampling.
//
// 🚀 What is quasirand?
//
//	Pseudorandom points clump; low-discrepancy points cover. quasirand
//	generates Sobol sequences — deterministic point sets in [0,1)^N that
//	fill the unit hypercube far more evenly than math/rand ever will:
//		• Sobol sequences up to 32 dimensions (Joe–Kuo initialization)
//		• Exact bit-level Gray-code recurrence, no rounding drift
//		• Burn-in (skip) with the 2^m−1 heuristic from the QMC literature
//		• Affine rescaling onto arbitrary [lb,ub] boxes
//
// ✨ Why choose quasirand?
//
//   - Deterministic – same dimension, same calls, bit-identical points
//   - Minimal API – New, Next, NextAt, Skip; nothing to configure to start
//   - Honest errors – sentinel errors, no panics, no hidden logging
//   - Pure Go – no cgo, integer XOR arithmetic all the way down
//
// Everything lives in one subpackage:
//
//	sobol/ — direction-number tables, the Sequence state machine,
//	         Skip/SkipExact and the Scaled (rescaled-domain) variant
//
// A generator instance is mutable single-owner state: do not share one
// Sequence across goroutines without external locking. Distinct
// instances are fully independent.
//
//	go get github.com/katalvlaran/quasirand/sobol
package quasirand
