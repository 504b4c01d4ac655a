// SPDX-License-Identifier: MIT

// Package sobol: embedded direction-number initialization data.
//
// Each entry pairs a primitive polynomial over GF(2) with the initial
// direction numbers for one dimension. Polynomials are encoded as their
// full coefficient bit string (leading term included), so the degree is
// recoverable as floor(log2(a)). Initial values m_1..m_d are the
// Joe–Kuo "new-joe-kuo-6" choices: each m_j is odd and m_j < 2^j.
//
// Dimension 1 needs no entry (its direction row is all ones); the table
// therefore starts at dimension 2, and MaxDimension = len(table)+1.
package sobol

// MaxDimension is the largest dimension count New accepts: one more
// than the number of polynomial entries in the embedded table.
const MaxDimension = 32

// polyEntry holds one dimension's primitive polynomial and its initial
// direction numbers.
type polyEntry struct {
	a uint32   // polynomial coefficient bits, degree = floor(log2(a))
	m []uint32 // initial direction numbers m_1..m_d, all odd
}

// joeKuo covers dimensions 2..MaxDimension, in order.
// See Joe & Kuo 2008, "Constructing Sobol sequences with better
// two-dimensional projections".
var joeKuo = []polyEntry{
	{a: 3, m: []uint32{1}},                              // dim 2:  x+1
	{a: 7, m: []uint32{1, 3}},                           // dim 3:  x²+x+1
	{a: 11, m: []uint32{1, 3, 1}},                       // dim 4:  x³+x+1
	{a: 13, m: []uint32{1, 1, 1}},                       // dim 5:  x³+x²+1
	{a: 19, m: []uint32{1, 1, 3, 3}},                    // dim 6:  x⁴+x+1
	{a: 25, m: []uint32{1, 3, 5, 13}},                   // dim 7:  x⁴+x³+1
	{a: 37, m: []uint32{1, 1, 5, 5, 17}},                // dim 8:  x⁵+x²+1
	{a: 41, m: []uint32{1, 1, 5, 5, 5}},                 // dim 9:  x⁵+x³+1
	{a: 47, m: []uint32{1, 1, 7, 11, 19}},               // dim 10
	{a: 55, m: []uint32{1, 1, 5, 1, 1}},                 // dim 11
	{a: 59, m: []uint32{1, 1, 1, 3, 11}},                // dim 12
	{a: 61, m: []uint32{1, 3, 5, 5, 31}},                // dim 13
	{a: 67, m: []uint32{1, 3, 3, 9, 7, 49}},             // dim 14: x⁶+x+1
	{a: 91, m: []uint32{1, 1, 1, 15, 21, 21}},           // dim 15
	{a: 97, m: []uint32{1, 3, 1, 13, 27, 49}},           // dim 16
	{a: 103, m: []uint32{1, 1, 1, 15, 7, 5}},            // dim 17
	{a: 109, m: []uint32{1, 3, 1, 15, 13, 25}},          // dim 18
	{a: 115, m: []uint32{1, 1, 5, 5, 19, 61}},           // dim 19
	{a: 131, m: []uint32{1, 3, 7, 11, 23, 15, 103}},     // dim 20: x⁷+x+1
	{a: 137, m: []uint32{1, 3, 7, 13, 13, 15, 69}},      // dim 21
	{a: 143, m: []uint32{1, 1, 3, 13, 7, 35, 63}},       // dim 22
	{a: 145, m: []uint32{1, 3, 5, 9, 1, 25, 53}},        // dim 23
	{a: 157, m: []uint32{1, 3, 1, 13, 9, 35, 107}},      // dim 24
	{a: 167, m: []uint32{1, 3, 1, 5, 27, 61, 131}},      // dim 25
	{a: 171, m: []uint32{1, 1, 5, 11, 19, 41, 185}},     // dim 26
	{a: 185, m: []uint32{1, 3, 5, 3, 5, 13, 141}},       // dim 27
	{a: 191, m: []uint32{1, 1, 5, 1, 3, 13, 239}},       // dim 28
	{a: 193, m: []uint32{1, 3, 5, 3, 15, 51, 175}},      // dim 29
	{a: 203, m: []uint32{1, 1, 5, 5, 23, 9, 171}},       // dim 30
	{a: 211, m: []uint32{1, 3, 5, 3, 29, 9, 101}},       // dim 31
	{a: 213, m: []uint32{1, 3, 3, 9, 9, 37, 93}},        // dim 32
}
