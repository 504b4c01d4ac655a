// SPDX-License-Identifier: MIT

// Package sobol: direction-number table construction.
//
// The builder turns the embedded polynomial/seed dataset into the
// per-dimension 32-entry direction rows consumed by the Gray-code
// recurrence. It runs once per New call; rows are never mutated after
// construction.
package sobol

import (
	"fmt"
	"math/bits"
)

// numBits is the direction-row width and the precision (in bits) of the
// fixed-point state behind every emitted coordinate.
const numBits = 32

// newDirectionTable builds the dim×numBits direction-number table.
//
// Row 0 (dimension 1) is the trivial all-ones row with no polynomial.
// Row i (dimension i+1, i ≥ 1) seeds columns 0..d-1 from the dataset
// and derives columns d..31 by the standard GF(2) recurrence
//
//	m_j = m_{j-d} ⊕ ⊕_{k: a_k=1} ( m_{j-d+k} << (d-k) )
//
// which must run in increasing j since each column depends on earlier
// columns of the same row. Rows are independent of one another.
//
// Returns ErrInvalidDimension when dim is negative or beyond the
// embedded table's coverage; dim == 0 yields an empty table.
func newDirectionTable(dim int) ([][]uint32, error) {
	if dim < 0 || dim > MaxDimension {
		return nil, fmt.Errorf("%w: requested %d, supported 0..%d", ErrInvalidDimension, dim, MaxDimension)
	}

	table := make([][]uint32, dim)
	if dim == 0 {
		return table, nil
	}

	table[0] = make([]uint32, numBits)
	for j := range table[0] {
		table[0][j] = 1
	}
	for i := 1; i < dim; i++ {
		table[i] = expandRow(joeKuo[i-1])
	}

	return table, nil
}

// expandRow derives one full 32-column direction row from a dataset
// entry. Pure; does not retain or mutate the entry's seed slice.
func expandRow(p polyEntry) []uint32 {
	d := bits.Len32(p.a) - 1 // polynomial degree

	row := make([]uint32, numBits)
	copy(row, p.m)
	for j := d; j < numBits; j++ {
		v := row[j-d]
		for k := 0; k < d; k++ {
			if p.a>>k&1 == 1 {
				v ^= row[j-d+k] << (d - k)
			}
		}
		row[j] = v
	}

	return row
}
