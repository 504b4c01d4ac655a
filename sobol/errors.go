// SPDX-License-Identifier: MIT

package sobol

import "errors"

var (
	// ErrInvalidDimension indicates a requested dimension count outside
	// [0, MaxDimension]. Raised by New/NewScaled only; no partial
	// generator is ever produced.
	ErrInvalidDimension = errors.New("sobol: dimension must be in [0, MaxDimension]")

	// ErrDimensionMismatch indicates a caller-supplied buffer or bounds
	// vector whose length disagrees with the sequence dimension. The
	// generator state is left unmutated by the failing call.
	ErrDimensionMismatch = errors.New("sobol: buffer length does not match sequence dimension")
)
