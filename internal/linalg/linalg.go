// Package linalg provides small helpers for working with gonum dense
// matrices.
package linalg

import "gonum.org/v1/gonum/mat"

// ZeroedDense returns a rows×cols matrix of zeros, reusing dst when it
// already has the requested dimensions.
func ZeroedDense(dst *mat.Dense, rows, cols int) *mat.Dense {
	if dst == nil {
		return mat.NewDense(rows, cols, nil)
	}
	r, c := dst.Dims()
	if r != rows || c != cols {
		return mat.NewDense(rows, cols, nil)
	}
	dst.Zero()
	return dst
}

// SameDims reports whether a and b have identical dimensions.
func SameDims(a, b mat.Matrix) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}
