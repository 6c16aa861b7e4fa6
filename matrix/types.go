// SPDX-License-Identifier: MIT

package matrix

import "math"

// NoEdge marks a cell with no direct edge. Weights are finite, so NoEdge
// never collides with a real weight.
var NoEdge = math.Inf(1)

// IsNoEdge reports whether w is the NoEdge sentinel.
func IsNoEdge(w float64) bool { return math.IsInf(w, 1) }

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
