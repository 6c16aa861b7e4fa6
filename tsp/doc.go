// SPDX-License-Identifier: MIT

// Package tsp solves the Traveling Salesman Problem on small core.Graph
// instances by exhaustive search.
//
// Solve runs a fixed pipeline:
//
//	Init       pick the start vertex, build the adjacency matrix once
//	Enumerate  stream every simple path from the start (dfs.Walk)
//	Filter     keep paths whose last vertex has an edge back to the start
//	Score      sum the path's edge weights (matrix lookups)
//	Select     keep the first path with the strictly smallest score
//
// Defaults reproduce the classic brute-force behavior: the closing edge is
// not part of the score, and a cycle is accepted even when it skips vertices
// the start cannot reach. WithClosingEdge and WithHamiltonian opt into the
// stricter rules.
//
// When no path passes the filter, Solve returns an empty Tour and a nil
// error; callers check Tour.Empty.
//
// Complexity:
//   - Time:   O(V! · V) in the worst (complete) graph.
//   - Memory: O(V² + E) for the matrix and neighbor tables; paths are streamed.
//
// The factorial cost is bounded by WithMaxVertices (DefaultMaxVertices unless
// set): larger graphs fail fast with ErrTooManyVertices.
package tsp
