// SPDX-License-Identifier: MIT

// Package matrix offers the dense adjacency-matrix view of a core.Graph used
// for weight lookups by the TSP solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - AdjacencyMatrix, built once from a graph snapshot: row/column i is the
//     vertex with dense index i (core.Graph.VertexIndices), cell (i,j) holds
//     the weight of the edge leading from i to j, or NoEdge (+Inf).
//
// Directed graphs yield asymmetric matrices. In undirected graphs an edge
// fills both (i,j) and (j,i). Where several edges join the same pair, the
// cell holds the weight of the edge core.Graph.FindEdge returns.
//
// Matrices are best for the small graphs brute-force search can handle:
// O(V²) memory and O(V² + E·deg) build time.
package matrix
