// SPDX-License-Identifier: MIT

// Package core provides the in-memory weighted graph used by the salesman
// solvers: a single owner of vertex records, immutable edge values and
// per-vertex adjacency lists, all related through string keys.
//
// The Graph G = (V,E) keeps three keyed collections:
//
//   - vertices:  vertex key → Vertex (insertion-ordered, upsert on re-add)
//   - edges:     edge key   → Edge   (insertion-ordered, duplicates rejected)
//   - adjacency: vertex key → ordered list of edge keys
//
// Nothing points back: a Vertex does not hold its edges and an Edge only
// stores the keys of its endpoints. The "other endpoint" of an edge is
// computed relative to the vertex asking (Edge.Other), which is how a single
// undirected edge is shared by both endpoints' adjacency lists.
//
// Orientation (WithDirected):
//
//   - Directed graphs list an edge only under its start vertex.
//   - Undirected graphs list it under both endpoints (a self-loop once).
//
// Iteration order is insertion order everywhere (AllVertices, AllEdges,
// Neighbors, VertexIndices). It is part of the contract: the brute-force
// enumerator walks neighbors in this order, so it decides which of several
// equal-weight tours a solver reports first.
//
// Core Methods:
//
//	// Vertices
//	AddVertex(v Vertex) error                          // O(1) amortized
//	Vertex(key string) (Vertex, error)                 // O(1)
//	HasVertex(key string) bool                         // O(1)
//	AllVertices() []Vertex                             // O(V)
//	VertexIndices() map[string]int                     // O(V)
//
//	// Edges
//	AddEdge(e Edge) error                              // O(1) amortized
//	Connect(from, to Vertex, w float64) (Edge, error)  // O(1) amortized
//	DeleteEdge(key string) error                       // O(E + deg)
//	Edge(key string) (Edge, error)                     // O(1)
//	FindEdge(u, v string) (Edge, bool)                 // O(deg(u))
//	AllEdges() []Edge                                  // O(E)
//
//	// Whole graph
//	Neighbors(key string) ([]string, error)            // O(deg)
//	Weight() float64                                   // O(E)
//	Reverse()                                          // O(V + E)
//	Clone() *Graph                                     // O(V + E)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex key
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – DeleteEdge/Edge on an unknown edge key
//	ErrDuplicateEdge   – AddEdge with a key that is already registered
//	ErrBadWeight       – negative, NaN or infinite edge weight
//
// Known limitations:
//
//   - Edge keys are "<start>_<end>"; vertex keys containing '_' can collide.
//     Dataset keys are stringified integers, which never do.
//   - FindEdge returns the earliest-inserted edge when several edges join the
//     same ordered pair (possible in undirected graphs holding both A_B and B_A).
package core
