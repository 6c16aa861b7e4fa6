// SPDX-License-Identifier: MIT

// Package bfs runs breadth-first search over a core.Graph and reports the
// visit order, hop depths and parent links of every reached vertex.
//
// BFS follows adjacency order, so the visit sequence is reproducible. Edge
// weights are ignored: depth counts hops, not meters.
//
// Reachable and Unreachable are the reachability shortcuts the planner uses
// before an exhaustive search: a round trip through every stop exists only if
// each stop can be reached from the depot and can reach it back.
//
// Options:
//
//	WithContext        cancellation, checked once per dequeue
//	WithOnVisit        hook per visited vertex; an error aborts the search
//	WithMaxDepth       stop expanding past d hops (0 = unlimited)
//	WithFilterNeighbor skip individual curr→neighbor steps
//
// Complexity: O(V + E) time and O(V) memory.
package bfs
