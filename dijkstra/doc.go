// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative weights.
//
// The planner uses it to tell a dispatcher how far each stop is from the
// depot over the street network, independent of any tour.
//
// Every incident edge is relaxed with its own weight, so the cheapest of
// several edges between a pair wins. Vertices that cannot be reached keep a
// distance of +Inf.
//
// Options:
//
//	Source(id)            required source vertex
//	WithReturnPath()      also return the predecessor map
//	WithMaxDistance(d)    do not settle vertices farther than d
//	WithInfEdgeThreshold  treat edges at or above the threshold as impassable
//
// Complexity: O((V + E) log V) time, O(V + E) memory (lazy decrease-key heap).
package dijkstra
