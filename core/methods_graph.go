// SPDX-License-Identifier: MIT
// File: methods_graph.go
// Role: Whole-graph operations: Weight, Reverse, Clone.

package core

// Weight returns the sum of all edge weights, added in insertion order.
// Complexity: O(E).
func (g *Graph) Weight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var total float64
	for _, key := range g.edgeOrder {
		total += g.edges[key].Weight
	}

	return total
}

// Reverse flips every edge in place of the original.
//
// Steps:
//  1. Snapshot AllEdges() order.
//  2. Drop every edge and empty every adjacency list.
//  3. Re-link the flipped copies in snapshot order.
//
// Removing everything before re-adding keeps antiparallel pairs (A_B next to
// B_A) from colliding half-way through; flipping is a bijection on keys, so
// the second phase cannot hit ErrDuplicateEdge. Adjacency invariants hold on
// return and Reverse(Reverse(g)) restores the original edge set.
//
// Complexity: O(V + E).
func (g *Graph) Reverse() {
	g.mu.Lock()
	defer g.mu.Unlock()
	snapshot := make([]Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		snapshot = append(snapshot, g.edges[key])
	}
	g.edges = make(map[string]Edge, len(snapshot))
	g.edgeOrder = g.edgeOrder[:0]
	for key := range g.adjacency {
		g.adjacency[key] = nil
	}
	for _, e := range snapshot {
		g.linkEdge(e.Reversed())
	}
}

// Clone returns a deep copy: orientation, vertices, edges and adjacency, all
// with the same iteration order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := NewGraph(WithDirected(g.directed))
	for _, key := range g.vertexOrder {
		clone.putVertex(g.vertices[key])
	}
	for _, key := range g.edgeOrder {
		clone.edges[key] = g.edges[key]
	}
	clone.edgeOrder = append(clone.edgeOrder, g.edgeOrder...)
	for key, adj := range g.adjacency {
		clone.adjacency[key] = append([]string(nil), adj...)
	}

	return clone
}
