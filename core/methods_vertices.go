// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - AllVertices() and VertexIndices() follow insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"strings"
)

// AddVertex inserts v, or overwrites the stored record when the key exists.
//
// Behavior highlights:
//   - An overwrite replaces Name/Lat/Lng only: the vertex keeps its position
//     in iteration order and its adjacency list.
//
// Errors:
//   - ErrEmptyVertexID: if v.ID == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.putVertex(v)

	return nil
}

// putVertex upserts v. Caller holds mu.
func (g *Graph) putVertex(v Vertex) {
	if _, exists := g.vertices[v.ID]; !exists {
		g.vertexOrder = append(g.vertexOrder, v.ID)
		g.adjacency[v.ID] = nil
	}
	g.vertices[v.ID] = v
}

// ensureVertex inserts a bare vertex for key if it is missing. Caller holds mu.
func (g *Graph) ensureVertex(key string) {
	if _, exists := g.vertices[key]; !exists {
		g.putVertex(Vertex{ID: key})
	}
}

// Vertex returns the record stored under key.
// Complexity: O(1).
func (g *Graph) Vertex(key string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[key]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return v, nil
}

// HasVertex reports whether a vertex with the given key exists.
// Complexity: O(1).
func (g *Graph) HasVertex(key string) bool {
	if key == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[key]

	return ok
}

// AllVertices returns a snapshot of every vertex in insertion order.
// Complexity: O(V).
func (g *Graph) AllVertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vertex, 0, len(g.vertexOrder))
	for _, key := range g.vertexOrder {
		out = append(out, g.vertices[key])
	}

	return out
}

// VertexIndices assigns the dense index 0..|V|-1 to every vertex key,
// following AllVertices order. Matrices built from the graph use it for
// row/column placement.
// Complexity: O(V).
func (g *Graph) VertexIndices() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx := make(map[string]int, len(g.vertexOrder))
	for i, key := range g.vertexOrder {
		idx[key] = i
	}

	return idx
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Neighbors returns the other endpoint of every edge in key's adjacency list,
// in adjacency order. Parallel edges yield repeated neighbors.
//
// Errors:
//   - ErrVertexNotFound: if key is absent.
//
// Complexity: O(deg(key)).
func (g *Graph) Neighbors(key string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[key]; !ok {
		return nil, ErrVertexNotFound
	}
	adj := g.adjacency[key]
	out := make([]string, 0, len(adj))
	for _, ek := range adj {
		out = append(out, g.edges[ek].Other(key))
	}

	return out, nil
}

// HasNeighbor reports whether some edge in u's adjacency list leads to v.
func (g *Graph) HasNeighbor(u, v string) bool {
	_, ok := g.FindEdge(u, v)

	return ok
}

// Degree returns the length of key's adjacency list.
func (g *Graph) Degree(key string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[key]; !ok {
		return 0, fmt.Errorf("Degree(%q): %w", key, ErrVertexNotFound)
	}

	return len(g.adjacency[key]), nil
}

// String lists the vertex keys in iteration order, comma separated.
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return strings.Join(g.vertexOrder, ",")
}
