// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
)

// Common vertex keys used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
)

// snapshot captures everything observable about a graph so that two states
// can be compared with a single require.Equal.
type snapshot struct {
	Vertices  []core.Vertex
	Edges     []core.Edge
	Adjacency map[string][]string
}

func takeSnapshot(g *core.Graph) snapshot {
	return snapshot{
		Vertices:  g.AllVertices(),
		Edges:     g.AllEdges(),
		Adjacency: g.AdjacencyList(),
	}
}

// buildGraph adds vertices A..D and the given edges, failing the test on error.
func buildGraph(t *testing.T, directed bool, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, id := range []string{VertexA, VertexB, VertexC, VertexD} {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id, Name: "stop " + id}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}

	return g
}

// edgeSet reduces edges to key → weight for order-insensitive comparison.
func edgeSet(edges []core.Edge) map[string]float64 {
	out := make(map[string]float64, len(edges))
	for _, e := range edges {
		out[e.Key()] = e.Weight
	}

	return out
}

// sumWeights adds edge weights in slice order.
func sumWeights(edges []core.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
