// SPDX-License-Identifier: MIT
// Package tsp_test provides fixtures shared across *_test.go files in this package.

package tsp_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
)

const (
	// wRing is the weight of the cheap forward ring A→B→D→C→A.
	wRing = 1
	// wOther is the weight of every other ordered pair in the ring fixture.
	wOther = 5
)

// edgesGraph builds a graph from edges; vertices are added in first-seen order.
func edgesGraph(t testing.TB, directed bool, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}

	return g
}

// ringGraph is the complete directed graph on A..D whose cheapest cycle
// from A is A→B→D→C→A.
func ringGraph(t testing.TB) *core.Graph {
	t.Helper()
	ids := []string{"A", "B", "C", "D"}
	cheap := map[string]bool{"A_B": true, "B_D": true, "D_C": true, "C_A": true}

	g := core.NewGraph(core.WithDirected(true))
	for _, id := range ids {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id, Name: "stop " + id}))
	}
	for _, u := range ids {
		for _, v := range ids {
			if u == v {
				continue
			}
			w := float64(wOther)
			if cheap[u+"_"+v] {
				w = wRing
			}
			require.NoError(t, g.AddEdge(core.NewEdge(u, v, w)))
		}
	}

	return g
}

// completeGraph is a complete directed graph on n vertices with weight
// |i-j| between Ni and Nj.
func completeGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(core.Vertex{ID: "N" + strconv.Itoa(i)}))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				d := i - j
				if d < 0 {
					d = -d
				}
				require.NoError(t, g.AddEdge(core.NewEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(j), float64(d))))
			}
		}
	}

	return g
}
