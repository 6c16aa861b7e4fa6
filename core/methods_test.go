// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-order determinism for vertices, edges and adjacency.
//   - Validate sentinel errors for duplicate/missing edges and bad input.
//   - Check the structural properties the solvers rely on (round-trip, weight sum, reverse involution).

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
)

func TestEdge_KeyAndOther(t *testing.T) {
	e := core.NewEdge(VertexA, VertexB, Weight2)
	assert.Equal(t, "A_B", e.Key())
	assert.Equal(t, VertexB, e.Other(VertexA))
	assert.Equal(t, VertexA, e.Other(VertexB))

	r := e.Reversed()
	assert.Equal(t, "B_A", r.Key())
	assert.Equal(t, e.Weight, r.Weight)

	loop := core.NewEdge(VertexC, VertexC, Weight0)
	assert.Equal(t, VertexC, loop.Other(VertexC))
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(core.Vertex{ID: VertexEmpty}), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(core.Vertex{ID: VertexB, Name: "bakery"}))
	require.NoError(t, g.AddVertex(core.Vertex{ID: VertexA, Name: "depot"}))
	require.NoError(t, g.AddEdge(core.NewEdge(VertexB, VertexA, Weight1)))

	// Overwrite keeps order and adjacency, replaces the record.
	require.NoError(t, g.AddVertex(core.Vertex{ID: VertexB, Name: "bakery 2", Lat: 9.5, Lng: -75.5}))
	vs := g.AllVertices()
	require.Len(t, vs, 2)
	assert.Equal(t, VertexB, vs[0].ID)
	assert.Equal(t, "bakery 2", vs[0].Name)
	assert.Equal(t, 9.5, vs[0].Lat)
	nb, err := g.Neighbors(VertexB)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA}, nb)

	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	assert.Equal(t, "depot", v.Name)
	_, err = g.Vertex(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasVertex(VertexEmpty))
	assert.Equal(t, "B,A", g.String())
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge(core.NewEdge(VertexEmpty, VertexA, Weight1)), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge(core.NewEdge(VertexA, VertexB, -1)), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge(core.NewEdge(VertexA, VertexB, math.NaN())), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge(core.NewEdge(VertexA, VertexB, math.Inf(1))), core.ErrBadWeight)
	assert.Zero(t, g.VertexCount(), "rejected edges must not insert endpoints")
}

func TestGraph_AddEdgeAutoInsertsEndpoints(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge(core.NewEdge(VertexC, VertexA, Weight3)))

	vs := g.AllVertices()
	require.Len(t, vs, 2)
	assert.Equal(t, core.Vertex{ID: VertexC}, vs[0])
	assert.Equal(t, core.Vertex{ID: VertexA}, vs[1])

	e, err := g.Connect(core.Vertex{ID: VertexD, Name: "dock"}, core.Vertex{ID: VertexA, Name: "ignored"}, Weight1)
	require.NoError(t, err)
	assert.Equal(t, "D_A", e.Key())
	d, err := g.Vertex(VertexD)
	require.NoError(t, err)
	assert.Equal(t, "dock", d.Name)
	a, err := g.Vertex(VertexA)
	require.NoError(t, err)
	assert.Empty(t, a.Name, "Connect must not overwrite an existing vertex")
}

func TestGraph_DuplicateEdge(t *testing.T) {
	g := buildGraph(t, true, core.NewEdge(VertexA, VertexB, Weight1))

	err := g.AddEdge(core.NewEdge(VertexA, VertexB, Weight5))
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
	e, err := g.Edge("A_B")
	require.NoError(t, err)
	assert.Equal(t, float64(Weight1), e.Weight, "duplicate insert must not overwrite")

	_, err = g.Connect(core.Vertex{ID: VertexA}, core.Vertex{ID: VertexB}, Weight5)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	// The antiparallel edge has a different key and is accepted.
	require.NoError(t, g.AddEdge(core.NewEdge(VertexB, VertexA, Weight2)))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_AdjacencyByOrientation(t *testing.T) {
	t.Run("directed", func(t *testing.T) {
		g := buildGraph(t, true,
			core.NewEdge(VertexA, VertexB, Weight1),
			core.NewEdge(VertexA, VertexC, Weight2),
		)
		adj := g.AdjacencyList()
		assert.Equal(t, []string{"A_B", "A_C"}, adj[VertexA])
		assert.Empty(t, adj[VertexB])
		assert.Empty(t, adj[VertexC])

		nb, err := g.Neighbors(VertexA)
		require.NoError(t, err)
		assert.Equal(t, []string{VertexB, VertexC}, nb)
	})

	t.Run("undirected", func(t *testing.T) {
		g := buildGraph(t, false,
			core.NewEdge(VertexA, VertexB, Weight1),
			core.NewEdge(VertexC, VertexA, Weight2),
			core.NewEdge(VertexD, VertexD, Weight0),
		)
		adj := g.AdjacencyList()
		assert.Equal(t, []string{"A_B", "C_A"}, adj[VertexA])
		assert.Equal(t, []string{"A_B"}, adj[VertexB])
		assert.Equal(t, []string{"C_A"}, adj[VertexC])
		assert.Equal(t, []string{"D_D"}, adj[VertexD], "self-loop is linked once")

		nb, err := g.Neighbors(VertexA)
		require.NoError(t, err)
		assert.Equal(t, []string{VertexB, VertexC}, nb)
		deg, err := g.Degree(VertexA)
		require.NoError(t, err)
		assert.Equal(t, 2, deg)
	})

	t.Run("missing vertex", func(t *testing.T) {
		g := core.NewGraph()
		_, err := g.Neighbors(VertexX)
		require.ErrorIs(t, err, core.ErrVertexNotFound)
		_, err = g.Degree(VertexX)
		require.ErrorIs(t, err, core.ErrVertexNotFound)
	})
}

func TestGraph_DeleteEdge(t *testing.T) {
	g := buildGraph(t, false,
		core.NewEdge(VertexA, VertexB, Weight1),
		core.NewEdge(VertexB, VertexC, Weight2),
	)

	require.ErrorIs(t, g.DeleteEdge("C_B"), core.ErrEdgeNotFound)

	require.NoError(t, g.DeleteEdge("B_C"))
	adj := g.AdjacencyList()
	assert.Equal(t, []string{"A_B"}, adj[VertexB])
	assert.Empty(t, adj[VertexC])
	assert.False(t, g.HasEdge("B_C"))
	_, err := g.Edge("B_C")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Equal(t, 4, g.VertexCount(), "deleting an edge keeps its endpoints")
}

func TestGraph_AddDeleteRoundTrip(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g := buildGraph(t, directed,
			core.NewEdge(VertexA, VertexB, Weight1),
			core.NewEdge(VertexB, VertexC, Weight2),
			core.NewEdge(VertexC, VertexA, Weight3),
		)
		before := takeSnapshot(g)

		e := core.NewEdge(VertexB, VertexA, Weight5)
		require.NoError(t, g.AddEdge(e))
		stored, err := g.Edge(e.Key())
		require.NoError(t, err)
		require.NoError(t, g.DeleteEdge(stored.Key()))

		assert.Equal(t, before, takeSnapshot(g), "directed=%v", directed)
	}
}

func TestGraph_WeightMatchesEdgeSum(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	assert.Zero(t, g.Weight())

	steps := []struct {
		add    *core.Edge
		delete string
	}{
		{add: &core.Edge{Start: VertexA, End: VertexB, Weight: 1.5}},
		{add: &core.Edge{Start: VertexB, End: VertexC, Weight: 2}},
		{add: &core.Edge{Start: VertexC, End: VertexA, Weight: 4.25}},
		{delete: "B_C"},
		{add: &core.Edge{Start: VertexB, End: VertexD, Weight: 7}},
		{delete: "A_B"},
		{add: &core.Edge{Start: VertexA, End: VertexB, Weight: 0}},
	}
	for i, s := range steps {
		if s.add != nil {
			require.NoError(t, g.AddEdge(*s.add), "step %d", i)
		} else {
			require.NoError(t, g.DeleteEdge(s.delete), "step %d", i)
		}
		assert.InDelta(t, sumWeights(g.AllEdges()), g.Weight(), 1e-12, "step %d", i)
	}
	assert.InDelta(t, 11.25, g.Weight(), 1e-12)
}

func TestGraph_FindEdge(t *testing.T) {
	t.Run("directed", func(t *testing.T) {
		g := buildGraph(t, true,
			core.NewEdge(VertexA, VertexB, Weight1),
			core.NewEdge(VertexB, VertexA, Weight3),
		)
		e, ok := g.FindEdge(VertexA, VertexB)
		require.True(t, ok)
		assert.Equal(t, "A_B", e.Key())
		e, ok = g.FindEdge(VertexB, VertexA)
		require.True(t, ok)
		assert.Equal(t, "B_A", e.Key())
		_, ok = g.FindEdge(VertexA, VertexC)
		assert.False(t, ok)
		_, ok = g.FindEdge(VertexX, VertexA)
		assert.False(t, ok)
		assert.True(t, g.HasNeighbor(VertexA, VertexB))
		assert.False(t, g.HasNeighbor(VertexC, VertexA))
	})

	t.Run("undirected parallel pair returns earliest", func(t *testing.T) {
		g := buildGraph(t, false,
			core.NewEdge(VertexA, VertexB, Weight1),
			core.NewEdge(VertexB, VertexA, Weight3),
		)
		e, ok := g.FindEdge(VertexB, VertexA)
		require.True(t, ok)
		assert.Equal(t, "A_B", e.Key())

		nb, err := g.Neighbors(VertexA)
		require.NoError(t, err)
		assert.Equal(t, []string{VertexB, VertexB}, nb)
	})
}

func TestGraph_IncidentEdges(t *testing.T) {
	g := buildGraph(t, false,
		core.NewEdge(VertexA, VertexB, Weight1),
		core.NewEdge(VertexB, VertexA, Weight3),
	)
	edges, err := g.IncidentEdges(VertexA)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "A_B", edges[0].Key())
	assert.Equal(t, "B_A", edges[1].Key())
	assert.Equal(t, float64(Weight3), edges[1].Weight)

	_, err = g.IncidentEdges(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_ReverseInvolution(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g := buildGraph(t, directed,
			core.NewEdge(VertexA, VertexB, Weight1),
			core.NewEdge(VertexB, VertexA, Weight2),
			core.NewEdge(VertexB, VertexC, Weight3),
			core.NewEdge(VertexD, VertexA, Weight5),
		)
		original := edgeSet(g.AllEdges())

		g.Reverse()
		reversed := edgeSet(g.AllEdges())
		assert.Equal(t, map[string]float64{"B_A": 1, "A_B": 2, "C_B": 3, "A_D": 5}, reversed)
		assertConsistent(t, g)

		g.Reverse()
		assert.Equal(t, original, edgeSet(g.AllEdges()), "directed=%v", directed)
		assertConsistent(t, g)
	}
}

func TestGraph_ReverseDirectedAdjacency(t *testing.T) {
	g := buildGraph(t, true,
		core.NewEdge(VertexA, VertexB, Weight1),
		core.NewEdge(VertexA, VertexC, Weight2),
	)
	g.Reverse()
	adj := g.AdjacencyList()
	assert.Empty(t, adj[VertexA])
	assert.Equal(t, []string{"B_A"}, adj[VertexB])
	assert.Equal(t, []string{"C_A"}, adj[VertexC])
	assert.InDelta(t, 3.0, g.Weight(), 0)
}

func TestGraph_VertexIndices(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(core.NewEdge(VertexC, VertexA, Weight1)))
	require.NoError(t, g.AddVertex(core.Vertex{ID: VertexB}))
	assert.Equal(t, map[string]int{VertexC: 0, VertexA: 1, VertexB: 2}, g.VertexIndices())
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := buildGraph(t, true, core.NewEdge(VertexA, VertexB, Weight1))
	clone := g.Clone()
	assert.Equal(t, takeSnapshot(g), takeSnapshot(clone))
	assert.True(t, clone.Directed())

	require.NoError(t, clone.AddEdge(core.NewEdge(VertexB, VertexC, Weight2)))
	require.NoError(t, clone.DeleteEdge("A_B"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("A_B"))
	assert.False(t, g.HasEdge("B_C"))
}

// assertConsistent checks invariants 1 and 2: the catalog and the adjacency
// lists reference exactly the same edges, linked where the orientation says.
func assertConsistent(t *testing.T, g *core.Graph) {
	t.Helper()
	adj := g.AdjacencyList()
	linked := make(map[string]int)
	for _, keys := range adj {
		for _, k := range keys {
			linked[k]++
		}
	}
	for _, e := range g.AllEdges() {
		want := 1
		if !g.Directed() && e.Start != e.End {
			want = 2
		}
		assert.Equal(t, want, linked[e.Key()], "edge %s", e.Key())
		assert.Contains(t, adj[e.Start], e.Key())
		delete(linked, e.Key())
	}
	assert.Empty(t, linked, "adjacency references unknown edges")
}
