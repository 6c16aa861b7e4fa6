// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/matrix"
)

func graphOf(t *testing.T, directed bool, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}

	return g
}

func TestNewAdjacencyMatrix_NilGraph(t *testing.T) {
	_, err := matrix.NewAdjacencyMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestNewAdjacencyMatrix_Empty(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(core.NewGraph())
	require.NoError(t, err)
	require.Equal(t, 0, am.VertexCount())
	require.Equal(t, 0, am.Mat.Rows())
}

func TestNewAdjacencyMatrix_DirectedIsAsymmetric(t *testing.T) {
	g := graphOf(t, true,
		core.NewEdge("A", "B", 2),
		core.NewEdge("B", "C", 3),
		core.NewEdge("C", "A", 0),
	)
	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)
	require.Equal(t, 4, am.VertexCount())

	w, err := am.Weight("A", "B")
	require.NoError(t, err)
	require.Equal(t, 2.0, w)

	w, err = am.Weight("B", "A")
	require.NoError(t, err)
	require.True(t, matrix.IsNoEdge(w))

	// zero-weight edges are real edges
	require.True(t, am.HasEdge("C", "A"))
	require.False(t, am.HasEdge("A", "C"))
	require.False(t, am.HasEdge("A", "A"))
}

func TestNewAdjacencyMatrix_UndirectedIsSymmetric(t *testing.T) {
	g := graphOf(t, false,
		core.NewEdge("A", "B", 2),
		core.NewEdge("B", "D", 7),
	)
	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	vals := am.Mat.Values()
	for i := range vals {
		for j := range vals[i] {
			require.Equal(t, vals[i][j], vals[j][i], "cell (%d,%d)", i, j)
		}
	}
	require.True(t, am.HasEdge("D", "B"))
}

// Every cell is NoEdge exactly when FindEdge reports no edge from i to j.
func TestNewAdjacencyMatrix_SentinelMatchesGraph(t *testing.T) {
	g := graphOf(t, true,
		core.NewEdge("A", "B", 1),
		core.NewEdge("B", "A", 4),
		core.NewEdge("C", "C", 5),
		core.NewEdge("D", "A", 1.5),
	)
	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	for _, u := range g.AllVertices() {
		for _, v := range g.AllVertices() {
			e, ok := g.FindEdge(u.ID, v.ID)
			w, err := am.Weight(u.ID, v.ID)
			require.NoError(t, err)
			if ok {
				require.Equal(t, e.Weight, w)
			} else {
				require.True(t, matrix.IsNoEdge(w))
			}
		}
	}
}

func TestNewAdjacencyMatrix_ParallelEdgesUseFirst(t *testing.T) {
	// In an undirected graph A_B and B_A are distinct keys on the same pair.
	g := graphOf(t, false,
		core.NewEdge("A", "B", 3),
		core.NewEdge("B", "A", 9),
	)
	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	w, err := am.Weight("A", "B")
	require.NoError(t, err)
	require.Equal(t, 3.0, w)
	w, err = am.Weight("B", "A")
	require.NoError(t, err)
	require.Equal(t, 3.0, w)
}

func TestAdjacencyMatrix_Lookups(t *testing.T) {
	g := graphOf(t, true, core.NewEdge("A", "C", 1), core.NewEdge("A", "B", 1))
	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	i, err := am.Index("C")
	require.NoError(t, err)
	require.Equal(t, 2, i)

	id, err := am.VertexID(3)
	require.NoError(t, err)
	require.Equal(t, "D", id)

	_, err = am.VertexID(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = am.Index("Z")
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)

	_, err = am.Weight("A", "Z")
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)

	nbs, err := am.Neighbors("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, nbs)
}
