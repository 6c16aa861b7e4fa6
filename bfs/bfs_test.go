// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/bfs"
	"github.com/katalvlaran/salesman/core"
)

// diamond is the undirected graph A-B, A-C, B-D, C-D, D-E.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		require.NoError(t, g.AddEdge(core.NewEdge(e[0], e[1], 1)))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g := diamond(t)
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(diamond(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, 3, res.Depth["E"])
	assert.Equal(t, "B", res.Parent["D"])

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E"}, path)

	_, err = res.PathTo("Z")
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(diamond(t), "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(diamond(t), "A", bfs.WithFilterNeighbor(func(_, nb string) bool { return nb != "B" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E"}, res.Order)
	assert.False(t, res.Reached("B"))
}

func TestBFS_OnVisitAbortsAndCancel(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(diamond(t), "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return stop
		}

		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(diamond(t), "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestReachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge(core.NewEdge("A", "B", 1)))
	require.NoError(t, g.AddEdge(core.NewEdge("C", "A", 1)))

	got, err := bfs.Reachable(context.Background(), g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestUnreachable(t *testing.T) {
	t.Run("directed", func(t *testing.T) {
		g := core.NewGraph(core.WithDirected(true))
		for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"A", "D"}} {
			require.NoError(t, g.AddEdge(core.NewEdge(e[0], e[1], 1)))
		}
		require.NoError(t, g.AddVertex(core.Vertex{ID: "E"}))

		got, err := bfs.Unreachable(context.Background(), g, "A")
		require.NoError(t, err)
		assert.Equal(t, []string{"D", "E"}, got)

		// the search runs on a clone; g keeps its orientation
		assert.True(t, g.HasEdge("A_D"))
	})

	t.Run("undirected", func(t *testing.T) {
		g := core.NewGraph()
		require.NoError(t, g.AddEdge(core.NewEdge("A", "B", 1)))
		require.NoError(t, g.AddVertex(core.Vertex{ID: "C"}))

		got, err := bfs.Unreachable(context.Background(), g, "A")
		require.NoError(t, err)
		assert.Equal(t, []string{"C"}, got)
	})

	t.Run("strongly connected", func(t *testing.T) {
		got, err := bfs.Unreachable(context.Background(), diamond(t), "A")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
