// SPDX-License-Identifier: MIT

package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/tsp"
)

func TestClosesCycle(t *testing.T) {
	g := ringGraph(t)
	require.True(t, tsp.ClosesCycle(g, []string{"A", "B", "D", "C"}))
	require.True(t, tsp.IsHamiltonianCycle(g, []string{"A", "B", "D", "C"}))
	require.True(t, tsp.ClosesCycle(g, []string{"A", "B"}))
	require.False(t, tsp.IsHamiltonianCycle(g, []string{"A", "B"}))
	require.False(t, tsp.ClosesCycle(g, nil))
	require.False(t, tsp.ClosesCycle(nil, []string{"A"}))

	directed := edgesGraph(t, true, core.NewEdge("A", "B", 1))
	require.False(t, tsp.ClosesCycle(directed, []string{"A", "B"}))
}

func TestPathWeight(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(ringGraph(t))
	require.NoError(t, err)

	w, err := tsp.PathWeight(am, []string{"A", "B", "D", "C"}, false)
	require.NoError(t, err)
	require.Equal(t, 3.0, w)

	w, err = tsp.PathWeight(am, []string{"A", "B", "D", "C"}, true)
	require.NoError(t, err)
	require.Equal(t, 4.0, w)

	w, err = tsp.PathWeight(am, []string{"A"}, false)
	require.NoError(t, err)
	require.Zero(t, w)

	_, err = tsp.PathWeight(am, []string{"A", "Z"}, false)
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
}

func TestPathWeight_MissingLegIsInf(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(edgesGraph(t, true, core.NewEdge("A", "B", 1)))
	require.NoError(t, err)

	w, err := tsp.PathWeight(am, []string{"A", "B"}, true)
	require.NoError(t, err)
	require.True(t, math.IsInf(w, 1))
}
