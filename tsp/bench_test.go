// SPDX-License-Identifier: MIT

package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/tsp"
)

// randomComplete is a seeded complete directed graph with street-scale
// weights.
func randomComplete(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(100, 2500))},
		builder.Complete(n),
	)
	require.NoError(b, err)

	return g
}

// BenchmarkSolve_Complete8 runs the exhaustive solver on 8 vertices (5040 paths).
func BenchmarkSolve_Complete8(b *testing.B) {
	g := randomComplete(b, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(g, tsp.WithClosingEdge(true)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Complete10 runs the solver at the default ceiling.
func BenchmarkSolve_Complete10(b *testing.B) {
	g := randomComplete(b, tsp.DefaultMaxVertices)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}
