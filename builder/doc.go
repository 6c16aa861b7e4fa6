// SPDX-License-Identifier: MIT

// Package builder generates deterministic synthetic graphs for benchmarks,
// tests and the CLI bench command.
//
// One orchestrator, BuildGraph, creates the core.Graph, resolves the
// functional options into a builderConfig and applies the constructors in
// order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(100, 2000))},
//		builder.Complete(8),
//	)
//
// Constructors:
//
//	Complete(n)        every ordered pair (directed) or unordered pair
//	Cycle(n)           i → (i+1) mod n
//	RandomSparse(n, p) each admissible pair kept with probability p
//
// Determinism: the same options, seed and constructor order yield the same
// vertex order, edge order and weights.
//
// Constructors validate their parameters and return sentinel errors; option
// constructors panic on programmer error (nil functions, bad ranges).
package builder
