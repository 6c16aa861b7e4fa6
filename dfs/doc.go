// SPDX-License-Identifier: MIT

// Package dfs enumerates every simple path of a core.Graph that starts at a
// given vertex, depth-first, using an explicit stack.
//
// Key features:
//   - Walk(g, start, visit, opts...): stream each complete path to a visitor
//   - AllPaths(g, start, opts...): collect every complete path
//   - Deterministic output: neighbors are explored in adjacency order
//   - Cancellation via context.Context
//
// A path is complete when its last vertex has no unvisited neighbor. Each
// stack frame snapshots the unvisited neighbors of its vertex when it is
// pushed; parallel edges therefore yield the same neighbor twice, and the
// same path is then reported more than once.
//
// Complexity:
//
//   - Time:   O(V!) paths in the worst case; every path costs O(V) to extend.
//   - Memory: O(V + E) for the neighbor table, visited flags and stack.
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithMaxPaths(n)      aborts with ErrPathLimit once more than n paths complete.
//   - WithOnExpand(fn)     pre-order hook on frame push; error aborts traversal.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - ErrPathLimit              if WithMaxPaths is exceeded.
//   - context.Canceled          if ctx is done.
//   - any error returned by the visitor or OnExpand, except ErrStop.
package dfs
