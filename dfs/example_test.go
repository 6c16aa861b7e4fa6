// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/dfs"
)

// ExampleWalk streams every simple path of a small directed graph.
func ExampleWalk() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge(core.NewEdge("depot", "bakery", 4))
	_ = g.AddEdge(core.NewEdge("depot", "market", 2))
	_ = g.AddEdge(core.NewEdge("market", "bakery", 1))

	stats, _ := dfs.Walk(g, "depot", func(path []string) error {
		fmt.Println(path)

		return nil
	})
	fmt.Println("paths:", stats.Paths, "depth:", stats.MaxDepth)

	// Output:
	// [depot bakery]
	// [depot market bakery]
	// paths: 2 depth: 3
}
