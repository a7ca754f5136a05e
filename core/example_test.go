package core_test

import (
	"fmt"

	"github.com/katalvlaran/polymaze/core"
)

// ExampleGraph demonstrates basic creation, one-way edges and legal moves.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex(0, core.V(0, 0, 0), 0)
	_ = g.AddVertex(1, core.V(1, 0, 0), 0)
	_ = g.AddVertex(2, core.V(2, 0, 0), 0)

	_, _ = g.AddEdge(0, 1, 1)
	id, _ := g.AddEdge(1, 2, 1)

	// Make 1-2 one-way from 2 back to 1.
	_ = g.SetDirection(id, 2, true)

	fmt.Println("moves from 1:", g.Neighbors(1))
	fmt.Println("moves from 2:", g.Neighbors(2))
	fmt.Println("one-way edges:", g.OneWayCount())

	// Output:
	// moves from 1: [0]
	// moves from 2: [1]
	// one-way edges: 1
}
