package maze_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polymaze/builder"
	"github.com/katalvlaran/polymaze/difficulty"
	"github.com/katalvlaran/polymaze/maze"
)

// ExampleGenerate carves a tree-only maze on a tetrahedron and walks its solution.
func ExampleGenerate() {
	params, err := difficulty.New(
		difficulty.WithOneWayRatio(0),
		difficulty.WithLoops(0, 1, 0),
		difficulty.WithCulling(false),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	m, err := maze.Generate(context.Background(), builder.PolyhedronSpec{Shape: builder.Tetrahedron, N: 1}, params, 42)
	if err != nil {
		fmt.Println(err)
		return
	}

	p := maze.NewPlayerPath(m)
	for _, v := range m.Solution()[1:] {
		if err := p.Move(v); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println("rooms:", m.VertexCount(), "corridors:", m.EdgeCount(), "one-way:", m.OneWayCount())
	fmt.Println("reached:", p.Reached(), "same length:", p.Moves() == m.SolutionLength())
	// Output:
	// rooms: 4 corridors: 3 one-way: 0
	// reached: true same length: true
}
