// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/polymaze/builder"
)

// ExampleSkeleton builds the room graph of a twice-subdivided icosahedron.
func ExampleSkeleton() {
	spec := builder.PolyhedronSpec{Shape: builder.Icosahedron, N: 2}
	g, err := builder.Skeleton(spec)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(spec, "rooms:", g.VertexCount(), "corridors:", g.EdgeCount())
	// Output:
	// icosahedron/2 rooms: 60 corridors: 120
}
