// SPDX-License-Identifier: MIT
// Package: polymaze/builder
//
// solids.go: canonical corner coordinates and face cycles of the five
// Platonic solids.
//
// Contract:
//   • Every face cycle lists its corners counter-clockwise seen from outside.
//   • Consecutive corners of a cycle are joined by a polyhedron edge and every
//     such edge is shared by exactly two faces (checked at build time).
//   • Coordinates are centred on the origin; Skeleton rescales them to the
//     requested edge length.

package builder

import (
	"math"

	"github.com/katalvlaran/polymaze/core"
)

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

// solid is a polyhedron as corner positions plus face cycles over them.
type solid struct {
	corners []core.Vec3
	faces   [][]int
}

// edgeLength is the distance between the first two corners of the first face.
func (s solid) edgeLength() float64 {
	f := s.faces[0]
	return s.corners[f[0]].Dist(s.corners[f[1]])
}

func vecs(pts [][3]float64) []core.Vec3 {
	out := make([]core.Vec3, len(pts))
	for i, p := range pts {
		out[i] = core.V(p[0], p[1], p[2])
	}

	return out
}

func tetrahedron() solid {
	return solid{
		corners: vecs([][3]float64{
			{1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {1, -1, -1},
		}),
		faces: [][]int{
			{3, 2, 1}, {0, 2, 3}, {3, 1, 0}, {0, 1, 2},
		},
	}
}

func cube() solid {
	return solid{
		corners: vecs([][3]float64{
			{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
			{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
		}),
		faces: [][]int{
			{0, 2, 6, 4}, {0, 1, 3, 2}, {6, 7, 5, 4},
			{2, 3, 7, 6}, {4, 5, 1, 0}, {5, 7, 3, 1},
		},
	}
}

func octahedron() solid {
	return solid{
		corners: vecs([][3]float64{
			{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
		}),
		faces: [][]int{
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
		},
	}
}

func icosahedron() solid {
	p := phi
	return solid{
		corners: vecs([][3]float64{
			{1, p, 0}, {1, -p, 0}, {-1, p, 0}, {-1, -p, 0},
			{0, 1, p}, {0, 1, -p}, {0, -1, p}, {0, -1, -p},
			{p, 0, 1}, {-p, 0, 1}, {p, 0, -1}, {-p, 0, -1},
		}),
		faces: [][]int{
			{0, 4, 8}, {0, 10, 5}, {0, 8, 10}, {4, 0, 2}, {5, 2, 0},
			{8, 4, 6}, {1, 8, 6}, {1, 10, 8}, {1, 7, 10}, {7, 1, 3},
			{6, 3, 1}, {2, 9, 4}, {9, 6, 4}, {3, 6, 9}, {3, 9, 11},
			{2, 11, 9}, {2, 5, 11}, {11, 5, 7}, {3, 11, 7}, {10, 7, 5},
		},
	}
}

func dodecahedron() solid {
	p, q := phi, 1/phi
	return solid{
		corners: vecs([][3]float64{
			{q, p, 0}, {p, 0, q}, {0, q, p}, {-q, -p, 0},
			{-p, 0, q}, {0, -q, p}, {q, -p, 0}, {p, 0, -q},
			{0, -q, -p}, {-q, p, 0}, {-p, 0, -q}, {0, q, -p},
			{1, 1, 1}, {1, -1, 1}, {-1, -1, 1}, {-1, 1, 1},
			{1, -1, -1}, {1, 1, -1}, {-1, 1, -1}, {-1, -1, -1},
		}),
		faces: [][]int{
			{0, 9, 15, 2, 12}, {0, 17, 11, 18, 9}, {0, 12, 1, 7, 17},
			{1, 13, 6, 16, 7}, {1, 12, 2, 5, 13}, {2, 15, 4, 14, 5},
			{3, 6, 13, 5, 14}, {3, 19, 8, 16, 6}, {3, 14, 4, 10, 19},
			{4, 15, 9, 18, 10}, {7, 16, 8, 11, 17}, {8, 19, 10, 18, 11},
		},
	}
}

// solidOf returns the canonical solid of a valid shape.
func solidOf(s Shape) solid {
	switch s {
	case Tetrahedron:
		return tetrahedron()
	case Cube:
		return cube()
	case Octahedron:
		return octahedron()
	case Dodecahedron:
		return dodecahedron()
	default:
		return icosahedron()
	}
}
