// SPDX-License-Identifier: MIT
// Package: polymaze/builder
//
// faces.go: room layout on a single polyhedron face.
//
// Layouts:
//   • triangle: N(N+1)/2 rooms on a triangular lattice, 6-neighbourhood.
//   • square:   N×N rooms on a grid, 4-neighbourhood.
//   • pentagon: 5 rooms (N=1 only), one per side, joined in a ring.
//
// Each layout also reports, per face side s (corner s → corner s+1), the N
// rooms touching that side ordered from corner s to corner s+1. Skeleton
// stitches neighbouring faces through these lists.
//
// Determinism: local room indices follow a fixed lattice order.

package builder

import (
	"math"

	"github.com/katalvlaran/polymaze/core"
)

// pentagonInset is how far a pentagon room sits from its side midpoint toward
// the face centre, as a fraction of the apothem.
var pentagonInset = math.Tan(27*math.Pi/180) / math.Tan(54*math.Pi/180)

// faceRooms is the layout of one face in face-local room indices.
type faceRooms struct {
	pos   []core.Vec3
	links [][2]int // in-face corridors
	sides [][]int  // sides[s] = rooms along side s, corner s first
}

// layoutFace dispatches on the corner count. Callers guarantee 3, 4 or 5
// corners and N=1 for pentagons.
func layoutFace(corners []core.Vec3, n int) faceRooms {
	switch len(corners) {
	case 3:
		return layoutTriangle(corners, n)
	case 4:
		return layoutSquare(corners, n)
	default:
		return layoutPentagon(corners)
	}
}

// layoutTriangle places rooms at lattice points (i, j, k), i+j+k = N-1:
//
//	pos = c + (d/s)·(k·(A−c) + i·(B−c) + j·(C−c)),  d = s/(N−1+√3)
//
// where c is the centroid and s the side length, so neighbouring rooms are d
// apart and the outer ring keeps an even margin to the face border.
func layoutTriangle(corners []core.Vec3, n int) faceRooms {
	a, b, c := corners[0], corners[1], corners[2]
	ctr := core.Centroid(a, b, c)
	s := a.Dist(b)
	d := s / (float64(n-1) + math.Sqrt(3))
	ra, rb, rc := a.Sub(ctr), b.Sub(ctr), c.Sub(ctr)

	idx := make(map[[2]int]int, n*(n+1)/2)
	var fr faceRooms
	for i := 0; i < n; i++ {
		for j := 0; i+j < n; j++ {
			k := n - 1 - i - j
			off := ra.Scale(float64(k)).Add(rb.Scale(float64(i))).Add(rc.Scale(float64(j)))
			idx[[2]int{i, j}] = len(fr.pos)
			fr.pos = append(fr.pos, ctr.Add(off.Scale(d/s)))
		}
	}

	// Lattice neighbours: (i+1,j), (i,j+1), (i+1,j−1).
	for i := 0; i < n; i++ {
		for j := 0; i+j < n; j++ {
			u := idx[[2]int{i, j}]
			for _, nb := range [][2]int{{i + 1, j}, {i, j + 1}, {i + 1, j - 1}} {
				if v, ok := idx[nb]; ok {
					fr.links = append(fr.links, [2]int{u, v})
				}
			}
		}
	}

	fr.sides = make([][]int, 3)
	for t := 0; t < n; t++ {
		fr.sides[0] = append(fr.sides[0], idx[[2]int{t, 0}])         // A→B
		fr.sides[1] = append(fr.sides[1], idx[[2]int{n - 1 - t, t}]) // B→C
		fr.sides[2] = append(fr.sides[2], idx[[2]int{0, n - 1 - t}]) // C→A
	}

	return fr
}

// layoutSquare places rooms at cell centres of an N×N grid spanned by the
// corners A, B, D (C opposite A).
func layoutSquare(corners []core.Vec3, n int) faceRooms {
	a, b, d := corners[0], corners[1], corners[3]
	ab, ad := b.Sub(a), d.Sub(a)
	at := func(i, j int) int { return j*n + i }

	var fr faceRooms
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			u := (float64(i) + 0.5) / float64(n)
			v := (float64(j) + 0.5) / float64(n)
			fr.pos = append(fr.pos, a.Add(ab.Scale(u)).Add(ad.Scale(v)))
		}
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if i+1 < n {
				fr.links = append(fr.links, [2]int{at(i, j), at(i+1, j)})
			}
			if j+1 < n {
				fr.links = append(fr.links, [2]int{at(i, j), at(i, j+1)})
			}
		}
	}

	fr.sides = make([][]int, 4)
	for t := 0; t < n; t++ {
		fr.sides[0] = append(fr.sides[0], at(t, 0))       // A→B
		fr.sides[1] = append(fr.sides[1], at(n-1, t))     // B→C
		fr.sides[2] = append(fr.sides[2], at(n-1-t, n-1)) // C→D
		fr.sides[3] = append(fr.sides[3], at(0, n-1-t))   // D→A
	}

	return fr
}

// layoutPentagon places one room per side, inset from the side midpoint.
func layoutPentagon(corners []core.Vec3) faceRooms {
	k := len(corners)
	ctr := core.Centroid(corners...)

	var fr faceRooms
	fr.sides = make([][]int, k)
	for s := 0; s < k; s++ {
		mid := corners[s].Lerp(corners[(s+1)%k], 0.5)
		fr.pos = append(fr.pos, mid.Lerp(ctr, pentagonInset))
		fr.sides[s] = []int{s}
	}
	for s := 0; s < k; s++ {
		fr.links = append(fr.links, [2]int{s, (s + 1) % k})
	}

	return fr
}
