// Package spantree grows randomized spanning trees over a core.View.
package spantree

import (
	"fmt"

	"github.com/katalvlaran/polymaze/core"
	"github.com/katalvlaran/polymaze/internal/rng"
)

// GrowingTree computes a random spanning tree of g rooted at root using the
// growing-tree algorithm.
//
// bias steers the corridor shape: with probability bias the newest active
// vertex is extended (long winding branches, like a depth-first carve);
// otherwise a uniformly random active vertex is extended (many short branches,
// like Prim). Edge direction flags are ignored: the skeleton is treated as
// undirected topology.
//
// Error Conditions:
//   - ErrInvalidGraph       : g is nil.
//   - ErrNeedRand           : src is nil.
//   - ErrBadBias            : bias outside [0,1] or NaN.
//   - core.ErrVertexNotFound: root is absent.
//   - ErrDisconnected       : some vertex cannot be reached from root.
//
// Steps:
//  1. Validate inputs.
//  2. Mark root visited and make it the only active vertex.
//  3. While active vertices remain:
//     a. Choose the newest (with probability bias) or a random active vertex.
//     b. Collect its incident edges leading to unvisited vertices (sorted by ID).
//     c. None left ⇒ retire the vertex; otherwise take a random one, mark the
//     far endpoint visited, record the edge and activate the endpoint.
//  4. If fewer than |V|-1 edges were recorded ⇒ ErrDisconnected.
//
// Complexity: O(V·Δ + E) time where Δ is the maximum degree, O(V) memory.
func GrowingTree(g core.View, root core.VertexID, src rng.Source, bias float64) ([]core.Edge, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrInvalidGraph
	}
	if src == nil {
		return nil, ErrNeedRand
	}
	if !(bias >= 0 && bias <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadBias, bias)
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("spantree: root %d: %w", root, core.ErrVertexNotFound)
	}

	// 2. Seed the active list.
	n := g.VertexCount()
	visited := make(map[core.VertexID]bool, n)
	visited[root] = true
	active := []core.VertexID{root}
	tree := make([]core.Edge, 0, n-1)

	// 3. Grow.
	var frontier []core.Edge
	for len(active) > 0 {
		idx := len(active) - 1
		if !rng.Chance(src, bias) {
			idx = rng.Pick(src, len(active))
		}
		v := active[idx]

		frontier = frontier[:0]
		for _, e := range g.IncidentEdges(v) {
			if !visited[e.Other(v)] {
				frontier = append(frontier, e)
			}
		}
		if len(frontier) == 0 {
			active = append(active[:idx], active[idx+1:]...)
			continue
		}

		e := frontier[rng.Pick(src, len(frontier))]
		next := e.Other(v)
		visited[next] = true
		tree = append(tree, e)
		active = append(active, next)
	}

	// 4. Coverage check.
	if len(tree) < n-1 {
		return nil, fmt.Errorf("%w: spanned %d of %d vertices", ErrDisconnected, len(tree)+1, n)
	}

	return tree, nil
}

// Build materializes tree edges over a vertex-only copy of g. Edge IDs are
// preserved, so tree edges map back to skeleton edges one-to-one.
func Build(g *core.Graph, tree []core.Edge) (*core.Graph, error) {
	out := g.CloneVertices()
	for _, e := range tree {
		if err := out.InsertEdge(e); err != nil {
			return nil, fmt.Errorf("spantree: insert edge %d: %w", e.ID, err)
		}
	}

	return out, nil
}
