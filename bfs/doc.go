// Package bfs provides breadth-first search over a core.View,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Three traversal directions:
//   - Forward:    follow edges the way a player walks them (one-way edges honored)
//   - Reverse:    walk edges backwards; the result is everything that can reach start
//   - Undirected: ignore one-way flags; plain topological hop distance
//   - Allows filtering of individual edges via WithFilterEdge.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// The carver uses Undirected hop distances on the spanning tree to pick the
// end vertex and to judge how far apart a loop edge's endpoints are, and the
// maze model uses Forward/Reverse reachability to place collectibles.
//
// Determinism
//
//	core.View returns edges sorted by Edge.ID and BFS enqueues neighbors in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation; wrapped hook errors from OnVisit.
package bfs
