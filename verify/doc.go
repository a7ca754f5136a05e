// Package verify is the solvability oracle of the maze generator: a weighted,
// heuristic-guided shortest-path search that answers "can the player still get
// from A to B?" for hypothetical edits without applying them.
//
// Overrides
//
//	Penalty(edge, extra) – add extra cost to one edge (discourage, do not forbid).
//	Remove(edge)         – pretend the edge is gone.
//	Orient(edge, from)   – pretend the edge is one-way leaving from.
//
// Overrides live only for the duration of one call; the graph is never mutated
// and the package holds no shared mutable state, so any number of queries may
// run concurrently on the same read-only graph. Batch does exactly that with an
// errgroup worker pool.
//
// Heuristic
//
//	A* uses the straight-line distance between vertex positions. Every edge
//	weight is bounded below by that distance, so the heuristic is admissible
//	and consistent and the first settled path to the goal is optimal.
//
// Results
//
//	Unreachable is a normal answer (Reachable=false, Cost=+Inf), never an error.
//
// Determinism
//
//	Heap ties break on larger g then lower vertex ID, and adjacency is iterated in
//	edge-ID order, so the returned path is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) with lazy decrease-key.
package verify
