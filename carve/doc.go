// Package carve turns a polyhedron skeleton into a maze.
//
// A pass runs six strictly sequential stages over one seeded generator:
//
//	backbone      random spanning tree from a random start; the end is the
//	              tree vertex farthest from it
//	loops         re-add skeleton edges that close long cycles
//	one_way       orient a bounded share of edges, some as backlinks
//	prune         drop edges into intersections that stay reachable otherwise
//	cull          collapse pass-through rooms into single corridors
//	collectibles  place waypoints on rooms lying on a start→end walk
//
// Every committed edit keeps the end reachable from the start: one-way
// conversions and prunes are checked with the verify oracle before they are
// applied, collapses are applied, re-checked and reverted if needed.
//
// Stages draw on fixed budgets (difficulty.Params). A stage that runs out of
// budget short of its request is marked Skipped in its StageReport and the
// pass carries on; Result.Incomplete reports it as ErrGenerationIncomplete.
//
// Concurrency: speculative checks fan out through verify.Batch over the
// read-only maze; all sampling and all mutation stay on the calling goroutine,
// so the result does not depend on the worker count.
//
// Observability: each stage runs in an OpenTelemetry span "carve.<stage>",
// notifies an optional Observer and logs its report.
package carve
