// Package maze is the entry point of polymaze: Generate turns a polyhedron
// spec, difficulty params and a seed into a frozen Model.
//
// Pipeline:
//
//	builder.Skeleton → carve.Carve → verify.Reachable → Model
//
// A Model exposes read-only traversal for rendering and gameplay (Moves,
// CanMove and the core.View methods), the solution route, the backbone length
// for statistics and the carving reports for diagnostics. Persistence keeps
// only the Descriptor; Regenerate rebuilds the identical maze from it.
//
// PlayerPath replays a player's moves against a Model and rejects moves the
// maze does not allow.
package maze
