// Package polymaze generates procedural mazes on the surfaces of subdivided
// Platonic solids: from the room graph of a polyhedron to a frozen, verified
// maze ready for rendering and play.
//
// 🚀 What is polymaze?
//
//	A deterministic, thread-safe maze pipeline that brings together:
//		• Skeletons: the five Platonic solids, each face subdivided N times
//		• Carving: spanning-tree backbone, long loops, one-way corridors and backlinks
//		• Verification: A* solvability oracle with what-if overrides, run concurrently
//		• Pruning & culling: safe removal of redundant corridors and pass-through rooms
//		• Difficulty: validated knobs, presets and a 20-level campaign
//
// ✨ Guarantees
//
//   - Every committed edit keeps the end reachable from the start
//   - Same (shape, N, params, seed), same maze, whatever the worker count
//   - Stages that run out of budget degrade the maze, never break it
//
// Under the hood, everything is organized into subpackages:
//
//	core/         Graph, Vertex, Edge and the read-only View
//	builder/      polyhedron skeletons (rooms and corridors)
//	bfs/          hop distances and farthest-vertex search
//	spantree/     seeded growing-tree spanning trees
//	classify/     loose ends, pass-throughs and intersections
//	verify/       A* reachability with penalty/remove/orient overrides
//	difficulty/   carving parameters and presets
//	carve/        the six carving stages
//	maze/         Generate, the frozen Model and PlayerPath
//	level/        level catalogue and config files
//	cmd/polymaze  the command-line tool
//
// Quick ASCII example (one cube face, N=3):
//
//	    o───o   o
//	        │   │
//	    o───o───o
//	    │       │
//	    o   o───o
//
//	nine rooms, a tree of corridors; neighbouring faces stitch at the borders.
//
//	go install github.com/katalvlaran/polymaze/cmd/polymaze@latest
package polymaze
