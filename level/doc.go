// Package level holds the built-in level catalogue and loads custom levels
// from YAML, JSON or TOML files.
//
// A level is a named maze.Descriptor. Only descriptors are stored; the maze
// itself is regenerated from (spec, params, seed) whenever a level is played.
package level
