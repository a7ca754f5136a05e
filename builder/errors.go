// SPDX-License-Identifier: MIT
// Package: polymaze/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Every construction failure matches ErrConstruction via errors.Is.
//   • The finer sentinels below are joined to ErrConstruction so callers may
//     branch either on the class or on the exact cause.
//   • Option constructors panic on meaningless values; Skeleton never panics.

package builder

import (
	"errors"
	"fmt"
)

// ErrConstruction is the class of every error returned by Skeleton and
// PolyhedronSpec.Validate.
var ErrConstruction = errors.New("builder: construction failed")

// ErrUnknownShape indicates a shape outside the five supported families.
var ErrUnknownShape = errors.New("builder: unknown shape")

// ErrBadSubdivision indicates N outside [1, MaxSubdivision], or N != 1 for a
// dodecahedron.
var ErrBadSubdivision = errors.New("builder: subdivision out of range")

// ErrTopology indicates a solid table whose edges are not shared by exactly
// two faces. It can only surface from a corrupted table.
var ErrTopology = errors.New("builder: polyhedron edge not shared by exactly two faces")

// constructionErrorf wraps cause in ErrConstruction with method context.
func constructionErrorf(method string, cause error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %w: %s", method, ErrConstruction, cause, fmt.Sprintf(format, args...))
}
