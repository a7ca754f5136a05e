// SPDX-License-Identifier: MIT
// Package: polymaze/builder
//
// shape.go: polyhedron families and the PolyhedronSpec value.
//
// Contract:
//   • Shape marshals as its lower-case name (text, JSON, YAML) so level files
//     stay human-editable.
//   • ExpectedVertexCount is closed-form and agrees with Skeleton.

package builder

import (
	"fmt"
	"strings"
)

// MaxSubdivision bounds N. 64 keeps the largest skeleton (icosahedron,
// 10·64·65 rooms) comfortably in memory.
const MaxSubdivision = 64

const methodValidate = "Validate"

// Shape is a polyhedron family. The zero value is invalid.
type Shape int

const (
	Tetrahedron Shape = iota + 1
	Cube
	Octahedron
	Dodecahedron
	Icosahedron
)

var shapeNames = map[Shape]string{
	Tetrahedron:  "tetrahedron",
	Cube:         "cube",
	Octahedron:   "octahedron",
	Dodecahedron: "dodecahedron",
	Icosahedron:  "icosahedron",
}

// Shapes lists every supported family in declaration order.
func Shapes() []Shape {
	return []Shape{Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}
}

// String returns the lower-case family name, or "shape(n)" for unknown values.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}

	return fmt.Sprintf("shape(%d)", int(s))
}

// Valid reports whether s is one of the supported families.
func (s Shape) Valid() bool {
	_, ok := shapeNames[s]
	return ok
}

var shapeAliases = map[string]Shape{
	"tetra":  Tetrahedron,
	"octa":   Octahedron,
	"dodeca": Dodecahedron,
	"icosa":  Icosahedron,
}

// ParseShape resolves a family name case-insensitively. Short aliases
// ("tetra", "octa", "dodeca", "icosa") are accepted.
func ParseShape(name string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Shapes() {
		if key == shapeNames[s] {
			return s, nil
		}
	}
	if s, ok := shapeAliases[key]; ok {
		return s, nil
	}

	return 0, fmt.Errorf("%w: %w: %q", ErrConstruction, ErrUnknownShape, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %w: %d", ErrConstruction, ErrUnknownShape, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// PolyhedronSpec selects a polyhedron family and its subdivision count.
type PolyhedronSpec struct {
	Shape Shape `yaml:"shape" json:"shape" mapstructure:"shape"`
	N     int   `yaml:"n" json:"n" mapstructure:"n"`
}

// String renders the spec as "shape/N".
func (p PolyhedronSpec) String() string {
	return fmt.Sprintf("%s/%d", p.Shape, p.N)
}

// Validate checks the family and the subdivision range. Errors match
// ErrConstruction and one of ErrUnknownShape or ErrBadSubdivision.
func (p PolyhedronSpec) Validate() error {
	if !p.Shape.Valid() {
		return constructionErrorf(methodValidate, ErrUnknownShape, "%s", p.Shape)
	}
	if p.N < 1 || p.N > MaxSubdivision {
		return constructionErrorf(methodValidate, ErrBadSubdivision, "N=%d not in [1,%d]", p.N, MaxSubdivision)
	}
	if p.Shape == Dodecahedron && p.N != 1 {
		return constructionErrorf(methodValidate, ErrBadSubdivision, "dodecahedron supports only N=1, got %d", p.N)
	}

	return nil
}

// ExpectedVertexCount returns the number of rooms Skeleton produces for p.
//
//	tetrahedron  2·N·(N+1)
//	cube         6·N²
//	octahedron   4·N·(N+1)
//	dodecahedron 60 (N=1 only)
//	icosahedron  10·N·(N+1)
func ExpectedVertexCount(p PolyhedronSpec) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	n := p.N
	switch p.Shape {
	case Tetrahedron:
		return 2 * n * (n + 1), nil
	case Cube:
		return 6 * n * n, nil
	case Octahedron:
		return 4 * n * (n + 1), nil
	case Dodecahedron:
		return 60, nil
	default:
		return 10 * n * (n + 1), nil
	}
}

// ExpectedEdgeCount returns the number of corridors Skeleton produces for p:
// one per room adjacency inside a face plus N per polyhedron edge.
func ExpectedEdgeCount(p PolyhedronSpec) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	nn := p.N * p.N
	switch p.Shape {
	case Tetrahedron:
		return 6 * nn, nil
	case Cube, Octahedron:
		return 12 * nn, nil
	case Dodecahedron:
		return 90, nil
	default:
		return 30 * nn, nil
	}
}
