package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polymaze/builder"
	"github.com/katalvlaran/polymaze/carve"
	"github.com/katalvlaran/polymaze/core"
	"github.com/katalvlaran/polymaze/difficulty"
)

var (
	// ErrUnsolvable reports a carved maze whose end is not reachable from its
	// start. Carving guarantees the opposite; seeing it means a broken invariant.
	ErrUnsolvable = errors.New("maze: end unreachable from start")

	// ErrIllegalMove is returned by PlayerPath.Move for a move the current
	// room does not offer.
	ErrIllegalMove = errors.New("maze: illegal move")
)

// Descriptor is everything needed to rebuild a maze: persistence stores only
// this and regenerates the graph on load.
type Descriptor struct {
	Spec   builder.PolyhedronSpec `yaml:"spec" json:"spec" mapstructure:"spec"`
	Params difficulty.Params      `yaml:"params" json:"params" mapstructure:"params"`
	Seed   uint64                 `yaml:"seed" json:"seed" mapstructure:"seed"`
}

// Validate checks the spec, then the params.
func (d Descriptor) Validate() error {
	if err := d.Spec.Validate(); err != nil {
		return err
	}
	return d.Params.Validate()
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s seed=%d", d.Spec, d.Seed)
}

// Move is one legal step out of a room.
type Move struct {
	Edge     core.EdgeID
	To       core.VertexID
	Weight   float64
	OneWay   bool
	Backlink bool
}

// Model is a finished maze. It is frozen: no method mutates it and every
// returned slice is a copy, so a Model may be shared between goroutines.
//
// Model implements core.View; rendering and search code reads it directly.
type Model struct {
	g            *core.Graph
	desc         Descriptor
	start, end   core.VertexID
	collectibles []core.VertexID
	backbone     []core.VertexID
	solution     []core.VertexID
	solutionCost float64
	reports      []carve.StageReport
	prunes       []carve.PruneRecord
	collapses    []carve.CollapseRecord
	incomplete   error
}

var _ core.View = (*Model)(nil)

// Start returns the entry room.
func (m *Model) Start() core.VertexID { return m.start }

// End returns the goal room.
func (m *Model) End() core.VertexID { return m.end }

// Spec returns the polyhedron the maze was carved on.
func (m *Model) Spec() builder.PolyhedronSpec { return m.desc.Spec }

// Params returns the difficulty knobs used for carving.
func (m *Model) Params() difficulty.Params { return m.desc.Params }

// Seed returns the generation seed.
func (m *Model) Seed() uint64 { return m.desc.Seed }

// Descriptor returns the (spec, params, seed) triple that regenerates m.
func (m *Model) Descriptor() Descriptor { return m.desc }

// Collectibles returns the waypoint rooms, ascending.
func (m *Model) Collectibles() []core.VertexID { return clone(m.collectibles) }

// Solution returns a cheapest start→end route in the final maze.
func (m *Model) Solution() []core.VertexID { return clone(m.solution) }

// SolutionCost is the summed edge weight along Solution.
func (m *Model) SolutionCost() float64 { return m.solutionCost }

// SolutionLength is the number of moves along Solution.
func (m *Model) SolutionLength() int { return len(m.solution) - 1 }

// Backbone returns the spanning-tree path from start to end chosen before
// loops, pruning and culling. Culled rooms may appear in it.
func (m *Model) Backbone() []core.VertexID { return clone(m.backbone) }

// BackboneLength is the number of moves along the backbone.
func (m *Model) BackboneLength() int {
	if len(m.backbone) == 0 {
		return 0
	}
	return len(m.backbone) - 1
}

// OneWayFraction is the share of corridors that are one-way.
func (m *Model) OneWayFraction() float64 {
	n := m.g.EdgeCount()
	if n == 0 {
		return 0
	}
	return float64(m.g.OneWayCount()) / float64(n)
}

// Reports returns one report per carving stage, in execution order.
func (m *Model) Reports() []carve.StageReport { return clone(m.reports) }

// Prunes returns the committed intersection prunes.
func (m *Model) Prunes() []carve.PruneRecord { return clone(m.prunes) }

// Collapses returns the committed pass-through collapses.
func (m *Model) Collapses() []carve.CollapseRecord { return clone(m.collapses) }

// Incomplete reports stages that fell short of their request. The maze is
// valid and solvable either way; the error matches carve.ErrGenerationIncomplete.
func (m *Model) Incomplete() error { return m.incomplete }

// View returns m as a read-only graph.
func (m *Model) View() core.View { return m }

// Moves lists the legal moves out of v, ordered by edge ID. Unknown rooms
// have none.
func (m *Model) Moves(v core.VertexID) []Move {
	out := m.g.OutEdges(v)
	moves := make([]Move, 0, len(out))
	for _, e := range out {
		moves = append(moves, Move{
			Edge:     e.ID,
			To:       e.Other(v),
			Weight:   e.Weight,
			OneWay:   e.Directed,
			Backlink: e.Backlink,
		})
	}

	return moves
}

// CanMove reports whether a single move leads from one room to the other.
func (m *Model) CanMove(from, to core.VertexID) bool {
	e, ok := m.g.EdgeBetween(from, to)
	return ok && e.Leaves(from) && e.Other(from) == to
}

// core.View

func (m *Model) HasVertex(id core.VertexID) bool                        { return m.g.HasVertex(id) }
func (m *Model) Vertex(id core.VertexID) (core.Vertex, bool)            { return m.g.Vertex(id) }
func (m *Model) Vertices() []core.VertexID                              { return m.g.Vertices() }
func (m *Model) VertexCount() int                                       { return m.g.VertexCount() }
func (m *Model) Edge(id core.EdgeID) (core.Edge, bool)                  { return m.g.Edge(id) }
func (m *Model) EdgeBetween(a, b core.VertexID) (core.Edge, bool)       { return m.g.EdgeBetween(a, b) }
func (m *Model) Edges() []core.Edge                                     { return m.g.Edges() }
func (m *Model) EdgeCount() int                                         { return m.g.EdgeCount() }
func (m *Model) OneWayCount() int                                       { return m.g.OneWayCount() }
func (m *Model) IncidentEdges(v core.VertexID) []core.Edge              { return m.g.IncidentEdges(v) }
func (m *Model) OutEdges(v core.VertexID) []core.Edge                   { return m.g.OutEdges(v) }
func (m *Model) InEdges(v core.VertexID) []core.Edge                    { return m.g.InEdges(v) }
func (m *Model) Neighbors(v core.VertexID) []core.VertexID              { return m.g.Neighbors(v) }
func (m *Model) Degree(v core.VertexID) (in, out, total int, err error) { return m.g.Degree(v) }

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s...)
}
