package maze

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polymaze/core"
)

// PlayerPath follows a player through a Model, one legal move at a time, and
// keeps the statistics the game reports: moves made, distance walked and
// collectibles picked up. It is not safe for concurrent use.
type PlayerPath struct {
	m         *Model
	visited   []core.VertexID
	cost      float64
	targets   map[core.VertexID]struct{}
	collected map[core.VertexID]struct{}
}

// NewPlayerPath places a player on the start room of m.
func NewPlayerPath(m *Model) *PlayerPath {
	p := &PlayerPath{
		m:         m,
		visited:   []core.VertexID{m.start},
		targets:   make(map[core.VertexID]struct{}, len(m.collectibles)),
		collected: make(map[core.VertexID]struct{}),
	}
	for _, c := range m.collectibles {
		p.targets[c] = struct{}{}
	}

	return p
}

// Current is the room the player stands on.
func (p *PlayerPath) Current() core.VertexID { return p.visited[len(p.visited)-1] }

// Move walks to a neighbouring room. Moves against a one-way corridor or to a
// room that is not adjacent fail with ErrIllegalMove and change nothing.
func (p *PlayerPath) Move(to core.VertexID) error {
	from := p.Current()
	e, ok := p.m.g.EdgeBetween(from, to)
	if !ok || !e.Leaves(from) {
		return fmt.Errorf("%w: %d→%d", ErrIllegalMove, from, to)
	}
	p.visited = append(p.visited, to)
	p.cost += e.Weight
	if _, ok := p.targets[to]; ok {
		p.collected[to] = struct{}{}
	}

	return nil
}

// Moves is the number of moves made so far.
func (p *PlayerPath) Moves() int { return len(p.visited) - 1 }

// Visited returns the rooms in the order they were entered, start first.
func (p *PlayerPath) Visited() []core.VertexID { return clone(p.visited) }

// Cost is the summed weight of the corridors walked.
func (p *PlayerPath) Cost() float64 { return p.cost }

// Reached reports whether the player stands on the end room.
func (p *PlayerPath) Reached() bool { return p.Current() == p.m.end }

// Collected returns the collectibles picked up so far, ascending.
func (p *PlayerPath) Collected() []core.VertexID {
	out := make([]core.VertexID, 0, len(p.collected))
	for id := range p.collected {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Complete reports whether the end is reached with every collectible picked up.
func (p *PlayerPath) Complete() bool {
	return p.Reached() && len(p.collected) == len(p.targets)
}
