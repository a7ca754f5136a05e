package maze

import (
	"github.com/katalvlaran/polymaze/carve"
	"github.com/katalvlaran/polymaze/core"
)

// Room is the exported form of a vertex.
type Room struct {
	ID   core.VertexID `json:"id" yaml:"id"`
	X    float64       `json:"x" yaml:"x"`
	Y    float64       `json:"y" yaml:"y"`
	Z    float64       `json:"z" yaml:"z"`
	Face int           `json:"face" yaml:"face"`
}

// Corridor is the exported form of an edge. One-way corridors lead From→To.
type Corridor struct {
	ID       core.EdgeID   `json:"id" yaml:"id"`
	From     core.VertexID `json:"from" yaml:"from"`
	To       core.VertexID `json:"to" yaml:"to"`
	Weight   float64       `json:"weight" yaml:"weight"`
	OneWay   bool          `json:"one_way,omitempty" yaml:"one_way,omitempty"`
	Backlink bool          `json:"backlink,omitempty" yaml:"backlink,omitempty"`
}

// Snapshot is a plain, encodable copy of a Model for renderers and tools.
// Persistence should store the Descriptor instead and regenerate.
type Snapshot struct {
	Descriptor   Descriptor          `json:"descriptor" yaml:"descriptor"`
	Start        core.VertexID       `json:"start" yaml:"start"`
	End          core.VertexID       `json:"end" yaml:"end"`
	Collectibles []core.VertexID     `json:"collectibles,omitempty" yaml:"collectibles,omitempty"`
	Solution     []core.VertexID     `json:"solution" yaml:"solution"`
	SolutionCost float64             `json:"solution_cost" yaml:"solution_cost"`
	Rooms        []Room              `json:"rooms" yaml:"rooms"`
	Corridors    []Corridor          `json:"corridors" yaml:"corridors"`
	Reports      []carve.StageReport `json:"reports" yaml:"reports"`
}

// Snapshot copies m into its encodable form. Rooms and corridors are sorted by ID.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{
		Descriptor:   m.desc,
		Start:        m.start,
		End:          m.end,
		Collectibles: m.Collectibles(),
		Solution:     m.Solution(),
		SolutionCost: m.solutionCost,
		Reports:      m.Reports(),
	}
	for _, id := range m.g.Vertices() {
		v, _ := m.g.Vertex(id)
		s.Rooms = append(s.Rooms, Room{ID: id, X: v.Pos.X, Y: v.Pos.Y, Z: v.Pos.Z, Face: v.Face})
	}
	for _, e := range m.g.Edges() {
		s.Corridors = append(s.Corridors, Corridor{
			ID:       e.ID,
			From:     e.From,
			To:       e.To,
			Weight:   e.Weight,
			OneWay:   e.Directed,
			Backlink: e.Backlink,
		})
	}

	return s
}
