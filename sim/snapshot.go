package sim

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/traits"
)

// Point is the snapshot form of a position.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Snapshot is the host-facing copy of an organism's public state,
// constructed fresh on every externally visible call. Action history and
// the weight map are deliberately excluded; use Actions and
// ActionWeights.
type Snapshot struct {
	ID         string        `json:"id"`
	Position   Point         `json:"position"`
	Size       float32       `json:"size"`
	Traits     traits.Traits `json:"traits"`
	Energy     float32       `json:"energy"`
	Age        uint32        `json:"age"`
	Generation uint32        `json:"generation"`
	ParentID   string        `json:"parent_id,omitempty"`
}

// organismID formats the boundary id of an organism.
func organismID(n uint32) string {
	return fmt.Sprintf("organism-%d", n)
}

// snapshotOf builds the snapshot of a single live entity.
func (s *Simulation) snapshotOf(entity ecs.Entity) Snapshot {
	pos := s.posMap.Get(entity)
	body := s.bodyMap.Get(entity)
	g := s.genomeMap.Get(entity)
	energy := s.energyMap.Get(entity)
	lin := s.lineageMap.Get(entity)

	snap := Snapshot{
		ID:         organismID(lin.ID),
		Position:   Point{X: pos.X, Y: pos.Y, Z: pos.Z},
		Size:       body.Size,
		Traits:     *g,
		Energy:     energy.Value,
		Age:        energy.Age,
		Generation: lin.Generation,
	}
	if lin.HasParent {
		snap.ParentID = organismID(lin.ParentID)
	}
	return snap
}

// Snapshots returns the whole current population in population order.
func (s *Simulation) Snapshots() []Snapshot {
	out := make([]Snapshot, len(s.population))
	for i, entity := range s.population {
		out[i] = s.snapshotOf(entity)
	}
	return out
}

// find returns the live entity with the given boundary id.
func (s *Simulation) find(id string) (ecs.Entity, bool) {
	for _, entity := range s.population {
		if organismID(s.lineageMap.Get(entity).ID) == id {
			return entity, true
		}
	}
	return ecs.Entity{}, false
}

// Actions returns the ordered action history of the organism with the
// given id, or nil if no live organism matches.
func (s *Simulation) Actions(id string) []string {
	entity, ok := s.find(id)
	if !ok {
		return nil
	}
	return s.logMap.Get(entity).Actions()
}

// ActionWeights returns the raw label->count map of the organism with the
// given id, or nil if no live organism matches.
func (s *Simulation) ActionWeights(id string) map[string]float32 {
	entity, ok := s.find(id)
	if !ok {
		return nil
	}
	return s.logMap.Get(entity).CountsCopy()
}
