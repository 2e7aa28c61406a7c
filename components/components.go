// Package components defines ECS components for the simulation.
package components

import "math"

// Position is a point in 3D space. Organisms move in the X/Z plane;
// Y is carried through untouched.
type Position struct {
	X, Y, Z float32
}

// Distance returns the Euclidean distance to other.
func (p Position) Distance(other Position) float32 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

// MinSize is the size floor applied when an organism is constructed.
const MinSize = 0.1

// Body holds an organism's physical bulk. Size scales movement reach
// inversely and energy costs and photosynthesis yield directly.
type Body struct {
	Size float32
}

// Energy holds the metabolic state. Value may go transiently negative
// inside a generational pass; the update loop excludes the organism at
// the next checkpoint that observes Value <= 0.
type Energy struct {
	Value float32
	Age   uint32
}

// Lineage tracks identity and descent. IDs are allocated monotonically
// by the owning simulation; ParentID is a non-owning back-reference and
// only meaningful when HasParent is set.
type Lineage struct {
	ID         uint32
	Generation uint32
	ParentID   uint32
	HasParent  bool
}
