// Package systems implements the per-organism behavior rules applied by
// the generational update: metabolism, movement, photosynthesis and the
// reproduction gates.
package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/traits"
)

// Action labels recorded into an organism's history.
const (
	ActionMoved          = "moved"
	ActionPhotosynthesis = "photosynthesis"
	ActionReproduced     = "reproduced"
)

// Behavior tuning. These are engine semantics, not config knobs.
const (
	// MotilityFloor is the minimum motility required to move at all.
	MotilityFloor = 0.05
	// PhotosynthesisFloor is the minimum photosynthesis gene required
	// to harvest light.
	PhotosynthesisFloor = 0.05
	// MoveReach scales displacement per unit motility.
	MoveReach = 0.5
	// MoveCost scales the energy price of a displacement.
	MoveCost = 2.0
	// LightYield scales energy gained per unit of light.
	LightYield = 5.0
	// ReproMinEnergy is the energy floor for reproduction eligibility.
	ReproMinEnergy = 50.0
	// ReproMinGene is the reproduction-gene floor for eligibility.
	ReproMinGene = 0.2
	// ReproEnergyScale divides energy when computing reproduction chance.
	ReproEnergyScale = 200.0
)

// Metabolize applies the base metabolic cost for one generation.
// The caller checks for death afterwards.
func Metabolize(energy *components.Energy, body *components.Body, g *traits.Traits) {
	energy.Value -= g.Metabolism * body.Size
}

// Move displaces the organism in the X/Z plane in a uniformly random
// direction. Smaller organisms travel farther for equal motility; the
// energy cost may drive Value negative, which the caller resolves.
// Organisms below the motility floor do not move, pay nothing and record
// nothing.
func Move(rng *rand.Rand, pos *components.Position, body *components.Body, g *traits.Traits, energy *components.Energy, log *components.ActionLog) {
	if g.Motility < MotilityFloor {
		return
	}

	dist := g.Motility * (1 / body.Size) * MoveReach
	angle := rng.Float32() * 2 * math.Pi
	pos.X += float32(math.Cos(float64(angle))) * dist
	pos.Z += float32(math.Sin(float64(angle))) * dist

	energy.Value -= dist * body.Size * MoveCost

	log.Record(ActionMoved)
}

// Photosynthesize converts ambient light into energy, uncapped.
// Organisms below the photosynthesis floor gain nothing and record
// nothing.
func Photosynthesize(energy *components.Energy, body *components.Body, g *traits.Traits, log *components.ActionLog, lightLevel float32) {
	if g.Photosynthesis < PhotosynthesisFloor {
		return
	}

	energy.Value += g.Photosynthesis * lightLevel * body.Size * LightYield

	log.Record(ActionPhotosynthesis)
}

// CanReproduce reports reproduction eligibility: both thresholds are
// hard gates with no partial credit.
func CanReproduce(energy *components.Energy, g *traits.Traits) bool {
	return energy.Value >= ReproMinEnergy && g.Reproduction >= ReproMinGene
}

// ReproductionChance returns the probability of reproducing this
// generation. Deliberately unclamped: values above 1 make reproduction
// certain when compared against a raw uniform draw.
func ReproductionChance(energy *components.Energy, g *traits.Traits) float32 {
	return g.Reproduction * (energy.Value / ReproEnergyScale)
}
