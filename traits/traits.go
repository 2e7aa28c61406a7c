// Package traits defines the heritable trait vector of an organism.
package traits

import "math/rand"

// Gene names, used to match action-history labels when biasing mutation.
const (
	GeneMotility       = "motility"
	GenePhotosynthesis = "photosynthesis"
	GenePredation      = "predation"
	GeneDefense        = "defense"
	GeneSensory        = "sensory"
	GeneReproduction   = "reproduction"
	GeneMetabolism     = "metabolism"
)

// Mutation tuning.
const (
	// BaseStep is the width of the uniform random walk per gene.
	BaseStep = 0.1
	// BiasStep scales the action-weight bias per gene.
	BiasStep = 0.05
)

// Traits holds the seven behavioral genes of an organism.
// Every gene is kept in [0, 1]; predation, defense and sensory are
// reserved and drive no behavior yet.
type Traits struct {
	Motility       float32 `json:"motility"`
	Photosynthesis float32 `json:"photosynthesis"`
	Predation      float32 `json:"predation"`
	Defense        float32 `json:"defense"`
	Sensory        float32 `json:"sensory"`
	Reproduction   float32 `json:"reproduction"`
	Metabolism     float32 `json:"metabolism"`
}

// New builds a trait vector, saturating every gene into [0, 1].
// Out-of-range input is clamped, never rejected.
func New(motility, photosynthesis, predation, defense, sensory, reproduction, metabolism float32) Traits {
	return Traits{
		Motility:       clamp01(motility),
		Photosynthesis: clamp01(photosynthesis),
		Predation:      clamp01(predation),
		Defense:        clamp01(defense),
		Sensory:        clamp01(sensory),
		Reproduction:   clamp01(reproduction),
		Metabolism:     clamp01(metabolism),
	}
}

// Mutate returns a drifted copy of the trait vector; the receiver is never
// modified. Each gene takes a uniform step in [-BaseStep/2, BaseStep/2] plus
// a bias proportional to the weight registered under the gene's name in
// actionWeights (missing names contribute zero bias). Genes mutate in
// declaration order so a seeded generator replays the same offspring.
func (t Traits) Mutate(rng *rand.Rand, actionWeights map[string]float32) Traits {
	out := t
	out.Motility = mutateGene(rng, out.Motility, actionWeights[GeneMotility])
	out.Photosynthesis = mutateGene(rng, out.Photosynthesis, actionWeights[GenePhotosynthesis])
	out.Predation = mutateGene(rng, out.Predation, actionWeights[GenePredation])
	out.Defense = mutateGene(rng, out.Defense, actionWeights[GeneDefense])
	out.Sensory = mutateGene(rng, out.Sensory, actionWeights[GeneSensory])
	out.Reproduction = mutateGene(rng, out.Reproduction, actionWeights[GeneReproduction])
	out.Metabolism = mutateGene(rng, out.Metabolism, actionWeights[GeneMetabolism])
	return out
}

// mutateGene drifts a single gene. Both draws happen unconditionally so the
// generator advances the same way whether or not a bias weight is present.
func mutateGene(rng *rand.Rand, value, weight float32) float32 {
	step := (rng.Float32() - 0.5) * BaseStep
	step += weight * BiasStep * rng.Float32()
	return clamp01(value + step)
}

// clamp01 saturates v into [0, 1].
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
