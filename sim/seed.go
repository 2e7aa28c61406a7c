package sim

import (
	"github.com/pthm-cable/petri/config"
)

// NewFromConfig builds a simulation from a loaded configuration: the
// environment (including its resource pool) comes from cfg and the
// founder population is seeded with traits drawn uniformly from the
// configured ranges, using the simulation's own generator.
func NewFromConfig(cfg *config.Config, seed int64) *Simulation {
	envCfg := cfg.Environment
	env := NewEnvironment(
		float32(envCfg.Temperature),
		float32(envCfg.LightLevel),
		float32(envCfg.Moisture),
		float32(envCfg.Resources.Organic),
		float32(envCfg.Resources.Minerals),
		float32(envCfg.Resources.Light),
	)

	s := newSimulation(env, seed)

	for i := 0; i < cfg.Seeding.Count; i++ {
		motility := s.drawRange(cfg.Seeding.Motility)
		photosynthesis := s.drawRange(cfg.Seeding.Photosynthesis)
		size := s.drawRange(cfg.Seeding.Size)
		s.CreateInitialOrganism(motility, photosynthesis, size)
	}

	return s
}

// drawRange samples uniformly from [r.Min, r.Max].
func (s *Simulation) drawRange(r config.RangeConfig) float32 {
	min := float32(r.Min)
	max := float32(r.Max)
	if max <= min {
		return min
	}
	return min + s.rng.Float32()*(max-min)
}
