// Package telemetry aggregates per-generation population statistics and
// writes experiment output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/petri/sim"
)

// GenerationStats aggregates one completed generation.
type GenerationStats struct {
	Generation int32 `csv:"generation"`
	Population int   `csv:"population"`

	// Events during the pass
	Births           int `csv:"births"`
	DeathsMetabolism int `csv:"deaths_metabolism"`
	DeathsMovement   int `csv:"deaths_movement"`
	DeathsCarryover  int `csv:"deaths_carryover"`

	// Energy distribution (sampled after the pass)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Gene means
	MotilityMean       float64 `csv:"motility_mean"`
	PhotosynthesisMean float64 `csv:"photosynthesis_mean"`
	ReproductionMean   float64 `csv:"reproduction_mean"`
	MetabolismMean     float64 `csv:"metabolism_mean"`

	// Demographics
	AgeMean         float64 `csv:"age_mean"`
	SizeMean        float64 `csv:"size_mean"`
	MaxLineageDepth uint32  `csv:"max_lineage_depth"`
}

// Distribution computes mean, standard deviation and the 10/50/90
// quantiles of values. Returns zeros for an empty slice; the deviation is
// zero for fewer than two samples.
func Distribution(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if n > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// Compute builds the stats record for one generation from the resulting
// population and the pass events.
func Compute(generation int32, population []sim.Snapshot, events sim.Events) GenerationStats {
	s := GenerationStats{
		Generation:       generation,
		Population:       len(population),
		Births:           events.Births,
		DeathsMetabolism: events.DeathsMetabolism,
		DeathsMovement:   events.DeathsMovement,
		DeathsCarryover:  events.DeathsCarryover,
	}

	if len(population) == 0 {
		return s
	}

	energies := make([]float64, len(population))
	var motility, photosynthesis, reproduction, metabolism float64
	var age, size float64
	for i, org := range population {
		energies[i] = float64(org.Energy)
		motility += float64(org.Traits.Motility)
		photosynthesis += float64(org.Traits.Photosynthesis)
		reproduction += float64(org.Traits.Reproduction)
		metabolism += float64(org.Traits.Metabolism)
		age += float64(org.Age)
		size += float64(org.Size)
		if org.Generation > s.MaxLineageDepth {
			s.MaxLineageDepth = org.Generation
		}
	}

	s.EnergyMean, s.EnergyStd, s.EnergyP10, s.EnergyP50, s.EnergyP90 = Distribution(energies)

	n := float64(len(population))
	s.MotilityMean = motility / n
	s.PhotosynthesisMean = photosynthesis / n
	s.ReproductionMean = reproduction / n
	s.MetabolismMean = metabolism / n
	s.AgeMean = age / n
	s.SizeMean = size / n

	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", int(s.Generation)),
		slog.Int("population", s.Population),
		slog.Int("births", s.Births),
		slog.Int("deaths_metabolism", s.DeathsMetabolism),
		slog.Int("deaths_movement", s.DeathsMovement),
		slog.Int("deaths_carryover", s.DeathsCarryover),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_std", s.EnergyStd),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
		slog.Float64("motility_mean", s.MotilityMean),
		slog.Float64("photosynthesis_mean", s.PhotosynthesisMean),
		slog.Float64("reproduction_mean", s.ReproductionMean),
		slog.Float64("metabolism_mean", s.MetabolismMean),
		slog.Float64("age_mean", s.AgeMean),
		slog.Float64("size_mean", s.SizeMean),
		slog.Int("max_lineage_depth", int(s.MaxLineageDepth)),
	)
}
