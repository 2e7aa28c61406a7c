package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/petri/sim"
	"github.com/pthm-cable/petri/traits"
)

func TestDistribution(t *testing.T) {
	values := []float64{10, 3, 7, 1, 9, 5, 2, 8, 4, 6}

	mean, std, p10, p50, p90 := Distribution(values)

	if mean != 5.5 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	// sample standard deviation of 1..10
	if math.Abs(std-3.02765) > 1e-4 {
		t.Errorf("std = %v, want ~3.0277", std)
	}
	if p10 != 1 || p50 != 5 || p90 != 9 {
		t.Errorf("quantiles = %v/%v/%v, want 1/5/9", p10, p50, p90)
	}
}

func TestDistributionEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := Distribution(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Errorf("empty distribution = %v/%v/%v/%v/%v, want all zero",
			mean, std, p10, p50, p90)
	}
}

func TestDistributionSingleValue(t *testing.T) {
	mean, std, p10, p50, p90 := Distribution([]float64{42})
	if mean != 42 {
		t.Errorf("mean = %v, want 42", mean)
	}
	if std != 0 {
		t.Errorf("std of one sample = %v, want 0", std)
	}
	if p10 != 42 || p50 != 42 || p90 != 42 {
		t.Errorf("quantiles = %v/%v/%v, want all 42", p10, p50, p90)
	}
}

func TestComputeEmptyPopulation(t *testing.T) {
	got := Compute(7, nil, sim.Events{DeathsMetabolism: 3})

	if got.Generation != 7 || got.Population != 0 {
		t.Errorf("generation/population = %d/%d, want 7/0", got.Generation, got.Population)
	}
	if got.DeathsMetabolism != 3 {
		t.Errorf("metabolism deaths = %d, want 3", got.DeathsMetabolism)
	}
	if got.EnergyMean != 0 || got.SizeMean != 0 {
		t.Errorf("empty population must yield zero aggregates: %+v", got)
	}
}

func TestCompute(t *testing.T) {
	population := []sim.Snapshot{
		{
			ID:         "organism-0",
			Size:       1.0,
			Traits:     traits.New(0.2, 0.4, 0.1, 0.1, 0.1, 0.6, 0.8),
			Energy:     100,
			Age:        4,
			Generation: 0,
		},
		{
			ID:         "organism-3",
			Size:       2.0,
			Traits:     traits.New(0.4, 0.6, 0.1, 0.1, 0.1, 0.8, 0.2),
			Energy:     50,
			Age:        2,
			Generation: 3,
			ParentID:   "organism-0",
		},
	}
	events := sim.Events{Births: 1, DeathsMovement: 2}

	got := Compute(5, population, events)

	if got.Generation != 5 || got.Population != 2 {
		t.Errorf("generation/population = %d/%d, want 5/2", got.Generation, got.Population)
	}
	if got.Births != 1 || got.DeathsMovement != 2 {
		t.Errorf("events = %+v, want births 1, movement deaths 2", got)
	}
	if got.EnergyMean != 75 {
		t.Errorf("energy mean = %v, want 75", got.EnergyMean)
	}
	if math.Abs(got.MotilityMean-0.3) > 1e-6 {
		t.Errorf("motility mean = %v, want 0.3", got.MotilityMean)
	}
	if math.Abs(got.PhotosynthesisMean-0.5) > 1e-6 {
		t.Errorf("photosynthesis mean = %v, want 0.5", got.PhotosynthesisMean)
	}
	if math.Abs(got.ReproductionMean-0.7) > 1e-6 {
		t.Errorf("reproduction mean = %v, want 0.7", got.ReproductionMean)
	}
	if math.Abs(got.MetabolismMean-0.5) > 1e-6 {
		t.Errorf("metabolism mean = %v, want 0.5", got.MetabolismMean)
	}
	if got.AgeMean != 3 {
		t.Errorf("age mean = %v, want 3", got.AgeMean)
	}
	if got.SizeMean != 1.5 {
		t.Errorf("size mean = %v, want 1.5", got.SizeMean)
	}
	if got.MaxLineageDepth != 3 {
		t.Errorf("max lineage depth = %d, want 3", got.MaxLineageDepth)
	}
}
