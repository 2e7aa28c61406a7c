package traits

import (
	"math/rand"
	"testing"
)

func TestNewClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"below range", -0.5, 0},
		{"zero", 0, 0},
		{"in range", 0.3, 0.3},
		{"one", 1, 1},
		{"above range", 1.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.in, tt.in, tt.in, tt.in, tt.in, tt.in, tt.in)
			for name, v := range got.genes() {
				if v != tt.want {
					t.Errorf("gene %s = %v, want %v", name, v, tt.want)
				}
			}
		})
	}
}

// genes returns the gene values keyed by name, for test iteration.
func (t Traits) genes() map[string]float32 {
	return map[string]float32{
		GeneMotility:       t.Motility,
		GenePhotosynthesis: t.Photosynthesis,
		GenePredation:      t.Predation,
		GeneDefense:        t.Defense,
		GeneSensory:        t.Sensory,
		GeneReproduction:   t.Reproduction,
		GeneMetabolism:     t.Metabolism,
	}
}

func TestMutateStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	weights := map[string]float32{
		GeneMotility:       1.0,
		GenePhotosynthesis: 2.5, // weights above 1 must still saturate
		GeneMetabolism:     0.3,
	}

	vectors := []Traits{
		New(0, 0, 0, 0, 0, 0, 0),
		New(1, 1, 1, 1, 1, 1, 1),
		New(0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5),
	}

	for _, v := range vectors {
		cur := v
		for i := 0; i < 1000; i++ {
			cur = cur.Mutate(rng, weights)
			for name, g := range cur.genes() {
				if g < 0 || g > 1 {
					t.Fatalf("iteration %d: gene %s = %v out of [0,1]", i, name, g)
				}
			}
		}
	}
}

func TestMutateDoesNotModifyReceiver(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	orig := New(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7)
	before := orig

	mutated := orig.Mutate(rng, map[string]float32{GeneMotility: 1})

	if orig != before {
		t.Errorf("receiver changed: %+v -> %+v", before, orig)
	}
	if mutated == before {
		t.Error("mutation returned an identical vector; expected drift")
	}
}

func TestMutateBiasPushesUp(t *testing.T) {
	// With identical generator streams, a weighted gene can only end up
	// at or above its unweighted counterpart: the bias term is
	// weight * BiasStep * U(0,1) >= 0.
	for seed := int64(0); seed < 50; seed++ {
		base := New(0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5)

		plain := base.Mutate(rand.New(rand.NewSource(seed)), nil)
		biased := base.Mutate(rand.New(rand.NewSource(seed)), map[string]float32{
			GenePhotosynthesis: 1.0,
		})

		if biased.Photosynthesis < plain.Photosynthesis {
			t.Fatalf("seed %d: biased photosynthesis %v < unbiased %v",
				seed, biased.Photosynthesis, plain.Photosynthesis)
		}
		if biased.Motility != plain.Motility {
			t.Fatalf("seed %d: unweighted motility diverged: %v != %v",
				seed, biased.Motility, plain.Motility)
		}
	}
}

func TestMutateMissingNamesGetZeroBias(t *testing.T) {
	// Action labels that match no gene name must not bias anything.
	base := New(0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5)

	plain := base.Mutate(rand.New(rand.NewSource(3)), nil)
	labeled := base.Mutate(rand.New(rand.NewSource(3)), map[string]float32{
		"moved":      0.9,
		"reproduced": 0.1,
	})

	if plain != labeled {
		t.Errorf("non-gene labels changed mutation: %+v != %+v", plain, labeled)
	}
}
