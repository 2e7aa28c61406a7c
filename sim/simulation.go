// Package sim owns the simulation aggregate and the generational update
// loop: a population of organisms stored as ECS entities, a static
// environment, a seeded random generator and a monotonic id allocator.
package sim

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/systems"
	"github.com/pthm-cable/petri/traits"
)

// Default resource pool installed by New.
const (
	DefaultOrganic  = 100.0
	DefaultMinerals = 100.0
	DefaultLight    = 100.0
)

// Initial organism defaults (the reserved genes plus reproduction and
// metabolism are fixed; the host only picks motility, photosynthesis and
// size).
const (
	InitialEnergy       = 100.0
	InitialPredation    = 0.1
	InitialDefense      = 0.1
	InitialSensory      = 0.1
	InitialReproduction = 0.5
	InitialMetabolism   = 0.5
)

// Offspring construction tuning.
const (
	// SpawnJitter is the full width of the uniform X/Z offset around the
	// parent; offsets fall in [-SpawnJitter/2, SpawnJitter/2].
	SpawnJitter = 0.5
	// SizeVarMin and SizeVarSpan bound the multiplicative size mutation:
	// offspring size = parent size * U(SizeVarMin, SizeVarMin+SizeVarSpan).
	SizeVarMin  = 0.8
	SizeVarSpan = 0.4
	// OffspringEnergyShare of the parent's current energy seeds the child;
	// the parent keeps ParentEnergyKeep of it.
	OffspringEnergyShare = 0.3
	ParentEnergyKeep     = 0.7
)

// Events counts the notable outcomes of the most recent generational pass.
type Events struct {
	Births           int
	DeathsMetabolism int
	DeathsMovement   int
	DeathsCarryover  int
}

// Simulation exclusively owns the population, the environment, the random
// generator and the id counter. It is single-threaded: a host may read
// snapshots between generations but must not call into the simulation
// while an update is in flight.
type Simulation struct {
	world  *ecs.World
	mapper *ecs.Map6[
		components.Position,
		components.Body,
		traits.Traits,
		components.Energy,
		components.Lineage,
		components.ActionLog,
	]

	// Individual component mappers for lookups
	posMap     *ecs.Map1[components.Position]
	bodyMap    *ecs.Map1[components.Body]
	genomeMap  *ecs.Map1[traits.Traits]
	energyMap  *ecs.Map1[components.Energy]
	lineageMap *ecs.Map1[components.Lineage]
	logMap     *ecs.Map1[components.ActionLog]

	// population is the current generation in insertion order. The result
	// order of a pass (offspring before their surviving parent, parents in
	// prior population order) lives here, not in the ECS storage.
	population []ecs.Entity

	env        Environment
	rng        *rand.Rand
	nextID     uint32
	generation int32
	lastEvents Events
}

// New creates an empty simulation with the given ambient conditions, the
// default resource pool and a generator seeded from host-supplied entropy.
func New(temperature, lightLevel, moisture float32, seed int64) *Simulation {
	env := NewEnvironment(temperature, lightLevel, moisture, DefaultOrganic, DefaultMinerals, DefaultLight)
	return newSimulation(env, seed)
}

func newSimulation(env Environment, seed int64) *Simulation {
	world := ecs.NewWorld()

	s := &Simulation{
		world: world,
		env:   env,
		rng:   rand.New(rand.NewSource(seed)),
		mapper: ecs.NewMap6[
			components.Position,
			components.Body,
			traits.Traits,
			components.Energy,
			components.Lineage,
			components.ActionLog,
		](world),
		posMap:     ecs.NewMap1[components.Position](world),
		bodyMap:    ecs.NewMap1[components.Body](world),
		genomeMap:  ecs.NewMap1[traits.Traits](world),
		energyMap:  ecs.NewMap1[components.Energy](world),
		lineageMap: ecs.NewMap1[components.Lineage](world),
		logMap:     ecs.NewMap1[components.ActionLog](world),
	}
	return s
}

// Environment returns the simulation's ambient conditions.
func (s *Simulation) Environment() Environment {
	return s.env
}

// Generation returns the number of completed generational passes.
func (s *Simulation) Generation() int32 {
	return s.generation
}

// LastEvents returns the event counts of the most recent pass.
func (s *Simulation) LastEvents() Events {
	return s.lastEvents
}

// OrganismCount returns the size of the live population.
func (s *Simulation) OrganismCount() int {
	return len(s.population)
}

// CreateInitialOrganism appends a founder organism at the origin with the
// given motility, photosynthesis and size, fixed values for the remaining
// genes, full initial energy and no parent. It returns the new organism's
// snapshot.
func (s *Simulation) CreateInitialOrganism(motility, photosynthesis, size float32) Snapshot {
	g := traits.New(
		motility,
		photosynthesis,
		InitialPredation,
		InitialDefense,
		InitialSensory,
		InitialReproduction,
		InitialMetabolism,
	)

	entity := s.spawn(components.Position{}, size, g, InitialEnergy, 0, 0, false)
	s.population = append(s.population, entity)

	return s.snapshotOf(entity)
}

// spawn constructs an organism entity, allocating the next id and applying
// the size floor. Offspring pass through here too, so the floor holds for
// every construction path.
func (s *Simulation) spawn(pos components.Position, size float32, g traits.Traits, energy float32, generation uint32, parentID uint32, hasParent bool) ecs.Entity {
	id := s.nextID
	s.nextID++

	if size < components.MinSize {
		size = components.MinSize
	}

	body := components.Body{Size: size}
	en := components.Energy{Value: energy, Age: 0}
	lin := components.Lineage{
		ID:         id,
		Generation: generation,
		ParentID:   parentID,
		HasParent:  hasParent,
	}
	log := components.NewActionLog()

	return s.mapper.NewEntity(&pos, &body, &g, &en, &lin, &log)
}

// SimulateGeneration advances the simulation by one generation and
// returns the full new population as snapshots.
func (s *Simulation) SimulateGeneration() []Snapshot {
	s.step()
	return s.Snapshots()
}

// FastForward advances the simulation by n generations, discarding
// intermediate populations, and returns the final one.
func (s *Simulation) FastForward(n int) []Snapshot {
	for i := 0; i < n; i++ {
		s.step()
	}
	return s.Snapshots()
}

// step performs one strict sequential pass over the population, building
// the next generation. Per organism: carry-over death check, aging,
// metabolism, movement, photosynthesis, then probabilistic reproduction.
// Offspring precede their parent in the result; organisms observed with
// energy <= 0 at any checkpoint are excluded and despawned.
func (s *Simulation) step() {
	next := make([]ecs.Entity, 0, len(s.population))
	var dead []ecs.Entity
	var events Events

	for _, entity := range s.population {
		energy := s.energyMap.Get(entity)

		if energy.Value <= 0 {
			dead = append(dead, entity)
			events.DeathsCarryover++
			continue
		}

		energy.Age++

		pos := s.posMap.Get(entity)
		body := s.bodyMap.Get(entity)
		g := s.genomeMap.Get(entity)
		log := s.logMap.Get(entity)
		lin := s.lineageMap.Get(entity)

		systems.Metabolize(energy, body, g)
		if energy.Value <= 0 {
			dead = append(dead, entity)
			events.DeathsMetabolism++
			continue
		}

		systems.Move(s.rng, pos, body, g, energy, log)
		if energy.Value <= 0 {
			dead = append(dead, entity)
			events.DeathsMovement++
			continue
		}

		systems.Photosynthesize(energy, body, g, log, s.env.LightLevel)

		if systems.CanReproduce(energy, g) && s.rng.Float32() < systems.ReproductionChance(energy, g) {
			// Offspring trait drift is biased by the parent's normalized
			// action history.
			childTraits := g.Mutate(s.rng, log.Weights())

			childPos := components.Position{
				X: pos.X + (s.rng.Float32()-0.5)*SpawnJitter,
				Y: pos.Y,
				Z: pos.Z + (s.rng.Float32()-0.5)*SpawnJitter,
			}
			childSize := body.Size * (SizeVarMin + s.rng.Float32()*SizeVarSpan)
			childEnergy := energy.Value * OffspringEnergyShare
			childGeneration := lin.Generation + 1
			parentID := lin.ID

			energy.Value *= ParentEnergyKeep
			log.Record(systems.ActionReproduced)

			// Spawning relocates component storage, so no parent pointers
			// may be touched past this point.
			child := s.spawn(childPos, childSize, childTraits, childEnergy, childGeneration, parentID, true)
			next = append(next, child)
			events.Births++
		}

		next = append(next, entity)
	}

	for _, entity := range dead {
		s.mapper.Remove(entity)
	}

	s.population = next
	s.generation++
	s.lastEvents = events
}
