package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/sim"
	"github.com/pthm-cable/petri/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config, then time-based)")
	generations := flag.Int("generations", 0, "Generations to simulate (0 = use config)")
	logStats := flag.Bool("log-stats", false, "Output per-generation stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	printFinal := flag.Bool("print", false, "Print the final population as JSON to stdout")

	flag.Parse()

	// Set up slog (JSON to stderr for structured logging; stdout stays
	// clean for -print)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Run.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	runGenerations := *generations
	if runGenerations == 0 {
		runGenerations = cfg.Run.Generations
	}

	s := sim.NewFromConfig(cfg, rngSeed)

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to initialize output", "error", err)
		os.Exit(1)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"seed", rngSeed,
		"generations", runGenerations,
		"population", s.OrganismCount(),
	)

	var population []sim.Snapshot
	for i := 0; i < runGenerations; i++ {
		population = s.SimulateGeneration()
		stats := telemetry.Compute(s.Generation(), population, s.LastEvents())

		if *logStats && cfg.Telemetry.LogEvery > 0 && int(s.Generation())%cfg.Telemetry.LogEvery == 0 {
			slog.Info("generation", "stats", stats)
		}
		if err := om.WriteGeneration(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
			os.Exit(1)
		}

		if s.OrganismCount() == 0 {
			slog.Info("population extinct", "generation", s.Generation())
			break
		}
	}

	slog.Info("simulation finished",
		"generation", s.Generation(),
		"population", s.OrganismCount(),
	)

	if *printFinal {
		data, err := json.MarshalIndent(population, "", "  ")
		if err != nil {
			slog.Error("failed to marshal population", "error", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		os.Stdout.Write([]byte("\n"))
	}
}
