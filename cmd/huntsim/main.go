// Command huntsim runs one ghost-hunting simulation: it builds the house,
// places a random ghost and a roster of hunters, runs every agent to
// completion, and prints the results.
package main

import (
	"fmt"
	"os"

	"haunted-house/internal/config"
	"haunted-house/internal/evidence"
	"haunted-house/internal/ghost"
	"haunted-house/internal/house"
	"haunted-house/internal/hunter"
	"haunted-house/internal/logger"
	"haunted-house/internal/metrics"
	"haunted-house/internal/report"
	"haunted-house/internal/roster"
	"haunted-house/internal/rng"
	"haunted-house/internal/supervisor"
)

func main() {
	cfg := config.Load()
	log := logger.New("HUNTSIM", cfg.LogLevel)
	m := metrics.New()

	src := rng.NewFromProcessEntropy()
	if cfg.RandomSeed != 0 {
		src = rng.New(cfg.RandomSeed)
	}

	graph, err := house.BuildDefaultHouse(src)
	if err != nil {
		log.Fatalf("startup", "building house: %v", err)
	}

	caseFile := house.NewCaseFile()

	kind := evidence.AllGhostKinds[src.IntN(0, len(evidence.AllGhostKinds))]
	gh := ghost.New(kind, graph, src, log, m, cfg.BoredomMax)

	sup := supervisor.New(gh)

	specs := roster.Default(cfg.HunterCount, 1)
	for _, spec := range specs {
		h := hunter.New(spec, graph, caseFile, src, log, m, cfg.BoredomMax, cfg.FearMax)
		sup.AddHunter(h)
	}

	sup.Run()
	defer sup.Cleanup()

	report.Write(os.Stdout, gh, sup.Hunters(), caseFile.Collected())
	fmt.Fprintf(os.Stdout, "\nturns taken: %d, moves blocked: %d\n",
		m.Snapshot().Turns.Taken, m.Snapshot().Turns.MovesBlocked)
}
