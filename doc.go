// Package evotsp is an evolutionary-algorithm toolkit for the Travelling
// Salesman Problem — from instance loading and generation to a fully
// deterministic (μ+λ) search core and a statistics-backed parameter sweep.
//
// 🚀 What is evotsp?
//
//	A small, reproducible EA laboratory that brings together:
//		• Distance oracles: validated (a)symmetric matrices, O(1) lookups
//		• TSPLIB I/O: EUC_2D coordinates & EXPLICIT full matrices, read & write
//		• Generators: random, clustered and grid Euclidean instances
//		• Selection: tournament & roulette (minimization-adapted)
//		• Recombination: OX, PMX and ERX, invariant-preserving by construction
//		• Mutation: swap, insert, inversion — all in place
//		• Sweeps: repeated seeded runs, mean/median/stddev, SQLite persistence
//
// ✨ Why choose evotsp?
//
//   - Deterministic – one seeded RNG per run, no hidden time-based randomness
//   - Strict sentinels – every configuration mistake rejected before a run starts
//   - Pure Go – no cgo anywhere, including the SQLite result store
//   - Observable – a per-generation progress sink that never steers the search
//
// Everything is organized under three packages plus a command:
//
//	instance/   — distance oracle, TSPLIB readers/writers, synthetic generators
//	evolve/     — the (μ+λ) core: genomes, operators, orchestrator
//	experiment/ — YAML-driven parameter sweeps, statistics, SQLite store
//	cmd/evotsp/ — CLI front end for single runs and sweeps
//
// Quick start:
//
//	inst, _ := instance.Load("data/berlin52.tsp")
//	best, _ := evolve.Run(inst, evolve.DefaultOptions())
//	fmt.Println(best.Fitness(), best.Tour())
//
//	go get github.com/katalvlaran/evotsp
package evotsp
