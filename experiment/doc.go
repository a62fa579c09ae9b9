// SPDX-License-Identifier: MIT

// Package experiment drives the hashing engines over generated graph pairs
// and records the outcomes.
//
// A Scenario names a family of trials: graph sizes, edge probability,
// directedness, whether the second graph is a relabelled copy of the first
// or an independent draw, the round count and the hash kinds to time.
// Runner executes the trials of a scenario concurrently and hands every row
// to a Collector passed in by the caller; Table is the in-memory Collector
// that renders one CSV per scenario and a YAML run summary.
//
// Reproducibility: every trial derives its own seed from the run seed, the
// scenario name and the trial index, and records it in the Random_Graph_Seed
// column. Re-running with the same run seed reproduces every graph.
//
// Configuration and observability:
//   - Config wraps viper, CreateLogger builds a zerolog console logger.
//   - Metrics registers per-run prometheus collectors; WriteReports dumps
//     them in text exposition format next to the CSVs.
package experiment
