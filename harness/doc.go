// SPDX-License-Identifier: MIT

// Package harness runs UFLP engines over batches of instances and compares
// them with an exact optimum.
//
// Run schedules one job per (instance, engine) on a bounded worker pool
// (golang.org/x/sync/errgroup). Every job gets its own wall-clock budget:
// the engine runs in a separate goroutine and a job that overruns is recorded
// as OutcomeTimeout, never as a failure or a result. Engines have no
// cancellation points, so a timed-out engine keeps running in the background
// until it returns; its result is discarded.
//
// Records come back in (instance, engine) order regardless of scheduling.
// Optional Prometheus collectors (see NewMetrics) count outcomes and observe
// durations and approximation ratios.
package harness
