// Package sim provides the discrete-event engine for a multi-server waiting line.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - job.go: Job lifecycle (pending → waiting → in service → completed)
//   - event.go: The two event types that drive the simulation (Arrival, Completion)
//   - simulator.go: The event loop, server selection, and time-weighted accounting
//
// # Architecture
//
// A run is generate → simulate → summarize:
//   - generator.go samples the job stream from a PartitionedRNG (rng.go)
//   - simulator.go replays it over an EventHeap (event_heap.go) with C servers
//     and one WaitQueue (queue.go) ordered by a Discipline (scheduler.go)
//   - metrics.go and metrics_utils.go reduce the completed jobs to QueueMetrics
//   - run.go ties the three together and returns a SimulationResult
//
// Sub-packages:
//   - sim/variate/: Interarrival and service-time samplers (Exponential, Gamma, Normal, Uniform)
//   - sim/trace/: Per-server activity timeline recording
//
// # Determinism
//
// Every random draw comes from a named subsystem of PartitionedRNG, so the same
// seed and SimulationConfig always produce the same SimulationResult apart from RunID.
package sim
