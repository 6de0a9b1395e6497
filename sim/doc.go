// Package sim provides the Monte Carlo net-present-value engine for npv-sim.
//
// # Reading Guide
//
// Start with these files:
//   - config.go: Parameters, the financial assumptions for one run
//   - engine.go: Run, the trial loop that turns sampled sales paths into NPVs
//   - metrics_utils.go: Summarize and Percentile over the NPV distribution
//
// # Randomness
//
// The engine draws from a NormalSource. Callers that need reproducible runs
// derive one from a SimulationKey through NewSalesRNG; tests may supply any
// deterministic source. The engine holds no state of its own, so two runs with
// the same Parameters and the same source sequence produce identical output.
//
// # Arithmetic passthrough
//
// Sampled sales are not truncated at zero and losses produce negative taxes.
// Pathological rates (for example a discount rate of -1) yield NaN or Inf
// samples that flow through to the summary unchanged.
package sim
