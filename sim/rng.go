package sim

import "math/rand"

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and identical Parameters
// MUST produce bit-for-bit identical NPV samples.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// NormalSource yields standard normal variates (mean 0, stddev 1).
// *rand.Rand satisfies it.
type NormalSource interface {
	NormFloat64() float64
}

// NewSalesRNG returns the sales-draw stream for key. It is seeded with the
// key itself, so --seed N replays rand.New(rand.NewSource(N)).
// Not safe for concurrent use.
func NewSalesRNG(key SimulationKey) *rand.Rand {
	return rand.New(rand.NewSource(int64(key)))
}
