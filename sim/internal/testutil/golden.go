// Package testutil provides shared test infrastructure for npv-sim.
// It holds the golden scenario dataset and float assertion helpers used
// by the sim test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one deterministic scenario. Every case has zero sales
// deviation, so each sample must equal NPV regardless of seed.
type GoldenTestCase struct {
	Name       string           `json:"name"`
	Parameters GoldenParameters `json:"parameters"`
	Seed       int64            `json:"seed"`
	NPV        float64          `json:"npv"`
}

// GoldenParameters mirrors sim.Parameters. It is declared here so that
// testutil does not import sim (sim's own tests import testutil).
type GoldenParameters struct {
	SimulationCount      int     `json:"simulation_count"`
	HorizonYears         int     `json:"horizon_years"`
	DiscountRate         float64 `json:"discount_rate"`
	BaseSales            float64 `json:"base_sales"`
	SalesDeviation       float64 `json:"sales_deviation"`
	VariableCostFraction float64 `json:"variable_cost_fraction"`
	FixedCosts           float64 `json:"fixed_costs"`
	TaxRate              float64 `json:"tax_rate"`
	InitialInvestment    float64 `json:"initial_investment"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
