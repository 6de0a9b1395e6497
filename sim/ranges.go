package sim

import (
	"fmt"
	"math"
	"strings"
)

// fieldRange is the accepted interval for one parameter at the input layer.
type fieldRange struct {
	name     string
	min, max float64
	value    func(Parameters) float64
}

var inputRanges = []fieldRange{
	{"simulation_count", 1000, 50000, func(p Parameters) float64 { return float64(p.SimulationCount) }},
	{"horizon_years", 1, 20, func(p Parameters) float64 { return float64(p.HorizonYears) }},
	{"discount_rate", 0.01, 0.20, func(p Parameters) float64 { return p.DiscountRate }},
	{"base_sales", 100, 10000, func(p Parameters) float64 { return p.BaseSales }},
	{"sales_deviation", 0.01, 0.50, func(p Parameters) float64 { return p.SalesDeviation }},
	{"variable_cost_fraction", 0.10, 0.90, func(p Parameters) float64 { return p.VariableCostFraction }},
	{"fixed_costs", 0, 5000, func(p Parameters) float64 { return p.FixedCosts }},
	{"tax_rate", 0.10, 0.50, func(p Parameters) float64 { return p.TaxRate }},
	{"initial_investment", 500, 10000, func(p Parameters) float64 { return p.InitialInvestment }},
}

// RangeError lists every parameter outside the accepted input ranges.
type RangeError struct {
	Violations []string
}

func (e *RangeError) Error() string {
	return "parameters out of range: " + strings.Join(e.Violations, "; ")
}

// CheckRanges validates p against the ranges accepted by the CLI and HTTP
// input layers. It returns a *RangeError, or nil when every field is in range.
// Run never calls it.
func (p Parameters) CheckRanges() error {
	var violations []string
	for _, r := range inputRanges {
		v := r.value(p)
		if math.IsNaN(v) || v < r.min || v > r.max {
			violations = append(violations, fmt.Sprintf("%s=%g not in [%g, %g]", r.name, v, r.min, r.max))
		}
	}
	if len(violations) > 0 {
		return &RangeError{Violations: violations}
	}
	return nil
}
