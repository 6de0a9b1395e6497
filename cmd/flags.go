package cmd

import (
	"github.com/spf13/pflag"

	sim "github.com/inference-sim/npv-sim/sim"
)

// parameterFlags binds one CLI flag per simulation parameter.
type parameterFlags struct {
	values sim.Parameters
}

// register adds the parameter flags to fs with the stock project as defaults.
func (f *parameterFlags) register(fs *pflag.FlagSet) {
	d := sim.DefaultParameters()
	fs.IntVar(&f.values.SimulationCount, "simulations", d.SimulationCount, "Number of Monte Carlo trials")
	fs.IntVar(&f.values.HorizonYears, "years", d.HorizonYears, "Project horizon in years")
	fs.Float64Var(&f.values.DiscountRate, "discount-rate", d.DiscountRate, "Annual discount rate (fraction)")
	fs.Float64Var(&f.values.BaseSales, "base-sales", d.BaseSales, "Expected yearly sales")
	fs.Float64Var(&f.values.SalesDeviation, "sales-deviation", d.SalesDeviation, "Sales standard deviation as a fraction of base sales")
	fs.Float64Var(&f.values.VariableCostFraction, "variable-cost", d.VariableCostFraction, "Variable costs as a fraction of sales")
	fs.Float64Var(&f.values.FixedCosts, "fixed-costs", d.FixedCosts, "Yearly fixed costs")
	fs.Float64Var(&f.values.TaxRate, "tax-rate", d.TaxRate, "Tax rate on gross profit (fraction)")
	fs.Float64Var(&f.values.InitialInvestment, "initial-investment", d.InitialInvestment, "Upfront investment")
}

// apply copies every explicitly set flag onto p, leaving the rest alone.
func (f *parameterFlags) apply(fs *pflag.FlagSet, p *sim.Parameters) {
	set := map[string]func(){
		"simulations":        func() { p.SimulationCount = f.values.SimulationCount },
		"years":              func() { p.HorizonYears = f.values.HorizonYears },
		"discount-rate":      func() { p.DiscountRate = f.values.DiscountRate },
		"base-sales":         func() { p.BaseSales = f.values.BaseSales },
		"sales-deviation":    func() { p.SalesDeviation = f.values.SalesDeviation },
		"variable-cost":      func() { p.VariableCostFraction = f.values.VariableCostFraction },
		"fixed-costs":        func() { p.FixedCosts = f.values.FixedCosts },
		"tax-rate":           func() { p.TaxRate = f.values.TaxRate },
		"initial-investment": func() { p.InitialInvestment = f.values.InitialInvestment },
	}
	for name, assign := range set {
		if fs.Changed(name) {
			assign()
		}
	}
}
