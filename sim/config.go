package sim

// Parameters holds the financial assumptions for one simulation run.
// Rates are fractions (0.10 means 10%). Amounts share a single currency unit.
// The engine does no range checking; see CheckRanges.
type Parameters struct {
	SimulationCount      int     `yaml:"simulation_count" json:"simulation_count" mapstructure:"simulation_count"`
	HorizonYears         int     `yaml:"horizon_years" json:"horizon_years" mapstructure:"horizon_years"`
	DiscountRate         float64 `yaml:"discount_rate" json:"discount_rate" mapstructure:"discount_rate"`
	BaseSales            float64 `yaml:"base_sales" json:"base_sales" mapstructure:"base_sales"`
	SalesDeviation       float64 `yaml:"sales_deviation" json:"sales_deviation" mapstructure:"sales_deviation"` // fraction of BaseSales
	VariableCostFraction float64 `yaml:"variable_cost_fraction" json:"variable_cost_fraction" mapstructure:"variable_cost_fraction"`
	FixedCosts           float64 `yaml:"fixed_costs" json:"fixed_costs" mapstructure:"fixed_costs"`
	TaxRate              float64 `yaml:"tax_rate" json:"tax_rate" mapstructure:"tax_rate"`
	InitialInvestment    float64 `yaml:"initial_investment" json:"initial_investment" mapstructure:"initial_investment"`
}

// DefaultParameters returns the stock project used when no preset or
// parameter file is given: 10000 trials over five years.
func DefaultParameters() Parameters {
	return Parameters{
		SimulationCount:      10000,
		HorizonYears:         5,
		DiscountRate:         0.10,
		BaseSales:            1000,
		SalesDeviation:       0.20,
		VariableCostFraction: 0.40,
		FixedCosts:           200,
		TaxRate:              0.30,
		InitialInvestment:    2000,
	}
}

// SalesStdDev is the absolute standard deviation of a yearly sales draw.
func (p Parameters) SalesStdDev() float64 {
	return p.SalesDeviation * p.BaseSales
}
