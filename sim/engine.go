package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// ErrInvalidShape reports a run that cannot produce any trial:
// a simulation count or horizon below one.
var ErrInvalidShape = errors.New("invalid simulation shape")

// CashFlow returns the after-tax net cash flow for one year with the given
// sales. A loss yields a negative tax (a tax benefit); nothing is clamped.
func CashFlow(p Parameters, sales float64) float64 {
	revenue := sales
	costs := p.VariableCostFraction*sales + p.FixedCosts
	grossProfit := revenue - costs
	taxes := grossProfit * p.TaxRate
	return grossProfit - taxes
}

// DiscountFactor returns (1+rate)^(t+1), the divisor for a cash flow
// received at the end of zero-indexed year t.
func DiscountFactor(rate float64, t int) float64 {
	return math.Pow(1+rate, float64(t+1))
}

// DeterministicNPV is the NPV of the path where every year's sales equal
// BaseSales. It equals every sample of Run when SalesDeviation is zero.
func DeterministicNPV(p Parameters) float64 {
	flow := CashFlow(p, p.BaseSales)
	discounted := 0.0
	for t := 0; t < p.HorizonYears; t++ {
		discounted += flow / DiscountFactor(p.DiscountRate, t)
	}
	return discounted - p.InitialInvestment
}

// Run simulates p.SimulationCount trials and returns one NPV per trial in
// generation order. Each trial draws p.HorizonYears independent sales values
// from Normal(BaseSales, SalesDeviation*BaseSales), year by year.
//
// Draws are not truncated at zero. NaN and Inf from degenerate rates are
// returned as-is.
func Run(p Parameters, src NormalSource) ([]float64, error) {
	if p.SimulationCount < 1 || p.HorizonYears < 1 {
		return nil, fmt.Errorf("%w: simulation_count=%d horizon_years=%d",
			ErrInvalidShape, p.SimulationCount, p.HorizonYears)
	}
	logrus.Debugf("npv run: %d trials over %d years", p.SimulationCount, p.HorizonYears)

	stdDev := p.SalesStdDev()
	factors := make([]float64, p.HorizonYears)
	for t := range factors {
		factors[t] = DiscountFactor(p.DiscountRate, t)
	}

	npvs := make([]float64, p.SimulationCount)
	for i := range npvs {
		discounted := 0.0
		for t := 0; t < p.HorizonYears; t++ {
			sales := p.BaseSales + stdDev*src.NormFloat64()
			discounted += CashFlow(p, sales) / factors[t]
		}
		npvs[i] = discounted - p.InitialInvestment
	}
	return npvs, nil
}

// RunSeeded runs p against a fresh sales stream keyed by seed.
func RunSeeded(p Parameters, seed int64) ([]float64, error) {
	logrus.Debugf("npv run: seed=%d", seed)
	return Run(p, NewSalesRNG(NewSimulationKey(seed)))
}
