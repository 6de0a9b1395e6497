package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource replays a fixed sequence of standard normal draws.
type fixedSource struct {
	draws []float64
	next  int
}

func (f *fixedSource) NormFloat64() float64 {
	v := f.draws[f.next%len(f.draws)]
	f.next++
	return v
}

func singleYearParams() Parameters {
	return Parameters{
		SimulationCount:      1,
		HorizonYears:         1,
		DiscountRate:         0.10,
		BaseSales:            1000,
		SalesDeviation:       0,
		VariableCostFraction: 0.40,
		FixedCosts:           200,
		TaxRate:              0.30,
		InitialInvestment:    2000,
	}
}

func TestRun_SingleYearScenario(t *testing.T) {
	// GIVEN one trial over one year with no sales deviation
	p := singleYearParams()

	// WHEN the engine runs
	npvs, err := RunSeeded(p, 42)
	require.NoError(t, err)

	// THEN sales=1000, costs=600, gross=400, taxes=120, flow=280, NPV=280/1.1-2000
	require.Len(t, npvs, 1)
	assert.InDelta(t, -1745.4545454545455, npvs[0], 1e-9)
}

func TestRun_ReturnsSimulationCountSamples(t *testing.T) {
	tests := []struct {
		name  string
		count int
		years int
	}{
		{"single trial", 1, 1},
		{"lower input bound", 1000, 5},
		{"long horizon", 1500, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			p.SimulationCount = tt.count
			p.HorizonYears = tt.years
			npvs, err := RunSeeded(p, 1)
			require.NoError(t, err)
			assert.Len(t, npvs, tt.count)
		})
	}
}

func TestRun_InvalidShape(t *testing.T) {
	tests := []struct {
		name  string
		count int
		years int
	}{
		{"zero simulations", 0, 5},
		{"negative simulations", -3, 5},
		{"zero horizon", 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			p.SimulationCount = tt.count
			p.HorizonYears = tt.years
			npvs, err := RunSeeded(p, 1)
			assert.ErrorIs(t, err, ErrInvalidShape)
			assert.Nil(t, npvs)
		})
	}
}

func TestRun_ZeroDeviation_AllSamplesEqualAnalyticNPV(t *testing.T) {
	// GIVEN the stock project with sales deviation forced to zero
	p := DefaultParameters()
	p.SimulationCount = 1000
	p.SalesDeviation = 0

	npvs, err := RunSeeded(p, 2024)
	require.NoError(t, err)

	// THEN every sample equals the deterministic discounted cash flow
	want := DeterministicNPV(p)
	for i, v := range npvs {
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestRun_SingleYear_MatchesHandComputedDraw(t *testing.T) {
	// GIVEN one year with 20% deviation and a known seed
	p := DefaultParameters()
	p.SimulationCount = 3
	p.HorizonYears = 1

	npvs, err := RunSeeded(p, 42)
	require.NoError(t, err)

	// THEN each NPV is the hand-computed flow for that trial's draw
	ref := rand.New(rand.NewSource(42))
	for i := range npvs {
		sales := 1000 + 200*ref.NormFloat64()
		gross := sales - (0.40*sales + 200)
		flow := gross - gross*0.30
		assert.InDelta(t, flow/1.10-2000, npvs[i], 1e-9, "trial %d", i)
	}
}

func TestRun_SameSeed_IdenticalSamples(t *testing.T) {
	p := DefaultParameters()
	p.SimulationCount = 2000

	a, err := RunSeeded(p, 123)
	require.NoError(t, err)
	b, err := RunSeeded(p, 123)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRun_DifferentSeeds_DifferentSamples(t *testing.T) {
	p := DefaultParameters()
	p.SimulationCount = 1000

	a, err := RunSeeded(p, 100)
	require.NoError(t, err)
	b, err := RunSeeded(p, 200)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "different seeds produced identical samples")
}

func TestRun_InitialInvestmentIsPureTranslation(t *testing.T) {
	// GIVEN two runs over the same draws that differ only in investment
	p := DefaultParameters()
	p.SimulationCount = 1000
	shifted := p
	shifted.InitialInvestment += 750

	base, err := RunSeeded(p, 9)
	require.NoError(t, err)
	moved, err := RunSeeded(shifted, 9)
	require.NoError(t, err)

	// THEN every sample moves down by exactly the difference
	for i := range base {
		assert.InDelta(t, base[i]-750, moved[i], 1e-9, "trial %d", i)
	}
}

func TestRun_NegativeSalesPassThrough(t *testing.T) {
	// GIVEN a draw of -3 sigma at 50% deviation: sales = 1000 - 1500 = -500
	p := singleYearParams()
	p.SalesDeviation = 0.5
	src := &fixedSource{draws: []float64{-3}}

	npvs, err := Run(p, src)
	require.NoError(t, err)

	// THEN sales are not clamped and the loss earns a tax benefit
	// gross = -500 - (-200 + 200) = -500; taxes = -150; flow = -350
	assert.InDelta(t, -350/1.10-2000, npvs[0], 1e-9)
}

func TestRun_DrawOrderIsTrialMajor(t *testing.T) {
	// GIVEN two trials over two years drawing 0, 1, 2, 3 in sequence
	p := singleYearParams()
	p.SimulationCount = 2
	p.HorizonYears = 2
	p.SalesDeviation = 0.1
	p.InitialInvestment = 0
	src := &fixedSource{draws: []float64{0, 1, 2, 3}}

	npvs, err := Run(p, src)
	require.NoError(t, err)

	// THEN trial 0 uses draws 0 and 1, trial 1 uses draws 2 and 3
	want := func(z0, z1 float64) float64 {
		return CashFlow(p, 1000+100*z0)/1.1 + CashFlow(p, 1000+100*z1)/(1.1*1.1)
	}
	assert.InDelta(t, want(0, 1), npvs[0], 1e-9)
	assert.InDelta(t, want(2, 3), npvs[1], 1e-9)
}

func TestRun_DegenerateDiscountRate_PropagatesInf(t *testing.T) {
	// GIVEN a discount rate of -1, so every discount factor is zero
	p := singleYearParams()
	p.SimulationCount = 5
	p.DiscountRate = -1

	npvs, err := RunSeeded(p, 1)

	// THEN no error is raised and the division by zero surfaces in the output
	require.NoError(t, err)
	for _, v := range npvs {
		assert.True(t, math.IsInf(v, 1), "got %v, want +Inf", v)
	}
}

func TestRunSeeded_LogsSeedAndShape(t *testing.T) {
	// GIVEN debug logging captured by a test hook
	hook := test.NewGlobal()
	defer hook.Reset()
	oldLevel := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(oldLevel)

	// WHEN a seeded run executes
	_, err := RunSeeded(singleYearParams(), 31)
	require.NoError(t, err)

	// THEN the debug lines name the seed and the run shape
	var messages []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel {
			messages = append(messages, e.Message)
		}
	}
	assert.Contains(t, messages, "npv run: seed=31")
	assert.Contains(t, messages, "npv run: 1 trials over 1 years")
}

func TestCashFlow(t *testing.T) {
	p := singleYearParams()
	tests := []struct {
		name  string
		sales float64
		want  float64
	}{
		{"profitable", 1000, 280},
		{"break even", 1000.0 / 3.0, 0},
		{"loss yields tax benefit", 0, -140},
		{"negative sales", -100, -182},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CashFlow(p, tt.sales), 1e-9)
		})
	}
}

func TestDiscountFactor(t *testing.T) {
	assert.InDelta(t, 1.10, DiscountFactor(0.10, 0), 1e-12)
	assert.InDelta(t, 1.21, DiscountFactor(0.10, 1), 1e-12)
	assert.Equal(t, 1.0, DiscountFactor(0, 7))
	assert.Equal(t, 0.0, DiscountFactor(-1, 0))
}

func BenchmarkRun_StockProject(b *testing.B) {
	p := DefaultParameters()
	for i := 0; i < b.N; i++ {
		if _, err := RunSeeded(p, 42); err != nil {
			b.Fatal(err)
		}
	}
}
