// Assembles the outcome of one run (parameters, seed, summary, histogram)
// for display and export.

package sim

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Report aggregates everything a caller displays after a run.
// Samples is only populated when the caller asks for raw output.
type Report struct {
	Seed       int64
	Parameters Parameters
	Summary    Summary
	Histogram  *Histogram
	Samples    []float64
}

// NewReport summarizes samples and bins them into a density histogram.
func NewReport(p Parameters, seed int64, samples []float64, bins int) (*Report, error) {
	summary, err := Summarize(samples)
	if err != nil {
		return nil, err
	}
	// an all non-finite run still reports; it just has nothing to plot
	hist, err := NewHistogram(samples, bins)
	if err != nil && !errors.Is(err, ErrEmptyInput) {
		return nil, fmt.Errorf("binning samples: %w", err)
	}
	return &Report{
		Seed:       seed,
		Parameters: p,
		Summary:    summary,
		Histogram:  hist,
	}, nil
}

// WriteText writes the human-readable report.
func (r *Report) WriteText(w io.Writer) {
	s := r.Summary
	fmt.Fprintln(w, "=== NPV Simulation Results ===")
	fmt.Fprintf(w, "Simulations          : %d\n", r.Parameters.SimulationCount)
	fmt.Fprintf(w, "Project Years        : %d\n", r.Parameters.HorizonYears)
	fmt.Fprintf(w, "Seed                 : %d\n", r.Seed)
	fmt.Fprintf(w, "Average NPV          : %s\n", FormatMoney(s.Mean))
	fmt.Fprintf(w, "5%% Percentile (Pessimistic Scenario) : %s\n", FormatMoney(s.P5))
	fmt.Fprintf(w, "95%% Percentile (Optimistic Scenario) : %s\n", FormatMoney(s.P95))
	fmt.Fprintf(w, "Min / Max            : %s / %s\n", FormatMoney(s.Min), FormatMoney(s.Max))
	fmt.Fprintf(w, "Std Dev              : %s\n", FormatMoney(s.StdDev))
	fmt.Fprintf(w, "Probability of Loss  : %.2f%%\n", s.ProbLoss*100)
	if s.NonFinite > 0 {
		fmt.Fprintf(w, "Non-finite Samples   : %d\n", s.NonFinite)
	}
}

// FormatMoney renders v as dollars rounded half-to-even to cents with
// thousands separators, e.g. "$1,234.56" or "$-1,745.45".
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("$%v", v)
	}
	fixed := decimal.NewFromFloat(v).RoundBank(2).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return "$" + sign + b.String() + "." + frac
}

// JSON has no NaN or Inf, so non-finite statistics encode as null.
type summaryJSON struct {
	Count     int      `json:"count"`
	Mean      *float64 `json:"mean"`
	P5        *float64 `json:"p5"`
	P95       *float64 `json:"p95"`
	Min       *float64 `json:"min"`
	Max       *float64 `json:"max"`
	StdDev    *float64 `json:"std_dev"`
	ProbLoss  float64  `json:"prob_loss"`
	NonFinite int      `json:"non_finite"`
}

type reportJSON struct {
	Seed       int64       `json:"seed"`
	Parameters Parameters  `json:"parameters"`
	Summary    summaryJSON `json:"summary"`
	Histogram  *Histogram  `json:"histogram,omitempty"`
	Samples    []*float64  `json:"samples,omitempty"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MarshalJSON encodes the report with non-finite numbers as null.
func (r *Report) MarshalJSON() ([]byte, error) {
	s := r.Summary
	out := reportJSON{
		Seed:       r.Seed,
		Parameters: r.Parameters,
		Summary: summaryJSON{
			Count:     s.Count,
			Mean:      finite(s.Mean),
			P5:        finite(s.P5),
			P95:       finite(s.P95),
			Min:       finite(s.Min),
			Max:       finite(s.Max),
			StdDev:    finite(s.StdDev),
			ProbLoss:  s.ProbLoss,
			NonFinite: s.NonFinite,
		},
		Histogram: r.Histogram,
	}
	if r.Samples != nil {
		out.Samples = make([]*float64, len(r.Samples))
		for i, v := range r.Samples {
			out.Samples[i] = finite(v)
		}
	}
	return json.Marshal(out)
}

// WriteJSON writes the indented JSON report.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
