// sim/metrics_utils.go
package sim

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ErrEmptyInput is returned when statistics are requested over no samples.
var ErrEmptyInput = errors.New("empty input")

// Summary holds the headline statistics of an NPV distribution.
type Summary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	P5       float64 `json:"p5"`
	P95      float64 `json:"p95"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	StdDev   float64 `json:"std_dev"`   // population standard deviation
	ProbLoss float64 `json:"prob_loss"` // share of samples below zero

	NonFinite int `json:"non_finite"` // NaN or Inf samples
}

// Summarize computes the mean and the 5th and 95th percentiles of result,
// along with count, extremes, spread and probability of loss.
// result is not modified. Any NaN sample makes every location statistic NaN.
func Summarize(result []float64) (Summary, error) {
	n := len(result)
	if n == 0 {
		return Summary{}, ErrEmptyInput
	}

	sorted := make([]float64, n)
	copy(sorted, result)
	sort.Float64s(sorted)

	s := Summary{
		Count: n,
		Mean:  CalculateMean(result),
	}

	// sort.Float64s orders NaN first
	if math.IsNaN(sorted[0]) {
		nan := math.NaN()
		s.P5, s.P95, s.Min, s.Max, s.StdDev = nan, nan, nan, nan, nan
	} else {
		s.P5 = Percentile(sorted, 5)
		s.P95 = Percentile(sorted, 95)
		s.Min = sorted[0]
		s.Max = sorted[n-1]
		s.StdDev = stdDev(result, s.Mean)
	}

	losses := 0
	for _, v := range result {
		if v < 0 {
			losses++
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.NonFinite++
		}
	}
	s.ProbLoss = float64(losses) / float64(n)
	return s, nil
}

// Percentile returns the p-th percentile of an ascending slice using linear
// interpolation between the bracketing order statistics at rank p/100*(n-1).
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if lowerIdx < 0 {
		return sorted[0]
	}
	if upperIdx >= n {
		return sorted[n-1]
	}

	lowerVal := sorted[lowerIdx]
	upperVal := sorted[upperIdx]
	if lowerIdx == upperIdx || lowerVal == upperVal {
		return lowerVal
	}
	return lowerVal + (upperVal-lowerVal)*(rank-float64(lowerIdx))
}

// CalculateMean returns the arithmetic mean of numbers, or 0 for none.
func CalculateMean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, number := range numbers {
		sum += number
	}

	return sum / float64(len(numbers))
}

func stdDev(numbers []float64, mean float64) float64 {
	sq := 0.0
	for _, v := range numbers {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(numbers)))
}

// SaveSamples writes one sample per line to fileName, truncating it.
func SaveSamples(samples []float64, fileName string) (err error) {
	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fileName, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", fileName, closeErr)
		}
	}()

	writer := bufio.NewWriter(file)
	for _, v := range samples {
		if _, err := writer.WriteString(strconv.FormatFloat(v, 'g', -1, 64) + "\n"); err != nil {
			return fmt.Errorf("writing %s: %w", fileName, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", fileName, err)
	}

	logrus.Debugf("Wrote %d samples to '%s'", len(samples), fileName)
	return nil
}
