// sim/metrics_utils.go
package sim

import (
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// histogramDigits sets the histogram range: a series' maximum maps to about
// 10^histogramDigits units, so resolution follows the magnitude of the series.
const histogramDigits = 6

type IntOrFloat64 interface {
	int | int64 | float64
}

// CalculateMean is a util function that calculates the mean of a data list.
// Returns 0 for an empty list.
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}
	values := make([]float64, len(numbers))
	for i, number := range numbers {
		values[i] = float64(number)
	}
	return stat.Mean(values, nil)
}

// SeriesSummary describes the spread of one per-job series.
type SeriesSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// Describe summarizes a series. Returns the zero value for an empty series.
// StdDev is the sample standard deviation (0 for a single value).
func Describe(values []float64) SeriesSummary {
	if len(values) == 0 {
		return SeriesSummary{}
	}
	s := SeriesSummary{Count: len(values)}
	if len(values) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	} else {
		s.Mean = values[0]
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)

	scale := histogramScale(s.Max)
	hist := hdrhistogram.New(1, max(toHistogramUnits(s.Max, scale)+1, 2), 3)
	for _, v := range values {
		_ = hist.RecordValue(toHistogramUnits(v, scale))
	}
	s.P50 = float64(hist.ValueAtQuantile(50)) / scale
	s.P90 = float64(hist.ValueAtQuantile(90)) / scale
	s.P99 = float64(hist.ValueAtQuantile(99)) / scale
	return s
}

// histogramScale returns the histogram units per unit of simulated time for a
// series whose largest value is maxValue.
func histogramScale(maxValue float64) float64 {
	if maxValue <= 0 {
		return 1
	}
	return math.Pow(10, histogramDigits-math.Ceil(math.Log10(maxValue)))
}

func toHistogramUnits(v, scale float64) int64 {
	return int64(math.Round(math.Max(v, 0) * scale))
}
