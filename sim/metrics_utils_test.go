package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMean(t *testing.T) {
	assert.Equal(t, 0.0, CalculateMean([]float64{}))
	assert.InDelta(t, 2.5, CalculateMean([]int{1, 2, 3, 4}), 1e-12)
	assert.InDelta(t, 0.5, CalculateMean([]float64{0.25, 0.75}), 1e-12)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, SeriesSummary{}, Describe(nil))

	one := Describe([]float64{2.5})
	assert.Equal(t, 1, one.Count)
	assert.Equal(t, 2.5, one.Mean)
	assert.Equal(t, 0.0, one.StdDev)
	assert.InDelta(t, 2.5, one.P99, 0.01)

	// GIVEN 1..100
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}
	s := Describe(values)
	require.Equal(t, 100, s.Count)
	assert.InDelta(t, 50.5, s.Mean, 1e-9)
	assert.InDelta(t, 29.011, s.StdDev, 0.001)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 100.0, s.Max)
	assert.InDelta(t, 50, s.P50, 0.1)
	assert.InDelta(t, 90, s.P90, 0.1)
	assert.InDelta(t, 99, s.P99, 0.1)
	assert.LessOrEqual(t, s.P50, s.P90)
	assert.LessOrEqual(t, s.P90, s.P99)
}

func TestDescribe_ZeroValues(t *testing.T) {
	s := Describe([]float64{0, 0, 0})
	assert.Equal(t, 0.0, s.Max)
	assert.Equal(t, 0.0, s.P50)
	assert.Equal(t, 0.0, s.P99)
}

func TestDescribe_SubMillisecondPercentiles(t *testing.T) {
	// GIVEN a series of very short durations, 1e-5 .. 1e-3
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i+1) * 1e-5
	}

	s := Describe(values)

	// THEN percentiles keep their resolution instead of collapsing to zero
	assert.InEpsilon(t, 5e-4, s.P50, 0.01)
	assert.InEpsilon(t, 9e-4, s.P90, 0.01)
	assert.InEpsilon(t, 9.9e-4, s.P99, 0.01)
}

func TestHistogramScale_MapsMaxToFixedRange(t *testing.T) {
	assert.Equal(t, 1.0, histogramScale(0))
	assert.InEpsilon(t, 1e4, histogramScale(50), 1e-12)
	assert.InEpsilon(t, 1e9, histogramScale(5e-4), 1e-9)
	assert.LessOrEqual(t, toHistogramUnits(250, histogramScale(250)), int64(1e6))
}
