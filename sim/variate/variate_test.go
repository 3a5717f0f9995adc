package variate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource replays a scripted sequence of uniforms, then repeats the last one.
type fixedSource struct {
	values []float64
	i      int
}

func (f *fixedSource) Float64() float64 {
	v := f.values[min(f.i, len(f.values)-1)]
	f.i++
	return v
}

func sampleMean(rng Source, d Distribution, mean float64, n int) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += Sample(rng, d, mean)
	}
	return sum / float64(n)
}

func TestExponential_MeanMatchesParam(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	got := sampleMean(rng, Exponential, 2.0, 100000)
	if math.Abs(got-2.0)/2.0 > 0.05 {
		t.Errorf("exponential mean = %.4f, want ≈ 2.0 (within 5%%)", got)
	}
}

func TestUniform_WithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100000; i++ {
		v := Sample(rng, Uniform, 3.0)
		if v < 0 || v > 6.0 {
			t.Fatalf("sample %d: %v outside [0, 6.0]", i, v)
		}
	}
}

func TestFamilies_MeanMatchesParam(t *testing.T) {
	tests := []struct {
		dist Distribution
		mean float64
	}{
		{Gamma, 4.0},
		{Uniform, 3.0},
		{Normal, 10.0},
		{Exponential, 0.8},
	}
	for _, tt := range tests {
		t.Run(string(tt.dist), func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			got := sampleMean(rng, tt.dist, tt.mean, 100000)
			assert.InEpsilon(t, tt.mean, got, 0.05)
		})
	}
}

func TestGammaAndNormal_RespectFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50000; i++ {
		g := Sample(rng, Gamma, 1.0)
		if g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
			t.Fatalf("gamma sample %d: got %v, want finite >= 0", i, g)
		}
		n := Sample(rng, Normal, 1.0)
		if n < NormalFloor {
			t.Fatalf("normal sample %d: got %v, want >= %v", i, n, NormalFloor)
		}
	}
}

func TestNormal_NegativeDrawIsFloored(t *testing.T) {
	// GIVEN uniforms that drive Box-Muller to z ≈ -2.1 (u small, cos(2πv) = -1)
	rng := &fixedSource{values: []float64{0.1, 0.5}}

	// WHEN a Normal(mean=1) duration is sampled (stddev 0.5 → 1 - 1.07 < 0)
	got := Sample(rng, Normal, 1.0)

	// THEN the floor applies
	assert.Equal(t, NormalFloor, got)
}

func TestExponential_SkipsZeroUniform(t *testing.T) {
	// GIVEN a source whose first draw is exactly 0
	rng := &fixedSource{values: []float64{0, math.Exp(-1)}}

	// WHEN an Exponential(mean=3) is drawn
	got := ExponentialDraw(rng, 3.0)

	// THEN the zero is rejected and -3*ln(e^-1) = 3 is returned
	assert.InDelta(t, 3.0, got, 1e-12)
}

func TestGamma_ShapeBelowOneUsesCorrection(t *testing.T) {
	// GIVEN shape 0.5, scale 2: mean = 1
	rng := rand.New(rand.NewSource(11))
	n := 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := GammaDraw(rng, 0.5, 2.0)
		if v < 0 {
			t.Fatalf("sample %d: got %v, want >= 0", i, v)
		}
		sum += v
	}
	assert.InEpsilon(t, 1.0, sum/float64(n), 0.05)
}

func TestSample_UnknownFallsBackToExponential(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		assert.Equal(t, ExponentialDraw(b, 5.0), Sample(a, "Weibull", 5.0))
	}
}

func TestIsValid(t *testing.T) {
	for _, name := range Names() {
		assert.True(t, IsValid(Distribution(name)), name)
	}
	assert.False(t, IsValid("exponential"), "names are case-sensitive")
	assert.False(t, IsValid(""))
}
