// Package variate draws random service and interarrival durations from the
// distribution families supported by the simulator.
//
// Every function is pure apart from the Source it is handed. Callers own the
// Source; seeding it is what makes a run reproducible.
package variate

import (
	"math"
)

// Source is the randomness a sampler consumes.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// Distribution names a distribution family.
type Distribution string

const (
	Exponential Distribution = "Exponential"
	Gamma       Distribution = "Gamma"
	Normal      Distribution = "Normal"
	Uniform     Distribution = "Uniform"
)

// NormalFloor is the smallest value the Normal family may return.
// Durations must stay strictly positive.
const NormalFloor = 0.001

// GammaShape is the fixed shape used when a Gamma duration is requested by mean.
const GammaShape = 2.0

// validDistributions maps accepted distribution names.
var validDistributions = map[Distribution]bool{
	Exponential: true,
	Gamma:       true,
	Normal:      true,
	Uniform:     true,
}

// IsValid returns true if d names a supported family.
func IsValid(d Distribution) bool {
	return validDistributions[d]
}

// Names returns the supported family names in a stable order.
func Names() []string {
	return []string{string(Exponential), string(Gamma), string(Normal), string(Uniform)}
}

// Sample draws one non-negative value with the given mean from family d.
// Unknown families fall back to Exponential. mean must be > 0; that is
// checked by the caller.
func Sample(rng Source, d Distribution, mean float64) float64 {
	switch d {
	case Normal:
		// stddev is mean/2
		return math.Max(NormalFloor, NormalDraw(rng, mean, mean/2))
	case Gamma:
		return GammaDraw(rng, GammaShape, mean/GammaShape)
	case Uniform:
		return UniformDraw(rng, 0, 2*mean)
	default:
		return ExponentialDraw(rng, mean)
	}
}

// openUnit returns a uniform value in (0, 1).
func openUnit(rng Source) float64 {
	u := rng.Float64()
	for u == 0 {
		u = rng.Float64()
	}
	return u
}

// ExponentialDraw samples Exp(mean) by inverse CDF: -mean * ln(U).
func ExponentialDraw(rng Source, mean float64) float64 {
	return -mean * math.Log(openUnit(rng))
}

// StandardNormal samples N(0, 1) with the Box-Muller transform.
func StandardNormal(rng Source) float64 {
	u := openUnit(rng)
	v := openUnit(rng)
	return math.Sqrt(-2.0*math.Log(u)) * math.Cos(2.0*math.Pi*v)
}

// NormalDraw samples N(mean, stdDev^2). The result is not floored.
func NormalDraw(rng Source, mean, stdDev float64) float64 {
	return mean + stdDev*StandardNormal(rng)
}

// GammaDraw samples Gamma(shape, scale) using Marsaglia-Tsang's method.
// For shape < 1 it samples Gamma(shape+1) and applies the U^(1/shape) correction.
func GammaDraw(rng Source, shape, scale float64) float64 {
	if shape < 1.0 {
		sample := GammaDraw(rng, shape+1.0, scale)
		return sample * math.Pow(openUnit(rng), 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)

	for {
		var x, v float64
		for {
			x = StandardNormal(rng)
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := openUnit(rng)

		// Squeeze test
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// UniformDraw samples uniformly on [lo, hi).
func UniformDraw(rng Source, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
