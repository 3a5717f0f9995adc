package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/inference-sim/queue-sim/sim/variate"
)

// ErrInvalidConfig is wrapped by every configuration rejection.
var ErrInvalidConfig = errors.New("invalid simulation config")

// SimulationConfig holds the parameters of one run. Immutable once a run starts.
type SimulationConfig struct {
	ArrivalMean         float64              `yaml:"arrival_mean" json:"arrivalMean"`                 // mean interarrival time (> 0)
	ServiceMean         float64              `yaml:"service_mean" json:"serviceMean"`                 // mean service duration (> 0)
	Servers             int                  `yaml:"servers" json:"servers"`                          // parallel servers (>= 1)
	PriorityEnabled     bool                 `yaml:"priority_enabled" json:"priorityEnabled"`         // priority-ordered waiting line
	ArrivalDistribution variate.Distribution `yaml:"arrival_distribution" json:"arrivalDistribution"` // interarrival family
	ServiceDistribution variate.Distribution `yaml:"service_distribution" json:"serviceDistribution"` // service family
	Jobs                int                  `yaml:"jobs" json:"jobs"`                                // jobs to generate (>= 1)
	Horizon             float64              `yaml:"horizon" json:"horizon"`                          // simulated-time cutoff; 0 = unbounded
}

// DefaultSimulationConfig returns the parameters used when nothing is overridden.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		ArrivalMean:         1.0,
		ServiceMean:         0.8,
		Servers:             3,
		PriorityEnabled:     false,
		ArrivalDistribution: variate.Exponential,
		ServiceDistribution: variate.Exponential,
		Jobs:                100,
		Horizon:             0,
	}
}

// Validate rejects parameter values that would make a run meaningless.
// Unknown distribution names are not rejected; they sample as Exponential.
func (c SimulationConfig) Validate() error {
	if !isPositiveFinite(c.ArrivalMean) {
		return fmt.Errorf("%w: arrival mean must be finite and > 0, got %v", ErrInvalidConfig, c.ArrivalMean)
	}
	if !isPositiveFinite(c.ServiceMean) {
		return fmt.Errorf("%w: service mean must be finite and > 0, got %v", ErrInvalidConfig, c.ServiceMean)
	}
	if c.Servers < 1 {
		return fmt.Errorf("%w: server count must be >= 1, got %d", ErrInvalidConfig, c.Servers)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("%w: job count must be >= 1, got %d", ErrInvalidConfig, c.Jobs)
	}
	if c.Horizon < 0 || math.IsNaN(c.Horizon) || math.IsInf(c.Horizon, 0) {
		return fmt.Errorf("%w: horizon must be finite and >= 0, got %v", ErrInvalidConfig, c.Horizon)
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// QueueModel is a Kendall-notation preset that pins distribution families.
type QueueModel string

const (
	ModelMMC QueueModel = "M/M/C" // Markovian arrivals and service
	ModelMGC QueueModel = "M/G/C" // Markovian arrivals, general service
	ModelGGC QueueModel = "G/G/C" // general arrivals and service
)

// ValidQueueModels is the set of recognized model names. Empty means no preset.
var ValidQueueModels = map[QueueModel]bool{"": true, ModelMMC: true, ModelMGC: true, ModelGGC: true}

// ApplyModel returns cfg with the families the preset fixes overwritten.
func ApplyModel(cfg SimulationConfig, model QueueModel) (SimulationConfig, error) {
	if !ValidQueueModels[model] {
		return cfg, fmt.Errorf("%w: unknown queue model %q", ErrInvalidConfig, model)
	}
	switch model {
	case ModelMMC:
		cfg.ArrivalDistribution = variate.Exponential
		cfg.ServiceDistribution = variate.Exponential
	case ModelMGC:
		cfg.ArrivalDistribution = variate.Exponential
	}
	return cfg, nil
}
