package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queue-sim/sim/variate"
)

// PriorityClasses is the number of priority classes drawn when priority is on.
// Classes are 1..PriorityClasses with 1 the most urgent.
const PriorityClasses = 3

// resolveDistribution maps a configured family to the one actually sampled.
// Empty means Exponential; unknown names also sample as Exponential, with a warning.
func resolveDistribution(d variate.Distribution, role string) variate.Distribution {
	if d == "" {
		return variate.Exponential
	}
	if !variate.IsValid(d) {
		logrus.Warnf("Unknown %s distribution %q; falling back to %s", role, d, variate.Exponential)
		return variate.Exponential
	}
	return d
}

// GenerateJobs creates the arrival stream for cfg as a renewal process.
// Deterministic given the same cfg and RNG key.
// Returns cfg.Jobs jobs with sequential IDs and strictly increasing ArrivalTime.
func GenerateJobs(cfg SimulationConfig, rng *PartitionedRNG) ([]*Job, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("GenerateJobs: rng must not be nil")
	}

	arrivalDist := resolveDistribution(cfg.ArrivalDistribution, "arrival")
	serviceDist := resolveDistribution(cfg.ServiceDistribution, "service")
	arrivalRNG := rng.ForSubsystem(SubsystemArrival)
	serviceRNG := rng.ForSubsystem(SubsystemService)
	priorityRNG := rng.ForSubsystem(SubsystemPriority)

	jobs := make([]*Job, 0, cfg.Jobs)
	clock := 0.0
	for i := 0; i < cfg.Jobs; i++ {
		next := clock + variate.Sample(arrivalRNG, arrivalDist, cfg.ArrivalMean)
		if next <= clock {
			// a gap below the clock's float resolution would tie with the previous arrival
			next = math.Nextafter(clock, math.Inf(1))
		}
		clock = next

		service := variate.Sample(serviceRNG, serviceDist, cfg.ServiceMean)
		if service <= 0 {
			service = math.SmallestNonzeroFloat64
		}

		priority := HighestPriority
		if cfg.PriorityEnabled {
			priority = priorityRNG.Intn(PriorityClasses) + HighestPriority
		}

		jobs = append(jobs, NewJob(i, clock, service, priority))
	}
	logrus.Debugf("Generated %d jobs (key=%d, arrival=%s, service=%s), last arrival at %.4f",
		len(jobs), rng.Key(), arrivalDist, serviceDist, clock)
	return jobs, nil
}

// ValidateJobs checks an externally supplied job stream before it is simulated.
// Arrivals must be non-negative and non-decreasing, and every service duration positive.
func ValidateJobs(jobs []*Job) error {
	if len(jobs) == 0 {
		return fmt.Errorf("%w: job stream is empty", ErrInvalidConfig)
	}
	prev := 0.0
	for i, j := range jobs {
		if j == nil {
			return fmt.Errorf("%w: job %d is nil", ErrInvalidConfig, i)
		}
		if j.ArrivalTime < 0 || math.IsNaN(j.ArrivalTime) || math.IsInf(j.ArrivalTime, 0) {
			return fmt.Errorf("%w: job %d has invalid arrival time %v", ErrInvalidConfig, j.ID, j.ArrivalTime)
		}
		if !(j.ServiceTime > 0) || math.IsInf(j.ServiceTime, 0) {
			return fmt.Errorf("%w: job %d has invalid service time %v", ErrInvalidConfig, j.ID, j.ServiceTime)
		}
		if j.ArrivalTime < prev {
			return fmt.Errorf("%w: job %d arrives at %v, before previous arrival %v", ErrInvalidConfig, j.ID, j.ArrivalTime, prev)
		}
		prev = j.ArrivalTime
	}
	return nil
}
