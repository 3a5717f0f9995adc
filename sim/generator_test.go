package sim

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/queue-sim/sim/variate"
)

func TestGenerateJobs_LengthIDsAndStrictlyIncreasingArrivals(t *testing.T) {
	for _, dist := range variate.Names() {
		t.Run(dist, func(t *testing.T) {
			cfg := DefaultSimulationConfig()
			cfg.Jobs = 2000
			cfg.ArrivalDistribution = variate.Distribution(dist)
			cfg.ServiceDistribution = variate.Distribution(dist)

			jobs, err := GenerateJobs(cfg, NewPartitionedRNG(NewSimulationKey(42)))
			require.NoError(t, err)
			require.Len(t, jobs, cfg.Jobs)

			prev := 0.0
			for i, j := range jobs {
				assert.Equal(t, i, j.ID)
				assert.Equal(t, StatePending, j.State)
				assert.Greater(t, j.ServiceTime, 0.0)
				if i > 0 && !(j.ArrivalTime > prev) {
					t.Fatalf("job %d arrival %v not after previous %v", i, j.ArrivalTime, prev)
				}
				prev = j.ArrivalTime
			}
		})
	}
}

func TestGenerateJobs_PriorityClasses(t *testing.T) {
	cfg := DefaultSimulationConfig()
	cfg.Jobs = 3000

	// GIVEN priority disabled THEN every job is class 1
	jobs, err := GenerateJobs(cfg, NewPartitionedRNG(NewSimulationKey(1)))
	require.NoError(t, err)
	for _, j := range jobs {
		require.Equal(t, HighestPriority, j.Priority)
	}

	// GIVEN priority enabled THEN classes 1..3 all appear, nothing else
	cfg.PriorityEnabled = true
	jobs, err = GenerateJobs(cfg, NewPartitionedRNG(NewSimulationKey(1)))
	require.NoError(t, err)
	seen := map[int]int{}
	for _, j := range jobs {
		seen[j.Priority]++
	}
	assert.Len(t, seen, PriorityClasses)
	for class := 1; class <= PriorityClasses; class++ {
		assert.Greater(t, seen[class], 0, "class %d never drawn", class)
	}
}

func TestGenerateJobs_Deterministic(t *testing.T) {
	cfg := DefaultSimulationConfig()
	cfg.PriorityEnabled = true
	a, err := GenerateJobs(cfg, NewPartitionedRNG(NewSimulationKey(99)))
	require.NoError(t, err)
	b, err := GenerateJobs(cfg, NewPartitionedRNG(NewSimulationKey(99)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateJobs_ServiceFamilyDoesNotShiftArrivals(t *testing.T) {
	// GIVEN two configs that differ only in service family
	cfgA := DefaultSimulationConfig()
	cfgB := cfgA
	cfgB.ServiceDistribution = variate.Gamma

	a, err := GenerateJobs(cfgA, NewPartitionedRNG(NewSimulationKey(5)))
	require.NoError(t, err)
	b, err := GenerateJobs(cfgB, NewPartitionedRNG(NewSimulationKey(5)))
	require.NoError(t, err)

	// THEN the arrival streams are identical (isolated RNG subsystems)
	for i := range a {
		require.Equal(t, a[i].ArrivalTime, b[i].ArrivalTime, "job %d", i)
	}
}

func TestGenerateJobs_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultSimulationConfig()
	cfg.Jobs = 0
	jobs, err := GenerateJobs(cfg, NewPartitionedRNG(NewSimulationKey(1)))
	assert.Nil(t, jobs)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = GenerateJobs(DefaultSimulationConfig(), nil)
	assert.Error(t, err)
}

func TestValidateJobs(t *testing.T) {
	tests := []struct {
		name    string
		jobs    []*Job
		wantErr bool
	}{
		{"valid", []*Job{NewJob(0, 0, 1, 1), NewJob(1, 0, 2, 1), NewJob(2, 3, 1, 1)}, false},
		{"empty", nil, true},
		{"nil job", []*Job{nil}, true},
		{"negative arrival", []*Job{NewJob(0, -1, 1, 1)}, true},
		{"zero service", []*Job{NewJob(0, 0, 0, 1)}, true},
		{"decreasing arrivals", []*Job{NewJob(0, 2, 1, 1), NewJob(1, 1, 1, 1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJobs(tt.jobs)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateJobs_UnknownFamilyWarnsOncePerRole(t *testing.T) {
	// GIVEN unknown names for both families
	hook := logtest.NewGlobal()
	defer hook.Reset()
	cfg := DefaultSimulationConfig()
	cfg.ArrivalDistribution = "Pareto"
	cfg.ServiceDistribution = "Weibull"

	// WHEN the stream is generated
	jobs, err := GenerateJobs(cfg, NewPartitionedRNG(NewSimulationKey(5)))
	require.NoError(t, err)
	require.Len(t, jobs, cfg.Jobs)

	// THEN exactly one warning per role is logged, not one per job
	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)
}
