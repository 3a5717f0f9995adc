package sim

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queue-sim/sim/trace"
)

// SimulationResult is the snapshot a run returns. It is built once, after the
// event loop ends, and is not modified afterwards.
type SimulationResult struct {
	RunID          string                 `json:"runId"`
	Config         SimulationConfig       `json:"config"`
	QueueMetrics   QueueMetrics           `json:"queueMetrics"`
	JobSeries      JobSeries              `json:"simulationMetrics"`
	ServerActivity []trace.ServerActivity `json:"serverActivity"`
	Jobs           []*Job                 `json:"jobs"` // completed jobs, in completion order

	ServerUsage []ServerUsage `json:"serverUsage"`
	Observed    Observations  `json:"observed"`
	Wait        SeriesSummary `json:"waitSummary"`
	Turnaround  SeriesSummary `json:"turnaroundSummary"`
	FinalClock  float64       `json:"finalClock"`
	Truncated   bool          `json:"truncated"`
	Unfinished  Unfinished    `json:"unfinished"`
}

// Run generates cfg.Jobs jobs from rng and simulates them to completion or horizon.
// Configuration errors are returned before any event is executed.
func Run(cfg SimulationConfig, rng *PartitionedRNG) (*SimulationResult, error) {
	jobs, err := GenerateJobs(cfg, rng)
	if err != nil {
		return nil, err
	}
	return simulate(cfg, jobs)
}

// RunJobs simulates a caller-supplied job stream, bypassing sampling.
// cfg.Jobs is taken from len(jobs); the distribution fields are ignored.
func RunJobs(cfg SimulationConfig, jobs []*Job) (*SimulationResult, error) {
	cfg.Jobs = len(jobs)
	return simulate(cfg, jobs)
}

func simulate(cfg SimulationConfig, jobs []*Job) (*SimulationResult, error) {
	s, err := NewSimulator(cfg, jobs)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Starting simulation: %d jobs, %d servers, priority=%v, horizon=%v",
		len(jobs), cfg.Servers, cfg.PriorityEnabled, cfg.Horizon)
	s.Run()
	return s.Result(), nil
}

// Result assembles the snapshot for a finished simulator.
func (sim *Simulator) Result() *SimulationResult {
	usages := sim.ServerUsages()
	qm, series := Summarize(sim.Completed, usages, sim.Clock)
	res := &SimulationResult{
		RunID:          uuid.NewString(),
		Config:         sim.Config,
		QueueMetrics:   qm,
		JobSeries:      series,
		ServerActivity: sim.Timeline.Servers,
		Jobs:           sim.Completed,
		ServerUsage:    usages,
		Observed:       sim.Observed(),
		Wait:           Describe(series.Wait),
		Turnaround:     Describe(series.Turnaround),
		FinalClock:     sim.Clock,
		Truncated:      sim.Truncated,
		Unfinished:     sim.Unfinished(),
	}
	if res.Unfinished.Total() > 0 {
		logrus.Infof("%d jobs unfinished at t=%.4f (in service=%d, waiting=%d, not arrived=%d); excluded from metrics",
			res.Unfinished.Total(), sim.Clock, res.Unfinished.InService, res.Unfinished.Waiting, res.Unfinished.NotArrived)
	}
	return res
}
