package sim

// injectedJobs builds a pending job stream from parallel arrival/service/priority slices.
// priorities may be nil (all class 1).
func injectedJobs(arrivals, services []float64, priorities []int) []*Job {
	jobs := make([]*Job, len(arrivals))
	for i := range arrivals {
		p := HighestPriority
		if priorities != nil {
			p = priorities[i]
		}
		jobs[i] = NewJob(i, arrivals[i], services[i], p)
	}
	return jobs
}

// injectedConfig is a valid config for an injected run; means and families are unused.
func injectedConfig(servers int, priority bool, horizon float64) SimulationConfig {
	cfg := DefaultSimulationConfig()
	cfg.Servers = servers
	cfg.PriorityEnabled = priority
	cfg.Horizon = horizon
	return cfg
}

func jobIDs(jobs []*Job) []int {
	ids := make([]int, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}
