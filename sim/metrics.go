// Derives per-job timing series and system-level waiting-line metrics from a finished run.

package sim

// QueueMetrics are the steady-state estimates of one run.
// All fields are 0 when no job completed.
type QueueMetrics struct {
	Lq           float64 `json:"lq"`              // mean number waiting (λ·Wq)
	Ls           float64 `json:"ls"`              // mean number in system (λ·Ws)
	Wq           float64 `json:"wq"`              // mean wait in line
	Ws           float64 `json:"ws"`              // mean time in system
	IdleFraction float64 `json:"idleTime"`        // idle server-time / total server-time
	Utilization  float64 `json:"utilizationTime"` // busy server-time / total server-time
	ArrivalRate  float64 `json:"arrivalRate"`     // completed jobs / final clock
}

// JobSeries holds one entry per completed job, aligned by completion order.
type JobSeries struct {
	Turnaround []float64 `json:"turnaroundTime"`
	Wait       []float64 `json:"waitTime"`
	// Response equals Wait: service is non-preemptive, so the first moment of
	// service is the start of service.
	Response []float64 `json:"responseTime"`
	Service  []float64 `json:"serviceTime"`
	Arrival  []float64 `json:"arrivalTime"`
}

// ServerUsage is the time a server spent busy and idle over [0, final clock].
type ServerUsage struct {
	Server     int     `json:"server"`
	BusyTime   float64 `json:"busyTime"`
	IdleTime   float64 `json:"idleTime"`
	JobsServed int     `json:"jobsServed"`
}

// Observations are time-averaged occupancy figures integrated by the engine,
// reported next to the Little's-Law estimates.
type Observations struct {
	TimeAvgQueueLength  float64 `json:"timeAvgQueueLength"`
	TimeAvgSystemLength float64 `json:"timeAvgSystemLength"`
	MaxQueueLength      int     `json:"maxQueueLength"`
}

// Unfinished counts jobs a truncated run left out of the completed set.
// These jobs are excluded from every metric.
type Unfinished struct {
	InService  int `json:"inService"`
	Waiting    int `json:"waiting"`
	NotArrived int `json:"notArrived"`
}

// Total returns the number of unfinished jobs.
func (u Unfinished) Total() int {
	return u.InService + u.Waiting + u.NotArrived
}

// Summarize computes the per-job series and aggregate metrics.
// servers carries the engine's occupancy accounting; len(servers) is the server count.
func Summarize(completed []*Job, servers []ServerUsage, finalClock float64) (QueueMetrics, JobSeries) {
	n := len(completed)
	series := JobSeries{
		Turnaround: make([]float64, 0, n),
		Wait:       make([]float64, 0, n),
		Response:   make([]float64, 0, n),
		Service:    make([]float64, 0, n),
		Arrival:    make([]float64, 0, n),
	}
	for _, j := range completed {
		series.Turnaround = append(series.Turnaround, j.Turnaround())
		series.Wait = append(series.Wait, j.WaitTime())
		series.Response = append(series.Response, j.WaitTime())
		series.Service = append(series.Service, j.ServiceTime)
		series.Arrival = append(series.Arrival, j.ArrivalTime)
	}

	var qm QueueMetrics
	if n == 0 || finalClock <= 0 || len(servers) == 0 {
		return qm, series
	}

	qm.Wq = CalculateMean(series.Wait)
	qm.Ws = CalculateMean(series.Turnaround)
	qm.ArrivalRate = float64(n) / finalClock
	qm.Lq = qm.ArrivalRate * qm.Wq
	qm.Ls = qm.ArrivalRate * qm.Ws

	var busy, idle float64
	for _, s := range servers {
		busy += s.BusyTime
		idle += s.IdleTime
	}
	capacity := float64(len(servers)) * finalClock
	qm.Utilization = busy / capacity
	qm.IdleFraction = idle / capacity
	return qm, series
}
