package trace

// ServerSummary aggregates one server's recorded intervals.
type ServerSummary struct {
	Server   int
	JobCount int
	BusySpan float64 // sum of (EndTime - StartTime) over recorded intervals
	FirstJob float64 // StartTime of the first interval; 0 if none
	LastEnd  float64 // EndTime of the last interval; 0 if none
}

// TimelineSummary aggregates statistics from a Timeline.
type TimelineSummary struct {
	TotalIntervals int
	BusiestServer  int // server with the most intervals; -1 when nothing was recorded
	Servers        []ServerSummary
}

// Summarize computes per-server statistics from a Timeline.
// Safe for nil or empty timelines (returns zero-value fields).
func Summarize(tl *Timeline) *TimelineSummary {
	summary := &TimelineSummary{BusiestServer: -1}
	if tl == nil {
		return summary
	}

	summary.Servers = make([]ServerSummary, len(tl.Servers))
	mostJobs := 0
	for i, s := range tl.Servers {
		ss := ServerSummary{Server: s.Server, JobCount: len(s.Jobs)}
		for _, iv := range s.Jobs {
			ss.BusySpan += iv.EndTime - iv.StartTime
		}
		if len(s.Jobs) > 0 {
			ss.FirstJob = s.Jobs[0].StartTime
			ss.LastEnd = s.Jobs[len(s.Jobs)-1].EndTime
		}
		summary.Servers[i] = ss
		summary.TotalIntervals += ss.JobCount
		if ss.JobCount > mostJobs {
			mostJobs = ss.JobCount
			summary.BusiestServer = s.Server
		}
	}
	return summary
}
