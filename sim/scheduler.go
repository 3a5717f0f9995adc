package sim

import (
	"sort"
)

// Discipline orders the waiting line after each arrival joins it.
// Implementations sort the slice in-place using sort.SliceStable for determinism.
type Discipline interface {
	OrderQueue(jobs []*Job)
}

// FCFSDiscipline preserves First-Come-First-Served order (no-op).
type FCFSDiscipline struct{}

func (f *FCFSDiscipline) OrderQueue(_ []*Job) {
	// No-op: FIFO order preserved from enqueue order
}

// PriorityDiscipline sorts jobs by priority class (ascending, 1 first),
// then by arrival time (ascending), then by ID (ascending) for determinism.
type PriorityDiscipline struct{}

func (p *PriorityDiscipline) OrderQueue(jobs []*Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].Priority != jobs[j].Priority {
			return jobs[i].Priority < jobs[j].Priority
		}
		if jobs[i].ArrivalTime != jobs[j].ArrivalTime {
			return jobs[i].ArrivalTime < jobs[j].ArrivalTime
		}
		return jobs[i].ID < jobs[j].ID
	})
}

// NewDiscipline returns the service discipline for the priority-mode flag.
func NewDiscipline(priorityEnabled bool) Discipline {
	if priorityEnabled {
		return &PriorityDiscipline{}
	}
	return &FCFSDiscipline{}
}
