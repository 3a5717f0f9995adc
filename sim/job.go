// Defines the Job struct that models an individual customer in the waiting-line system.
// Tracks arrival, service demand, priority class, and dispatch/completion timestamps.

package sim

import (
	"fmt"
)

// JobState represents the lifecycle state of a job.
type JobState string

const (
	StatePending   JobState = "pending"    // generated, arrival event not yet fired
	StateWaiting   JobState = "waiting"    // arrived, all servers busy
	StateInService JobState = "in_service" // bound to a server
	StateCompleted JobState = "completed"  // completion event fired
)

// NoServer marks a job that has not been dispatched.
const NoServer = -1

// HighestPriority is the most urgent priority class; larger values are less urgent.
const HighestPriority = 1

// Job models a single job's lifecycle in the simulation.
// StartTime, EndTime and Server are only meaningful once State has moved past
// waiting / in_service respectively.
type Job struct {
	ID          int      `json:"id"`          // sequential, assigned at generation
	ArrivalTime float64  `json:"arrivalTime"` // absolute simulated time of arrival
	ServiceTime float64  `json:"serviceTime"` // service duration (> 0)
	Priority    int      `json:"priority"`    // 1 = highest; constant 1 when priority is off
	StartTime   float64  `json:"startTime"`   // set on dispatch
	EndTime     float64  `json:"endTime"`     // set on completion
	Server      int      `json:"server"`      // set on dispatch; NoServer until then
	State       JobState `json:"state"`
}

// NewJob creates a pending job.
func NewJob(id int, arrival, service float64, priority int) *Job {
	return &Job{
		ID:          id,
		ArrivalTime: arrival,
		ServiceTime: service,
		Priority:    priority,
		Server:      NoServer,
		State:       StatePending,
	}
}

// CompletionTime is the time the job leaves its server: StartTime + ServiceTime.
func (j *Job) CompletionTime() float64 {
	return j.StartTime + j.ServiceTime
}

// WaitTime is the time spent in the waiting line.
func (j *Job) WaitTime() float64 {
	return j.StartTime - j.ArrivalTime
}

// Turnaround is the total time spent in the system.
func (j *Job) Turnaround() float64 {
	return j.EndTime - j.ArrivalTime
}

// This method returns a human-readable string representation of a Job.
func (j Job) String() string {
	return fmt.Sprintf("Job: (ID: %d, State: %s, Priority: %d, ArrivalTime: %.4f)", j.ID, j.State, j.Priority, j.ArrivalTime)
}
