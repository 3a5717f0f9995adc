package sim

import "github.com/sirupsen/logrus"

// EventType names the kind of a simulation event.
type EventType string

const (
	EventTypeArrival    EventType = "Arrival"
	EventTypeCompletion EventType = "Completion"
)

// EventTypePriority orders events that share a timestamp.
// Lower value is processed first: an arrival at t sees the servers as they were
// before any completion at t.
var EventTypePriority = map[EventType]int{
	EventTypeArrival:    0,
	EventTypeCompletion: 1,
}

// Event defines the interface for all simulation events.
// Each event has a Timestamp (simulated time), a Type used to order simultaneous
// events, and an Execute method that advances simulation state.
type Event interface {
	Timestamp() float64
	Type() EventType
	Execute(*Simulator)
}

// ArrivalEvent represents a job entering the system.
type ArrivalEvent struct {
	time float64 // Simulated time of arrival
	Job  *Job    // The arriving job
}

// NewArrivalEvent creates the arrival event for j at its ArrivalTime.
func NewArrivalEvent(j *Job) *ArrivalEvent {
	return &ArrivalEvent{time: j.ArrivalTime, Job: j}
}

func (e *ArrivalEvent) Timestamp() float64 { return e.time }
func (e *ArrivalEvent) Type() EventType    { return EventTypeArrival }

// Execute dispatches the job to a free server or parks it in the waiting line.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Arrival: job %d at %.4f", e.Job.ID, e.time)
	sim.handleArrival(e.Job)
}

// CompletionEvent represents a job finishing service on a server.
type CompletionEvent struct {
	time   float64 // Simulated time of completion (start + service duration)
	Server int     // Server the job occupies
	Job    *Job    // The finishing job
}

// NewCompletionEvent creates the completion event for a job just bound to server.
func NewCompletionEvent(j *Job, server int) *CompletionEvent {
	return &CompletionEvent{time: j.CompletionTime(), Server: server, Job: j}
}

func (e *CompletionEvent) Timestamp() float64 { return e.time }
func (e *CompletionEvent) Type() EventType    { return EventTypeCompletion }

// Execute releases the server and pulls the next waiting job onto it.
func (e *CompletionEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Completion: job %d on server %d at %.4f", e.Job.ID, e.Server, e.time)
	sim.handleCompletion(e.Server, e.Job)
}
