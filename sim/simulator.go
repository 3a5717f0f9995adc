// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queue-sim/sim/trace"
)

// ServerSlot is one parallel server: the job it is serving, if any, plus the
// busy/idle time it has accrued so far.
type ServerSlot struct {
	Job      *Job // nil when the server is empty
	BusyTime float64
	IdleTime float64
	Served   int // jobs dispatched onto this server
}

// Empty reports whether the server is free.
func (s *ServerSlot) Empty() bool {
	return s.Job == nil
}

// Simulator is the core object that holds simulation time, system state, and the event loop.
// A Simulator is used for exactly one run and is not safe for concurrent use.
type Simulator struct {
	Clock   float64
	Horizon float64 // 0 = unbounded
	Config  SimulationConfig
	// EventQueue has all pending arrival and completion events
	EventQueue *EventHeap
	// WaitQ holds jobs that arrived while every server was busy
	WaitQ      *WaitQueue
	Discipline Discipline
	Servers    []ServerSlot
	// Completed lists jobs in the order their completion events fired
	Completed []*Job
	Timeline  *trace.Timeline
	Jobs      []*Job
	Truncated bool

	inService   int
	queueArea   float64 // ∫ waiting-line length dt
	systemArea  float64 // ∫ (waiting + in service) dt
	maxQueueLen int
	done        bool
}

// NewSimulator validates cfg and jobs and schedules one arrival event per job.
// jobs must be sorted by ArrivalTime; the simulator takes ownership of them.
func NewSimulator(cfg SimulationConfig, jobs []*Job) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateJobs(jobs); err != nil {
		return nil, err
	}
	s := &Simulator{
		Clock:      0,
		Horizon:    cfg.Horizon,
		Config:     cfg,
		EventQueue: NewEventHeap(),
		WaitQ:      &WaitQueue{},
		Discipline: NewDiscipline(cfg.PriorityEnabled),
		Servers:    make([]ServerSlot, cfg.Servers),
		Completed:  make([]*Job, 0, len(jobs)),
		Timeline:   trace.NewTimeline(cfg.Servers),
		Jobs:       jobs,
	}
	for _, j := range jobs {
		j.State = StatePending
		j.Server = NoServer
		s.Schedule(NewArrivalEvent(j))
	}
	return s, nil
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Schedule(ev)
}

// Finished reports whether the run has terminated.
func (sim *Simulator) Finished() bool {
	return sim.done
}

// Step executes the next event. It returns false once no events remain. The
// event that first moves the clock past a positive horizon is still executed;
// the run then stops and is marked Truncated.
func (sim *Simulator) Step() bool {
	if sim.done {
		return false
	}
	ev := sim.EventQueue.PopNext()
	if ev == nil {
		sim.done = true
		return false
	}
	sim.advanceClock(ev.Timestamp())
	logrus.Debugf("[t=%.4f] Executing %T", sim.Clock, ev)
	ev.Execute(sim)
	if sim.Horizon > 0 && sim.Clock > sim.Horizon {
		sim.Truncated = true
		sim.done = true
		logrus.Infof("[t=%.4f] Horizon %.4f passed with %d in service, %d waiting, %d events pending",
			sim.Clock, sim.Horizon, sim.inService, sim.WaitQ.Len(), sim.EventQueue.Len())
	}
	return true
}

// Run processes events until the run terminates.
func (sim *Simulator) Run() {
	for !sim.Finished() {
		sim.Step()
	}
	logrus.Infof("[t=%.4f] Simulation ended: %d completed", sim.Clock, len(sim.Completed))
}

// advanceClock moves the clock to t, attributing the elapsed time to every
// server's current occupancy and to the current queue/system lengths.
func (sim *Simulator) advanceClock(t float64) {
	dt := t - sim.Clock
	if dt < 0 {
		panic(fmt.Sprintf("advanceClock: time moved backwards from %v to %v", sim.Clock, t))
	}
	for i := range sim.Servers {
		if sim.Servers[i].Empty() {
			sim.Servers[i].IdleTime += dt
		} else {
			sim.Servers[i].BusyTime += dt
		}
	}
	sim.queueArea += dt * float64(sim.WaitQ.Len())
	sim.systemArea += dt * float64(sim.WaitQ.Len()+sim.inService)
	sim.Clock = t
}

// freeServer returns the lowest-indexed empty server, or NoServer.
func (sim *Simulator) freeServer() int {
	for i := range sim.Servers {
		if sim.Servers[i].Empty() {
			return i
		}
	}
	return NoServer
}

// dispatch binds j to server at the current clock, records it on the timeline,
// and schedules its completion.
func (sim *Simulator) dispatch(j *Job, server int) {
	j.StartTime = sim.Clock
	j.Server = server
	j.State = StateInService
	sim.Servers[server].Job = j
	sim.Servers[server].Served++
	sim.inService++
	sim.Timeline.Record(server, trace.Interval{
		JobID:     j.ID,
		StartTime: j.StartTime,
		EndTime:   j.CompletionTime(),
		Priority:  j.Priority,
	})
	sim.Schedule(NewCompletionEvent(j, server))
}

// handleArrival dispatches j to the lowest-indexed free server, or enqueues it.
func (sim *Simulator) handleArrival(j *Job) {
	if server := sim.freeServer(); server != NoServer {
		sim.dispatch(j, server)
		return
	}
	j.State = StateWaiting
	sim.WaitQ.Enqueue(j)
	sim.WaitQ.Reorder(sim.Discipline.OrderQueue)
	logrus.Debugf("[t=%.4f] Job %d waiting, line is %v", sim.Clock, j.ID, sim.WaitQ)
	if sim.WaitQ.Len() > sim.maxQueueLen {
		sim.maxQueueLen = sim.WaitQ.Len()
	}
}

// handleCompletion finishes the job on server and pulls the head of the waiting line.
func (sim *Simulator) handleCompletion(server int, j *Job) {
	slot := &sim.Servers[server]
	if slot.Job != j {
		panic(fmt.Sprintf("handleCompletion: server %d holds %v, completion is for job %d", server, slot.Job, j.ID))
	}
	j.EndTime = sim.Clock
	j.State = StateCompleted
	sim.Completed = append(sim.Completed, j)
	slot.Job = nil
	sim.inService--

	if next := sim.WaitQ.Dequeue(); next != nil {
		sim.dispatch(next, server)
	}
}

// InService returns the number of jobs currently on a server.
func (sim *Simulator) InService() int {
	return sim.inService
}

// ServerUsages returns the busy/idle accounting for every server.
func (sim *Simulator) ServerUsages() []ServerUsage {
	usages := make([]ServerUsage, len(sim.Servers))
	for i, s := range sim.Servers {
		usages[i] = ServerUsage{Server: i, BusyTime: s.BusyTime, IdleTime: s.IdleTime, JobsServed: s.Served}
	}
	return usages
}

// Observed returns time-weighted occupancy statistics measured by the engine.
func (sim *Simulator) Observed() Observations {
	obs := Observations{MaxQueueLength: sim.maxQueueLen}
	if sim.Clock > 0 {
		obs.TimeAvgQueueLength = sim.queueArea / sim.Clock
		obs.TimeAvgSystemLength = sim.systemArea / sim.Clock
	}
	return obs
}

// Unfinished counts jobs left outside the completed set when the run stopped.
func (sim *Simulator) Unfinished() Unfinished {
	u := Unfinished{InService: sim.inService, Waiting: sim.WaitQ.Len()}
	for _, j := range sim.Jobs {
		if j.State == StatePending {
			u.NotArrived++
		}
	}
	return u
}
