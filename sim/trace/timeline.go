package trace

import "fmt"

// Timeline collects per-server dispatch records during a simulation.
// Entries are appended in dispatch order; nothing is ever rewritten.
type Timeline struct {
	Servers []ServerActivity
}

// NewTimeline creates an empty Timeline with one activity list per server.
func NewTimeline(servers int) *Timeline {
	tl := &Timeline{Servers: make([]ServerActivity, servers)}
	for i := range tl.Servers {
		tl.Servers[i] = ServerActivity{Server: i, Jobs: make([]Interval, 0)}
	}
	return tl
}

// Record appends an interval to the given server's activity list.
// Panics on an out-of-range server index; the engine only dispatches to real slots.
func (tl *Timeline) Record(server int, iv Interval) {
	if server < 0 || server >= len(tl.Servers) {
		panic(fmt.Sprintf("Record: server %d out of range [0, %d)", server, len(tl.Servers)))
	}
	tl.Servers[server].Jobs = append(tl.Servers[server].Jobs, iv)
}

// Len returns the total number of recorded intervals across all servers.
func (tl *Timeline) Len() int {
	n := 0
	for _, s := range tl.Servers {
		n += len(s.Jobs)
	}
	return n
}
