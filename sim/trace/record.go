// Package trace records which jobs each server ran and when.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Interval captures one dispatch of a job onto a server.
// EndTime is the scheduled completion (StartTime + service duration) at dispatch.
type Interval struct {
	JobID     int     `json:"jobId"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Priority  int     `json:"priority"`
}

// ServerActivity is the ordered list of intervals served by one server.
type ServerActivity struct {
	Server int        `json:"server"`
	Jobs   []Interval `json:"jobs"`
}
