package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeline_OneListPerServer(t *testing.T) {
	tl := NewTimeline(3)

	require.Len(t, tl.Servers, 3)
	for i, s := range tl.Servers {
		assert.Equal(t, i, s.Server)
		assert.NotNil(t, s.Jobs, "empty list, not nil, so JSON renders []")
		assert.Empty(t, s.Jobs)
	}
	assert.Equal(t, 0, tl.Len())
}

func TestRecord_AppendsInDispatchOrder(t *testing.T) {
	// GIVEN a two-server timeline
	tl := NewTimeline(2)

	// WHEN intervals are recorded
	tl.Record(1, Interval{JobID: 0, StartTime: 0, EndTime: 2, Priority: 1})
	tl.Record(0, Interval{JobID: 1, StartTime: 1, EndTime: 4, Priority: 3})
	tl.Record(1, Interval{JobID: 2, StartTime: 2, EndTime: 2.5, Priority: 2})

	// THEN each server keeps its own order
	assert.Equal(t, []Interval{{JobID: 1, StartTime: 1, EndTime: 4, Priority: 3}}, tl.Servers[0].Jobs)
	assert.Equal(t, []int{0, 2}, []int{tl.Servers[1].Jobs[0].JobID, tl.Servers[1].Jobs[1].JobID})
	assert.Equal(t, 3, tl.Len())
}

func TestRecord_OutOfRangePanics(t *testing.T) {
	tl := NewTimeline(1)
	assert.Panics(t, func() { tl.Record(1, Interval{}) })
	assert.Panics(t, func() { tl.Record(-1, Interval{}) })
}
