// Implements the WaitQueue, which holds jobs that arrived while every server was busy.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue is the waiting line. Its order is whatever the active
// Discipline last left it in; the head is the next job to dispatch.
type WaitQueue struct {
	queue []*Job
}

// Enqueue adds a job to the back of the wait queue.
func (wq *WaitQueue) Enqueue(j *Job) {
	wq.queue = append(wq.queue, j)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val.ID))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of jobs in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Reorder applies fn to the queue contents, allowing in-place reordering.
// The Discipline.OrderQueue method is the primary consumer:
//
//	wq.Reorder(discipline.OrderQueue)
//
// fn MUST NOT change the slice length (no append/delete).
func (wq *WaitQueue) Reorder(fn func([]*Job)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(wq.queue)
	fn(wq.queue)
	if len(wq.queue) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(wq.queue)))
	}
}

// Dequeue removes and returns the job at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Job {
	if len(wq.queue) == 0 {
		return nil
	}
	head := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return head
}
