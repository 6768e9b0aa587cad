// Implements the readyQueue, the FIFO of runnable processes used by the
// Round-Robin scheduler. The arrival-vs-requeue interleaving is the most
// bug-prone point of RR, so the ordering contract lives here:
// Enqueue appends at the tail, Dequeue removes from the head, and the
// scheduler admits newly arrived processes BEFORE re-enqueueing a preempted
// one.

package sim

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// readyQueue is a FIFO queue of per-run process state. It is owned by a
// single scheduler invocation and discarded when the run returns.
type readyQueue struct {
	queue *linkedlistqueue.Queue
}

func newReadyQueue() *readyQueue {
	return &readyQueue{queue: linkedlistqueue.New()}
}

// Enqueue adds a process to the back of the ready queue.
func (rq *readyQueue) Enqueue(p *rrProc) {
	rq.queue.Enqueue(p)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *readyQueue) Dequeue() *rrProc {
	value, ok := rq.queue.Dequeue()
	if !ok {
		return nil
	}
	return value.(*rrProc)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *readyQueue) Peek() *rrProc {
	value, ok := rq.queue.Peek()
	if !ok {
		return nil
	}
	return value.(*rrProc)
}

// Len returns the number of processes in the queue.
func (rq *readyQueue) Len() int {
	return rq.queue.Size()
}

// Empty reports whether the queue holds no processes.
func (rq *readyQueue) Empty() bool {
	return rq.queue.Empty()
}

func (rq *readyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, value := range rq.queue.Values() {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprint(value.(*rrProc).ID))
	}
	sb.WriteString("]")
	return sb.String()
}
