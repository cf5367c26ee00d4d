package animation

import (
	"container/heap"
	"sync"
	"time"
)

// Timer is a pending callback that can be stopped.
type Timer interface {
	// Stop prevents the callback from running and reports whether it was
	// still pending.
	Stop() bool
}

// Clock schedules callbacks after a delay.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock runs callbacks on runtime timers.
type RealClock struct{}

// AfterFunc wraps time.AfterFunc.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualClock is a Clock whose time only moves through Advance. Callbacks
// run synchronously inside Advance, in due-time order, ties in creation
// order. It drives tests and headless replays.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending int
	timers  timerHeap
}

type manualTimer struct {
	clock *ManualClock
	due   time.Duration
	seq   uint64
	f     func()
	done  bool // fired or stopped
}

// timerHeap is a min-heap on (due, seq). Stopped timers stay in the heap
// until they surface at the top.
type timerHeap []*manualTimer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}

	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*manualTimer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return t
}

// NewManualClock returns a ManualClock at offset zero.
func NewManualClock() *ManualClock { return &ManualClock{} }

// AfterFunc registers f to run once the clock has advanced by d.
//
// Complexity: O(log n)
func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &manualTimer{clock: c, due: c.now + d, seq: c.seq, f: f}
	heap.Push(&c.timers, t)
	c.pending++

	return t
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.clock.pending--

	return true
}

// Now returns the elapsed manual time.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Pending returns the number of timers that have neither fired nor stopped.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pending
}

// Advance moves time forward by d and runs every timer that became due.
// Callbacks run without the clock lock held and may register new timers.
//
// Complexity: O(k·log n) for k timers popped.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		next.done = true
		c.pending--
		c.now = next.due
		c.mu.Unlock()

		next.f()
	}
}

// nextDueLocked pops and returns the earliest pending timer due at or before
// target, discarding stopped timers on the way. Caller holds mu.
func (c *ManualClock) nextDueLocked(target time.Duration) *manualTimer {
	for c.timers.Len() > 0 {
		top := c.timers[0]
		if top.done {
			heap.Pop(&c.timers)
			continue
		}
		if top.due > target {
			return nil
		}

		return heap.Pop(&c.timers).(*manualTimer)
	}

	return nil
}
