package animation

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
)

// Sentinel errors returned by Schedule.
var (
	// ErrNilResult indicates Schedule was called without a result.
	ErrNilResult = errors.New("animation: result is nil")

	// ErrNegativeDelay indicates a negative step delay.
	ErrNegativeDelay = errors.New("animation: step delay must be non-negative")
)

// RoleFunc applies a role change to a node, e.g. core.Graph.SetRole plus a
// redraw.
type RoleFunc func(id string, role core.Role)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the default RealClock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// Scheduler plays transition plans on a Clock.
type Scheduler struct {
	mu      sync.Mutex
	clock   Clock
	apply   RoleFunc
	logger  *slog.Logger
	pending map[*Handle]struct{}
}

// NewScheduler returns a Scheduler that reports role changes to apply.
func NewScheduler(apply RoleFunc, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:   RealClock{},
		apply:   apply,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		pending: make(map[*Handle]struct{}),
	}
	if s.apply == nil {
		s.apply = func(string, core.Role) {}
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ScheduleOption configures a single run.
type ScheduleOption func(*Handle)

// WithOnDone registers fn to run, outside the scheduler lock, right after
// the last transition of the run applied. It is not called for cancelled
// runs, nor for empty plans, whose handle is finished on return.
func WithOnDone(fn func()) ScheduleOption {
	return func(h *Handle) { h.onDone = fn }
}

// Handle tracks one scheduled run.
type Handle struct {
	plan      []Transition
	timers    []Timer
	ready     []bool
	next      int
	cancelled bool
	finished  bool
	onDone    func()
	done      chan struct{}
}

// Done is closed when the run finishes or is cancelled.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Plan returns the transitions of the run.
func (h *Handle) Plan() []Transition { return h.plan }

// Schedule plans res with the given step delay and arms one timer per
// transition.
func (s *Scheduler) Schedule(res *dijkstra.Result, step time.Duration, opts ...ScheduleOption) (*Handle, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if step < 0 {
		return nil, ErrNegativeDelay
	}

	plan := Plan(res, step)
	h := &Handle{
		plan:  plan,
		ready: make([]bool, len(plan)),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}

	// Hold the lock while arming so a zero-delay timer cannot fire into a
	// half-built handle.
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(plan) == 0 {
		h.finished = true
		close(h.done)
		return h, nil
	}
	h.timers = make([]Timer, len(plan))
	for i, tr := range plan {
		i := i
		h.timers[i] = s.clock.AfterFunc(tr.At, func() { s.fire(h, i) })
	}
	s.pending[h] = struct{}{}
	s.logger.Debug("animation scheduled", "transitions", len(plan), "step", step, "duration", Duration(plan))

	return h, nil
}

// fire marks transition i as due and applies every due transition that
// follows the last applied one.
func (s *Scheduler) fire(h *Handle, i int) {
	s.mu.Lock()
	if h.cancelled || h.finished {
		s.mu.Unlock()
		return
	}
	h.ready[i] = true
	for h.next < len(h.plan) && h.ready[h.next] {
		tr := h.plan[h.next]
		s.apply(tr.ID, tr.Role)
		h.next++
	}
	if h.next < len(h.plan) {
		s.mu.Unlock()
		return
	}
	h.finished = true
	delete(s.pending, h)
	close(h.done)
	onDone := h.onDone
	s.mu.Unlock()

	s.logger.Debug("animation finished", "transitions", len(h.plan))
	if onDone != nil {
		onDone()
	}
}

// Cancel voids every transition of h that has not applied yet and reports
// whether anything was pending. A nil, finished or already cancelled
// handle is a no-op.
func (s *Scheduler) Cancel(h *Handle) bool {
	if h == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancelLocked(h)
}

// CancelAll cancels every pending run and returns how many were cancelled.
func (s *Scheduler) CancelAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for h := range s.pending {
		if s.cancelLocked(h) {
			n++
		}
	}

	return n
}

// Pending returns the number of runs still playing.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Applied returns how many transitions of h have applied.
func (s *Scheduler) Applied(h *Handle) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return h.next
}

func (s *Scheduler) cancelLocked(h *Handle) bool {
	if h.cancelled || h.finished {
		return false
	}
	h.cancelled = true
	for _, t := range h.timers {
		t.Stop()
	}
	delete(s.pending, h)
	close(h.done)
	s.logger.Debug("animation cancelled", "applied", h.next, "voided", len(h.plan)-h.next)

	return true
}
