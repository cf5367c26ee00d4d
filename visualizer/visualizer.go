package visualizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathgrid/animation"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/search"
)

// ErrBusy is returned by graph edits while a search or animation runs.
var ErrBusy = errors.New("visualizer: session is busy")

// DefaultStepDelay is the pause between two animation transitions.
const DefaultStepDelay = 15 * time.Millisecond

// State is the run state of a Session.
type State int

const (
	// StateIdle accepts edits and runs.
	StateIdle State = iota
	// StateSearching means the engine is computing a result.
	StateSearching
	// StateAnimating means the result is being replayed.
	StateAnimating
)

// String returns "idle", "searching" or "animating".
func (s State) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateAnimating:
		return "animating"
	default:
		return "idle"
	}
}

// Options configures a Session.
type Options struct {
	StepDelay time.Duration
	Clock     animation.Clock
	Logger    *slog.Logger
	Tracer    trace.Tracer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the real clock, a 15ms step, a discarding logger and
// the global tracer.
func DefaultOptions() Options {
	return Options{
		StepDelay: DefaultStepDelay,
		Clock:     animation.RealClock{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:    otel.Tracer("pathgrid/visualizer"),
	}
}

// WithStepDelay sets the animation step. Negative values are ignored.
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.StepDelay = d
		}
	}
}

// WithClock sets the clock driving the animation.
func WithClock(c animation.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracer sets the tracer used for run spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// Session owns a graph and drives searches and animations over it.
type Session struct {
	mu     sync.Mutex
	opts   Options
	graph  atomic.Pointer[core.Graph]
	sched  *animation.Scheduler
	state  State
	handle *animation.Handle
	runID  string
	last   *dijkstra.Result
}

// New returns an idle Session over g.
func New(g *core.Graph, opts ...Option) *Session {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{opts: o}
	s.graph.Store(g)
	// The role callback runs under the scheduler lock, so it reads the graph
	// through the atomic pointer instead of s.mu.
	s.sched = animation.NewScheduler(s.applyRole,
		animation.WithClock(o.Clock),
		animation.WithLogger(o.Logger),
	)

	return s
}

func (s *Session) applyRole(id string, role core.Role) {
	if g := s.graph.Load(); g != nil {
		_ = g.SetRole(id, role)
	}
}

// Run searches the current graph with alg between its start and end nodes
// and schedules the animation of the result.
//
// Steps:
//  1. Cancel the animation in flight, if any.
//  2. Require a start and an end (dijkstra.ErrMissingStart/ErrMissingEnd)
//     and an available algorithm (search.ErrAlgorithmNotAvailable).
//  3. Search synchronously (StateSearching).
//  4. Reset every non-endpoint node to RoleRegular.
//  5. Schedule the replay (StateAnimating), back to idle on the last
//     transition. An empty replay returns to idle at once.
//
// On error the session is idle and no node role has changed.
func (s *Session) Run(ctx context.Context, alg search.Algorithm) (*dijkstra.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1) Void the previous run.
	if s.handle != nil {
		s.sched.Cancel(s.handle)
		s.handle = nil
	}
	s.state = StateIdle

	// 2) Preconditions, before anything touches the graph.
	g := s.graph.Load()
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	start, end := g.Start(), g.End()
	if start == "" {
		return nil, dijkstra.ErrMissingStart
	}
	if end == "" {
		return nil, dijkstra.ErrMissingEnd
	}
	if !search.Available(alg) {
		return nil, fmt.Errorf("%w: %s", search.ErrAlgorithmNotAvailable, alg)
	}

	runID := uuid.NewString()
	s.runID = runID
	log := s.opts.Logger.With("run_id", runID, "algorithm", alg.String())
	ctx, span := s.opts.Tracer.Start(ctx, "visualizer.Run", trace.WithAttributes(
		attribute.String("pathgrid.run_id", runID),
		attribute.String("pathgrid.algorithm", alg.String()),
		attribute.String("pathgrid.start", start),
		attribute.String("pathgrid.end", end),
	))
	defer span.End()

	// 3) Search. Engines read only positions and adjacency.
	s.state = StateSearching
	begin := time.Now()
	res, err := search.Run(ctx, alg, g, start, end)
	if err != nil {
		s.state = StateIdle
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("search failed", "error", err)

		return nil, err
	}
	span.SetAttributes(
		attribute.Int("pathgrid.visited", len(res.Trace)),
		attribute.String("pathgrid.outcome", res.Outcome.String()),
		attribute.Int("pathgrid.path_len", len(res.Path)),
	)
	log.Info("search finished",
		"outcome", res.Outcome.String(),
		"visited", len(res.Trace),
		"path_len", len(res.Path),
		"distance", res.Distance,
		"elapsed", time.Since(begin),
	)
	s.last = res

	// 4) Wipe previous annotations.
	g.ResetRoles()

	// 5) Animate.
	h, err := s.sched.Schedule(res, s.opts.StepDelay, animation.WithOnDone(func() { s.finish(runID) }))
	if err != nil {
		s.state = StateIdle
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}
	if len(h.Plan()) == 0 {
		s.state = StateIdle
		return res, nil
	}
	s.handle = h
	s.state = StateAnimating
	span.SetAttributes(attribute.Int("pathgrid.transitions", len(h.Plan())))

	return res, nil
}

// finish moves the session back to idle once the animation of runID is
// complete. A stale run id is ignored.
func (s *Session) finish(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runID != runID || s.state != StateAnimating {
		return
	}
	s.state = StateIdle
	s.handle = nil
	s.opts.Logger.Debug("animation complete", "run_id", runID)
}

// Cancel stops the animation in flight and returns the session to idle.
// It reports whether an animation was cancelled.
func (s *Session) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancelled := false
	if s.handle != nil {
		cancelled = s.sched.Cancel(s.handle)
		s.handle = nil
	}
	s.state = StateIdle
	if cancelled {
		s.opts.Logger.Info("animation cancelled", "run_id", s.runID)
	}

	return cancelled
}

// MoveNode repositions a node. Rejected with ErrBusy unless idle.
func (s *Session) MoveNode(id string, x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return ErrBusy
	}

	return s.graph.Load().UpdateNodePosition(id, x, y)
}

// Select applies the start/end click toggle to a node. Rejected with
// ErrBusy unless idle.
func (s *Session) Select(id string) (core.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return core.RoleRegular, ErrBusy
	}

	return s.graph.Load().Select(id)
}

// Replace swaps in a freshly built graph and forgets the last result.
// Rejected with ErrBusy unless idle.
func (s *Session) Replace(g *core.Graph) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return ErrBusy
	}
	s.graph.Store(g)
	s.last = nil

	return nil
}

// State returns the current run state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// LastResult returns the result of the most recent successful run, or nil.
func (s *Session) LastResult() *dijkstra.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}

// RunID returns the id of the most recent run, or "".
func (s *Session) RunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runID
}

// Graph returns the graph the session operates on.
func (s *Session) Graph() *core.Graph {
	return s.graph.Load()
}

// Progress returns how many transitions of the current animation have
// applied and how many it has in total. Both are zero when idle.
func (s *Session) Progress() (applied, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return 0, 0
	}

	return s.sched.Applied(s.handle), len(s.handle.Plan())
}
