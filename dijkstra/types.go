// Package dijkstra defines the result types, options and sentinel errors of
// the shortest-path search.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathgrid/core"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrMissingStart indicates that no start node was designated.
	ErrMissingStart = errors.New("dijkstra: start node is not set")

	// ErrMissingEnd indicates that no end node was designated.
	ErrMissingEnd = errors.New("dijkstra: end node is not set")

	// ErrNodeNotFound indicates that start or end is not in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("dijkstra: edge weight is negative or NaN")
)

// Outcome is the terminal state of a successful search.
type Outcome int

const (
	// NoPath means the frontier emptied before the end node was reached.
	NoPath Outcome = iota
	// PathFound means the end node was finalized and Path is populated.
	PathFound
)

// String returns "path-found" or "no-path".
func (o Outcome) String() string {
	if o == PathFound {
		return "path-found"
	}

	return "no-path"
}

// Visit is one entry of the visitation trace.
type Visit struct {
	ID    string
	Order int // zero-based discovery index
}

// Result holds everything a search produced.
type Result struct {
	Start, End string
	Trace      []Visit
	Dist       map[string]float64
	Prev       map[string]string
	Outcome    Outcome
	Path       []string
	Distance   float64
}

// NewResult returns an empty NoPath result for start and end with every
// distance in ids set to +Inf.
func NewResult(start, end string, ids []string) *Result {
	res := &Result{
		Start:    start,
		End:      end,
		Trace:    make([]Visit, 0, len(ids)),
		Dist:     make(map[string]float64, len(ids)),
		Prev:     make(map[string]string, len(ids)),
		Outcome:  NoPath,
		Distance: math.Inf(1),
	}
	for _, id := range ids {
		res.Dist[id] = math.Inf(1)
	}

	return res
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r != nil && r.Outcome == PathFound }

// Visited returns the IDs of the trace in visitation order.
func (r *Result) Visited() []string {
	ids := make([]string, len(r.Trace))
	for i, v := range r.Trace {
		ids[i] = v.ID
	}

	return ids
}

// PathTo reconstructs the best path found from Start to dest by walking
// predecessors. dest must have been reached by the search.
// The walk is bounded by len(Dist) steps.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Dist[dest]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("dijkstra: no path to %q", dest)
	}

	path := []string{dest}
	for cur := dest; cur != r.Start; {
		prev, ok := r.Prev[cur]
		if !ok || len(path) > len(r.Dist) {
			return nil, fmt.Errorf("dijkstra: broken predecessor chain at %q", cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// MarkFound reconstructs Path from Prev once End has been reached and sets
// Outcome and Distance accordingly.
func (r *Result) MarkFound() error {
	path, err := r.PathTo(r.End)
	if err != nil {
		return err
	}
	r.Outcome = PathFound
	r.Path = path
	r.Distance = r.Dist[r.End]

	return nil
}

// PathWeight sums the live weights of Path on g. On an unchanged graph it
// equals Distance.
func (r *Result) PathWeight(g *core.Graph) (float64, error) {
	if !r.Found() {
		return math.Inf(1), nil
	}
	total := 0.0
	for i := 1; i < len(r.Path); i++ {
		w, ok := g.Weight(r.Path[i-1], r.Path[i])
		if !ok {
			return 0, fmt.Errorf("dijkstra: path edge %s–%s no longer exists", r.Path[i-1], r.Path[i])
		}
		total += w
	}

	return total, nil
}

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds hooks and the cancellation context of a search.
type Options struct {
	// Ctx is checked before each extraction; cancellation aborts the search
	// with ctx.Err().
	Ctx context.Context

	// OnVisit is called when a node is finalized.
	OnVisit func(id string, order int)

	// OnRelax is called when a strictly shorter distance to id is recorded.
	OnRelax func(from, id string, dist float64)
}

// DefaultOptions returns Options with context.Background() and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) {},
		OnRelax: func(string, string, float64) {},
	}
}

// WithContext sets a context for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run when a node is finalized.
func WithOnVisit(fn func(id string, order int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback run on every successful relaxation.
func WithOnRelax(fn func(from, id string, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
