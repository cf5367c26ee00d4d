package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathgrid/core"
)

// Search computes the shortest path from start to end over the live graph g.
// Inputs are validated by CheckEndpoints.
//
// A failed precondition returns a nil Result. An unreachable end is not an
// error: the Result has Outcome NoPath and the trace covers the whole
// component of start.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if err := CheckEndpoints(g, start, end); err != nil {
		return nil, err
	}

	// 3) Prepare state
	ids := g.NodeIDs()
	r := &runner{
		g:       g,
		options: cfg,
		end:     end,
		res:     NewResult(start, end, ids),
		visited: make(map[string]bool, len(ids)),
		pq:      make(nodePQ, 0, len(ids)),
	}
	r.init(start)

	// 4) Main loop
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph     // read-only within Search
	options Options         // hooks and context
	end     string          // target node
	res     *Result         // result under construction
	visited map[string]bool // finalized nodes
	pq      nodePQ          // lazy min-heap
	seq     uint64          // push counter for tie-breaking
}

// init sets the start distance to 0 and seeds the heap.
func (r *runner) init(start string) {
	r.res.Dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// process repeatedly finalizes the closest frontier node until the end node
// is finalized or the frontier is exhausted.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return err
		}

		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale entries.
		if r.visited[u] {
			continue
		}

		// 3) Finalize u.
		r.visited[u] = true
		order := len(r.res.Trace)
		r.res.Trace = append(r.res.Trace, Visit{ID: u, Order: order})
		r.options.OnVisit(u, order)

		// 4) Target reached.
		if u == r.end {
			return r.res.MarkFound()
		}

		// 5) Relax outgoing entries.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distance of every unvisited neighbor of u reachable
// through a strictly shorter path.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, nb := range neighbors {
		if r.visited[nb.ID] {
			continue
		}
		if nb.Weight < 0 || math.IsNaN(nb.Weight) {
			return fmt.Errorf("%w: edge %s–%s weight=%v", ErrBadWeight, u, nb.ID, nb.Weight)
		}

		nd := du + nb.Weight
		// Strictly better only; equal distances keep the first predecessor.
		if nd >= r.res.Dist[nb.ID] {
			continue
		}
		r.res.Dist[nb.ID] = nd
		r.res.Prev[nb.ID] = u
		r.options.OnRelax(u, nb.ID, nd)
		r.push(nb.ID, nd)
	}

	return nil
}

// CheckEndpoints validates the inputs of a search, in order:
//  1. g must be non-nil (ErrNilGraph).
//  2. start must be non-empty (ErrMissingStart).
//  3. end must be non-empty (ErrMissingEnd).
//  4. g must contain start and end (ErrNodeNotFound).
//
// Other engines producing a Result share it so every algorithm reports the
// same precondition errors.
func CheckEndpoints(g *core.Graph, start, end string) error {
	if g == nil {
		return ErrNilGraph
	}
	if start == "" {
		return ErrMissingStart
	}
	if end == "" {
		return ErrMissingEnd
	}
	if !g.HasNode(start) {
		return fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return fmt.Errorf("%w: end %q", ErrNodeNotFound, end)
	}

	return nil
}

func (r *runner) push(id string, dist float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// nodeItem is a frontier entry. seq orders entries of equal distance by
// push order.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
