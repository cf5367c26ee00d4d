// Package dfs implements depth-first search from a start node to an end node
// on core.Graph, as an alternative engine for the visualizer.
//
// The trace is the pre-order of the walk; the search stops at the first
// visit of the end node. The resulting path follows the DFS tree, so it is
// usually neither the fewest-hop nor the cheapest one. Its Distance is the
// sum of the edge weights along it.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithOnVisit(fn)      pre-order hook on node discovery.
//   - WithOnExit(fn)       post-order hook after exploring descendants.
//   - WithMaxDepth(limit)  stops recursion beyond given depth (>=0).
//
// Errors:
//
//   - dijkstra.ErrNilGraph, ErrMissingStart, ErrMissingEnd, ErrNodeNotFound.
//   - context.Canceled     if ctx is done.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph      // underlying graph
	opts    Options          // traversal options
	end     string           // target node
	visited map[string]bool  // discovered nodes
	found   bool             // end reached, unwind
	res     *dijkstra.Result // result collector
}

// Search performs depth-first search on g from start and stops once end is
// visited. An unreachable end yields Outcome NoPath.
func Search(g *core.Graph, start, end string, opts ...Option) (*dijkstra.Result, error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Validate input
	if err := dijkstra.CheckEndpoints(g, start, end); err != nil {
		return nil, err
	}

	// 3. Initialize result with capacity hint
	ids := g.NodeIDs()
	w := &dfsWalker{
		graph:   g,
		opts:    o,
		end:     end,
		visited: make(map[string]bool, len(ids)),
		res:     dijkstra.NewResult(start, end, ids),
	}
	w.res.Dist[start] = 0

	// 4. Traverse
	if err := w.traverse(start, 0); err != nil {
		return nil, err
	}
	if w.found {
		if err := w.res.MarkFound(); err != nil {
			return nil, err
		}
	}

	return w.res, nil
}

// traverse visits id at the given depth and recurses into unvisited
// neighbors until the end node is found.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	// 2. Mark visited and record pre-order
	w.visited[id] = true
	order := len(w.res.Trace)
	w.res.Trace = append(w.res.Trace, dijkstra.Visit{ID: id, Order: order})
	w.opts.OnVisit(id, order)
	if id == w.end {
		w.found = true
		return nil
	}

	// 3. Depth limit: do not descend further
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		w.opts.OnExit(id)
		return nil
	}

	// 4. Fetch neighbors once
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}

	// 5. Explore each neighbor
	for _, nb := range nbs {
		if w.visited[nb.ID] {
			continue
		}
		w.res.Prev[nb.ID] = id
		w.res.Dist[nb.ID] = w.res.Dist[id] + nb.Weight
		if err = w.traverse(nb.ID, depth+1); err != nil {
			return err
		}
		if w.found {
			return nil
		}
	}

	// 6. Post-order hook
	w.opts.OnExit(id)

	return nil
}
