package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	end   string
	queue []queueItem
	seen  map[string]bool
	res   *dijkstra.Result
}

// Search runs breadth-first search on g from start until end is dequeued
// or every reachable node has been visited.
func Search(g *core.Graph, start, end string, opts ...Option) (*dijkstra.Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := dijkstra.CheckEndpoints(g, start, end); err != nil {
		return nil, err
	}

	ids := g.NodeIDs()
	w := &walker{
		graph: g,
		opts:  o,
		end:   end,
		queue: make([]queueItem, 0, len(ids)),
		seen:  make(map[string]bool, len(ids)),
		res:   dijkstra.NewResult(start, end, ids),
	}
	w.res.Dist[start] = 0
	w.enqueue(start, 0)

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id discovered at depth d and appends it to the queue.
func (w *walker) enqueue(id string, d int) {
	w.seen[id] = true
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until the end node is dequeued, the queue is
// empty, or the context is done.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		order := len(w.res.Trace)
		w.res.Trace = append(w.res.Trace, dijkstra.Visit{ID: item.id, Order: order})
		w.opts.OnVisit(item.id, order)

		if item.id == w.end {
			return w.res.MarkFound()
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors discovers every unseen neighbor of item within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %q: %w", item.id, err)
	}
	for _, nb := range neighbors {
		if w.seen[nb.ID] {
			continue
		}
		w.res.Prev[nb.ID] = item.id
		w.res.Dist[nb.ID] = w.res.Dist[item.id] + nb.Weight
		w.enqueue(nb.ID, next)
	}

	return nil
}
