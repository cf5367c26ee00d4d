// Package bfs provides breadth-first search over a core.Graph as an
// alternative engine for the visualizer.
//
// What
//
//   - Explores nodes in non-decreasing hop count from the start node.
//   - Stops as soon as the end node is dequeued.
//   - Returns the same *dijkstra.Result the Dijkstra engine does:
//   - Trace: nodes in dequeue order
//   - Prev:  BFS tree parent of each discovered node
//   - Dist:  Euclidean length of the tree path, +Inf when undiscovered
//   - Path/Distance when the end node was reached
//
// The returned path has the fewest edges, not the smallest weight. Its
// Distance is the sum of the current edge weights along it.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, so the trace is
//	reproducible for a given graph construction.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):   abort between dequeues.
//   - WithMaxDepth(d):    do not enqueue beyond depth d (>0); 0 means no limit.
//   - WithOnEnqueue(fn):  hook when a node is discovered.
//   - WithOnVisit(fn):    hook when a node is dequeued.
//
// Errors
//
//   - dijkstra.ErrNilGraph, ErrMissingStart, ErrMissingEnd, ErrNodeNotFound
//     from the shared endpoint validation.
//   - ErrOptionViolation for a negative MaxDepth.
//   - ctx.Err() on cancellation.
package bfs
