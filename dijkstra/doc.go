// Package dijkstra finds the shortest path between two nodes of a
// *core.Graph and records the order in which nodes were finalized, so the
// search can be replayed later as an animation.
//
// Overview:
//
//   - Search is a pure function of the graph and the two endpoints: it reads
//     the live adjacency (weights are Euclidean distances) and never mutates
//     the graph, never sleeps and never touches timers or rendering.
//   - The frontier is a binary min-heap with lazy decrease-key: every
//     successful relaxation pushes a fresh entry, stale entries are skipped
//     when popped.
//   - Ties between equal distances are broken by push order. This is an
//     implementation choice, not a contract.
//   - The search stops as soon as the end node is finalized. If the frontier
//     empties first, the outcome is NoPath, which is not an error.
//
// Result:
//
//   - Trace:    finalized nodes in order, each with its discovery index.
//   - Dist:     node → best distance found (+Inf when never reached).
//   - Prev:     node → predecessor on the best path found.
//   - Outcome:  PathFound or NoPath.
//   - Path:     start … end inclusive (PathFound only).
//   - Distance: total weight of Path (+Inf on NoPath).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:      the graph pointer is nil.
//   - ErrMissingStart:  no start node designated.
//   - ErrMissingEnd:    no end node designated.
//   - ErrNodeNotFound:  start or end is not a node of the graph.
//   - ErrBadWeight:     an edge weight is negative or NaN.
//
// Precondition failures are reported before any work is done.
//
// Thread safety:
//
//   - Each adjacency read takes the graph's read lock, so Search is safe
//     next to concurrent readers. Callers that move nodes concurrently must
//     serialize with the search themselves (the visualizer session refuses
//     moves while a run is active).
package dijkstra
