// Package core provides the positioned graph model behind pathgrid: nodes
// placed on a 2D canvas, each carrying an exclusive display role, connected
// by undirected edges whose weight is the Euclidean distance between the
// endpoints' current positions.
//
// Model:
//
//	Node      – ID, position (X, Y) and a Role.
//	Neighbor  – one adjacency entry: the neighbor's ID and the live weight.
//	Graph     – node catalog plus an ordered adjacency list per node.
//
// Invariants kept by every method:
//
//   - every node has an adjacency entry (possibly empty);
//   - every entry u→v has a reciprocal v→u with an equal weight;
//   - at most one node holds RoleStart and at most one holds RoleEnd,
//     and they are never the same node.
//
// Weights are derived values. UpdateNodePosition recomputes the weight of
// every incident entry, mirrored entries included, in O(deg(v)); nothing else
// is touched.
//
// Roles:
//
//	RoleRegular  – plain node.
//	RoleStart    – search source.
//	RoleEnd      – search target.
//	RoleVisited  – finalized by a search (animation annotation).
//	RolePath     – on the reconstructed shortest path (animation annotation).
//	RoleHover    – pointer/cursor highlight.
//
// Core methods:
//
//	AddNode(n Node, role Role) bool                     // O(1), idempotent
//	AddEdge(a, b string) bool                           // O(1), no-op on unknown IDs
//	UpdateNodePosition(id string, x, y float64) error   // O(deg(v))
//	Neighbors(id string) ([]Neighbor, error)            // O(deg(v)) copy
//	Select(id string) (Role, error)                     // start/end click toggle
//
// Concurrency:
//
// A single sync.RWMutex guards the catalog and adjacency, so the animation
// timers and the UI loop may share one Graph. Reads return copies.
package core
