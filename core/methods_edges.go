// File: methods_edges.go
// Role: Edge lifecycle (AddEdge), position updates with weight recomputation,
//       adjacency queries.
//
// Determinism:
//   - Neighbors() preserves insertion order.
//   - Edges() returns edges sorted by (A, B) with A < B.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"math"
	"sort"
)

// Edge is a read-only view of one undirected edge, A < B lexicographically.
type Edge struct {
	A, B   string
	Weight float64
}

// AddEdge connects a and b with an undirected edge weighted by the Euclidean
// distance between their current positions, inserting reciprocal adjacency
// entries. It is a silent no-op, reporting false, when either ID is unknown,
// when a == b, or when the two nodes are already connected.
//
// Complexity: O(deg(a))
func (g *Graph) AddEdge(a, b string) bool {
	if a == b {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	if !okA || !okB {
		return false
	}
	if indexOf(g.adjacency[a], b) >= 0 {
		return false
	}

	w := distance(na, nb)
	g.adjacency[a] = append(g.adjacency[a], Neighbor{ID: b, Weight: w})
	g.adjacency[b] = append(g.adjacency[b], Neighbor{ID: a, Weight: w})
	g.edges++

	return true
}

// UpdateNodePosition moves the node to (x, y) and recomputes the weight of
// every incident edge in both directions. Entries not incident to id are
// never touched.
//
// Complexity: O(deg(v) · max deg(neighbor)), i.e. O(deg(v)) on bounded-degree grids.
func (g *Graph) UpdateNodePosition(id string, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.X, n.Y = x, y

	entries := g.adjacency[id]
	for i := range entries {
		other := g.nodes[entries[i].ID]
		w := distance(n, other)
		entries[i].Weight = w

		// Mirrored entry on the neighbor's own list.
		mirror := g.adjacency[other.ID]
		if j := indexOf(mirror, id); j >= 0 {
			mirror[j].Weight = w
		}
	}

	return nil
}

// Neighbors returns a copy of the adjacency list of id with the latest
// weights, in insertion order.
// Complexity: O(deg(v))
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	entries, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]Neighbor, len(entries))
	copy(out, entries)

	return out, nil
}

// Weight returns the current weight of edge a–b.
// Complexity: O(deg(a))
func (g *Graph) Weight(a, b string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	entries := g.adjacency[a]
	if i := indexOf(entries, b); i >= 0 {
		return entries[i].Weight, true
	}

	return 0, false
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every undirected edge once, sorted by (A, B).
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for from, entries := range g.adjacency {
		for _, nb := range entries {
			if from < nb.ID {
				out = append(out, Edge{A: from, B: nb.ID, Weight: nb.Weight})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// distance is the Euclidean distance between two nodes.
func distance(a, b *Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// indexOf returns the position of id in entries, or -1.
func indexOf(entries []Neighbor, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}

	return -1
}
