// File: methods_nodes.go
// Role: Node lifecycle, role bookkeeping and read-only queries.
//
// Determinism:
//   - NodeIDs() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "sort"

// AddNode inserts n with the given role if no node with n.ID exists yet and
// initializes its empty adjacency entry. It reports whether n was inserted;
// an existing ID or an empty ID leaves the graph untouched.
//
// The role argument wins over n.Role. Assigning RoleStart or RoleEnd demotes
// the previous holder to RoleRegular so the single-holder invariant holds.
//
// Complexity: O(1)
func (g *Graph) AddNode(n Node, role Role) bool {
	if n.ID == "" {
		return false
	}
	if !role.Valid() {
		role = RoleRegular
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[n.ID]; ok {
		return false
	}
	node := &Node{ID: n.ID, X: n.X, Y: n.Y, Role: RoleRegular}
	g.nodes[n.ID] = node
	g.adjacency[n.ID] = []Neighbor{}
	g.assignRoleLocked(node, role)

	return true
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID.
// Complexity: O(1)
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns copies of every node, sorted by ID.
// Complexity: O(V log V)
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns every node ID, sorted ascending.
// Complexity: O(V log V)
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Position returns the current coordinates of the node.
// Complexity: O(1)
func (g *Graph) Position(id string) (x, y float64, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, 0, ErrNodeNotFound
	}

	return n.X, n.Y, nil
}

// Role returns the current role of the node.
// Complexity: O(1)
func (g *Graph) Role(id string) (Role, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return RoleRegular, ErrNodeNotFound
	}

	return n.Role, nil
}

// SetRole changes the role of the node. Setting RoleStart or RoleEnd demotes
// the previous holder to RoleRegular; moving the current start or end holder
// to another role clears that endpoint.
// Complexity: O(1)
func (g *Graph) SetRole(id string, role Role) error {
	if !role.Valid() {
		return ErrUnknownRole
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	g.assignRoleLocked(n, role)

	return nil
}

// Start returns the ID of the start node, or "" if none is set.
func (g *Graph) Start() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start
}

// End returns the ID of the end node, or "" if none is set.
func (g *Graph) End() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.end
}

// ResetRoles returns every node that is not the start or end back to
// RoleRegular. It is used to wipe the annotations of a previous search.
// Complexity: O(V)
func (g *Graph) ResetRoles() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range g.nodes {
		if !n.Role.Endpoint() {
			n.Role = RoleRegular
		}
	}
}

// assignRoleLocked applies role to n keeping the start/end bookkeeping
// consistent. Caller holds mu for writing.
func (g *Graph) assignRoleLocked(n *Node, role Role) {
	// Leaving an endpoint role clears the cached holder.
	switch {
	case n.Role == RoleStart && role != RoleStart:
		g.start = ""
	case n.Role == RoleEnd && role != RoleEnd:
		g.end = ""
	}

	switch role {
	case RoleStart:
		if g.start != "" && g.start != n.ID {
			g.nodes[g.start].Role = RoleRegular
		}
		g.start = n.ID
	case RoleEnd:
		if g.end != "" && g.end != n.ID {
			g.nodes[g.end].Role = RoleRegular
		}
		g.end = n.ID
	}
	n.Role = role
}
