// File: types.go
// Role: Node, Role, Neighbor and Graph declarations, sentinel errors, NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrUnknownRole indicates a Role value outside the declared set.
	ErrUnknownRole = errors.New("core: unknown role")
)

// Role is the exclusive display/search state tag of a node.
type Role int

const (
	// RoleRegular is the default role.
	RoleRegular Role = iota
	// RoleStart marks the single search source.
	RoleStart
	// RoleEnd marks the single search target.
	RoleEnd
	// RoleVisited marks a node finalized by the search.
	RoleVisited
	// RolePath marks a node on the reconstructed shortest path.
	RolePath
	// RoleHover marks the node under the pointer or cursor.
	RoleHover
)

var roleNames = [...]string{
	RoleRegular: "regular",
	RoleStart:   "start",
	RoleEnd:     "end",
	RoleVisited: "visited",
	RolePath:    "path",
	RoleHover:   "hover",
}

// String returns the lower-case role name, e.g. "visited".
func (r Role) String() string {
	if !r.Valid() {
		return "unknown"
	}

	return roleNames[r]
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool { return r >= RoleRegular && r <= RoleHover }

// Endpoint reports whether r is RoleStart or RoleEnd.
func (r Role) Endpoint() bool { return r == RoleStart || r == RoleEnd }

// Node is a point of the graph. X and Y are canvas coordinates.
type Node struct {
	ID   string
	X, Y float64
	Role Role
}

// Neighbor is one adjacency entry: the node reached and the current weight
// of the edge leading to it.
type Neighbor struct {
	ID     string
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node catalog and adjacency for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make(map[string]*Node, n)
			g.adjacency = make(map[string][]Neighbor, n)
		}
	}
}

// Graph is the positioned, undirected, Euclidean-weighted graph.
//
// mu guards every field below it. start and end cache the IDs of the
// current endpoint holders ("" when unset). toggle alternates which
// endpoint Select replaces once both are set.
type Graph struct {
	mu sync.RWMutex

	nodes     map[string]*Node      // node ID → Node
	adjacency map[string][]Neighbor // node ID → ordered adjacency entries
	edges     int                   // undirected edge count

	start  string
	end    string
	toggle int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
