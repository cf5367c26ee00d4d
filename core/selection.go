// File: selection.go
// Role: Start/end designation by pointer click.

package core

// Select applies a click on node id to the start/end designation and
// returns the node's resulting role.
//
// Rules:
//  1. No endpoint set: the node becomes start.
//  2. Only start set: clicking start clears it, any other node becomes end.
//  3. Only end set: clicking end clears it, any other node becomes start.
//  4. Both set: clicking an endpoint clears it; clicking any other node
//     replaces start and end alternately, start first.
//
// Complexity: O(1)
func (g *Graph) Select(id string) (Role, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return RoleRegular, ErrNodeNotFound
	}

	var next Role
	switch {
	case g.start == "" && g.end == "":
		next = RoleStart
	case g.end == "":
		next = RoleEnd
		if n.Role == RoleStart {
			next = RoleRegular
		}
	case g.start == "":
		next = RoleStart
		if n.Role == RoleEnd {
			next = RoleRegular
		}
	default:
		switch {
		case n.Role.Endpoint():
			next = RoleRegular
		case g.toggle == 0:
			next = RoleStart
			g.toggle = 1
		default:
			next = RoleEnd
			g.toggle = 0
		}
	}
	g.assignRoleLocked(n, next)

	return next, nil
}
