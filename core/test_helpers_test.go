package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/core"
)

// lineGraph builds A(0,0)–B(3,0)–C(3,4).
func lineGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.True(t, g.AddNode(core.Node{ID: "A", X: 0, Y: 0}, core.RoleRegular))
	require.True(t, g.AddNode(core.Node{ID: "B", X: 3, Y: 0}, core.RoleRegular))
	require.True(t, g.AddNode(core.Node{ID: "C", X: 3, Y: 4}, core.RoleRegular))
	require.True(t, g.AddEdge("A", "B"))
	require.True(t, g.AddEdge("B", "C"))

	return g
}

// requireReciprocal asserts every adjacency entry has an equal-weight mirror.
func requireReciprocal(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, id := range g.NodeIDs() {
		nbs, err := g.Neighbors(id)
		require.NoError(t, err)
		for _, nb := range nbs {
			w, ok := g.Weight(nb.ID, id)
			require.True(t, ok, "missing mirror %s→%s", nb.ID, id)
			require.Equal(t, nb.Weight, w, "weight mismatch on %s–%s", id, nb.ID)
		}
	}
}
