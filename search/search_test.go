package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/search"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"dijkstra":  search.Dijkstra,
		" Dijkstra": search.Dijkstra,
		"A*":        search.AStar,
		"a-star":    search.AStar,
		"astar":     search.AStar,
		"BFS":       search.BFS,
		"dfs":       search.DFS,
		"greedy":    search.Greedy,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.ParseAlgorithm("bellman-ford")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithm_String(t *testing.T) {
	assert.Equal(t, "astar", search.AStar.String())
	assert.Equal(t, "algorithm(9)", search.Algorithm(9).String())
	assert.Len(t, search.All(), 5)
}

func TestRun_RegisteredEngines(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(core.Node{ID: "A"}, core.RoleStart)
	g.AddNode(core.Node{ID: "B", X: 1}, core.RoleEnd)
	g.AddEdge("A", "B")

	for _, alg := range []search.Algorithm{search.Dijkstra, search.BFS, search.DFS} {
		assert.True(t, search.Available(alg), alg.String())
		res, err := search.Run(context.Background(), alg, g, "A", "B")
		require.NoError(t, err, alg.String())
		assert.Equal(t, []string{"A", "B"}, res.Path, alg.String())
		assert.Equal(t, 1.0, res.Distance, alg.String())
	}
}

func TestRun_UnimplementedNeverFallsBack(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(core.Node{ID: "A"}, core.RoleStart)
	g.AddNode(core.Node{ID: "B", X: 1}, core.RoleEnd)
	g.AddEdge("A", "B")

	for _, alg := range []search.Algorithm{search.AStar, search.Greedy} {
		assert.False(t, search.Available(alg))
		res, err := search.Run(context.Background(), alg, g, "A", "B")
		assert.Nil(t, res)
		require.ErrorIs(t, err, search.ErrAlgorithmNotAvailable, alg.String())
		assert.Contains(t, err.Error(), alg.String())
	}
}

func TestRun_PropagatesPreconditions(t *testing.T) {
	_, err := search.Run(context.Background(), search.BFS, core.NewGraph(), "", "B")
	assert.ErrorIs(t, err, dijkstra.ErrMissingStart)
}
