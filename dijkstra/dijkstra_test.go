// Package dijkstra_test validates the search engine: preconditions, the
// reference scenarios, brute-force agreement on random graphs, trace
// ordering, hooks and cancellation.
package dijkstra_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// lineGraph builds A(0,0)–B(3,0)–C(3,4) plus an isolated D(10,10).
func lineGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddNode(core.Node{ID: "A", X: 0, Y: 0}, core.RoleStart)
	g.AddNode(core.Node{ID: "B", X: 3, Y: 0}, core.RoleRegular)
	g.AddNode(core.Node{ID: "C", X: 3, Y: 4}, core.RoleEnd)
	g.AddNode(core.Node{ID: "D", X: 10, Y: 10}, core.RoleRegular)
	require.True(t, g.AddEdge("A", "B"))
	require.True(t, g.AddEdge("B", "C"))

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_Preconditions(t *testing.T) {
	g := lineGraph(t)
	cases := []struct {
		name       string
		g          *core.Graph
		start, end string
		err        error
	}{
		{"NilGraph", nil, "A", "C", dijkstra.ErrNilGraph},
		{"MissingStart", g, "", "C", dijkstra.ErrMissingStart},
		{"MissingEnd", g, "A", "", dijkstra.ErrMissingEnd},
		{"UnknownStart", g, "X", "C", dijkstra.ErrNodeNotFound},
		{"UnknownEnd", g, "A", "X", dijkstra.ErrNodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := dijkstra.Search(tc.g, tc.start, tc.end)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSearch_PreconditionDoesNotMutate(t *testing.T) {
	g := lineGraph(t)
	before := g.Nodes()
	_, err := dijkstra.Search(g, "A", "")
	require.Error(t, err)
	assert.Equal(t, before, g.Nodes())
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestSearch_LineGraph(t *testing.T) {
	g := lineGraph(t)
	res, err := dijkstra.Search(g, "A", "C")
	require.NoError(t, err)

	assert.Equal(t, dijkstra.PathFound, res.Outcome)
	assert.True(t, res.Found())
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 7.0, res.Distance)
	assert.Equal(t, []dijkstra.Visit{{"A", 0}, {"B", 1}, {"C", 2}}, res.Trace)
	assert.Equal(t, "A", res.Prev["B"])
	assert.Equal(t, "B", res.Prev["C"])
	assert.True(t, math.IsInf(res.Dist["D"], 1))

	w, err := res.PathWeight(g)
	require.NoError(t, err)
	assert.Equal(t, res.Distance, w)
}

func TestSearch_Disconnected(t *testing.T) {
	g := lineGraph(t)
	res, err := dijkstra.Search(g, "A", "D")
	require.NoError(t, err)

	assert.Equal(t, dijkstra.NoPath, res.Outcome)
	assert.Equal(t, "no-path", res.Outcome.String())
	assert.Nil(t, res.Path)
	assert.True(t, math.IsInf(res.Distance, 1))
	assert.ElementsMatch(t, []string{"A", "B", "C"}, res.Visited())
	assert.NotContains(t, res.Visited(), "D")

	_, err = res.PathTo("D")
	assert.Error(t, err)
}

func TestSearch_StartEqualsEnd(t *testing.T) {
	g := lineGraph(t)
	res, err := dijkstra.Search(g, "B", "B")
	require.NoError(t, err)

	assert.Equal(t, dijkstra.PathFound, res.Outcome)
	assert.Equal(t, []string{"B"}, res.Path)
	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, []dijkstra.Visit{{"B", 0}}, res.Trace)
}

func TestSearch_PrefersLighterDetour(t *testing.T) {
	// A(0,0)–B(10,0) direct is 10; the detour through M(5,1) is about 10.2.
	g := core.NewGraph()
	g.AddNode(core.Node{ID: "A", X: 0, Y: 0}, core.RoleStart)
	g.AddNode(core.Node{ID: "M", X: 5, Y: 1}, core.RoleRegular)
	g.AddNode(core.Node{ID: "B", X: 10, Y: 0}, core.RoleEnd)
	g.AddEdge("A", "B")
	g.AddEdge("A", "M")
	g.AddEdge("M", "B")

	res, err := dijkstra.Search(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Path)

	// Dragging M onto the segment makes the detour tie with the direct edge.
	require.NoError(t, g.UpdateNodePosition("M", 5, 0))
	res, err = dijkstra.Search(g, "A", "B")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, res.Distance, 1e-12)
}

// ------------------------------------------------------------------------
// 3. Properties on random graphs
// ------------------------------------------------------------------------

// randomGraph builds n nodes at random integer positions and connects each
// pair with probability p.
func randomGraph(rng *rand.Rand, n int, p float64) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(core.Node{ID: fmt.Sprintf("v%d", i), X: float64(rng.Intn(50)), Y: float64(rng.Intn(50))}, core.RoleRegular)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j))
			}
		}
	}

	return g
}

// bruteForce returns the minimum weight of any simple path from start to
// every node, by exhaustive DFS.
func bruteForce(g *core.Graph, start string) map[string]float64 {
	best := map[string]float64{}
	for _, id := range g.NodeIDs() {
		best[id] = math.Inf(1)
	}
	onPath := map[string]bool{}
	var walk func(u string, d float64)
	walk = func(u string, d float64) {
		if d < best[u] {
			best[u] = d
		}
		onPath[u] = true
		nbs, _ := g.Neighbors(u)
		for _, nb := range nbs {
			if !onPath[nb.ID] {
				walk(nb.ID, d+nb.Weight)
			}
		}
		onPath[u] = false
	}
	walk(start, 0)

	return best
}

func TestSearch_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 60; round++ {
		g := randomGraph(rng, 7, 0.4)
		truth := bruteForce(g, "v0")

		for _, end := range g.NodeIDs() {
			res, err := dijkstra.Search(g, "v0", end)
			require.NoError(t, err)
			if math.IsInf(truth[end], 1) {
				assert.Equal(t, dijkstra.NoPath, res.Outcome, "round %d end %s", round, end)
				continue
			}
			require.Equal(t, dijkstra.PathFound, res.Outcome, "round %d end %s", round, end)
			assert.InDelta(t, truth[end], res.Distance, 1e-9, "round %d end %s", round, end)

			// Path runs start → end within V nodes and weighs Distance.
			require.NotEmpty(t, res.Path)
			assert.Equal(t, "v0", res.Path[0])
			assert.Equal(t, end, res.Path[len(res.Path)-1])
			assert.LessOrEqual(t, len(res.Path), g.Len())
			w, err := res.PathWeight(g)
			require.NoError(t, err)
			assert.InDelta(t, res.Distance, w, 1e-9)
		}
	}
}

func TestSearch_TraceOrderAndUniqueness(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 40; round++ {
		g := randomGraph(rng, 8, 0.35)
		// An isolated target forces exhaustive exploration of v0's component.
		g.AddNode(core.Node{ID: "sink", X: -1, Y: -1}, core.RoleRegular)
		truth := bruteForce(g, "v0")

		res, err := dijkstra.Search(g, "v0", "sink")
		require.NoError(t, err)
		require.Equal(t, dijkstra.NoPath, res.Outcome)

		seen := map[string]int{}
		for i, v := range res.Trace {
			assert.Equal(t, i, v.Order)
			seen[v.ID]++
			if i > 0 {
				prev := truth[res.Trace[i-1].ID]
				assert.LessOrEqual(t, prev, truth[v.ID]+1e-9, "round %d: trace not monotone at %d", round, i)
			}
		}
		for id, d := range truth {
			if math.IsInf(d, 1) {
				assert.Zero(t, seen[id], "unreachable %s visited", id)
				continue
			}
			assert.Equal(t, 1, seen[id], "reachable %s visited %d times", id, seen[id])
			assert.InDelta(t, d, res.Dist[id], 1e-9)
		}
	}
}

func TestSearch_Idempotent(t *testing.T) {
	g, _, err := gridgraph.Build(gridgraph.DefaultLayout())
	require.NoError(t, err)
	start, end := gridgraph.NodeID(0, 0), gridgraph.NodeID(7, 19)

	first, err := dijkstra.Search(g, start, end)
	require.NoError(t, err)
	second, err := dijkstra.Search(g, start, end)
	require.NoError(t, err)

	assert.Equal(t, first.Dist, second.Dist)
	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.Trace, second.Trace)
	assert.InDelta(t, 26*40.0, first.Distance, 1e-9)
	assert.Len(t, first.Path, 27)
}

// ------------------------------------------------------------------------
// 4. Hooks, cancellation, bad weights
// ------------------------------------------------------------------------

func TestSearch_Hooks(t *testing.T) {
	g := lineGraph(t)
	var visits []string
	relaxed := 0
	_, err := dijkstra.Search(g, "A", "C",
		dijkstra.WithOnVisit(func(id string, order int) {
			assert.Equal(t, len(visits), order)
			visits = append(visits, id)
		}),
		dijkstra.WithOnRelax(func(from, id string, d float64) { relaxed++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, visits)
	assert.Equal(t, 2, relaxed)
}

func TestSearch_ContextCanceled(t *testing.T) {
	g := lineGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dijkstra.Search(g, "A", "C", dijkstra.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_NaNWeight(t *testing.T) {
	g := lineGraph(t)
	require.NoError(t, g.UpdateNodePosition("B", math.NaN(), 0))

	_, err := dijkstra.Search(g, "A", "C")
	assert.ErrorIs(t, err, dijkstra.ErrBadWeight)
}
