// Package search selects a shortest-path engine by name. Only engines that
// are actually implemented are registered; asking for any other algorithm
// reports ErrAlgorithmNotAvailable instead of silently running Dijkstra.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dfs"
	"github.com/katalvlaran/pathgrid/dijkstra"
)

// Sentinel errors for algorithm selection.
var (
	// ErrUnknownAlgorithm indicates a name that matches no algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrAlgorithmNotAvailable indicates a known algorithm with no engine.
	ErrAlgorithmNotAvailable = errors.New("search: algorithm not available")
)

// Algorithm names a search strategy offered by the UI.
type Algorithm int

const (
	// Dijkstra is the weighted single-source shortest-path search.
	Dijkstra Algorithm = iota
	// AStar is heuristic best-first search.
	AStar
	// BFS is unweighted breadth-first search.
	BFS
	// DFS is depth-first search.
	DFS
	// Greedy is greedy best-first search.
	Greedy
)

var algorithmNames = [...]string{
	Dijkstra: "dijkstra",
	AStar:    "astar",
	BFS:      "bfs",
	DFS:      "dfs",
	Greedy:   "greedy",
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < Dijkstra || a > Greedy {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// All returns every algorithm the UI offers, implemented or not.
func All() []Algorithm {
	return []Algorithm{Dijkstra, AStar, BFS, DFS, Greedy}
}

// ParseAlgorithm maps a case-insensitive name ("a*" and "a-star" alias
// astar) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "a*", "a-star":
		return AStar, nil
	}
	for i, s := range algorithmNames {
		if s == n {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Engine is the signature every registered search implements.
type Engine func(ctx context.Context, g *core.Graph, start, end string) (*dijkstra.Result, error)

var engines = map[Algorithm]Engine{
	Dijkstra: func(ctx context.Context, g *core.Graph, start, end string) (*dijkstra.Result, error) {
		return dijkstra.Search(g, start, end, dijkstra.WithContext(ctx))
	},
	BFS: func(ctx context.Context, g *core.Graph, start, end string) (*dijkstra.Result, error) {
		return bfs.Search(g, start, end, bfs.WithContext(ctx))
	},
	DFS: func(ctx context.Context, g *core.Graph, start, end string) (*dijkstra.Result, error) {
		return dfs.Search(g, start, end, dfs.WithContext(ctx))
	},
}

// Available reports whether alg has an engine.
// Dijkstra, BFS and DFS are registered.
func Available(alg Algorithm) bool {
	_, ok := engines[alg]

	return ok
}

// Run dispatches to the engine registered for alg.
func Run(ctx context.Context, alg Algorithm, g *core.Graph, start, end string) (*dijkstra.Result, error) {
	engine, ok := engines[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAlgorithmNotAvailable, alg)
	}

	return engine(ctx, g, start, end)
}
