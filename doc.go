// Package pathgrid is an interactive grid pathfinding visualizer: a lattice of
// positioned nodes joined by Euclidean-weighted edges, a set of search
// engines that record the order they settle nodes in, and a replay scheduler
// that paints that order onto a terminal board.
//
// Everything is organized under these subpackages:
//
//	core/       — Graph, Node and Edge types, roles, thread-safe mutation
//	gridgraph/  — lattice construction from a board layout
//	dijkstra/   — shortest path with visit trace and hooks
//	bfs/        — breadth-first engine (fewest hops)
//	dfs/        — depth-first engine (first path found)
//	search/     — algorithm registry and the Run entry point
//	animation/  — replay plans, clocks and a cancellable scheduler
//	visualizer/ — session state machine tying search and replay together
//	tui/        — bubbletea board, canvas rendering and key bindings
//	config/     — viper/cobra configuration and slog logging
//	telemetry/  — OpenTelemetry tracer provider
//	cmd/pathgrid — the CLI (interactive board, solve, version)
//
// Quick ASCII example of a 2x3 board after a Dijkstra run:
//
//	S---*---*
//	|   |   |
//	#---#---E
//
// Install:
//
//	go install github.com/katalvlaran/pathgrid/cmd/pathgrid@latest
package pathgrid
