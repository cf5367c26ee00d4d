package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// BenchmarkSearch_Grid100 runs corner-to-corner searches on a 100×100 grid.
func BenchmarkSearch_Grid100(b *testing.B) {
	g, _, err := gridgraph.Build(gridgraph.Layout{Rows: 100, Cols: 100, Width: 1000, Height: 1000, Radius: 2})
	if err != nil {
		b.Fatal(err)
	}
	start, end := gridgraph.NodeID(0, 0), gridgraph.NodeID(99, 99)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Search(g, start, end); err != nil {
			b.Fatal(err)
		}
	}
}
