package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/search"
)

var smallBoard = []string{"--rows", "2", "--cols", "3", "--width", "40", "--height", "20", "--radius", "0"}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSolve_DefaultCorners(t *testing.T) {
	out, err := execute(t, append([]string{"solve"}, smallBoard...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "algorithm: dijkstra", lines[0])
	assert.Equal(t, "outcome:   path-found", lines[1])
	assert.Equal(t, "visited:   6 nodes", lines[2])
	assert.Equal(t, "distance:  60", lines[3])
	assert.Equal(t, "path:      4 nodes", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "route:     node-0-0 -> "))
	assert.True(t, strings.HasSuffix(lines[5], " -> node-1-2"))
}

func TestSolve_ExplicitEndpointsAndAlgorithm(t *testing.T) {
	args := append([]string{"solve", "--start", "node-0-2", "--end", "node-0-0", "--algorithm", "bfs"}, smallBoard...)
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: bfs")
	assert.Contains(t, out, "route:     node-0-2 -> node-0-1 -> node-0-0")
}

func TestSolve_Errors(t *testing.T) {
	_, err := execute(t, append([]string{"solve", "--algorithm", "astar"}, smallBoard...)...)
	assert.ErrorIs(t, err, search.ErrAlgorithmNotAvailable)

	_, err = execute(t, append([]string{"solve", "--algorithm", "teleport"}, smallBoard...)...)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, append([]string{"solve", "--end", "node-9-9"}, smallBoard...)...)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pathgrid "+Version+"\n", out)
}
