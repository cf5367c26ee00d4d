package tui_test

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/animation"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/tui"
	"github.com/katalvlaran/pathgrid/visualizer"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func newModel(t *testing.T) (tui.Model, *visualizer.Session, *animation.ManualClock) {
	t.Helper()
	layout := gridgraph.Layout{Rows: 2, Cols: 3, Width: 40, Height: 20}
	g, _, err := gridgraph.Build(layout)
	require.NoError(t, err)

	clock := animation.NewManualClock()
	sess := visualizer.New(g, visualizer.WithClock(clock), visualizer.WithStepDelay(time.Millisecond))

	return tui.New(context.Background(), sess, layout, search.Dijkstra, 5), sess, clock
}

// press feeds keys to m in order.
func press(t *testing.T, m tui.Model, keys ...tea.KeyMsg) tui.Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(tui.Model)
		require.True(t, ok)
	}

	return m
}

func TestModel_SelectAndRun(t *testing.T) {
	m, sess, clock := newModel(t)
	g := sess.Graph()

	m = press(t, m, keySpace)
	assert.Equal(t, "node-0-0", g.Start())

	m = press(t, m, keyRight, keyRight, keyDown, keySpace)
	assert.Equal(t, "node-1-2", m.Cursor())
	assert.Equal(t, "node-1-2", g.End())

	m = press(t, m, keyEnter)
	require.NoError(t, m.Err())
	assert.Contains(t, m.Status(), "path-found")
	assert.Contains(t, m.Status(), "distance 60")
	assert.Equal(t, visualizer.StateAnimating, sess.State())
	assert.Contains(t, m.View(), "animating")

	m = press(t, m, keySpace)
	assert.ErrorIs(t, m.Err(), visualizer.ErrBusy)
	assert.Contains(t, m.Status(), "busy")

	m = press(t, m, runes("c"))
	assert.Equal(t, visualizer.StateIdle, sess.State())
	assert.Equal(t, "animation cancelled", m.Status())

	m = press(t, m, keyEnter)
	clock.Advance(time.Second)
	assert.Equal(t, visualizer.StateIdle, sess.State())
	assert.Contains(t, m.View(), "idle")
}

func TestModel_RunWithoutEndpoints(t *testing.T) {
	m, _, _ := newModel(t)

	m = press(t, m, keyEnter)
	assert.Error(t, m.Err())
	assert.Contains(t, m.Status(), "start node is not set")
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m, _, _ := newModel(t)

	m = press(t, m, runes("h"), runes("k"))
	assert.Equal(t, "node-0-0", m.Cursor())
	m = press(t, m, runes("l"), runes("l"), runes("l"), runes("j"), runes("j"))
	assert.Equal(t, "node-1-2", m.Cursor())
}

func TestModel_GrabAndNudge(t *testing.T) {
	m, sess, _ := newModel(t)
	g := sess.Graph()

	m = press(t, m, runes("L"))
	assert.Contains(t, m.Status(), "grab")
	x, _, err := g.Position("node-0-0")
	require.NoError(t, err)
	assert.Equal(t, 0.0, x, "nothing moves before grabbing")

	m = press(t, m, runes("m"), runes("L"), tea.KeyMsg{Type: tea.KeyShiftDown})
	x, y, err := g.Position("node-0-0")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, []float64{x, y})
	w, ok := g.Weight("node-0-0", "node-0-1")
	require.True(t, ok)
	assert.InDelta(t, 15.811388, w, 1e-6)

	// Moving the cursor releases the grab.
	m = press(t, m, keyRight, runes("L"))
	x, _, err = g.Position("node-0-1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, x)
}

func TestModel_CycleAlgorithm(t *testing.T) {
	m, _, _ := newModel(t)

	m = press(t, m, runes("a"))
	assert.Equal(t, search.AStar, m.Algorithm())
	assert.Contains(t, m.Status(), "not available")
	m = press(t, m, runes("a"))
	assert.Equal(t, search.BFS, m.Algorithm())
	assert.Equal(t, "algorithm: bfs", m.Status())
	m = press(t, m, runes("a"), runes("a"), runes("a"))
	assert.Equal(t, search.Dijkstra, m.Algorithm())
}

func TestModel_Rebuild(t *testing.T) {
	m, sess, _ := newModel(t)
	old := sess.Graph()
	m = press(t, m, keySpace)
	require.Equal(t, core.RoleStart, mustRole(t, old, "node-0-0"))

	m = press(t, m, runes("r"))
	require.NoError(t, m.Err())
	assert.NotSame(t, old, sess.Graph())
	assert.Empty(t, sess.Graph().Start())
}

func TestModel_QuitAndTick(t *testing.T) {
	m, _, _ := newModel(t)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 30, Height: 12})
	require.Nil(t, cmd)
	m = next.(tui.Model)
	assert.NotEmpty(t, m.View())

	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func mustRole(t *testing.T, g *core.Graph, id string) core.Role {
	t.Helper()
	r, err := g.Role(id)
	require.NoError(t, err)

	return r
}
