// Package tui is the terminal front end of pathgrid: a bubbletea program
// that draws the graph on a character canvas and drives a visualizer
// session from the keyboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/visualizer"
)

// frameInterval is the redraw period while the program runs.
const frameInterval = 30 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model of the visualizer.
type Model struct {
	ctx    context.Context
	sess   *visualizer.Session
	layout gridgraph.Layout
	nudge  float64

	keys   keyMap
	help   help.Model
	canvas Canvas

	alg      search.Algorithm
	row, col int
	grabbed  bool
	status   string
	err      error
	quitting bool
}

// New returns a model over sess, whose graph was built from layout. nudge is
// the distance in pixels a grabbed node moves per key press.
func New(ctx context.Context, sess *visualizer.Session, layout gridgraph.Layout, alg search.Algorithm, nudge float64) Model {
	return Model{
		ctx:    ctx,
		sess:   sess,
		layout: layout,
		nudge:  nudge,
		keys:   defaultKeyMap(),
		help:   help.New(),
		canvas: CanvasFor(layout.Width, layout.Height, 0, 0),
		alg:    alg,
		status: "move with the arrows, space marks start and end, enter runs",
	}
}

// Init starts the redraw ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Cursor returns the ID of the node under the cursor.
func (m Model) Cursor() string {
	return gridgraph.NodeID(m.row, m.col)
}

// Algorithm returns the selected algorithm.
func (m Model) Algorithm() search.Algorithm { return m.alg }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Err returns the error of the last action, if any.
func (m Model) Err() error { return m.err }

// Update handles key presses, window resizes and redraw ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()

	case tea.WindowSizeMsg:
		// Leave room for the border, the title, the status and the help.
		m.canvas = CanvasFor(m.layout.Width, m.layout.Height, msg.Width-4, msg.Height-7)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.sess.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.NudgeUp):
		m.nudgeNode(0, -m.nudge)
	case key.Matches(msg, m.keys.NudgeDown):
		m.nudgeNode(0, m.nudge)
	case key.Matches(msg, m.keys.NudgeLeft):
		m.nudgeNode(-m.nudge, 0)
	case key.Matches(msg, m.keys.NudgeRight):
		m.nudgeNode(m.nudge, 0)

	case key.Matches(msg, m.keys.Grab):
		m.grabbed = !m.grabbed
		if m.grabbed {
			m.status = "grabbed " + m.Cursor() + ", shift+arrows move it"
		} else {
			m.status = "released " + m.Cursor()
		}

	case key.Matches(msg, m.keys.Select):
		role, err := m.sess.Select(m.Cursor())
		if err != nil {
			m.fail(err)
			break
		}
		m.status = fmt.Sprintf("%s is now %s", m.Cursor(), role)

	case key.Matches(msg, m.keys.Run):
		m.run()

	case key.Matches(msg, m.keys.Cancel):
		if m.sess.Cancel() {
			m.status = "animation cancelled"
		}

	case key.Matches(msg, m.keys.Algorithm):
		all := search.All()
		m.alg = all[(int(m.alg)+1)%len(all)]
		m.status = "algorithm: " + algorithmLabel(m.alg)

	case key.Matches(msg, m.keys.Rebuild):
		m.rebuild()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) fail(err error) {
	m.err = err
	if errors.Is(err, visualizer.ErrBusy) {
		m.status = "busy: press c to cancel the animation first"
		return
	}
	m.status = err.Error()
}

// moveCursor steps the cursor to a neighboring cell and releases any grab.
func (m *Model) moveCursor(dRow, dCol int) {
	r, c := m.row+dRow, m.col+dCol
	if r < 0 || r >= m.layout.Rows || c < 0 || c >= m.layout.Cols {
		return
	}
	m.row, m.col = r, c
	m.grabbed = false
}

// nudgeNode moves the grabbed node by (dx, dy) pixels.
func (m *Model) nudgeNode(dx, dy float64) {
	if !m.grabbed {
		m.status = "press m to grab the node first"
		return
	}
	id := m.Cursor()
	x, y, err := m.sess.Graph().Position(id)
	if err != nil {
		m.fail(err)
		return
	}
	if err = m.sess.MoveNode(id, x+dx, y+dy); err != nil {
		m.fail(err)
		return
	}
	m.status = fmt.Sprintf("%s at (%.0f, %.0f)", id, x+dx, y+dy)
}

func (m *Model) run() {
	res, err := m.sess.Run(m.ctx, m.alg)
	if err != nil {
		m.fail(err)
		return
	}
	m.status = summary(m.alg, res)
}

func (m *Model) rebuild() {
	g, _, err := gridgraph.Build(m.layout)
	if err != nil {
		m.fail(err)
		return
	}
	if err = m.sess.Replace(g); err != nil {
		m.fail(err)
		return
	}
	m.grabbed = false
	m.status = fmt.Sprintf("rebuilt %d×%d grid", m.layout.Rows, m.layout.Cols)
}

func algorithmLabel(alg search.Algorithm) string {
	if search.Available(alg) {
		return alg.String()
	}

	return alg.String() + " (not available)"
}

// summary formats a result for the status line.
func summary(alg search.Algorithm, res *dijkstra.Result) string {
	parts := []string{
		alg.String(),
		res.Outcome.String(),
		"visited " + humanize.Comma(int64(len(res.Trace))),
	}
	if res.Found() {
		parts = append(parts,
			"path "+humanize.Comma(int64(len(res.Path))),
			"distance "+humanize.CommafWithDigits(res.Distance, 1),
		)
	}

	return strings.Join(parts, " · ")
}

// View renders the title, the canvas, the status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.sess.State().String()
	if applied, total := m.sess.Progress(); total > 0 {
		state = fmt.Sprintf("%s %s/%s", state, humanize.Comma(int64(applied)), humanize.Comma(int64(total)))
	}
	title := titleStyle.Render(fmt.Sprintf("pathgrid · %s · %s", algorithmLabel(m.alg), state))

	status := statusStyle.Render(m.status)
	if m.err != nil {
		status = errorStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		canvasStyle.Render(renderStyled(m.sess.Graph(), m.canvas, m.Cursor())),
		status,
		m.help.View(m.keys),
	)
}

// Run starts the program on the terminal and blocks until the user quits
// or ctx is done.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return err
}
