package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathgrid/core"
)

var (
	colorStart   = lipgloss.Color("#00FF99")
	colorEnd     = lipgloss.Color("#FF0055")
	colorVisited = lipgloss.Color("#00CCFF")
	colorPath    = lipgloss.Color("#F59E0B")
	colorRegular = lipgloss.Color("#E2E8F0")
	colorSubtle  = lipgloss.Color("#64748B")
	colorAccent  = lipgloss.Color("#874BFD")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)

	canvasStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	edgeStyle   = lipgloss.NewStyle().Foreground(colorSubtle)
	statusStyle = lipgloss.NewStyle().Foreground(colorRegular)
	errorStyle  = lipgloss.NewStyle().Foreground(colorEnd).Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)

	roleStyles = map[core.Role]lipgloss.Style{
		core.RoleRegular: lipgloss.NewStyle().Foreground(colorRegular),
		core.RoleStart:   lipgloss.NewStyle().Foreground(colorStart).Bold(true),
		core.RoleEnd:     lipgloss.NewStyle().Foreground(colorEnd).Bold(true),
		core.RoleVisited: lipgloss.NewStyle().Foreground(colorVisited),
		core.RolePath:    lipgloss.NewStyle().Foreground(colorPath).Bold(true),
		core.RoleHover:   lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
	}
)

// glyphs maps each role to its canvas rune.
var glyphs = map[core.Role]rune{
	core.RoleRegular: 'o',
	core.RoleStart:   'S',
	core.RoleEnd:     'E',
	core.RoleVisited: '*',
	core.RolePath:    '#',
	core.RoleHover:   '@',
}
