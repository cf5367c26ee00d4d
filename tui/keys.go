package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right                     key.Binding
	NudgeUp, NudgeDown, NudgeLeft, NudgeRight key.Binding
	Select, Run, Cancel, Algorithm            key.Binding
	Grab, Rebuild, Help, Quit                 key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		NudgeUp:    key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "nudge up")),
		NudgeDown:  key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "nudge down")),
		NudgeLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "nudge left")),
		NudgeRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "nudge right")),
		Select:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "start/end")),
		Run:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Cancel:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel")),
		Algorithm:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "algorithm")),
		Grab:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "grab node")),
		Rebuild:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rebuild")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Run, k.Cancel, k.Algorithm, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Run, k.Cancel, k.Algorithm},
		{k.Grab, k.NudgeUp, k.NudgeDown, k.NudgeLeft, k.NudgeRight},
		{k.Rebuild, k.Help, k.Quit},
	}
}
