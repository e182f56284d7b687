package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Repaint    key.Binding
	Clear      key.Binding
	MoreDetail key.Binding
	LessDetail key.Binding
	Snapshot   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Repaint:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "repaint")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		MoreDetail: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more detail")),
		LessDetail: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "less detail")),
		Snapshot:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snapshot")),
		Help:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Repaint, k.Clear, k.MoreDetail, k.LessDetail, k.Snapshot, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Repaint, k.Clear, k.MoreDetail, k.LessDetail},
		{k.Snapshot, k.Help, k.Quit},
	}
}
