package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the editor's bindings. It implements help.KeyMap.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	SwitchPane   key.Binding
	Add          key.Binding
	Remove       key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	Mark         key.Binding
	NewSection   key.Binding
	NextSection  key.Binding
	LeaveSection key.Binding
	DropSection  key.Binding
	Direction    key.Binding
	Bold         key.Binding
	GlobalBold   key.Binding
	Deselect     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		SwitchPane:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Add:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to form")),
		Remove:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove question")),
		MoveUp:       key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:     key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Mark:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark for section")),
		NewSection:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "new section")),
		NextSection:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "into next section")),
		LeaveSection: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "out of section")),
		DropSection:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete section")),
		Direction:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "row/column")),
		Bold:         key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bold question")),
		GlobalBold:   key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "bold all questions")),
		Deselect:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.Add, k.Remove, k.NewSection, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SwitchPane, k.Add, k.Deselect},
		{k.Remove, k.MoveUp, k.MoveDown, k.Bold, k.GlobalBold},
		{k.Mark, k.NewSection, k.NextSection, k.LeaveSection, k.DropSection, k.Direction},
		{k.Help, k.Quit},
	}
}
