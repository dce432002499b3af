package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Submit    key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Remove    key.Binding
	Sort      key.Binding
	Rollover  key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select")),
		Remove:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove selected")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by priority")),
		Rollover:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "roll over a day")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Back}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Remove, k.Sort, k.Rollover, k.Next, k.Quit}
}
