package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Todo       key.Binding
	InProgress key.Binding
	Done       key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	ShowAll    key.Binding
	ShowTodo   key.Binding
	ShowDoing  key.Binding
	ShowDone   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Todo: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "mark todo"),
		),
		InProgress: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "mark in progress"),
		),
		Done: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "mark done"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all"),
		),
		ShowTodo: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "todo"),
		),
		ShowDoing: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "in progress"),
		),
		ShowDone: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "done"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.InProgress, k.Done, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Todo, k.InProgress, k.Done},
		{k.Add, k.Edit, k.Delete},
		{k.ShowAll, k.ShowTodo, k.ShowDoing, k.ShowDone},
		{k.Help, k.Quit},
	}
}
