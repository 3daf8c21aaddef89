package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines a set of keybindings. To work for help it must satisfy
// key.Map. It could also very easily be a map[string]key.Binding.
type applicationKeyMap struct {
	// form
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Cycle     key.Binding
	Reset     key.Binding
	ToList    key.Binding

	// list
	ToForm    key.Binding
	NewCourse key.Binding
	Quit      key.Binding

	Help      key.Binding
	ForceQuit key.Binding

	listFocused bool
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k applicationKeyMap) ShortHelp() []key.Binding {
	if k.listFocused {
		return []key.Binding{cardKeys.edit, cardKeys.remove, cardKeys.open, k.NewCourse, k.ToForm, k.Help, k.Quit}
	}
	return []key.Binding{k.Submit, k.NextField, k.Cycle, k.Reset, k.ToList, k.Help, k.ForceQuit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k applicationKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NextField, k.PrevField, k.Cycle, k.Reset, k.ToList}, // form column
		{cardKeys.edit, cardKeys.remove, cardKeys.open, k.NewCourse, k.ToForm},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// DefaultKeyMap returns a default set of keybindings.
func DefaultKeyMap() applicationKeyMap {
	return applicationKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "progression"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear form"),
		),
		ToList: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "course list"),
		),

		ToForm: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "form"),
		),
		NewCourse: key.NewBinding(
			key.WithKeys("n", "a"),
			key.WithHelp("n", "new course"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
