package form

import (
	"temperament/internal/quiz"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists every binding the questionnaire understands. Bindings that do
// not apply to the current mode are disabled so the help footer hides them.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Next     key.Binding
	Previous key.Binding
	Restart  key.Binding
	Help     key.Binding
	Quit     key.Binding
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
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", "enter"),
			key.WithHelp("→/enter", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←", "previous"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "take the test again"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setMode enables the bindings that make sense in mode.
func (k *keyMap) setMode(mode quiz.Mode) {
	answering := mode == quiz.ModeAnswering
	k.Up.SetEnabled(answering)
	k.Down.SetEnabled(answering)
	k.Toggle.SetEnabled(answering)
	k.Next.SetEnabled(answering)
	k.Previous.SetEnabled(answering)
	k.Restart.SetEnabled(!answering)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Previous, k.Restart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Next, k.Previous, k.Restart},
		{k.Help, k.Quit},
	}
}
