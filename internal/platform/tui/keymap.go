package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilemerge/internal/game"
)

// KeyMap holds the bindings for the game screen.
// It implements help.KeyMap so the footer can list them.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns arrows, vim and wasd bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
			key.WithDisabled(),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Help, k.Quit},
	}
}

// MapKey translates a key message to a game input.
// Returns the input (may be InputNone) and whether it's a quit request.
// Restart only maps while the binding is enabled.
func (k KeyMap) MapKey(msg tea.KeyMsg) (in game.Input, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return game.InputNone, true
	case key.Matches(msg, k.Up):
		return game.InputUp, false
	case key.Matches(msg, k.Down):
		return game.InputDown, false
	case key.Matches(msg, k.Left):
		return game.InputLeft, false
	case key.Matches(msg, k.Right):
		return game.InputRight, false
	case key.Matches(msg, k.Restart):
		return game.InputRestart, false
	}
	return game.InputNone, false
}
