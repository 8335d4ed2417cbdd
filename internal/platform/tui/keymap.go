package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// KeyMap defines the key bindings of the terminal host.
// Paddle steering itself comes from the mouse; Left and Right nudge it.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Close      key.Binding
	Open       key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "nudge left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "nudge right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Open: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "open game"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a host action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Close):
		return core.ActionClose
	case key.Matches(msg, k.Open):
		return core.ActionOpen
	case key.Matches(msg, k.Scores):
		return core.ActionScores
	}
	return core.ActionNone
}

// HomeHelp returns the bindings shown while the overlay is closed.
func (k KeyMap) HomeHelp() []key.Binding {
	return []key.Binding{k.Open, k.Start, k.Scores, k.Quit}
}

// IntroHelp returns the bindings shown before a run starts.
func (k KeyMap) IntroHelp() []key.Binding {
	return []key.Binding{k.Start, k.Close, k.Quit}
}

// PlayHelp returns the bindings shown during a run.
func (k KeyMap) PlayHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Close, k.Screenshot}
}
