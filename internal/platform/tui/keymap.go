package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickshot/internal/core"
)

// ViewerKeyMap defines the key bindings for the aim viewer.
type ViewerKeyMap struct {
	AimLeft   key.Binding
	AimRight  key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Fire      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AimLeft, k.AimRight, k.Fire, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AimLeft, k.AimRight, k.Fire},
		{k.MoveLeft, k.MoveRight},
		{k.NextLevel, k.PrevLevel},
		{k.Help, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		AimLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "aim left"),
		),
		AimRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "aim right"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("a", "shift+left"),
			key.WithHelp("a", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("d", "shift+right"),
			key.WithHelp("d", "move right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "fire"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("p", "shift+tab"),
			key.WithHelp("p", "prev level"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a viewer action.
// Unbound keys map to core.ActionNone.
func (k ViewerKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.AimLeft):
		return core.ActionAimLeft
	case key.Matches(msg, k.AimRight):
		return core.ActionAimRight
	case key.Matches(msg, k.MoveLeft):
		return core.ActionMoveLeft
	case key.Matches(msg, k.MoveRight):
		return core.ActionMoveRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.NextLevel):
		return core.ActionNextLevel
	case key.Matches(msg, k.PrevLevel):
		return core.ActionPrevLevel
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
