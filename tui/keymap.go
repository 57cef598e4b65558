package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	state state

	quit, forceQuit, open, back, up, down key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		open: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("enter", "run example"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "backspace", "left", "h"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

func (k *keymap) setState(s state) {
	k.state = s
}

// ShortHelp implements help.KeyMap.
func (k *keymap) ShortHelp() []key.Binding {
	switch k.state {
	case listState:
		return []key.Binding{k.open}
	case detailState:
		return []key.Binding{k.back, k.up, k.down, k.quit}
	default:
		return []key.Binding{k.forceQuit}
	}
}

// FullHelp implements help.KeyMap.
func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
