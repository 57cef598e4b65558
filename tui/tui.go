// Package tui provides the interactive catalog browser.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Example opens the detail view of this example on start when set.
	Example string
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(options *Options) error {
	bubble := newBubble()

	if options.Example != "" {
		if err := bubble.open(options.Example); err != nil {
			return err
		}
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
