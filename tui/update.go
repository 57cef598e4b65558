package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *bubble) Init() tea.Cmd {
	return nil
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		if b.selected != nil {
			b.viewportC.SetContent(b.renderOutput())
		}
		return b, nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case listState:
		return b.updateList(msg)
	case detailState:
		return b.updateDetail(msg)
	}

	return b, nil
}

func (b *bubble) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && b.listC.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.open):
			if item, ok := b.listC.SelectedItem().(listItem); ok {
				if err := b.open(item.example.Name); err != nil {
					return b, b.listC.NewStatusMessage(err.Error())
				}
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.listC, cmd = b.listC.Update(msg)
	return b, cmd
}

func (b *bubble) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.viewportC, cmd = b.viewportC.Update(msg)
	return b, cmd
}
