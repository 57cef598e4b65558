package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/typetour/typetour/color"
	"github.com/typetour/typetour/history"
	"github.com/typetour/typetour/log"
	"github.com/typetour/typetour/stack"
	"github.com/typetour/typetour/tour"
)

type bubble struct {
	state         state
	statesHistory stack.Stack[state]
	keymap        *keymap

	listC     list.Model
	viewportC viewport.Model
	helpC     help.Model

	selected *tour.Example
	output   string
	runErr   error

	width, height int
}

func newBubble() *bubble {
	b := &bubble{
		keymap: newKeymap(),
		helpC:  help.New(),
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color.Purple).
		Foreground(color.Purple).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	items := lo.Map(tour.All(), func(e *tour.Example, _ int) list.Item {
		return listItem{example: e}
	})

	b.listC = list.New(items, delegate, 0, 0)
	b.listC.Title = "Type Tour"
	b.listC.AdditionalShortHelpKeys = b.keymap.ShortHelp
	b.listC.SetShowStatusBar(false)

	b.viewportC = viewport.New(0, 0)

	b.setState(listState)
	return b
}

func (b *bubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s and remembers where we came from.
func (b *bubble) newState(s state) {
	if b.state == s {
		return
	}
	b.statesHistory.Push(b.state)
	b.setState(s)
}

// previousState goes back one step. It does nothing at the first screen.
func (b *bubble) previousState() {
	if b.statesHistory.Len() == 0 {
		return
	}
	b.setState(b.statesHistory.MustPop())
}

// open runs the named example and shows its detail view.
func (b *bubble) open(name string) error {
	example, err := tour.Lookup(name)
	if err != nil {
		return err
	}

	b.selected = example
	b.output, b.runErr = example.Output()
	if b.runErr != nil {
		log.WithField("example", name).Error(b.runErr)
	} else if err := history.Save(name); err != nil {
		log.Warn(err)
	}

	b.viewportC.SetContent(b.renderOutput())
	b.viewportC.GotoTop()
	b.newState(detailState)
	return nil
}

func (b *bubble) resize(width, height int) {
	b.width, b.height = width, height

	x, y := listPaddingStyle.GetFrameSize()
	b.listC.SetSize(width-x, height-y)

	b.viewportC.Width = width - x
	b.viewportC.Height = lo.Max([]int{height - y - detailHeaderHeight, 1})
	b.helpC.Width = width
}
