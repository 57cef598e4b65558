package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"
	"github.com/typetour/typetour/color"
	"github.com/typetour/typetour/icon"
	"github.com/typetour/typetour/key"
	"github.com/typetour/typetour/style"
	"github.com/typetour/typetour/util"
)

// title, topic, blank, summary lines, blank and help take roughly this many rows
const detailHeaderHeight = 9

var listPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)

func (b *bubble) View() string {
	switch b.state {
	case listState:
		return listPaddingStyle.Render(b.listC.View())
	case detailState:
		return b.viewDetail()
	default:
		return "Unknown state"
	}
}

func (b *bubble) viewDetail() string {
	e := b.selected
	width := util.Max(b.viewportC.Width, 20)
	if configured := viper.GetInt(key.TourWrapWidth); configured > 0 {
		width = util.Min(width, configured)
	}

	lines := []string{
		style.Title(e.Title),
		style.Tag(color.New("230"), color.Purple)(e.Topic) + " " + style.Faint(e.Name),
		"",
		wordwrap.String(e.Summary, width),
		"",
		b.viewportC.View(),
		"",
		b.helpC.View(b.keymap),
	}

	return listPaddingStyle.Render(strings.Join(lines, "\n"))
}

func (b *bubble) renderOutput() string {
	if b.runErr != nil {
		return fmt.Sprintf("%s %s", style.Fg(color.Red)(icon.Get(icon.Fail)), b.runErr)
	}
	return b.output
}
