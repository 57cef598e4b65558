package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/typetour/typetour/filesystem"
	"github.com/typetour/typetour/tour"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestNavigation(t *testing.T) {
	Convey("Given a new browser", t, func() {
		b := newBubble()
		b.resize(100, 40)

		So(b.state, ShouldEqual, listState)
		So(len(b.listC.Items()), ShouldEqual, len(tour.All()))

		Convey("Going back on the first screen does nothing", func() {
			b.previousState()
			So(b.state, ShouldEqual, listState)
		})

		Convey("Opening an example shows its output", func() {
			So(b.open("simple-stack"), ShouldBeNil)
			So(b.state, ShouldEqual, detailState)
			So(b.output, ShouldContainSubstring, "stack is empty")
			So(b.View(), ShouldContainSubstring, "A generic stack")

			Convey("esc returns to the list", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, listState)
				So(b.statesHistory.Len(), ShouldEqual, 0)
			})
		})

		Convey("Opening an unknown example fails", func() {
			So(b.open("nope"), ShouldNotBeNil)
			So(b.state, ShouldEqual, listState)
		})

		Convey("enter on the list opens the selected example", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(b.state, ShouldEqual, detailState)
			So(b.selected.Name, ShouldEqual, tour.All()[0].Name)
		})

		Convey("ctrl+c quits from anywhere", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
			So(cmd, ShouldNotBeNil)
		})
	})
}
