package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "value", "values"), ShouldEqual, "1 value")
		So(Quantify(0, "value", "values"), ShouldEqual, "0 values")
		So(Quantify(2, "value", "values"), ShouldEqual, "2 values")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestWrapWidth(t *testing.T) {
	Convey("WrapWidth prefers the configured width", t, func() {
		So(WrapWidth(60, 80), ShouldEqual, 60)
		So(WrapWidth(0, 80), ShouldBeGreaterThan, 0)
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
		So(Min("b", "a"), ShouldEqual, "a")
	})
}
