package history

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/typetour/typetour/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given two examples run in order", t, func() {
		_ = Remove("alias")
		_ = Remove("identity")

		So(Save("alias"), ShouldBeNil)
		So(Save("identity"), ShouldBeNil)

		Convey("The latest one comes first", func() {
			entries, err := Recent()
			So(err, ShouldBeNil)
			So(len(entries), ShouldBeGreaterThanOrEqualTo, 2)
			So(entries[0].Name, ShouldEqual, "identity")
			So(Last().OrEmpty(), ShouldEqual, "identity")
		})

		Convey("Running again bumps the count", func() {
			So(Save("alias"), ShouldBeNil)

			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved["alias"].Runs, ShouldEqual, 2)
			So(Last().OrEmpty(), ShouldEqual, "alias")
		})

		Convey("Removed examples are forgotten", func() {
			So(Remove("alias"), ShouldBeNil)

			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved, ShouldNotContainKey, "alias")
		})
	})
}
