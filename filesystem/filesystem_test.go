package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestRemove(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		fs := API()

		Convey("Removing a missing path is a no-op", func() {
			So(Remove("/nope"), ShouldBeNil)
		})

		Convey("Removing a file deletes it", func() {
			So(fs.WriteFile("/a.txt", []byte("x"), 0o644), ShouldBeNil)
			So(Remove("/a.txt"), ShouldBeNil)
			exists, _ := fs.Exists("/a.txt")
			So(exists, ShouldBeFalse)
		})

		Convey("Removing a directory deletes its tree", func() {
			So(fs.MkdirAll("/dir/sub", 0o755), ShouldBeNil)
			So(fs.WriteFile("/dir/sub/b.txt", []byte("y"), 0o644), ShouldBeNil)
			So(Remove("/dir"), ShouldBeNil)
			exists, _ := fs.Exists("/dir/sub/b.txt")
			So(exists, ShouldBeFalse)
		})
	})
}

func TestReadOnly(t *testing.T) {
	Convey("ReadOnly rejects writes but serves reads", t, func() {
		SetMemMapFs()
		So(API().WriteFile("/s.lua", []byte("return 1"), 0o644), ShouldBeNil)

		ro := ReadOnly()
		data, err := ro.ReadFile("/s.lua")
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "return 1")
		So(ro.WriteFile("/s.lua", []byte("x"), 0o644), ShouldNotBeNil)
	})
}
