package session

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/typetour/typetour/filesystem"
	"github.com/typetour/typetour/stack"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSession(t *testing.T) {
	Convey("Given a fresh stack name", t, func() {
		name := t.Name() + "-numbers"

		Convey("Popping it fails with the stack's empty error", func() {
			_, err := Pop(name + "-unknown")
			So(errors.Is(err, stack.ErrEmpty), ShouldBeTrue)
		})

		Convey("Its length is zero", func() {
			n, err := Len(name + "-unknown")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
		})

		Convey("When 1, 2, 3 are pushed", func() {
			_ = Drop(name)
			n, err := Push(name, "1", "2", "3")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 3)

			Convey("They survive reloading and pop in reverse", func() {
				top, err := Peek(name)
				So(err, ShouldBeNil)
				So(top, ShouldEqual, "3")

				for _, want := range []string{"3", "2", "1"} {
					got, err := Pop(name)
					So(err, ShouldBeNil)
					So(got, ShouldEqual, want)
				}

				_, err = Pop(name)
				So(err, ShouldEqual, stack.ErrEmpty)

				n, err := Len(name)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 0)
			})

			Convey("It appears in the listing", func() {
				infos, err := List()
				So(err, ShouldBeNil)

				var found *Info
				for i := range infos {
					if infos[i].Name == name {
						found = &infos[i]
					}
				}
				So(found, ShouldNotBeNil)
				So(found.Size, ShouldEqual, 3)
				So(found.Updated.IsZero(), ShouldBeFalse)
			})

			Convey("Dropping removes it", func() {
				So(Drop(name), ShouldBeNil)
				So(Drop(name), ShouldEqual, ErrNotFound)

				n, err := Len(name)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 0)
			})
		})

		Convey("Named stacks are independent", func() {
			_, err := Push(name+"-a", "x")
			So(err, ShouldBeNil)
			_, err = Push(name+"-b", "y", "z")
			So(err, ShouldBeNil)

			a, _ := Len(name + "-a")
			b, _ := Len(name + "-b")
			So(a, ShouldEqual, 1)
			So(b, ShouldEqual, 2)

			So(Drop(name+"-a"), ShouldBeNil)
			So(Drop(name+"-b"), ShouldBeNil)
		})
	})

	Convey("Blank names are rejected", t, func() {
		_, err := Push("  ", "x")
		So(err, ShouldEqual, ErrInvalidName)
		So(Drop(""), ShouldEqual, ErrInvalidName)
	})
}
