package tour

import (
	"errors"
	"strconv"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog(t *testing.T) {
	Convey("Given the catalog", t, func() {
		Convey("Every example has a unique name and a summary", func() {
			names := Names()
			So(len(names), ShouldEqual, len(catalog))
			So(len(lo.Uniq(names)), ShouldEqual, len(names))
			for _, e := range All() {
				So(e.Title, ShouldNotBeEmpty)
				So(e.Summary, ShouldNotBeEmpty)
				So(Topics(), ShouldContain, e.Topic)
			}
		})

		Convey("Every example runs and prints something", func() {
			for _, e := range All() {
				out, err := e.Output()
				So(err, ShouldBeNil)
				So(out, ShouldNotBeEmpty)
			}
		})

		Convey("All returns a copy", func() {
			all := All()
			all[0] = nil
			So(All()[0], ShouldNotBeNil)
		})

		Convey("Get finds by exact name only", func() {
			So(Get("union").IsPresent(), ShouldBeTrue)
			So(Get("unio").IsAbsent(), ShouldBeTrue)
		})

		Convey("Lookup suggests the closest name", func() {
			_, err := Lookup("simple-stak")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `"simple-stack"`)

			e, err := Lookup("identity")
			So(err, ShouldBeNil)
			So(e.Topic, ShouldEqual, TopicGenerics)
		})

		Convey("Search matches fuzzily and ranks closer names first", func() {
			found := Search("stack")
			So(found, ShouldNotBeEmpty)
			So(found[0].Name, ShouldEqual, "simple-stack")

			So(len(Search("")), ShouldEqual, len(catalog))
			So(Search("zzzzqqq"), ShouldBeEmpty)
		})

		Convey("ByTopic filters", func() {
			for _, e := range ByTopic(TopicGenerics) {
				So(e.Topic, ShouldEqual, TopicGenerics)
			}
			So(len(ByTopic(TopicUnions)), ShouldEqual, 1)
		})
	})
}

func TestFunctions(t *testing.T) {
	Convey("Optional and default parameters", t, func() {
		So(Stringify123(mo.None[func(int) string]()), ShouldEqual, "123")
		So(Stringify123(mo.Some(func(n int) string { return strconv.Itoa(n * 2) })), ShouldEqual, "246")

		So(CreatePoint(), ShouldResemble, Tuple{A: 0, B: 0})
		So(CreatePoint(WithY(9)), ShouldResemble, Tuple{A: 0, B: 9})
		So(CreatePoint(WithX(1), WithY(2)), ShouldResemble, Tuple{A: 1, B: 2})

		So(FSample(mo.None[int]()).IsAbsent(), ShouldBeTrue)
		So(FSample(mo.Some(3)).MustGet(), ShouldEqual, 3)
		So(F2Sample(mo.None[int]()), ShouldEqual, 456)
		So(F2Sample(mo.Some(123)), ShouldEqual, 123)
	})

	Convey("Rest parameters", t, func() {
		So(JoinNumbers(), ShouldEqual, "")
		So(JoinNumbers(7), ShouldEqual, "7")
		So(JoinNumbers(1, 2, 3), ShouldEqual, "1-2-3")
	})

	Convey("Function types and aliases", t, func() {
		var a Age = 3
		var i int = a
		So(i, ShouldEqual, 3)
		So(MakeString(12), ShouldEqual, "12")
	})
}

func TestGetScore(t *testing.T) {
	Convey("Stars score their length", t, func() {
		for n := 1; n <= 5; n++ {
			score, err := GetScore(string(lo.RepeatBy(n, func(int) byte { return '*' })))
			So(err, ShouldBeNil)
			So(score, ShouldEqual, n)
		}
	})

	Convey("Integers 1 to 5 score themselves", t, func() {
		for n := 1; n <= 5; n++ {
			score, err := GetScore(n)
			So(err, ShouldBeNil)
			So(score, ShouldEqual, n)
		}
	})

	Convey("Anything else is illegal", t, func() {
		for _, bad := range []string{"", "******", "**x", " *"} {
			_, err := GetScore(bad)
			So(errors.Is(err, ErrIllegalValue), ShouldBeTrue)
		}
		for _, bad := range []int{0, 6, -1} {
			_, err := GetScore(bad)
			So(errors.Is(err, ErrIllegalValue), ShouldBeTrue)
		}

		_, err := GetScore("******")
		So(err.Error(), ShouldEqual, `illegal value: "******"`)

		var illegal *IllegalValueError
		_, err = GetScore(9)
		So(errors.As(err, &illegal), ShouldBeTrue)
		So(illegal.Value, ShouldEqual, 9)
	})
}

func TestShapes(t *testing.T) {
	Convey("Unrelated types with the same methods are Points", t, func() {
		So(PointToString(NewPixel(1, 2)), ShouldEqual, "(1, 2)")
		So(PointToString(Cell{Row: 3, Col: 4}), ShouldEqual, "(4, 3)")
	})

	Convey("Inline struct types accept the named alias", t, func() {
		So(PointToString2(PointLiteral{X: 1, Y: 1}), ShouldEqual, "(1, 1)")
	})

	Convey("Optional company", t, func() {
		So(Person{Name: "Ada"}.String(), ShouldEqual, "Ada")
		So(Person{Name: "Ada", Company: mo.Some("AE")}.String(), ShouldEqual, "Ada (AE)")
	})

	Convey("PointNew records the flag", t, func() {
		toggle := &Toggle{Pixel: NewPixel(0, 0)}
		var p PointNew = toggle
		p.SimpleMethod(true)
		So(toggle.Last, ShouldBeTrue)
	})
}

func TestGenerics(t *testing.T) {
	Convey("Identity keeps value and type", t, func() {
		So(Identity(5), ShouldEqual, 5)
		So(Identity("x"), ShouldEqual, "x")
		So(Identity[any](nil), ShouldBeNil)
	})

	Convey("Containers are typed", t, func() {
		So(StringContainer{Value: "v"}.Value, ShouldEqual, "v")
		So(ValueContainer[bool]{Value: true}.Value, ShouldBeTrue)
	})

	Convey("SimpleStack is the library stack", t, func() {
		var s SimpleStack[int]
		s.Push(1)
		So(s.MustPop(), ShouldEqual, 1)
		So(s.IsEmpty(), ShouldBeTrue)
	})
}
