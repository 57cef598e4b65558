package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/typetour/typetour/filesystem"
	"github.com/typetour/typetour/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate defaults", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.StackDefaultName), ShouldEqual, "default")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("tour.wrap_width"), ShouldEqual, "tour_wrap_width")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		Convey("Env is prefixed with the app name", func() {
			f := Default[key.TourWrapWidth]
			So(f.Env(), ShouldEqual, "TYPETOUR_TOUR_WRAP_WIDTH")
		})

		Convey("Parse follows the default's type", func() {
			width := Default[key.TourWrapWidth]
			v, err := width.Parse([]string{"42"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 42)

			_, err = width.Parse([]string{"wide"})
			So(err, ShouldNotBeNil)

			colored := Default[key.CliColored]
			v, err = colored.Parse([]string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			name := Default[key.StackDefaultName]
			v, err = name.Parse([]string{"work"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "work")

			_, err = name.Parse(nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Pretty mentions the key", func() {
			f := Default[key.LogsLevel]
			So(f.Pretty(), ShouldContainSubstring, key.LogsLevel)
		})
	})
}
