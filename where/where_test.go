package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/typetour/typetour/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs() and Scripts() live under Config()", func() {
			So(filepath.Dir(Logs()), ShouldEqual, Config())
			So(filepath.Dir(Scripts()), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(Scripts())), ShouldBeTrue)
		})

		Convey("Sessions() is a file inside Cache()", func() {
			So(filepath.Dir(Sessions()), ShouldEqual, Cache())
			So(filepath.Base(Sessions()), ShouldEqual, "stacks.json")
		})

		Convey("Config override through the environment", func() {
			t.Setenv(EnvConfigPath, "/custom/typetour")
			So(Config(), ShouldEqual, "/custom/typetour")
			So(ConfigFile(), ShouldEqual, "/custom/typetour/typetour.toml")
		})
	})
}
