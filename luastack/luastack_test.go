package luastack

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/typetour/typetour/filesystem"
	"github.com/typetour/typetour/stack"
	"github.com/typetour/typetour/where"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	filesystem.SetMemMapFs()
}

func runLua(src string) (string, error) {
	var out strings.Builder
	err := RunString(context.Background(), src, &out)
	return out.String(), err
}

func TestStackModule(t *testing.T) {
	Convey("Given a number stack", t, func() {
		Convey("Values pop in reverse order", func() {
			out, err := runLua(`
local s = stack.new("number")
s:push(1)
s:push(2)
s:push(3)
print(s:len(), #s, s:kind())
print(s:pop(), s:pop(), s:pop())
print(s:len())
`)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "3\t3\tnumber\n3\t2\t1\n0\n")
		})

		Convey("Popping an empty stack raises instead of returning nil", func() {
			_, err := runLua(`local s = stack.new("number"); local v = s:pop()`)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, stack.ErrEmpty.Error())
		})

		Convey("The error can be caught with pcall", func() {
			out, err := runLua(`
local s = stack.new("number")
local ok, msg = pcall(function() return s:peek() end)
print(ok)
`)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "false\n")
		})

		Convey("Pushing the wrong kind raises", func() {
			_, err := runLua(`local s = stack.new("number"); s:push("one")`)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "stack of number cannot hold string")
		})

		Convey("nil is never accepted", func() {
			_, err := runLua(`local s = stack.new(); s:push(nil)`)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Stacks are independent", t, func() {
		out, err := runLua(`
local a = stack.new("string")
local b = require("stack").new("string")
a:push("x")
print(a:len(), b:len(), tostring(b))
`)
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "1\t0\tstack<string>\n")
	})

	Convey("Unknown kinds are rejected", t, func() {
		_, err := runLua(`stack.new("float")`)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "unknown element kind")
	})

	Convey("Syntax errors surface as compile errors", t, func() {
		_, err := runLua(`local = 1`)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldStartWith, "compile inline")
	})
}

func TestKind(t *testing.T) {
	Convey("Kinds accept their Lua types", t, func() {
		So(KindString.Accepts(lua.LString("a")), ShouldBeTrue)
		So(KindString.Accepts(lua.LNumber(1)), ShouldBeFalse)
		So(KindNumber.Accepts(lua.LNumber(1)), ShouldBeTrue)
		So(KindBoolean.Accepts(lua.LTrue), ShouldBeTrue)
		So(KindAny.Accepts(lua.LString("a")), ShouldBeTrue)
		So(KindAny.Accepts(lua.LNil), ShouldBeFalse)

		k, err := ParseKind("table")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, KindTable)
	})
}

func TestRun(t *testing.T) {
	Convey("Given a script in the scripts directory", t, func() {
		path := filepath.Join(where.Scripts(), "hello.lua")
		So(filesystem.API().WriteFile(path, []byte(`print("hello")`), 0o644), ShouldBeNil)

		Convey("It runs by full path", func() {
			var out strings.Builder
			So(Run(context.Background(), path, &out), ShouldBeNil)
			So(out.String(), ShouldEqual, "hello\n")
		})

		Convey("It runs by bare name", func() {
			var out strings.Builder
			So(Run(context.Background(), "hello", &out), ShouldBeNil)
			So(out.String(), ShouldEqual, "hello\n")
		})

		Convey("Missing scripts are reported", func() {
			var out strings.Builder
			err := Run(context.Background(), "nope", &out)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "script not found")
		})
	})

	Convey("A cancelled context stops a runaway script", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		var out strings.Builder
		err := RunString(ctx, `while true do end`, &out)
		So(err, ShouldNotBeNil)
	})
}
